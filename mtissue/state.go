// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

// State holds the history data carried across time steps by one simulation
// run: the deposition records needed to evaluate the collagen history
// integral, the surviving mass, and the previously computed collagen stress.
// It is owned exclusively by the integrator that created it
type State struct {

	// deposition history (appended at every step; pruned from the front once
	// the survival weight of the oldest records becomes negligible)
	Tau    []float64 // τ: deposition times
	Rate   []float64 // j^c+(τ): production rate recorded at each deposition time
	LamDep []float64 // λ(τ): tissue stretch recorded at each deposition time

	// running data
	Mass  float64 // M(t): surviving collagen mass
	Mass0 float64 // M(t0): initial collagen mass
	SigC  float64 // σ^c at the last completed grid point
	Idx   int     // index of the last completed grid point
}

// NewState allocates a state with capacity for npts deposition records
func NewState(npts int) *State {
	var state State
	state.Tau = make([]float64, 0, npts)
	state.Rate = make([]float64, 0, npts)
	state.LamDep = make([]float64, 0, npts)
	state.Idx = -1
	return &state
}

// Append records one deposition event
func (o *State) Append(τ, rate, lamDep float64) {
	o.Tau = append(o.Tau, τ)
	o.Rate = append(o.Rate, rate)
	o.LamDep = append(o.LamDep, lamDep)
}

// Drop removes the first n deposition records, keeping memory bounded on long
// runs. The slices are compacted once the dead region grows past the live one
func (o *State) Drop(n int) {
	if n <= 0 {
		return
	}
	o.Tau = o.Tau[n:]
	o.Rate = o.Rate[n:]
	o.LamDep = o.LamDep[n:]
	if len(o.Tau) < cap(o.Tau)/2 {
		o.Tau = append([]float64(nil), o.Tau...)
		o.Rate = append([]float64(nil), o.Rate...)
		o.LamDep = append([]float64(nil), o.LamDep...)
	}
}

// Nrec returns the number of live deposition records
func (o *State) Nrec() int {
	return len(o.Tau)
}

// Set copies states
//  Note: this method does not check for errors
func (o *State) Set(other *State) {
	o.Tau = append(o.Tau[:0], other.Tau...)
	o.Rate = append(o.Rate[:0], other.Rate...)
	o.LamDep = append(o.LamDep[:0], other.LamDep...)
	o.Mass = other.Mass
	o.Mass0 = other.Mass0
	o.SigC = other.SigC
	o.Idx = other.Idx
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(cap(o.Tau))
	other.Set(o)
	return other
}
