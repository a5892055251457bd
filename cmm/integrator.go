// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/mtissue"
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/stretch"
)

// Integrator advances the constrained mixture state one grid point at a time.
// The collagen stress is the mass average of the stress-at-deposition of all
// surviving mass, evaluated with the trapezoidal rule over the deposition
// history (the same rule at every step, so refining the grid converges):
//
//	          M0·q(t,t0)·S̄(λ*(t,t0)) + ∫ j(τ)·q(t,τ)·S̄(λ*(t,τ)) dτ
//	σ^c = φ^c ─────────────────────────────────────────────────────
//	          M0·q(t,t0)              + ∫ j(τ)·q(t,τ) dτ
//
// Elastin has no turnover and the ground matrix follows the tissue stretch
// directly, so both are evaluated in closed form at each grid point
type Integrator struct {

	// input
	Sch  *stretch.Schedule // stretch schedule (read-only)
	Col  *mtissue.Collagen // collagen constituent
	Ela  *mtissue.Elastin  // elastin constituent
	Gnd  *mtissue.Matrix   // proteoglycan ground matrix constituent
	Rp   RateProvider      // production rate provider (baseline or feedback)
	Qtol float64           // survival weight below which history records are pruned

	// state
	S *mtissue.State // history state; owned by this integrator

	// current results (updated by Advance)
	SigC float64 // σ^c: collagen stress at the last completed grid point
	SigE float64 // σ^e: elastin stress at the last completed grid point
	SigG float64 // σ^g: ground matrix stress at the last completed grid point

	// derived
	complete bool
}

// NewIntegrator allocates the integrator and computes the state at the first
// grid point. The initial collagen mass is normalised to M0 = 1
func NewIntegrator(sch *stretch.Schedule, col *mtissue.Collagen, ela *mtissue.Elastin, gnd *mtissue.Matrix, rp RateProvider) (o *Integrator, err error) {
	o = &Integrator{Sch: sch, Col: col, Ela: ela, Gnd: gnd, Rp: rp, Qtol: 1e-12}
	o.S = mtissue.NewState(sch.Npts())
	o.S.Mass, o.S.Mass0 = 1.0, 1.0
	j := rp.Rate(o.S)
	o.S.Append(sch.T[0], j, sch.Lam[0])
	return o, o.eval(0)
}

// Advance advances the state to grid point i. Steps are strictly sequential:
// each one depends on the previous step's history integral and feedback
func (o *Integrator) Advance(i int) (err error) {
	if o.complete {
		return chk.Err("integrator has already completed the time grid")
	}
	if i != o.S.Idx+1 {
		return chk.Err("steps must be advanced one at a time: got i=%d after i=%d", i, o.S.Idx)
	}

	// production rate for the new step, from the previous step's state
	j := o.Rp.Rate(o.S)
	if math.IsNaN(j) || math.IsInf(j, 0) {
		return chk.Err("numerical instability at t=%v (step %d): production rate j^c+=%v", o.Sch.T[i], i, j)
	}

	// new deposition record
	o.S.Append(o.Sch.T[i], j, o.Sch.Lam[i])
	return o.eval(i)
}

// Complete tells whether the whole time grid has been traversed
func (o *Integrator) Complete() bool {
	return o.complete
}

// Jratio returns the collagen reference-volume ratio M(t)/M(t0): the surviving
// mass relative to the initial mass
func (o *Integrator) Jratio() float64 {
	return o.S.Mass / o.S.Mass0
}

// eval computes stresses at grid point i and updates the history state
func (o *Integrator) eval(i int) (err error) {

	t := o.Sch.T[i]
	λ := o.Sch.Lam[i]
	λ0 := o.Sch.Lam[0]

	// collagen: trapezoidal integration of the survival-weighted history
	var num, den float64
	var fprev, gprev float64
	s := o.S
	for k := 0; k < s.Nrec(); k++ {
		q := o.Col.Survival(t, s.Tau[k])
		λc := mtissue.LamTrue(λ, s.LamDep[k], o.Col.G)
		f := s.Rate[k] * q * o.Col.Sbar(λc)
		g := s.Rate[k] * q
		if k > 0 {
			dτ := s.Tau[k] - s.Tau[k-1]
			num += 0.5 * (fprev + f) * dτ
			den += 0.5 * (gprev + g) * dτ
		}
		fprev, gprev = f, g
	}

	// initial mass contribution (deposited at t0, decaying away)
	q0 := o.Col.Survival(t, o.Sch.T[0])
	num += s.Mass0 * q0 * o.Col.Sbar(mtissue.LamTrue(λ, λ0, o.Col.G))
	den += s.Mass0 * q0

	σc := 0.0
	if den > 0 {
		σc = o.Col.Phi * num / den
	}

	// elastin (fixed t0 reference) and ground matrix (tissue stretch)
	σe := o.Ela.Phi * o.Ela.Sbar(mtissue.LamTrue(λ, λ0, o.Ela.G))
	σg := o.Gnd.Phi * o.Gnd.Sbar(λ)

	// detect runaway feedback or degenerate configurations
	if math.IsNaN(σc) || math.IsInf(σc, 0) || math.IsNaN(σe) || math.IsInf(σe, 0) || math.IsNaN(σg) || math.IsInf(σg, 0) {
		return chk.Err("numerical instability at t=%v (step %d): σc=%v, σe=%v, σg=%v", t, i, σc, σe, σg)
	}

	// update state
	s.Mass = den
	s.SigC = σc
	s.Idx = i
	o.SigC, o.SigE, o.SigG = σc, σe, σg

	// prune records whose survival weight became negligible; keep two so the
	// trapezoidal rule always has an interval to work with
	ndrop := 0
	for ndrop < s.Nrec()-2 && o.Col.Survival(t, s.Tau[ndrop]) < o.Qtol {
		ndrop++
	}
	s.Drop(ndrop)

	if i == o.Sch.Npts()-1 {
		o.complete = true
	}
	return
}
