// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmm implements the constrained mixture solver: the time-stepped
// survival/production integrator, the collagen production rate providers and
// the simulation driver
package cmm

import (
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/mtissue"
)

// RateProvider computes the collagen mass production rate j^c+ for the next
// time step, reading the previous step's results from the history state. The
// provider is selected once when the integrator is created
type RateProvider interface {
	Rate(s *mtissue.State) float64 // computes j^c+ (never negative)
}

// Baseline returns the constant baseline production rate j0^c+
type Baseline struct {
	J0 float64 // j0^c+: baseline production rate
}

// Rate computes j^c+
func (o Baseline) Rate(s *mtissue.State) float64 {
	return o.J0
}

// Feedback computes a stress-mediated production rate
//  σ̂    = σ^c(t-1) / σ0^c      (previous step's collagen stress)
//  j^c+ = (M(t)/M(t0)) · j0^c+ · [1 + K·(σ̂ − 1)]
// clamped at zero: mass production cannot be negative
type Feedback struct {
	J0   float64 // j0^c+: baseline production rate
	Sig0 float64 // σ0^c: homeostatic collagen stress
	K    float64 // K^c+: feedback gain
}

// Rate computes j^c+
func (o Feedback) Rate(s *mtissue.State) float64 {
	σhat := 1.0 // homeostatic start: no step computed yet
	if s.Idx >= 0 {
		σhat = s.SigC / o.Sig0
	}
	j := (s.Mass / s.Mass0) * o.J0 * (1.0 + o.K*(σhat-1.0))
	if j < 0 {
		return 0
	}
	return j
}
