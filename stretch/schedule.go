// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stretch

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Schedule holds one stretch history: (time, stretch) pairs with strictly
// increasing times. It is generated once per run and must not be modified
// afterwards
type Schedule struct {
	T   []float64 // time instants [npts]
	Lam []float64 // λ: stretch at each time instant [npts]
}

// Generate computes a schedule with nsteps+1 points over a uniform time grid.
// The first point is always the reference state λ(t0) = 1, regardless of the
// protocol; the protocol engages from the second point onwards
func Generate(p Protocol, t0, tf float64, nsteps int) (sch *Schedule, err error) {
	if tf <= t0 {
		return nil, chk.Err("configuration error: tf=%v must be greater than t0=%v", tf, t0)
	}
	if nsteps < 1 {
		return nil, chk.Err("configuration error: nsteps=%d must be at least 1", nsteps)
	}
	sch = new(Schedule)
	sch.T = utl.LinSpace(t0, tf, nsteps+1)
	sch.Lam = make([]float64, nsteps+1)
	sch.Lam[0] = 1.0
	for i := 1; i < len(sch.T); i++ {
		λ := p.Lambda(sch.T[i])
		if λ <= 0 || math.IsNaN(λ) || math.IsInf(λ, 0) {
			return nil, chk.Err("configuration error: protocol %q produced invalid stretch λ=%v at t=%v", p.Name(), λ, sch.T[i])
		}
		sch.Lam[i] = λ
	}
	return
}

// Npts returns the number of points in the schedule
func (o Schedule) Npts() int {
	return len(o.T)
}
