// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stretch

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// Lin implements a linear ramp protocol: λ = 1 + rate·t, clipped at lammax
type Lin struct {
	rate   float64 // stretch rate [1/time]
	lammax float64 // maximum stretch (clip level)
}

// add protocol to factory
func init() {
	allocators["lin"] = func() Protocol { return new(Lin) }
}

// Init initialises protocol
func (o *Lin) Init(prms fun.Prms) (err error) {
	o.rate = 0.02
	o.lammax = 2.0
	for _, p := range prms {
		switch p.N {
		case "rate":
			o.rate = p.V
		case "lammax":
			o.lammax = p.V
		}
	}
	if o.rate < 0 || math.IsNaN(o.rate) || math.IsInf(o.rate, 0) {
		return chk.Err("configuration error: lin: rate=%v must be non-negative and finite", o.rate)
	}
	if o.lammax < 1 {
		return chk.Err("configuration error: lin: lammax=%v must be greater than or equal to 1", o.lammax)
	}
	return
}

// Lambda computes λ at time t
func (o Lin) Lambda(t float64) float64 {
	return utl.Min(1.0+o.rate*t, o.lammax)
}

// Name returns the registered name
func (o Lin) Name() string { return "lin" }
