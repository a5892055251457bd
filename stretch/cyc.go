// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stretch

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Cyc implements a cyclic (sinusoidal) protocol: λ = 1 + amp·sin(2·π·freq·t).
// amp must be smaller than 1 so that the stretch never becomes non-positive
type Cyc struct {
	amp  float64 // amplitude of oscillation
	freq float64 // frequency [1/time]
}

// add protocol to factory
func init() {
	allocators["cyc"] = func() Protocol { return new(Cyc) }
}

// Init initialises protocol
func (o *Cyc) Init(prms fun.Prms) (err error) {
	o.amp = 0.1
	o.freq = 1.0
	for _, p := range prms {
		switch p.N {
		case "amp":
			o.amp = p.V
		case "freq":
			o.freq = p.V
		}
	}
	if o.amp < 0 || o.amp >= 1 || math.IsNaN(o.amp) {
		return chk.Err("configuration error: cyc: amp=%v must be within [0, 1)", o.amp)
	}
	if o.freq < 0 || math.IsNaN(o.freq) || math.IsInf(o.freq, 0) {
		return chk.Err("configuration error: cyc: freq=%v must be non-negative and finite", o.freq)
	}
	return
}

// Lambda computes λ at time t
func (o Cyc) Lambda(t float64) float64 {
	return 1.0 + o.amp*math.Sin(2.0*math.Pi*o.freq*t)
}

// Name returns the registered name
func (o Cyc) Name() string { return "cyc" }
