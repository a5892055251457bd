// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stretch

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Cte implements a constant stretch protocol: a step change λ = lam applied
// right after the reference instant
type Cte struct {
	lam float64 // λ: fixed stretch level
}

// add protocol to factory
func init() {
	allocators["cte"] = func() Protocol { return new(Cte) }
}

// Init initialises protocol
func (o *Cte) Init(prms fun.Prms) (err error) {
	o.lam = 1.2
	for _, p := range prms {
		switch p.N {
		case "lam":
			o.lam = p.V
		}
	}
	if o.lam <= 0 || math.IsNaN(o.lam) || math.IsInf(o.lam, 0) {
		return chk.Err("configuration error: cte: lam=%v must be positive and finite", o.lam)
	}
	return
}

// Lambda computes λ at time t
func (o Cte) Lambda(t float64) float64 {
	return o.lam
}

// Name returns the registered name
func (o Cte) Name() string { return "cte" }
