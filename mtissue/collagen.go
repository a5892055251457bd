// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Collagen implements the exponential fibre kernel for collagen together with
// the turnover parameters governing its production and degradation
//  kernel:    S̄(λ) = c1·(λ²−1)·exp(c2·(λ²−1)²)
//  survival:  q(t,τ) = exp(−kdeg·(t−τ))
type Collagen struct {

	// parameters
	C1   float64 // c1: fibre stiffness
	C2   float64 // c2: fibre shape (exponential) coefficient
	G    float64 // G^c: deposition pre-stretch
	Kdeg float64 // k: degradation rate of deposited mass
	J0   float64 // j0^c+: baseline mass production rate
	Phi  float64 // φ^c: mass fraction of collagen in the mixture
}

// add model to factory
func init() {
	allocators["collagen"] = func() Model { return new(Collagen) }
}

// Init initialises model
func (o *Collagen) Init(prms fun.Prms) (err error) {
	o.G = 1.0
	for _, p := range prms {
		switch p.N {
		case "c1":
			o.C1 = p.V
		case "c2":
			o.C2 = p.V
		case "G":
			o.G = p.V
		case "kdeg":
			o.Kdeg = p.V
		case "j0":
			o.J0 = p.V
		case "phi":
			o.Phi = p.V
		default:
			return chk.Err("configuration error: collagen: parameter named %q is incorrect", p.N)
		}
	}
	if o.C1 < 0 || o.C2 < 0 || o.Kdeg < 0 || o.J0 < 0 || o.Phi < 0 {
		return chk.Err("configuration error: collagen: c1=%v, c2=%v, kdeg=%v, j0=%v and phi=%v must all be non-negative", o.C1, o.C2, o.Kdeg, o.J0, o.Phi)
	}
	if o.G <= 0 {
		return chk.Err("configuration error: collagen: pre-stretch G=%v must be positive", o.G)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Collagen) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "c1", V: 10},
		&fun.Prm{N: "c2", V: 0.1},
		&fun.Prm{N: "G", V: 1.05},
		&fun.Prm{N: "kdeg", V: 0.2},
		&fun.Prm{N: "j0", V: 0.1},
		&fun.Prm{N: "phi", V: 0.3},
	}
}

// Sbar computes the stress kernel at true stretch λ
func (o Collagen) Sbar(λ float64) float64 {
	e := λ*λ - 1.0
	return o.C1 * e * math.Exp(o.C2*e*e)
}

// Survival computes q(t,τ): the fraction of mass deposited at τ still present at t
func (o Collagen) Survival(t, τ float64) float64 {
	return math.Exp(-o.Kdeg * (t - τ))
}
