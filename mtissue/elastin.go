// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Elastin implements the neo-Hookean-like kernel for elastin. Elastin has no
// turnover: all of its mass is deposited at the reference instant with
// pre-stretch G and survives for the whole simulation
//  kernel: S̄(λ) = ce·(λ² − 1/λ)
type Elastin struct {

	// parameters
	Ce  float64 // ce: elastin stiffness
	G   float64 // G^e: deposition pre-stretch
	Phi float64 // φ^e: mass fraction of elastin in the mixture
}

// add model to factory
func init() {
	allocators["elastin"] = func() Model { return new(Elastin) }
}

// Init initialises model
func (o *Elastin) Init(prms fun.Prms) (err error) {
	o.G = 1.0
	for _, p := range prms {
		switch p.N {
		case "ce":
			o.Ce = p.V
		case "G":
			o.G = p.V
		case "phi":
			o.Phi = p.V
		default:
			return chk.Err("configuration error: elastin: parameter named %q is incorrect", p.N)
		}
	}
	if o.Ce < 0 || o.Phi < 0 {
		return chk.Err("configuration error: elastin: ce=%v and phi=%v must be non-negative", o.Ce, o.Phi)
	}
	if o.G <= 0 {
		return chk.Err("configuration error: elastin: pre-stretch G=%v must be positive", o.G)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Elastin) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "ce", V: 5},
		&fun.Prm{N: "G", V: 1},
		&fun.Prm{N: "phi", V: 0.3},
	}
}

// Sbar computes the stress kernel at true stretch λ
func (o Elastin) Sbar(λ float64) float64 {
	return o.Ce * (λ*λ - 1.0/λ)
}
