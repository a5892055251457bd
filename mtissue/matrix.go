// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Matrix implements the closed-form neo-Hookean kernel for the proteoglycan
// ground matrix. The matrix always deforms with the whole tissue, so its
// kernel is evaluated at the tissue stretch directly
//  kernel: S̄(λ) = 2·cg·(λ² − 1/λ)
type Matrix struct {

	// parameters
	Cg  float64 // cg: ground matrix stiffness
	Phi float64 // φ^g: mass fraction of ground matrix in the mixture
}

// add model to factory
func init() {
	allocators["matrix"] = func() Model { return new(Matrix) }
}

// Init initialises model
func (o *Matrix) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "cg":
			o.Cg = p.V
		case "phi":
			o.Phi = p.V
		default:
			return chk.Err("configuration error: matrix: parameter named %q is incorrect", p.N)
		}
	}
	if o.Cg < 0 || o.Phi < 0 {
		return chk.Err("configuration error: matrix: cg=%v and phi=%v must be non-negative", o.Cg, o.Phi)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Matrix) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "cg", V: 1},
		&fun.Prm{N: "phi", V: 0.4},
	}
}

// Sbar computes the stress kernel at tissue stretch λ
func (o Matrix) Sbar(λ float64) float64 {
	return 2.0 * o.Cg * (λ*λ - 1.0/λ)
}
