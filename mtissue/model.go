// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mtissue implements constituent models for soft biological tissue
// treated as a constrained mixture of collagen, elastin and a proteoglycan
// ground matrix
//  References:
//   [1] Humphrey JD and Rajagopal KR (2002) A constrained mixture model for
//       growth and remodeling of soft tissues. Mathematical Models and Methods
//       in Applied Sciences, 12(3), 407-430
package mtissue

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for tissue constituent models. Sbar is the
// strain-energy-derived stress kernel: the Cauchy stress carried by a unit
// mass of constituent at the "true" stretch λ, measured relative to the
// constituent's own deposition configuration. Sbar(1) = 0 and Sbar is
// monotonically increasing for λ ≥ 1 whenever the material constants are
// non-negative
type Model interface {
	Init(prms fun.Prms) error  // initialises model with parameters
	GetPrms() fun.Prms         // gets (an example) of parameters
	Sbar(λ float64) float64    // computes the stress kernel at true stretch λ
}

// New returns a new constituent model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("configuration error: constituent %q is not available in 'mtissue' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
