// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stretch implements stretch-vs-time protocols applied to the tissue
package stretch

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Protocol computes the tissue stretch λ(t) for one loading programme
type Protocol interface {
	Init(prms fun.Prms) error  // initialises protocol with parameters
	Lambda(t float64) float64  // computes λ at time t (t > t0; λ(t0) ≡ 1)
	Name() string              // returns the registered name
}

// New returns a new stretch protocol
func New(name string) (p Protocol, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("configuration error: protocol %q is not available in 'stretch' database", name)
	}
	return allocator(), nil
}

// AllProtocols returns the names of all available protocols, in a fixed order
func AllProtocols() []string {
	return []string{"cte", "lin", "cyc"}
}

// allocators holds all available protocols
var allocators = map[string]func() Protocol{}
