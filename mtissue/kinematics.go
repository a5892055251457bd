// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

// LamTrue computes the "true" constituent stretch λ*(t,τ): the stretch felt by
// mass deposited at time τ, measured relative to its own deposition
// configuration and including the deposition pre-stretch g
//  λ*(t,τ) = g · λ(t) / λ(τ)
// Elastin mass is all deposited at the reference instant, hence lamDep = λ(t0) = 1;
// collagen mass deposited at τ carries the possibly time-varying lamDep = λ(τ)
func LamTrue(lamNow, lamDep, g float64) float64 {
	return g * lamNow / lamDep
}
