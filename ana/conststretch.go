// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/mtissue"
)

// ConstStretch implements the closed-form stress evolution for a constant
// stretch protocol with the baseline (feedback-off) production rate. With
// λ(t) = λc for t > t0, every deposit after t0 carries the true stretch G^c,
// so the history integral reduces to
//
//	σ^c(t) = φ^c · [ M0·e^{−k·t}·S̄(G·λc) + I(t)·S̄(G) ] / [ M0·e^{−k·t} + I(t) ]
//	I(t)   = (j0/k)·(1 − e^{−k·t})     (or j0·t when k = 0)
//
// which tends to φ^c·S̄(G) as the initial mass degrades away
type ConstStretch struct {

	// input
	Col *mtissue.Collagen // collagen constituent
	Ela *mtissue.Elastin  // elastin constituent
	Gnd *mtissue.Matrix   // ground matrix constituent
	Lam float64           // λc: fixed stretch level

	// derived
	m0 float64 // M0: initial collagen mass (normalised)
}

// Init initialises this structure
func (o *ConstStretch) Init(col *mtissue.Collagen, ela *mtissue.Elastin, gnd *mtissue.Matrix, lam float64) {
	o.Col, o.Ela, o.Gnd, o.Lam = col, ela, gnd, lam
	o.m0 = 1.0
}

// SigCollagen computes σ^c at time t (measured from the reference instant)
func (o ConstStretch) SigCollagen(t float64) float64 {
	k := o.Col.Kdeg
	e := math.Exp(-k * t)
	I := o.Col.J0 * t
	if k > 0 {
		I = o.Col.J0 / k * (1.0 - e)
	}
	num := o.m0*e*o.Col.Sbar(o.Col.G*o.Lam) + I*o.Col.Sbar(o.Col.G)
	den := o.m0*e + I
	if den <= 0 {
		return 0
	}
	return o.Col.Phi * num / den
}

// SigCollagenSteady computes the long-time limit of σ^c
func (o ConstStretch) SigCollagenSteady() float64 {
	return o.Col.Phi * o.Col.Sbar(o.Col.G)
}

// SigElastin computes σ^e (constant in time for a constant stretch)
func (o ConstStretch) SigElastin() float64 {
	return o.Ela.Phi * o.Ela.Sbar(o.Ela.G*o.Lam)
}

// SigMatrix computes σ^g (constant in time for a constant stretch)
func (o ConstStretch) SigMatrix() float64 {
	return o.Gnd.Phi * o.Gnd.Sbar(o.Lam)
}

// SigTotal computes the total stress at time t
func (o ConstStretch) SigTotal(t float64) float64 {
	return o.SigCollagen(t) + o.SigElastin() + o.SigMatrix()
}
