// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmm

// Results holds the stress/time series of one completed simulation run. It is
// built incrementally by the driver and must not be modified afterwards
type Results struct {
	T    []float64 // time instants [npts]
	Sig  []float64 // σ: total stress = σ^c + σ^e + σ^g [npts]
	SigC []float64 // σ^c: collagen stress [npts]
	SigE []float64 // σ^e: elastin stress [npts]
	SigG []float64 // σ^g: ground matrix stress [npts]
}

// NewResults allocates results for npts grid points
func NewResults(npts int) *Results {
	return &Results{
		T:    make([]float64, npts),
		Sig:  make([]float64, npts),
		SigC: make([]float64, npts),
		SigE: make([]float64, npts),
		SigG: make([]float64, npts),
	}
}

// Set stores the stresses of grid point i
func (o *Results) Set(i int, t, σc, σe, σg float64) {
	o.T[i] = t
	o.SigC[i] = σc
	o.SigE[i] = σe
	o.SigG[i] = σg
	o.Sig[i] = σc + σe + σg
}

// Npts returns the number of grid points
func (o Results) Npts() int {
	return len(o.T)
}
