// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simple consumers of simulation results: a text table
// and stress-history plots. The solver has no dependency on this package
package out

import (
	"github.com/cpmech/gosl/io"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/cmm"
)

// Table prints the stress/time series
func Table(res *cmm.Results) {
	io.Pf("%10s%14s%14s%14s%14s\n", "t", "sig", "sig_c", "sig_e", "sig_g")
	for i := 0; i < res.Npts(); i++ {
		io.Pf("%10.4f%14.6f%14.6f%14.6f%14.6f\n", res.T[i], res.Sig[i], res.SigC[i], res.SigE[i], res.SigG[i])
	}
}
