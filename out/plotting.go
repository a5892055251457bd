// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/cmm"
)

// PlotStress plots the total and per-constituent stress histories and saves a
// PNG file named stress-<fnkey>.png in dirout
func PlotStress(res *cmm.Results, dirout, fnkey string) {
	plt.Reset()
	plt.SetForPng(0.75, 500, 150)
	plt.Plot(res.T, res.Sig, "'k-', lw=2, label='total', clip_on=0")
	plt.Plot(res.T, res.SigC, "'r-', label='collagen', clip_on=0")
	plt.Plot(res.T, res.SigE, "'b-', label='elastin', clip_on=0")
	plt.Plot(res.T, res.SigG, "'g-', label='matrix', clip_on=0")
	plt.Gll("$t$", "$\\sigma$", "")
	plt.SaveD(dirout, io.Sf("stress-%s.png", fnkey))
}
