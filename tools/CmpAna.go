// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/ana"
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/cmm"
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, fnkey := io.ArgToFilename(0, "", ".sim", false)
	dirout := io.ArgToString(1, "/tmp/cmmsim")
	io.Pf("\n%s\n", io.ArgsTable(
		"simulation filename", "simfn", simfn,
		"output directory", "dirout", dirout,
	))

	// simulation data: the comparison needs a constant stretch protocol
	var sim *inp.Simulation
	var err error
	if simfn == "" {
		sim = inp.GetDefaultSim()
		fnkey = "default"
	} else {
		sim, err = inp.ReadSim(simfn)
		if err != nil {
			io.PfRed("cannot read simulation file:\n%v\n", err)
			return
		}
	}
	if sim.Proto.Type != "cte" {
		io.PfRed("analytical comparison requires the \"cte\" protocol; got %q\n", sim.Proto.Type)
		return
	}

	// discrete solution
	drv := cmm.Driver{Sim: sim}
	res, err := drv.Run()
	if err != nil {
		io.PfRed("simulation failed:\n%v\n", err)
		return
	}

	// closed form
	var sol ana.ConstStretch
	sol.Init(sim.Col, sim.Ela, sim.Gnd, sim.Protocol.Lambda(sim.Control.Tf))
	np := res.Npts()
	σana := make([]float64, np)
	for i := 0; i < np; i++ {
		σana[i] = sol.SigTotal(res.T[i])
	}

	// plot
	plt.Reset()
	plt.SetForPng(0.75, 400, 150)
	plt.Plot(res.T, res.Sig, "'b-', label='numerical'")
	plt.Plot(res.T, σana, "'r--', label='closed form'")
	plt.Gll("$t$", "$\\sigma$", "")
	plt.SaveD(dirout, fnkey+"-cmp.png")
	io.Pfblue2("file <%s/%s-cmp.png> created\n", dirout, fnkey)
}
