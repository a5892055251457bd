// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/cmm"
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/inp"
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	simfn, fnkey := io.ArgToFilename(0, "", ".sim", false)
	verbose := io.ArgToBool(1, true)
	saveplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nCMM Simulator -- remodeling of soft tissue\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"filename path (empty => default simulation)", "simfn", simfn,
			"show messages", "verbose", verbose,
			"save stress plots", "saveplot", saveplot,
		))
	}

	// simulation data
	var sim *inp.Simulation
	if simfn == "" {
		sim = inp.GetDefaultSim()
		fnkey = "default"
	} else {
		var err error
		sim, err = inp.ReadSim(simfn)
		if err != nil {
			chk.Panic("cannot read simulation file:\n%v", err)
		}
	}

	// run
	drv := cmm.Driver{Sim: sim, Silent: !verbose}
	if sim.AllMode {
		all, failed := drv.RunAll()
		for name, err := range failed {
			io.PfRed("protocol %q failed: %v\n", name, err)
		}
		for name, res := range all {
			if verbose {
				io.PfYel("\nresults: protocol %q\n", name)
				out.Table(res)
			}
			if saveplot {
				out.PlotStress(res, sim.Data.DirOut, io.Sf("%s-%s", fnkey, name))
			}
		}
		return
	}
	res, err := drv.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if verbose {
		out.Table(res)
	}
	if saveplot {
		out.PlotStress(res, sim.Data.DirOut, fnkey)
	}
}
