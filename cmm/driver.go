// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/inp"
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/stretch"
)

// Driver runs whole simulations: it builds the stretch schedule, steps the
// integrator across the full time grid and assembles the stress series
type Driver struct {

	// input
	Sim *inp.Simulation // simulation data (validated by inp)

	// settings
	Silent bool // do not print progress messages
}

// Run runs the simulation with the protocol selected in the input data
func (o *Driver) Run() (res *Results, err error) {
	if o.Sim.AllMode {
		return nil, chk.Err("protocol \"all\" must be run with RunAll")
	}
	return o.run(o.Sim.Protocol)
}

// RunAll runs one independent simulation per available protocol. A failing
// protocol fails only its own entry; the others still complete
func (o *Driver) RunAll() (all map[string]*Results, failed map[string]error) {
	all = make(map[string]*Results)
	failed = make(map[string]error)
	for _, name := range stretch.AllProtocols() {
		p, err := stretch.New(name)
		if err == nil {
			err = p.Init(o.Sim.Proto.Prms)
		}
		if err == nil {
			var res *Results
			res, err = o.run(p)
			if err == nil {
				all[name] = res
				continue
			}
		}
		failed[name] = err
	}
	return
}

// run executes one protocol across the whole time grid
func (o *Driver) run(p stretch.Protocol) (res *Results, err error) {

	// stretch schedule
	sch, err := stretch.Generate(p, o.Sim.Control.T0, o.Sim.Control.Tf, o.Sim.Control.Nsteps)
	if err != nil {
		return
	}

	// production rate provider
	var rp RateProvider
	if o.Sim.Fdbk.On {
		rp = Feedback{J0: o.Sim.Col.J0, Sig0: o.Sim.Fdbk.Sig0, K: o.Sim.Fdbk.K}
	} else {
		rp = Baseline{J0: o.Sim.Col.J0}
	}

	// integrator
	integ, err := NewIntegrator(sch, o.Sim.Col, o.Sim.Ela, o.Sim.Gnd, rp)
	if err != nil {
		return
	}

	// time stepping
	res = NewResults(sch.Npts())
	res.Set(0, sch.T[0], integ.SigC, integ.SigE, integ.SigG)
	for i := 1; i < sch.Npts(); i++ {
		err = integ.Advance(i)
		if err != nil {
			return nil, err
		}
		res.Set(i, sch.T[i], integ.SigC, integ.SigE, integ.SigG)
	}

	if !o.Silent {
		io.Pf("protocol %q: %d steps completed. t = [%g, %g]\n", p.Name(), o.Sim.Control.Nsteps, sch.T[0], sch.T[sch.Npts()-1])
	}
	return
}
