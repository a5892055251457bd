// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/mtissue"
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/stretch"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/cmmsim
}

// TimeControl holds data for defining the simulation time grid
type TimeControl struct {
	T0     float64 `json:"t0"`     // initial time
	Tf     float64 `json:"tf"`     // final time
	Nsteps int     `json:"nsteps"` // number of time steps (grid has nsteps+1 points)
}

// ProtocolData holds the stretch protocol selector and its parameters
type ProtocolData struct {
	Type string   `json:"type"` // protocol name: "cte", "lin", "cyc" or "all"
	Prms fun.Prms `json:"prms"` // protocol parameters; e.g. lam, rate, lammax, amp, freq
}

// FeedbackData holds the mechanical feedback settings
type FeedbackData struct {
	On   bool    `json:"on"`   // enable stress-mediated collagen production
	Sig0 float64 `json:"sig0"` // σ0^c: homeostatic collagen stress; 0 => derived from collagen parameters
	K    float64 `json:"k"`    // K^c+: feedback gain
}

// Material holds one constituent's material data
type Material struct {

	// input
	Name string   `json:"name"` // name of material
	Type string   `json:"type"` // constituent type: "collagen", "elastin" or "matrix"
	Prms fun.Prms `json:"prms"` // prms holds all model parameters for this material
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data         `json:"data"`      // stores global simulation data
	Control   TimeControl  `json:"control"`   // time grid data
	Proto     ProtocolData `json:"protocol"`  // stretch protocol data
	Fdbk      FeedbackData `json:"feedback"`  // mechanical feedback data
	Materials []*Material  `json:"materials"` // all constituent materials

	// derived
	Col      *mtissue.Collagen `json:"-"` // collagen constituent
	Ela      *mtissue.Elastin  `json:"-"` // elastin constituent
	Gnd      *mtissue.Matrix   `json:"-"` // proteoglycan ground matrix constituent
	Protocol stretch.Protocol  `json:"-"` // allocated protocol (nil in "all" mode)
	AllMode  bool              `json:"-"` // run every available protocol independently
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// derived data
	err = o.Derive()
	if err != nil {
		return nil, err
	}
	return
}

// Derive allocates the protocol and constituent models and validates all input.
// It must be called once before the simulation starts; no partial results are
// produced if it fails
func (o *Simulation) Derive() (err error) {

	// time grid
	if math.IsNaN(o.Control.T0) || math.IsInf(o.Control.T0, 0) || math.IsNaN(o.Control.Tf) || math.IsInf(o.Control.Tf, 0) {
		return chk.Err("configuration error: t0=%v and tf=%v must be finite", o.Control.T0, o.Control.Tf)
	}
	if o.Control.Tf <= o.Control.T0 {
		return chk.Err("configuration error: tf=%v must be greater than t0=%v", o.Control.Tf, o.Control.T0)
	}
	if o.Control.Nsteps < 1 {
		return chk.Err("configuration error: nsteps=%d must be at least 1", o.Control.Nsteps)
	}

	// protocol
	o.AllMode = o.Proto.Type == "all"
	if o.AllMode {
		// each sub-protocol reads its own parameters from the shared set;
		// allocate all of them now so that parameter errors surface before stepping
		for _, name := range stretch.AllProtocols() {
			p, e := stretch.New(name)
			if e != nil {
				return e
			}
			if e = p.Init(o.Proto.Prms); e != nil {
				return e
			}
		}
	} else {
		o.Protocol, err = stretch.New(o.Proto.Type)
		if err != nil {
			return
		}
		err = o.Protocol.Init(o.Proto.Prms)
		if err != nil {
			return
		}
	}

	// constituents
	for _, m := range o.Materials {
		model, e := mtissue.New(m.Type)
		if e != nil {
			return e
		}
		if e = model.Init(m.Prms); e != nil {
			return e
		}
		switch mdl := model.(type) {
		case *mtissue.Collagen:
			o.Col = mdl
		case *mtissue.Elastin:
			o.Ela = mdl
		case *mtissue.Matrix:
			o.Gnd = mdl
		}
	}
	if o.Col == nil || o.Ela == nil || o.Gnd == nil {
		return chk.Err("configuration error: materials must define the three constituents \"collagen\", \"elastin\" and \"matrix\"")
	}

	// feedback
	if math.IsNaN(o.Fdbk.K) || math.IsInf(o.Fdbk.K, 0) || math.IsNaN(o.Fdbk.Sig0) || math.IsInf(o.Fdbk.Sig0, 0) {
		return chk.Err("configuration error: feedback k=%v and sig0=%v must be finite", o.Fdbk.K, o.Fdbk.Sig0)
	}
	if o.Fdbk.Sig0 == 0 {
		// homeostatic default: the stress of collagen deposited at its own pre-stretch
		o.Fdbk.Sig0 = o.Col.Phi * o.Col.Sbar(o.Col.G)
	}
	if o.Fdbk.On && o.Fdbk.Sig0 <= 0 {
		return chk.Err("configuration error: feedback requires a positive homeostatic stress; sig0=%v", o.Fdbk.Sig0)
	}
	return
}

// GetDefaultSim returns a simulation with baseline material constants and a
// constant stretch protocol; handy for the command line and for tests
func GetDefaultSim() *Simulation {
	col, ela, gnd := new(mtissue.Collagen), new(mtissue.Elastin), new(mtissue.Matrix)
	o := &Simulation{
		Data:    Data{Desc: "default tissue remodeling simulation", DirOut: "/tmp/cmmsim"},
		Control: TimeControl{T0: 0, Tf: 10, Nsteps: 100},
		Proto: ProtocolData{Type: "cte", Prms: []*fun.Prm{
			&fun.Prm{N: "lam", V: 1.2},
		}},
		Fdbk: FeedbackData{On: false, K: 0.5},
		Materials: []*Material{
			{Name: "col", Type: "collagen", Prms: col.GetPrms()},
			{Name: "ela", Type: "elastin", Prms: ela.GetPrms()},
			{Name: "gnd", Type: "matrix", Prms: gnd.GetPrms()},
		},
	}
	if err := o.Derive(); err != nil {
		chk.Panic("GetDefaultSim: default simulation is broken:\n%v", err)
	}
	return o
}
