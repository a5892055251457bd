// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/mtissue"
	"github.com/karinaurazova/CMM-Simulator-Remodeling-soft-tussie--sub001/stretch"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// constituents allocates the three constituents with pre-stretches gc and ge
func constituents(tst *testing.T, gc, ge float64) (col *mtissue.Collagen, ela *mtissue.Elastin, gnd *mtissue.Matrix) {
	col, ela, gnd = new(mtissue.Collagen), new(mtissue.Elastin), new(mtissue.Matrix)
	for _, err := range []error{
		col.Init([]*fun.Prm{
			&fun.Prm{N: "c1", V: 10},
			&fun.Prm{N: "c2", V: 0.1},
			&fun.Prm{N: "G", V: gc},
			&fun.Prm{N: "kdeg", V: 0.2},
			&fun.Prm{N: "j0", V: 0.1},
			&fun.Prm{N: "phi", V: 0.3},
		}),
		ela.Init([]*fun.Prm{
			&fun.Prm{N: "ce", V: 5},
			&fun.Prm{N: "G", V: ge},
			&fun.Prm{N: "phi", V: 0.3},
		}),
		gnd.Init([]*fun.Prm{
			&fun.Prm{N: "cg", V: 1},
			&fun.Prm{N: "phi", V: 0.4},
		}),
	} {
		if err != nil {
			tst.Fatalf("cannot initialise constituents: %v\n", err)
		}
	}
	return
}

// schedule generates a schedule for one named protocol
func schedule(tst *testing.T, proto string, prms fun.Prms, tf float64, nsteps int) *stretch.Schedule {
	p, err := stretch.New(proto)
	if err == nil {
		err = p.Init(prms)
	}
	if err != nil {
		tst.Fatalf("cannot allocate protocol: %v\n", err)
	}
	sch, err := stretch.Generate(p, 0, tf, nsteps)
	if err != nil {
		tst.Fatalf("cannot generate schedule: %v\n", err)
	}
	return sch
}

func Test_integ01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ01. no deformation => zero stress forever")

	col, ela, gnd := constituents(tst, 1, 1)
	sch := schedule(tst, "cte", []*fun.Prm{&fun.Prm{N: "lam", V: 1}}, 10, 50)

	integ, err := NewIntegrator(sch, col, ela, gnd, Baseline{J0: col.J0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "σc(0)", 1e-17, integ.SigC, 0)
	chk.Scalar(tst, "σe(0)", 1e-17, integ.SigE, 0)
	chk.Scalar(tst, "σg(0)", 1e-17, integ.SigG, 0)
	for i := 1; i < sch.Npts(); i++ {
		if err = integ.Advance(i); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Scalar(tst, io.Sf("σc(%d)", i), 1e-15, integ.SigC, 0)
		chk.Scalar(tst, io.Sf("σe(%d)", i), 1e-15, integ.SigE, 0)
		chk.Scalar(tst, io.Sf("σg(%d)", i), 1e-15, integ.SigG, 0)
	}
	if !integ.Complete() {
		tst.Errorf("integrator must be complete after the last grid point\n")
	}
}

func Test_integ02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ02. strictly sequential stepping")

	col, ela, gnd := constituents(tst, 1.05, 1)
	sch := schedule(tst, "cte", []*fun.Prm{&fun.Prm{N: "lam", V: 1.2}}, 2, 4)

	integ, err := NewIntegrator(sch, col, ela, gnd, Baseline{J0: col.J0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = integ.Advance(3); err == nil {
		tst.Errorf("skipping steps must be rejected\n")
		return
	}
	for i := 1; i < sch.Npts(); i++ {
		if err = integ.Advance(i); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
	}
	if err = integ.Advance(5); err == nil {
		tst.Errorf("advancing past the end of the grid must be rejected\n")
	}
}

func Test_integ03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ03. feedback clamping: production never negative")

	// direct check of the rate provider
	fb := Feedback{J0: 0.1, Sig0: 1.0, K: -50}
	s := mtissue.NewState(4)
	s.Mass, s.Mass0 = 1, 1
	s.Idx = 0
	s.SigC = 2.0 // σ̂ = 2 and K very negative => raw rate would be negative
	chk.Scalar(tst, "clamped rate", 1e-17, fb.Rate(s), 0)
	s.SigC = 1.0 // homeostatic => baseline
	chk.Scalar(tst, "homeostatic rate", 1e-15, fb.Rate(s), 0.1)

	// whole run: every recorded rate must be non-negative
	col, ela, gnd := constituents(tst, 1.05, 1)
	sch := schedule(tst, "cte", []*fun.Prm{&fun.Prm{N: "lam", V: 1.3}}, 10, 100)
	σ0 := col.Phi * col.Sbar(col.G)
	integ, err := NewIntegrator(sch, col, ela, gnd, Feedback{J0: col.J0, Sig0: σ0, K: -80})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i := 1; i < sch.Npts(); i++ {
		if err = integ.Advance(i); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
	}
	for k := 0; k < integ.S.Nrec(); k++ {
		if integ.S.Rate[k] < 0 {
			tst.Errorf("negative production rate recorded at τ=%g\n", integ.S.Tau[k])
			return
		}
	}
}

func Test_integ04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ04. non-finite stress => numerical instability error")

	col, ela, gnd := constituents(tst, 1, 1)
	col.C2 = 1e5 // degenerate shape coefficient: exp overflows at moderate stretch
	sch := schedule(tst, "cte", []*fun.Prm{&fun.Prm{N: "lam", V: 2}}, 5, 10)

	integ, err := NewIntegrator(sch, col, ela, gnd, Baseline{J0: col.J0})
	if err != nil {
		tst.Errorf("allocation must succeed (λ(0)=1 is still finite): %v\n", err)
		return
	}
	for i := 1; i < sch.Npts(); i++ {
		if err = integ.Advance(i); err != nil {
			io.Pforan("expected failure: %v\n", err)
			return
		}
	}
	tst.Errorf("runaway configuration must fail with a numerical instability error\n")
}

func Test_integ05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ05. long-run pruning keeps the history bounded")

	col, ela, gnd := constituents(tst, 1.05, 1)
	col.Kdeg = 2.0 // survival drops below threshold well within the run
	sch := schedule(tst, "cte", []*fun.Prm{&fun.Prm{N: "lam", V: 1.2}}, 50, 2000)

	integ, err := NewIntegrator(sch, col, ela, gnd, Baseline{J0: col.J0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i := 1; i < sch.Npts(); i++ {
		if err = integ.Advance(i); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
	}

	// q < 1e-12 within ~14 time units => less than ~600 live records
	if integ.S.Nrec() >= sch.Npts() {
		tst.Errorf("history was not pruned: nrec=%d\n", integ.S.Nrec())
		return
	}

	// pruning must not change the steady state
	chk.Scalar(tst, "σc(end) ≈ steady", 1e-3, integ.SigC, col.Phi*col.Sbar(col.G))

	// production and degradation balance: M(∞) = j0/kdeg with M(t0) = 1
	chk.Scalar(tst, "J(end) ≈ j0/kdeg", 1e-3, integ.Jratio(), col.J0/col.Kdeg)
}
