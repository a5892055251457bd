// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stretch

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_proto01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proto01. constant protocol: schedule shape")

	p, err := New("cte")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = p.Init([]*fun.Prm{
		&fun.Prm{N: "lam", V: 1.2},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	sch, err := Generate(p, 0, 10, 100)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(sch.Npts(), 101)
	chk.Scalar(tst, "λ(0)", 1e-17, sch.Lam[0], 1.0)
	chk.Scalar(tst, "t(0)", 1e-17, sch.T[0], 0.0)
	chk.Scalar(tst, "t(end)", 1e-14, sch.T[100], 10.0)
	for i := 1; i < sch.Npts(); i++ {
		chk.Scalar(tst, io.Sf("λ(%d)", i), 1e-17, sch.Lam[i], 1.2)
		if sch.T[i] <= sch.T[i-1] {
			tst.Errorf("times are not strictly increasing at i=%d\n", i)
			return
		}
	}
}

func Test_proto02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proto02. linear ramp: slope and clipping")

	p, err := New("lin")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = p.Init([]*fun.Prm{
		&fun.Prm{N: "rate", V: 0.1},
		&fun.Prm{N: "lammax", V: 1.5},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Scalar(tst, "λ(1)", 1e-15, p.Lambda(1), 1.1)
	chk.Scalar(tst, "λ(4)", 1e-15, p.Lambda(4), 1.4)
	chk.Scalar(tst, "λ(5) clipped", 1e-15, p.Lambda(5), 1.5)
	chk.Scalar(tst, "λ(100) clipped", 1e-15, p.Lambda(100), 1.5)

	sch, err := Generate(p, 0, 10, 50)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i := 1; i < sch.Npts(); i++ {
		if sch.Lam[i] < sch.Lam[i-1] {
			tst.Errorf("ramp schedule must be non-decreasing at i=%d\n", i)
			return
		}
	}
}

func Test_proto03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proto03. cyclic protocol: waveform and bounds")

	p, err := New("cyc")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = p.Init([]*fun.Prm{
		&fun.Prm{N: "amp", V: 0.1},
		&fun.Prm{N: "freq", V: 1.0},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Scalar(tst, "λ(1/4)", 1e-14, p.Lambda(0.25), 1.1)
	chk.Scalar(tst, "λ(3/4)", 1e-14, p.Lambda(0.75), 0.9)
	chk.Scalar(tst, "λ(1)", 1e-14, p.Lambda(1.0), 1.0+0.1*math.Sin(2.0*math.Pi))

	sch, err := Generate(p, 0, 15, 150)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(sch.Npts(), 151)
	for i := 0; i < sch.Npts(); i++ {
		if sch.Lam[i] <= 0 {
			tst.Errorf("stretch must remain positive at i=%d\n", i)
			return
		}
	}

	// invalid parameters
	err = p.Init([]*fun.Prm{&fun.Prm{N: "amp", V: 1.5}})
	if err == nil {
		tst.Errorf("amp ≥ 1 must be rejected\n")
		return
	}
	err = p.Init([]*fun.Prm{&fun.Prm{N: "freq", V: -1}})
	if err == nil {
		tst.Errorf("negative freq must be rejected\n")
	}
}

func Test_proto04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("proto04. invalid grids and names")

	if _, err := New("spiral"); err == nil {
		tst.Errorf("unknown protocol must be rejected\n")
		return
	}

	p, err := New("cte")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = p.Init(nil); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if _, err = Generate(p, 0, 0, 10); err == nil {
		tst.Errorf("tf ≤ t0 must be rejected\n")
		return
	}
	if _, err = Generate(p, 5, 1, 10); err == nil {
		tst.Errorf("tf ≤ t0 must be rejected\n")
		return
	}
	if _, err = Generate(p, 0, 1, 0); err == nil {
		tst.Errorf("nsteps < 1 must be rejected\n")
	}
}
