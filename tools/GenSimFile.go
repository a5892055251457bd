// Copyright 2025 Karina Urazova. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/io"

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
	fn, fnkey := io.ArgToFilename(0, "newsim", ".sim", true)
	io.Pf("\n%s\n", io.ArgsTable(
		"output filename", "fn", fn,
	))

	// write default simulation as a template to be edited by hand
	sim := inp.GetDefaultSim()
	b, err := json.MarshalIndent(sim, "", "  ")
	if err != nil {
		io.PfRed("cannot marshal default simulation: %v\n", err)
		return
	}
	var buf bytes.Buffer
	buf.Write(b)
	io.WriteFile(fn, &buf)
	io.Pfblue2("file <%s.sim> created\n", fnkey)
}
