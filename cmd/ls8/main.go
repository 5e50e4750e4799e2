// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/io"
)

func main() {
	var compile string
	var load string
	var save string
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&load, "l", "", ".ls8 byte listing to load")
	flag.StringVar(&save, "s", "", "save program as a .ls8 byte listing, do not execute")
	flag.StringVar(&output, "o", "-", "PRN output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 1 && len(load) == 0 && len(compile) == 0 {
		load = flag.Arg(0)
	} else if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for attr, val := range emu.Defines() {
			asm.Predefine(attr, val)
		}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Program = prog
	}

	if len(load) != 0 {
		inf, err := os.Open(load)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
		defer inf.Close()

		err = emu.Rom.ReadLS8(inf)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
	}

	if len(save) != 0 {
		ouf, err := os.Create(save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		defer ouf.Close()

		rom := io.Rom{Data: emu.Image()}
		err = rom.WriteLS8(ouf)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		return
	}

	if output == "-" {
		emu.Terminal.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Terminal.Output = ouf
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}
}
