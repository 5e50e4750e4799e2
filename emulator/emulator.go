// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

var _emulator_defines = map[string]string{
	"LOAD_ADDR": "0x00", // Programs always load at address zero.
}

// Emulator state. CPU + program image + console device.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Terminal io.Terminal // Console device backing PRN.
	Rom      io.Rom      // Raw program image, for .ls8 sources.
}

// NewEmulator creates a new emulator with the terminal console attached.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Console = &emu.Terminal

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Image returns the memory image to execute: the assembled program when one
// is present, otherwise the raw ROM data.
func (emu *Emulator) Image() []uint8 {
	if len(emu.Program.Statements) != 0 {
		return emu.Program.Binary()
	}

	return emu.Rom.Data
}

// Reset loads the program image and resets the machine.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Reset(emu.Image())

	return
}

// LineNo returns the source line number for the executing instruction, or
// zero when no listing covers the program counter.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.Statement.LineNo
}

// Code returns the instruction at the program counter.
func (emu *Emulator) Code() cpu.Code {
	for addr, code := range emu.Program.Codes() {
		if addr == emu.Cpu.Pc {
			return code
		}
	}

	return cpu.Code{}
}

// Tick performs a single instruction step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	done, err = emu.Cpu.Step()

	return
}

// Run executes the loaded program until it halts.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
