// Package io provides device models for the LS-8 emulator: the console
// that renders PRN output, and the ROM image loaded from .ls8 sources.
package io

import (
	"fmt"
	"io"
)

// Console is the output device behind the CPU's PRN instruction.
type Console interface {
	// Reset clears any device state from a previous run.
	Reset()
	// Print renders a single register value.
	Print(value uint8) error
}

// Terminal is a Console that writes one decimal value per line.
type Terminal struct {
	Output io.Writer

	Printed []uint8 // Every value printed since the last Reset.
}

var _ Console = (*Terminal)(nil)

func (term *Terminal) Reset() {
	term.Printed = nil
}

func (term *Terminal) Print(value uint8) (err error) {
	term.Printed = append(term.Printed, value)
	if term.Output == nil {
		return
	}

	_, err = fmt.Fprintf(term.Output, "%d\n", value)

	return
}
