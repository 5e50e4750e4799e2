package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Rom is a raw LS-8 program image.
//
// The .ls8 source format holds one instruction byte per line, written as
// binary digits. A '#' starts a comment, and blank lines are skipped.
type Rom struct {
	Data []uint8
}

// ReadLS8 parses a .ls8 byte listing into the image.
func (rom *Rom) ReadLS8(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	rom.Data = rom.Data[:0]

	var lineno int
	for scanner.Scan() {
		lineno += 1
		line := scanner.Text()
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		value, perr := strconv.ParseUint(line, 2, 8)
		if perr != nil {
			err = &ErrRomByte{LineNo: lineno, Line: line}
			return
		}
		rom.Data = append(rom.Data, uint8(value))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(rom.Data) == 0 {
		err = ErrRomEmpty
	}

	return
}

// WriteLS8 emits the image in the .ls8 byte listing format.
func (rom *Rom) WriteLS8(output io.Writer) (err error) {
	for _, value := range rom.Data {
		_, err = fmt.Fprintf(output, "%08b\n", value)
		if err != nil {
			return
		}
	}

	return
}
