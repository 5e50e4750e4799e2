package cpu

import (
	"iter"
)

// Statement is a line of assembled source with its generated instructions.
type Statement struct {
	LineNo    int
	Addr      int
	Words     []string
	Codes     []Code
	LinkLabel string
}

// Size returns the number of encoded bytes for the statement.
func (st *Statement) Size() (size int) {
	for _, code := range st.Codes {
		size += 1 + len(code.Operands)
	}

	return
}

type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Offset int
}

// Debug finds the statement whose encoding covers the given address.
func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n := range prog.Statements {
		st := &prog.Statements[n]
		if int(addr) >= st.Addr && int(addr) < st.Addr+st.Size() {
			dbg = Debug{
				Statement: st,
				Offset:    int(addr) - st.Addr,
			}
			break
		}
	}

	return
}

// Codes returns an iterator over each instruction and its load address.
func (prog *Program) Codes() iter.Seq2[uint8, Code] {
	return func(yield func(addr uint8, code Code) bool) {
		for _, st := range prog.Statements {
			addr := uint8(st.Addr)
			for _, code := range st.Codes {
				if !yield(addr, code) {
					return
				}
				addr += uint8(1 + len(code.Operands))
			}
		}
	}
}

// Binary returns the flat memory image, ready to load at address zero.
func (prog *Program) Binary() (image []uint8) {
	for _, code := range prog.Codes() {
		image = append(image, code.Bytes()...)
	}

	return
}
