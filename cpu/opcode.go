package cpu

import (
	"fmt"
)

// Opcode is the 6-bit dispatch key decoded from the low bits of an
// instruction's leading byte. The high 2 bits of the byte carry the operand
// count, used only for program counter advancement bookkeeping.
type Opcode uint8

const (
	OP_HLT  = Opcode(0x01) // HLT
	OP_LDI  = Opcode(0x02) // LDI
	OP_PUSH = Opcode(0x05) // PUSH
	OP_POP  = Opcode(0x06) // POP
	OP_PRN  = Opcode(0x07) // PRN
	OP_CALL = Opcode(0x10) // CALL
	OP_RET  = Opcode(0x11) // RET
	OP_JMP  = Opcode(0x14) // JMP
	OP_JEQ  = Opcode(0x15) // JEQ
	OP_JNE  = Opcode(0x16) // JNE
	OP_ADD  = Opcode(0x20) // ADD
	OP_MUL  = Opcode(0x22) // MUL
	OP_CMP  = Opcode(0x27) // CMP
)

var opcodeNames = map[Opcode]string{
	OP_HLT:  "HLT",
	OP_LDI:  "LDI",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_CALL: "CALL",
	OP_RET:  "RET",
	OP_JMP:  "JMP",
	OP_JEQ:  "JEQ",
	OP_JNE:  "JNE",
	OP_ADD:  "ADD",
	OP_MUL:  "MUL",
	OP_CMP:  "CMP",
}

// String returns the mnemonic for the opcode.
func (op Opcode) String() string {
	name, ok := opcodeNames[op]
	if !ok {
		return fmt.Sprintf("Opcode(0x%02x)", uint8(op))
	}
	return name
}

// Operands returns the number of operand bytes the assembler encodes after
// the leading byte. The decoder does not consult this table; it derives the
// advance from the top 2 bits of the byte actually fetched, so images that
// encode MUL with two (ignored) operand bytes still execute correctly.
func (op Opcode) Operands() int {
	switch op {
	case OP_LDI, OP_ADD, OP_CMP:
		return 2
	case OP_PUSH, OP_POP, OP_PRN, OP_CALL, OP_JMP, OP_JEQ, OP_JNE:
		return 1
	default:
		return 0
	}
}

// Code is a single instruction: an opcode with its operand bytes.
type Code struct {
	Op       Opcode
	Operands []uint8
}

// MakeCode creates an instruction with the specified operand bytes.
func MakeCode(op Opcode, operands ...uint8) Code {
	return Code{Op: op, Operands: operands}
}

// Bytes returns the encoded byte sequence for the instruction. The leading
// byte packs the operand count into its top 2 bits and the opcode key into
// the low 6.
func (code Code) Bytes() (out []uint8) {
	out = append(out, uint8(code.Op)|uint8(len(code.Operands))<<6)
	out = append(out, code.Operands...)
	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	switch {
	case code.Op == OP_LDI && len(code.Operands) == 2:
		out = fmt.Sprintf("%v r%d %d", code.Op, code.Operands[0]&REG_MASK, code.Operands[1])
	case (code.Op == OP_ADD || code.Op == OP_CMP) && len(code.Operands) == 2:
		out = fmt.Sprintf("%v r%d r%d", code.Op, code.Operands[0]&REG_MASK, code.Operands[1]&REG_MASK)
	case len(code.Operands) == 1:
		out = fmt.Sprintf("%v r%d", code.Op, code.Operands[0]&REG_MASK)
	default:
		out = code.Op.String()
	}
	return
}
