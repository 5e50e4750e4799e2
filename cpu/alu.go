package cpu

// AluOp selects an arithmetic or comparison operation.
type AluOp int

const (
	ALU_ADD = AluOp(iota) // add
	ALU_MUL               // mul
	ALU_CMP               // cmp
)

// alu performs the requested operation against the register file.
// Arithmetic wraps within the 8-bit register width; no overflow flag is
// maintained.
func (cpu *Cpu) alu(op AluOp, a, b uint8) (err error) {
	switch op {
	case ALU_ADD:
		cpu.Register[a] += cpu.Register[b]
	case ALU_MUL:
		// MUL multiplies r0 by r1 regardless of any operand bytes in the
		// instruction stream. Kept for compatibility with existing .ls8
		// images that encode (and expect ignored) operands.
		cpu.Register[0] *= cpu.Register[1]
	case ALU_CMP:
		switch {
		case cpu.Register[a] == cpu.Register[b]:
			cpu.Fl = FLAG_EQ
		case cpu.Register[a] > cpu.Register[b]:
			cpu.Fl = FLAG_GT
		default:
			cpu.Fl = FLAG_LT
		}
	default:
		err = ErrAluUnsupported
	}

	return
}
