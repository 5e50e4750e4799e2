package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Console is the output device attached to the CPU's PRN instruction.
type Console io.Console

var _cpu_defines = map[string]string{
	"RAM_SIZE": fmt.Sprintf("%#x", RAM_SIZE),
	"SP_INIT":  fmt.Sprintf("%#x", SP_INIT),
	"FLAG_EQ":  fmt.Sprintf("%#x", uint8(FLAG_EQ)),
	"FLAG_GT":  fmt.Sprintf("%#x", uint8(FLAG_GT)),
	"FLAG_LT":  fmt.Sprintf("%#x", uint8(FLAG_LT)),
}

// Cpu is the LS-8 machine state: memory, register file, program counter,
// and condition flags. All state is owned here and mutated only by Step
// and the stack helpers; there is exactly one flow of control, and no
// instruction is ever in flight while another executes.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ram      [RAM_SIZE]uint8  // Flat byte-addressable memory.
	Register [REG_COUNT]uint8 // Register bank; Register[REG_SP] is the stack pointer.
	Pc       uint8            // Address of the next instruction to fetch.
	Fl       Flags            // Condition flags, set only by CMP.

	Console Console // Output device for PRN.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with an empty memory image.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Register[REG_SP] = SP_INIT

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset clears the machine state and loads a program image at address zero.
// - Zeros RAM, the register bank, the flags, and the tick counter.
// - Sets the stack pointer to SP_INIT and the program counter to zero.
// - Resets the attached console device.
func (cpu *Cpu) Reset(program []uint8) (err error) {
	if len(program) == 0 {
		err = ErrProgramEmpty
		return
	}
	if len(program) > RAM_SIZE {
		err = ErrProgramSize
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: reset, %d byte program", len(program))
	}

	clear(cpu.Ram[:])
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = SP_INIT
	cpu.Pc = 0
	cpu.Fl = 0
	cpu.Ticks = 0

	if cpu.Console != nil {
		cpu.Console.Reset()
	}

	copy(cpu.Ram[:], program)

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("  pc: %02X | %02X %02X %02X | fl: %v\n",
		cpu.Pc, cpu.Ram[cpu.Pc], cpu.Ram[cpu.Pc+1], cpu.Ram[cpu.Pc+2], cpu.Fl)
	for n, val := range cpu.Register {
		name := fmt.Sprintf("r%d", n)
		if n == REG_SP {
			name = "sp"
		}
		text += fmt.Sprintf("% 4s: %02X\n", name, val)
	}

	return
}

// fetch reads the byte at an offset from the program counter. The uint8
// address arithmetic keeps every access within the 256-byte memory.
func (cpu *Cpu) fetch(offset uint8) uint8 {
	return cpu.Ram[cpu.Pc+offset]
}

// Step executes a single fetch-decode-execute cycle. It reports done=true
// when the machine executes HLT. Any error is fatal to the run and leaves
// the program counter at the failed instruction.
func (cpu *Cpu) Step() (done bool, err error) {
	raw := cpu.fetch(0)
	op := Opcode(raw & OPCODE_MASK)

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(raw), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, op)
	}

	// Default advance comes from the operand count packed into the top
	// 2 bits of the leading byte. Control-flow cases overwrite next_pc.
	next_pc := cpu.Pc + 1 + (raw >> 6)

	switch op {
	case OP_HLT:
		done = true
		return
	case OP_LDI:
		cpu.Register[cpu.fetch(1)&REG_MASK] = cpu.fetch(2)
	case OP_PUSH:
		cpu.Push(cpu.Register[cpu.fetch(1)&REG_MASK])
	case OP_POP:
		cpu.Register[cpu.fetch(1)&REG_MASK] = cpu.Pop()
	case OP_PRN:
		if cpu.Console == nil {
			err = ErrConsoleInvalid
			return
		}
		err = cpu.Console.Print(cpu.Register[cpu.fetch(1)&REG_MASK])
		if err != nil {
			return
		}
	case OP_CALL:
		cpu.Push(cpu.Pc + 2)
		next_pc = cpu.Register[cpu.fetch(1)&REG_MASK]
	case OP_RET:
		next_pc = cpu.Pop()
	case OP_JMP:
		next_pc = cpu.Register[cpu.fetch(1)&REG_MASK]
	case OP_JEQ:
		if cpu.Fl&FLAG_EQ != 0 {
			next_pc = cpu.Register[cpu.fetch(1)&REG_MASK]
		}
	case OP_JNE:
		if cpu.Fl&FLAG_EQ == 0 {
			next_pc = cpu.Register[cpu.fetch(1)&REG_MASK]
		}
	case OP_ADD:
		err = cpu.alu(ALU_ADD, cpu.fetch(1)&REG_MASK, cpu.fetch(2)&REG_MASK)
	case OP_CMP:
		err = cpu.alu(ALU_CMP, cpu.fetch(1)&REG_MASK, cpu.fetch(2)&REG_MASK)
	case OP_MUL:
		err = cpu.alu(ALU_MUL, 0, 1)
	default:
		err = ErrInstructionIllegal
	}
	if err != nil {
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}

// Run executes instructions until HLT, or until a fatal condition stops
// the machine.
func (cpu *Cpu) Run() (err error) {
	var done bool
	for !done {
		done, err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}
