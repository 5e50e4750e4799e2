package cpu

// The stack lives in RAM and grows downward from SP_INIT. Push decrements
// the stack pointer before writing; Pop reads before incrementing. The
// pointer wraps freely within the 8-bit address space, so a runaway stack
// walks the whole of memory rather than faulting.

// Push writes a value to the top of the stack.
func (cpu *Cpu) Push(value uint8) {
	cpu.Register[REG_SP]--
	cpu.Ram[cpu.Register[REG_SP]] = value
}

// Pop removes and returns the value at the top of the stack.
func (cpu *Cpu) Pop() (value uint8) {
	value = cpu.Ram[cpu.Register[REG_SP]]
	cpu.Register[REG_SP]++
	return
}

// Peek returns the value at the top of the stack without removing it.
func (cpu *Cpu) Peek() (value uint8) {
	return cpu.Ram[cpu.Register[REG_SP]]
}
