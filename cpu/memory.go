package cpu

const (
	RAM_SIZE  = 0x100 // Bytes of addressable memory.
	REG_COUNT = 8     // General-purpose register slots.
	REG_SP    = 7     // Register index reserved as the stack pointer.
	SP_INIT   = 0xF4  // Stack pointer value after reset.

	OPCODE_MASK = 0x3F // Low 6 bits of the leading byte select the opcode.
	REG_MASK    = 0x07 // Register operands are masked into the register space.
)
