// Package cpu implements the LS-8 microprocessor and its assembler.
//
// The machine is an 8-bit CPU with 256 bytes of RAM, eight general-purpose
// registers (r7 doubles as the stack pointer), a program counter, a 3-bit
// flags register set by CMP and consumed by the conditional jumps, and a
// descending stack growing down from 0xF4.
//
// The assembler provides an assembly language for the LS-8 instruction set,
// supporting macros, labels, equates, and compile-time expression evaluation.
package cpu
