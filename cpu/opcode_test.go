package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_Operands(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op    Opcode
		count int
	}){
		{OP_HLT, 0},
		{OP_RET, 0},
		{OP_MUL, 0},
		{OP_PUSH, 1},
		{OP_POP, 1},
		{OP_PRN, 1},
		{OP_CALL, 1},
		{OP_JMP, 1},
		{OP_JEQ, 1},
		{OP_JNE, 1},
		{OP_LDI, 2},
		{OP_ADD, 2},
		{OP_CMP, 2},
	}

	for _, entry := range table {
		assert.Equal(entry.count, entry.op.Operands(), entry.op.String())
	}
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDI", OP_LDI.String())
	assert.Equal("HLT", OP_HLT.String())
	assert.Equal("Opcode(0x3f)", Opcode(0x3f).String())
}

func TestCode_Bytes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		code  Code
		bytes []uint8
	}){
		{"hlt", MakeCode(OP_HLT), []uint8{0x01}},
		{"ldi", MakeCode(OP_LDI, 0, 8), []uint8{0x82, 0x00, 0x08}},
		{"prn", MakeCode(OP_PRN, 0), []uint8{0x47, 0x00}},
		{"push", MakeCode(OP_PUSH, 1), []uint8{0x45, 0x01}},
		{"call", MakeCode(OP_CALL, 1), []uint8{0x50, 0x01}},
		{"add", MakeCode(OP_ADD, 0, 1), []uint8{0xA0, 0x00, 0x01}},
		{"mul", MakeCode(OP_MUL), []uint8{0x22}},
		{"cmp", MakeCode(OP_CMP, 2, 3), []uint8{0xA7, 0x02, 0x03}},
	}

	for _, entry := range table {
		assert.Equal(entry.bytes, entry.code.Bytes(), entry.name)
	}
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDI r0 8", MakeCode(OP_LDI, 0, 8).String())
	assert.Equal("ADD r0 r1", MakeCode(OP_ADD, 0, 1).String())
	assert.Equal("CMP r2 r3", MakeCode(OP_CMP, 2, 3).String())
	assert.Equal("PRN r0", MakeCode(OP_PRN, 0).String())
	assert.Equal("HLT", MakeCode(OP_HLT).String())
	assert.Equal("MUL", MakeCode(OP_MUL).String())
}

func TestFlags_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("-", Flags(0).String())
	assert.Equal("eq", FLAG_EQ.String())
	assert.Equal("gt", FLAG_GT.String())
	assert.Equal("lt", FLAG_LT.String())
	assert.Equal("eq|lt", (FLAG_EQ | FLAG_LT).String())
}
