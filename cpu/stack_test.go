package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(uint8(SP_INIT), cpu.Register[REG_SP])

	cpu.Push(0xAA)
	assert.Equal(uint8(SP_INIT-1), cpu.Register[REG_SP])
	assert.Equal(uint8(0xAA), cpu.Ram[SP_INIT-1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0x34)

	assert.Equal(uint8(0x34), cpu.Pop())
	assert.Equal(uint8(0x12), cpu.Pop())
	assert.Equal(uint8(SP_INIT), cpu.Register[REG_SP])
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0x34)

	assert.Equal(uint8(0x34), cpu.Peek())
	assert.Equal(uint8(SP_INIT-2), cpu.Register[REG_SP])
}

func TestStack_PushPopRestores(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[0] = 0x5A

	cpu.Push(cpu.Register[0])
	cpu.Register[1] = cpu.Pop()

	assert.Equal(uint8(0x5A), cpu.Register[1])
	assert.Equal(uint8(SP_INIT), cpu.Register[REG_SP])
}

func TestStack_WrapDown(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REG_SP] = 0x00

	cpu.Push(0x99)
	assert.Equal(uint8(0xFF), cpu.Register[REG_SP])
	assert.Equal(uint8(0x99), cpu.Ram[0xFF])
}

func TestStack_WrapUp(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REG_SP] = 0xFF
	cpu.Ram[0xFF] = 0x42

	assert.Equal(uint8(0x42), cpu.Pop())
	assert.Equal(uint8(0x00), cpu.Register[REG_SP])
}
