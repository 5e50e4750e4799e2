package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRom_ReadLS8(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	err := rom.ReadLS8(strings.NewReader(`# print8.ls8

10000010 # LDI r0 8
00000000
00001000
01000111 # PRN r0
00000000
00000001 # HLT
`))
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, rom.Data)
}

func TestRom_ReadLS8BadByte(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	err := rom.ReadLS8(strings.NewReader("00000001\n2000000x\n"))

	var berr *ErrRomByte
	assert.True(errors.As(err, &berr))
	assert.Equal(2, berr.LineNo)
	assert.Equal("2000000x", berr.Line)
}

func TestRom_ReadLS8Empty(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	err := rom.ReadLS8(strings.NewReader("# only comments\n\n"))
	assert.ErrorIs(err, ErrRomEmpty)
}

func TestRom_ReadLS8ResetsData(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint8{0xFF, 0xFF}}
	err := rom.ReadLS8(strings.NewReader("00000001\n"))
	assert.NoError(err)
	assert.Equal([]uint8{0x01}, rom.Data)
}

func TestRom_WriteLS8(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint8{0x82, 0x00, 0x08, 0x01}}

	var buf bytes.Buffer
	assert.NoError(rom.WriteLS8(&buf))
	assert.Equal("10000010\n00000000\n00001000\n00000001\n", buf.String())
}

func TestRom_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []uint8{0x82, 0x01, 0x05, 0x54, 0x01, 0x01}}

	var buf bytes.Buffer
	assert.NoError(rom.WriteLS8(&buf))

	var again Rom
	assert.NoError(again.ReadLS8(&buf))
	assert.Equal(rom.Data, again.Data)
}
