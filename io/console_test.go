package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_Print(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	term := &Terminal{Output: &buf}

	assert.NoError(term.Print(8))
	assert.NoError(term.Print(255))
	assert.NoError(term.Print(0))

	assert.Equal("8\n255\n0\n", buf.String())
	assert.Equal([]uint8{8, 255, 0}, term.Printed)
}

func TestTerminal_PrintWithoutOutput(t *testing.T) {
	assert := assert.New(t)

	term := &Terminal{}
	assert.NoError(term.Print(42))
	assert.Equal([]uint8{42}, term.Printed)
}

func TestTerminal_Reset(t *testing.T) {
	assert := assert.New(t)

	term := &Terminal{}
	assert.NoError(term.Print(1))
	assert.NoError(term.Print(2))

	term.Reset()
	assert.Empty(term.Printed)
}
