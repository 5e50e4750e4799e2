package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Rom errors
	ErrRomEmpty = errors.New(f("no program in source"))
)

// ErrRomByte reports a source line that is not a binary-encoded byte.
type ErrRomByte struct {
	LineNo int
	Line   string
}

func (err *ErrRomByte) Error() string {
	return f("line %d '%v' is not a binary byte", err.LineNo, err.Line)
}
