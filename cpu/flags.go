package cpu

import (
	"strings"
)

// Flags is the 3-bit condition state set by CMP and tested by the
// conditional jumps. Exactly one flag survives each comparison.
type Flags uint8

const (
	FLAG_EQ = Flags(1 << 0) // eq
	FLAG_GT = Flags(1 << 1) // gt
	FLAG_LT = Flags(1 << 2) // lt
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FLAG_EQ, "eq"},
	{FLAG_GT, "gt"},
	{FLAG_LT, "lt"},
}

// String returns the set flags, or "-" when none are set.
func (fl Flags) String() (out string) {
	var names []string
	for _, entry := range flagNames {
		if fl&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	out = strings.Join(names, "|")
	return
}
