// Package parser reads the timing table from the input sheet.
package parser

import (
	"strconv"
	"strings"
)

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// ParseBit parses a raw cell value as a signal bit.
// Any numeric form of 0 or 1 ("1", "1.0", "1E0") is accepted; everything
// else, including an empty cell, is rejected.
func ParseBit(s string) (uint8, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	switch f {
	case 0:
		return 0, true
	case 1:
		return 1, true
	}
	return 0, false
}
