package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gregLibert/bit-operation/pkg/bitop"
)

const (
	formatBin = "bin"
	formatHex = "hex"
	formatDec = "dec"
	formatAll = "all"
)

// parseNumber reads an unsigned literal in any Go base ("0b1010", "0x1F", "0o17", "1_000").
// Spaces are ignored so that "0b0000 1111" can be passed as a single argument.
func parseNumber(s string) (uint64, error) {
	clean := strings.ReplaceAll(s, " ", "")
	v, err := strconv.ParseUint(clean, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

// parseOperand reads a literal that must fit in width bits.
func parseOperand(s string, width uint) (uint64, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v&^bitop.FieldMask[uint64](0, width) != 0 {
		return 0, fmt.Errorf("%s does not fit in %d bits", s, width)
	}
	return v, nil
}

// parseBool reads a truth value: any number (non-zero is true) or a strconv.ParseBool word.
func parseBool(s string) (bool, error) {
	if v, err := parseNumber(s); err == nil {
		return v != 0, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid truth value %q", s)
	}
	return b, nil
}

// formatValue renders v as a width-bit register.
func formatValue(v uint64, width uint, format string) string {
	bin := fmt.Sprintf("0b%0*b", int(width), v)
	hex := fmt.Sprintf("0x%0*X", int(width+3)/4, v)
	dec := strconv.FormatUint(v, 10)

	switch format {
	case formatBin:
		return bin
	case formatHex:
		return hex
	case formatDec:
		return dec
	default:
		return fmt.Sprintf("%s %s (%s)", bin, hex, dec)
	}
}
