// Package bits addresses the bits of a byte the way ISO/IEC 7816 tables do:
// b1 is the least significant bit and b8 the most significant one.
package bits

import "github.com/gregLibert/bit-operation/pkg/bitop"

// Bit returns a byte with only the n-th bit set (1 to 8).
func Bit(n uint) byte {
	if n < 1 || n > 8 {
		return 0
	}
	return 1 << (n - 1)
}

// IsSet checks if the n-th bit is set (1 to 8).
func IsSet(b byte, n uint) bool {
	return bitop.Check(b, Bit(n))
}

// GetRange extracts the value from a range of bits (e.g., bits 4 to 3).
// Example: GetRange(0b00001100, 4, 3) returns 3 (0b11)
func GetRange(b byte, high, low uint) byte {
	if !validRange(high, low) {
		return 0
	}
	return bitop.GetRange(b, low-1, high-low+1)
}

// SetRange writes v into bits high to low and returns the result.
// v is truncated to the width of the range. Invalid ranges return b unchanged.
// Example: SetRange(0, 4, 3, 0b11) returns 0b00001100
func SetRange(b byte, high, low uint, v byte) byte {
	if !validRange(high, low) {
		return b
	}
	width := high - low + 1
	bitop.SetRange(&b, low-1, width, bitop.GetRange(v, 0, width))
	return b
}

// Set turns the n-th bit on.
func Set(b byte, n uint) byte {
	bitop.Set(&b, Bit(n))
	return b
}

// Clear turns the n-th bit off.
func Clear(b byte, n uint) byte {
	bitop.Clear(&b, Bit(n))
	return b
}

// Toggle inverts the n-th bit.
func Toggle(b byte, n uint) byte {
	bitop.Toggle(&b, Bit(n))
	return b
}

func validRange(high, low uint) bool {
	return high >= low && high <= 8 && low >= 1
}
