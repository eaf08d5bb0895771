package bitop

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Set sets the bits of bit in data.
// Example: data = 0b0000_0000; Set(&data, 1<<2) // data = 0b0000_0100 (4)
func Set[T constraints.Integer](data *T, bit T) {
	*data |= bit
}

// Clear clears the bits of bit in data.
// Example: data = 0b0000_0100; Clear(&data, 1<<2) // data = 0 (0)
func Clear[T constraints.Integer](data *T, bit T) {
	*data &^= bit
}

// Check reports whether any bit of bit is set in data.
func Check[T constraints.Integer](data, bit T) bool {
	return data&bit != 0
}

// Toggle inverts the bits of bit in data.
func Toggle[T constraints.Integer](data *T, bit T) {
	*data ^= bit
}

// SetValue sets the bits of bit in data when value is true and clears them otherwise.
// Example: data = 0; SetValue(&data, 1<<3, true) // data = 0b0000_1000 (8)
func SetValue[T constraints.Integer](data *T, bit T, value bool) {
	var v T
	if value {
		v = bit
	}
	*data = (*data &^ bit) | v
}

// Flip inverts every bit of data.
// Example: data = uint8(0b0000_1111); Flip(&data) // data = 0b1111_0000 (240)
func Flip[T constraints.Integer](data *T) {
	*data = ^*data
}

// SetMask sets every bit of mask in data.
func SetMask[T constraints.Integer](data *T, mask T) {
	*data |= mask
}

// ClearMask clears every bit of mask in data.
// Example: data = 0b0000_1111; ClearMask(&data, 0b0000_1100) // data = 0b0000_0011 (3)
func ClearMask[T constraints.Integer](data *T, mask T) {
	*data &^= mask
}

// CheckMask reports whether all the bits of mask are set in data.
// An empty mask is always satisfied.
func CheckMask[T constraints.Integer](data, mask T) bool {
	return data&mask == mask
}

// Get returns the bit at zero-based position pos, as 0 or 1.
// Example: Get(0b0000_1000, 3) // 1
func Get[T constraints.Integer](data T, pos uint) T {
	if debug {
		assertPosition[T](pos)
	}
	return (data >> pos) & 1
}

// Width returns the number of bits of T.
func Width[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}
