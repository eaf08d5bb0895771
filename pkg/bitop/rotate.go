package bitop

import "golang.org/x/exp/constraints"

// Rotations are only defined on unsigned operands: a right shift of a negative signed
// value drags the sign bit into the field.

// RotateLeft rotates the low size bits of data left by shift positions.
// Bits above size are cleared. Callers must ensure 0 < shift < size <= Width[T]().
// Example: data = 0b0000_0011; RotateLeft(&data, 2, 8) // data = 0b0000_1100 (12)
func RotateLeft[T constraints.Unsigned](data *T, shift, size uint) {
	if debug {
		assertRotation[T](shift, size)
	}
	d := *data
	*data = ((d << shift) | (d >> (size - shift))) & T(lowMask(size))
}

// RotateRight rotates the low size bits of data right by shift positions.
// Bits above size are cleared. Callers must ensure 0 < shift < size <= Width[T]().
// Example: data = 0b1100_0000; RotateRight(&data, 2, 8) // data = 0b0011_0000 (48)
func RotateRight[T constraints.Unsigned](data *T, shift, size uint) {
	if debug {
		assertRotation[T](shift, size)
	}
	d := *data
	*data = ((d >> shift) | (d << (size - shift))) & T(lowMask(size))
}
