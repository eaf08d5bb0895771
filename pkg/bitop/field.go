package bitop

import "golang.org/x/exp/constraints"

// lowMask returns the width lowest bits set, computed on 64 bits.
// Go defines 1<<64 as 0, so a width of 64 gives all ones.
func lowMask(width uint) uint64 {
	return (uint64(1) << width) - 1
}

// FieldMask returns the mask of the width-bit field starting at bit start.
// Example: FieldMask[uint8](2, 3) // 0b0001_1100
func FieldMask[T constraints.Integer](start, width uint) T {
	return T(lowMask(width) << start)
}

// SetRange writes value into the width-bit field of data starting at bit start.
//
// The value is not masked: bits of value above width end up above the field.
// Callers must make sure value fits, or use SetRangeChecked.
// Example: data = 0; SetRange(&data, 2, 3, 0b101) // data = 0b0001_0100 (20)
func SetRange[T constraints.Integer](data *T, start, width uint, value T) {
	if debug {
		assertField[T](start, width)
	}
	*data = (*data &^ FieldMask[T](start, width)) | (value << start)
}

// GetRange extracts the width-bit field of data starting at bit start.
// Example: GetRange(0b0001_0100, 2, 3) // 0b101
func GetRange[T constraints.Integer](data T, start, width uint) T {
	if debug {
		assertField[T](start, width)
	}
	return (data >> start) & T(lowMask(width))
}
