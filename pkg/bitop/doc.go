/*
Package bitop provides named operations for the usual bitwise idioms on integer values.

The operations are generic over every Go integer type, so the operand keeps its own width:
flipping a uint8 touches 8 bits, flipping a uint64 touches 64.

# Conventions

  - bit: a single-bit mask, e.g. 1 << 3.
  - mask: any multi-bit mask.
  - pos: a zero-based bit index.
  - start, width: the base offset and the bit count of a sub-field.
  - shift, size: a rotation count and the width of the rotated field.

Mutating operations take a pointer to the operand and update it in place. Queries take
the operand by value.

# Unchecked Preconditions

The plain operations never fail. Arguments outside their nominal domain (a position
beyond the operand width, a field that runs past the top bit, a rotation with shift 0
or shift >= size) produce whatever the Go shift rules yield:

  - A shift by the operand width or more gives 0.
  - SetRange does not mask its value. Value bits above the field leak into the
    neighbouring high bits.
  - A left rotation by 0 yields (data | data>>size) masked to size bits, so it is a
    no-op only when data fits in size bits. A right rotation by 0 clears the bits above
    size.
  - A rotation by more than size wraps size-shift around and keeps only the left (or
    right) shifted half.

Use the Checked variants (GetChecked, SetRangeChecked, RotateLeftChecked,
RotateRightChecked) to get an error instead, or build with -tags bitopdebug to turn the
preconditions of the plain operations into panics.

# Concurrency

None of the operations is atomic. Concurrent mutation of the same operand must be
synchronized by the caller.

# Usage Example

	var reg uint8
	bitop.Set(&reg, 1<<2)              // 0b0000_0100
	bitop.SetRange(&reg, 4, 3, 0b101)  // 0b0101_0100
	bitop.RotateLeft(&reg, 2, 8)       // 0b0101_0001

	if bitop.CheckMask(reg, 0b0101_0000) {
	    fmt.Println("field set")
	}
*/
package bitop
