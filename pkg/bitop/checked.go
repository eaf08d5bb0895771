package bitop

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrPosition is returned when a bit position lies outside the operand.
	ErrPosition = errors.New("bit position out of range")
	// ErrField is returned when a field is empty or runs past the top bit of the operand.
	ErrField = errors.New("field out of range")
	// ErrOverflow is returned when a value has bits set above the width of its field.
	ErrOverflow = errors.New("value does not fit in field")
	// ErrShift is returned when a rotation does not satisfy 0 < shift < size <= width.
	ErrShift = errors.New("rotation out of range")
)

func checkPosition[T constraints.Integer](pos uint) error {
	if w := Width[T](); pos >= w {
		return fmt.Errorf("%w: position %d, operand width %d", ErrPosition, pos, w)
	}
	return nil
}

func checkField[T constraints.Integer](start, width uint) error {
	w := Width[T]()
	if width == 0 || width > w || start > w-width {
		return fmt.Errorf("%w: start %d, width %d, operand width %d", ErrField, start, width, w)
	}
	return nil
}

func checkRotation[T constraints.Integer](shift, size uint) error {
	w := Width[T]()
	if size == 0 || size > w || shift == 0 || shift >= size {
		return fmt.Errorf("%w: shift %d, size %d, operand width %d", ErrShift, shift, size, w)
	}
	return nil
}

func assertPosition[T constraints.Integer](pos uint) {
	if err := checkPosition[T](pos); err != nil {
		panic(err)
	}
}

func assertField[T constraints.Integer](start, width uint) {
	if err := checkField[T](start, width); err != nil {
		panic(err)
	}
}

func assertRotation[T constraints.Integer](shift, size uint) {
	if err := checkRotation[T](shift, size); err != nil {
		panic(err)
	}
}

// GetChecked is Get with a bounds check on pos.
func GetChecked[T constraints.Integer](data T, pos uint) (T, error) {
	if err := checkPosition[T](pos); err != nil {
		return 0, err
	}
	return (data >> pos) & 1, nil
}

// GetRangeChecked is GetRange with a bounds check on the field.
func GetRangeChecked[T constraints.Integer](data T, start, width uint) (T, error) {
	if err := checkField[T](start, width); err != nil {
		return 0, err
	}
	return (data >> start) & T(lowMask(width)), nil
}

// SetRangeChecked is SetRange with a bounds check on the field and an overflow check on value.
// data is left untouched on error.
func SetRangeChecked[T constraints.Integer](data *T, start, width uint, value T) error {
	if err := checkField[T](start, width); err != nil {
		return err
	}
	// Compare rather than shift so negative values of a full-width field still fit.
	if value&T(lowMask(width)) != value {
		return fmt.Errorf("%w: value %#x, width %d", ErrOverflow, value, width)
	}
	*data = (*data &^ FieldMask[T](start, width)) | (value << start)
	return nil
}

// RotateLeftChecked is RotateLeft with a check of 0 < shift < size <= Width[T]().
// data is left untouched on error.
func RotateLeftChecked[T constraints.Unsigned](data *T, shift, size uint) error {
	if err := checkRotation[T](shift, size); err != nil {
		return err
	}
	RotateLeft(data, shift, size)
	return nil
}

// RotateRightChecked is RotateRight with a check of 0 < shift < size <= Width[T]().
// data is left untouched on error.
func RotateRightChecked[T constraints.Unsigned](data *T, shift, size uint) error {
	if err := checkRotation[T](shift, size); err != nil {
		return err
	}
	RotateRight(data, shift, size)
	return nil
}
