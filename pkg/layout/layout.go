// Package layout describes registers made of named bit fields and decodes, encodes and
// prints raw values against them.
package layout

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gregLibert/bit-operation/pkg/bitop"
)

// MaxSize is the widest register a Layout can describe.
const MaxSize = 64

var (
	// ErrInvalid is returned by New when the fields do not form a valid layout.
	ErrInvalid = errors.New("invalid layout")
	// ErrUnknownField is returned when a field name is not part of the layout.
	ErrUnknownField = errors.New("unknown field")
)

// Field is a named range of Width bits starting at bit Start (zero-based).
type Field struct {
	Name  string
	Start uint
	Width uint
	// Labels optionally names some of the values the field can hold.
	Labels map[uint64]string
}

// Mask returns the bits covered by the field.
func (f Field) Mask() uint64 {
	return bitop.FieldMask[uint64](f.Start, f.Width)
}

// Bits returns the field position in datasheet notation: "[hi:lo]", or "[n]" for one bit.
func (f Field) Bits() string {
	if f.Width <= 1 {
		return fmt.Sprintf("[%d]", f.Start)
	}
	return fmt.Sprintf("[%d:%d]", f.Start+f.Width-1, f.Start)
}

// Value is one decoded field.
type Value struct {
	Name  string
	Bits  string
	Value uint64
	Label string
}

// Layout is a Size-bit register split into non-overlapping fields.
type Layout struct {
	Name   string
	Size   uint
	Fields []Field

	mask  uint64
	index map[string]int
}

// New validates the fields and builds a Layout.
// Bits not covered by any field are allowed; they are reported as unassigned by Describe.
func New(name string, size uint, fields ...Field) (*Layout, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalid)
	}
	if size == 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: %s: size %d out of range (1-%d)", ErrInvalid, name, size, MaxSize)
	}

	l := &Layout{
		Name:   name,
		Size:   size,
		Fields: slices.Clone(fields),
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range l.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s: field #%d has no name", ErrInvalid, name, i)
		}
		if _, dup := l.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate field %s", ErrInvalid, name, f.Name)
		}
		if f.Width == 0 || f.Width > size || f.Start > size-f.Width {
			return nil, fmt.Errorf("%w: %s: field %s %s does not fit in %d bits", ErrInvalid, name, f.Name, f.Bits(), size)
		}

		m := f.Mask()
		if bitop.Check(l.mask, m) {
			return nil, fmt.Errorf("%w: %s: field %s %s overlaps another field", ErrInvalid, name, f.Name, f.Bits())
		}
		bitop.SetMask(&l.mask, m)
		l.index[f.Name] = i
	}

	return l, nil
}

// MustNew is like New but panics on error. It is meant for layouts declared as package variables.
func MustNew(name string, size uint, fields ...Field) *Layout {
	l, err := New(name, size, fields...)
	if err != nil {
		panic(err)
	}
	return l
}

// Mask returns the union of every field mask.
func (l *Layout) Mask() uint64 {
	return l.mask
}

// Field looks a field up by name.
func (l *Layout) Field(name string) (Field, error) {
	i, ok := l.index[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, l.Name, name)
	}
	return l.Fields[i], nil
}

// Decode splits raw into its fields, in declaration order.
func (l *Layout) Decode(raw uint64) []Value {
	values := make([]Value, 0, len(l.Fields))
	for _, f := range l.Fields {
		v := bitop.GetRange(raw, f.Start, f.Width)
		values = append(values, Value{
			Name:  f.Name,
			Bits:  f.Bits(),
			Value: v,
			Label: f.Labels[v],
		})
	}
	return values
}

// Get returns the value of one field of raw.
func (l *Layout) Get(raw uint64, name string) (uint64, error) {
	f, err := l.Field(name)
	if err != nil {
		return 0, err
	}
	return bitop.GetRange(raw, f.Start, f.Width), nil
}

// Set writes v into one field of raw. raw is left untouched on error.
func (l *Layout) Set(raw *uint64, name string, v uint64) error {
	f, err := l.Field(name)
	if err != nil {
		return err
	}
	if err := bitop.SetRangeChecked(raw, f.Start, f.Width, v); err != nil {
		return fmt.Errorf("%s.%s: %w", l.Name, name, err)
	}
	return nil
}

// Encode builds a raw value from field values. Fields that are not given are zero.
func (l *Layout) Encode(values map[string]uint64) (uint64, error) {
	var raw uint64
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if err := l.Set(&raw, name, values[name]); err != nil {
			return 0, err
		}
	}
	return raw, nil
}

// Describe returns a human-readable report of raw: a header line followed by one line per field.
// Set bits that belong to no field are reported on a last "Unassigned" line.
// Lines are joined with newlines, without a trailing newline.
func (l *Layout) Describe(raw uint64) string {
	var sb strings.Builder

	digits := int(l.Size+3) / 4
	fmt.Fprintf(&sb, "%s: 0x%0*X (0b%0*b)", l.Name, digits, raw, int(l.Size), raw)

	for _, v := range l.Decode(raw) {
		fmt.Fprintf(&sb, "\n    - %s.%s %s: %d", l.Name, v.Name, v.Bits, v.Value)
		if v.Label != "" {
			fmt.Fprintf(&sb, " (%s)", v.Label)
		}
	}

	if rest := raw &^ l.mask; rest != 0 {
		fmt.Fprintf(&sb, "\n    - %s.Unassigned: 0x%0*X", l.Name, digits, rest)
	}

	return sb.String()
}
