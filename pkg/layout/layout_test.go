package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gregLibert/bit-operation/pkg/bitop"
	"github.com/gregLibert/bit-operation/pkg/bits"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		lname  string
		size   uint
		fields []Field
	}{
		{"Empty name", "", 8, nil},
		{"Zero size", "R", 0, nil},
		{"Too wide", "R", 65, nil},
		{"Unnamed field", "R", 8, []Field{{Start: 0, Width: 1}}},
		{"Duplicate field", "R", 8, []Field{{Name: "A", Start: 0, Width: 1}, {Name: "A", Start: 1, Width: 1}}},
		{"Zero width", "R", 8, []Field{{Name: "A", Start: 0, Width: 0}}},
		{"Past top bit", "R", 8, []Field{{Name: "A", Start: 6, Width: 3}}},
		{"Overlap", "R", 8, []Field{{Name: "A", Start: 0, Width: 4}, {Name: "B", Start: 3, Width: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.lname, tt.size, tt.fields...); !errors.Is(err, ErrInvalid) {
				t.Errorf("New() error = %v; want ErrInvalid", err)
			}
		})
	}

	l, err := New("R", 64, Field{Name: "Lo", Start: 0, Width: 32}, Field{Name: "Hi", Start: 32, Width: 32})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if l.Mask() != 0xFFFF_FFFF_FFFF_FFFF {
		t.Errorf("Mask() = 0x%X; want all ones", l.Mask())
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() should panic on an invalid layout")
		}
	}()
	MustNew("R", 0)
}

func TestClass_Decode(t *testing.T) {
	// 0b0(Prop)_0(First)_0_1(Chain)_11(SMAuth)_11(Ch3)
	got := Class.Decode(0b0_0_0_1_11_11)
	want := []Value{
		{Name: "Channel", Bits: "[1:0]", Value: 3},
		{Name: "SecureMessaging", Bits: "[3:2]", Value: 3, Label: "ISO (Header authenticated)"},
		{Name: "Chaining", Bits: "[4]", Value: 1, Label: "More commands follow"},
		{Name: "Type", Bits: "[6]", Value: 0, Label: "First Interindustry"},
		{Name: "Proprietary", Bits: "[7]", Value: 0, Label: "Interindustry"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

// The CLA layout must agree with the ISO numbering used by the reference tables:
// SM on bits 4-3, channel on bits 2-1, chaining on bit 5.
func TestClass_MatchesISONumbering(t *testing.T) {
	for raw := 0; raw < 256; raw++ {
		cla := byte(raw)
		got := Class.Decode(uint64(raw))

		want := []uint64{
			uint64(bits.GetRange(cla, 2, 1)),
			uint64(bits.GetRange(cla, 4, 3)),
			uint64(bits.GetRange(cla, 5, 5)),
			uint64(bits.GetRange(cla, 7, 7)),
			uint64(bits.GetRange(cla, 8, 8)),
		}
		for i, v := range got {
			if v.Value != want[i] {
				t.Fatalf("Decode(0x%02X).%s = %d; want %d", raw, v.Name, v.Value, want[i])
			}
		}
	}
}

func TestClass_Describe(t *testing.T) {
	tests := []struct {
		name          string
		raw           uint64
		expectedLines []string
	}{
		{
			name: "Ch 0, No SM",
			raw:  0x00,
			expectedLines: []string{
				"CLA: 0x00 (0b00000000)",
				"    - CLA.Channel [1:0]: 0",
				"    - CLA.SecureMessaging [3:2]: 0 (None)",
				"    - CLA.Chaining [4]: 0 (Last or only command)",
				"    - CLA.Type [6]: 0 (First Interindustry)",
				"    - CLA.Proprietary [7]: 0 (Interindustry)",
			},
		},
		{
			name: "Unassigned bit 5",
			raw:  0x2D,
			expectedLines: []string{
				"CLA: 0x2D (0b00101101)",
				"    - CLA.Channel [1:0]: 1",
				"    - CLA.SecureMessaging [3:2]: 3 (ISO (Header authenticated))",
				"    - CLA.Chaining [4]: 0 (Last or only command)",
				"    - CLA.Type [6]: 0 (First Interindustry)",
				"    - CLA.Proprietary [7]: 0 (Interindustry)",
				"    - CLA.Unassigned: 0x20",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualLines := strings.Split(Class.Describe(tt.raw), "\n")
			if diff := cmp.Diff(tt.expectedLines, actualLines); diff != "" {
				t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	raw := uint64(0x80)
	if err := Class.Set(&raw, "SecureMessaging", 2); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if raw != 0x88 {
		t.Errorf("Set(SecureMessaging, 2) = 0x%02X; want 0x88", raw)
	}

	if v, err := Class.Get(raw, "SecureMessaging"); err != nil || v != 2 {
		t.Errorf("Get(SecureMessaging) = %d, %v; want 2, nil", v, err)
	}

	if err := Class.Set(&raw, "Channel", 4); !errors.Is(err, bitop.ErrOverflow) {
		t.Errorf("Set(Channel, 4) error = %v; want ErrOverflow", err)
	}
	if raw != 0x88 {
		t.Errorf("raw modified on error: 0x%02X", raw)
	}

	if _, err := Class.Get(raw, "Nope"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Get(Nope) error = %v; want ErrUnknownField", err)
	}
}

func TestEncode(t *testing.T) {
	raw, err := Class.Encode(map[string]uint64{
		"Channel":         3,
		"SecureMessaging": 1,
		"Chaining":        1,
	})
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if raw != 0b0001_0111 {
		t.Errorf("Encode() = 0b%08b; want 0b00010111", raw)
	}

	if _, err := Class.Encode(map[string]uint64{"Bogus": 1}); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Encode(Bogus) error = %v; want ErrUnknownField", err)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for raw := uint64(0); raw < 256; raw++ {
		values := make(map[string]uint64)
		for _, v := range Class.Decode(raw) {
			values[v.Name] = v.Value
		}

		encoded, err := Class.Encode(values)
		if err != nil {
			t.Fatalf("Encode(Decode(0x%02X)) error: %v", raw, err)
		}
		if encoded != raw&Class.Mask() {
			t.Fatalf("Encode(Decode(0x%02X)) = 0x%02X; want 0x%02X", raw, encoded, raw&Class.Mask())
		}
	}
}
