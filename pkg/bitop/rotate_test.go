package bitop

import (
	"math/bits"
	"testing"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name        string
		rotate      func(*uint16, uint, uint)
		data        uint16
		shift, size uint
		expected    uint16
	}{
		{"Left 0x03 by 2 in 8", RotateLeft[uint16], 0b0000_0011, 2, 8, 0b0000_1100},
		{"Right 0xC0 by 2 in 8", RotateRight[uint16], 0b1100_0000, 2, 8, 0b0011_0000},
		{"Left wraps MSB", RotateLeft[uint16], 0b1000_0001, 1, 8, 0b0000_0011},
		{"Right wraps LSB", RotateRight[uint16], 0b1000_0001, 1, 8, 0b1100_0000},
		{"Left in 4-bit field", RotateLeft[uint16], 0b1001, 1, 4, 0b0011},
		// The operand is not masked to size first: high bits shift down into the field.
		{"Bits above size are not pre-masked", RotateLeft[uint16], 0xFF03, 2, 8, 0b1111_1100},
		{"Full width", RotateRight[uint16], 0x0001, 4, 16, 0x1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.data
			tt.rotate(&data, tt.shift, tt.size)
			if data != tt.expected {
				t.Errorf("got 0b%016b; want 0b%016b", data, tt.expected)
			}
		})
	}
}

func TestRotate_RoundTrip(t *testing.T) {
	for size := uint(2); size <= 8; size++ {
		for s := uint(1); s < size; s++ {
			for n := 0; n < 1<<size; n++ {
				d := uint8(n)
				data := d
				RotateLeft(&data, s, size)
				RotateRight(&data, s, size)
				if data != d {
					t.Fatalf("RotateRight(RotateLeft(0b%08b, %d, %d)) = 0b%08b", d, s, size, data)
				}
			}
		}
	}
}

func TestRotate_MatchesMathBits(t *testing.T) {
	for n := 0; n < 256; n++ {
		for s := 1; s < 8; s++ {
			data := uint8(n)
			RotateLeft(&data, uint(s), 8)
			if want := bits.RotateLeft8(uint8(n), s); data != want {
				t.Fatalf("RotateLeft(0b%08b, %d, 8) = 0b%08b; want 0b%08b", n, s, data, want)
			}

			data = uint8(n)
			RotateRight(&data, uint(s), 8)
			if want := bits.RotateLeft8(uint8(n), -s); data != want {
				t.Fatalf("RotateRight(0b%08b, %d, 8) = 0b%08b; want 0b%08b", n, s, data, want)
			}
		}
	}

	wide := uint64(0x8000_0000_0000_0001)
	RotateLeft(&wide, 4, 64)
	if want := bits.RotateLeft64(0x8000_0000_0000_0001, 4); wide != want {
		t.Errorf("RotateLeft(uint64, 4, 64) = 0x%016X; want 0x%016X", wide, want)
	}
}
