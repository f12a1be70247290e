package pixel

import "testing"

func TestNewPacked(t *testing.T) {
	tests := []struct {
		name      string
		bits      int
		n         int
		wantPanic bool
		wantBytes int
	}{
		{"1bpp 8 pixels", 1, 8, false, 1},
		{"1bpp 9 pixels", 1, 9, false, 2},
		{"2bpp 4 pixels", 2, 4, false, 1},
		{"2bpp 128 pixels", 2, 128, false, 32},
		{"4bpp 3 pixels", 4, 3, false, 2},
		{"8bpp 16 pixels", 8, 16, false, 16},
		{"3bpp panics", 3, 8, true, 0},
		{"5bpp panics", 5, 8, true, 0},
		{"16bpp panics", 16, 8, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			p := NewPacked(tt.bits, tt.n)
			if len(p.Bytes()) != tt.wantBytes {
				t.Errorf("len(Bytes()) = %d, want %d", len(p.Bytes()), tt.wantBytes)
			}
			if p.Bits() != tt.bits {
				t.Errorf("Bits() = %d, want %d", p.Bits(), tt.bits)
			}
			if p.Len() < tt.n {
				t.Errorf("Len() = %d, want at least %d", p.Len(), tt.n)
			}
		})
	}
}

func TestPackedBitLayout(t *testing.T) {
	// One byte 0b11100100 at 2bpp decodes LSB-group-first as 0, 1, 2, 3.
	p := WrapPacked(2, []byte{0b11100100})
	for i, want := range []uint8{0, 1, 2, 3} {
		if got := p.Index(i); got != want {
			t.Errorf("Index(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestPackedRoundTrip(t *testing.T) {
	for _, bits := range []int{1, 2, 4, 8} {
		n := 32
		p := NewPacked(bits, n)
		max := 1<<bits - 1
		for i := 0; i < n; i++ {
			p.SetIndex(i, uint8(i*7%(max+1)))
		}
		for i := 0; i < n; i++ {
			want := uint8(i * 7 % (max + 1))
			if got := p.Index(i); got != want {
				t.Errorf("bits=%d Index(%d) = %d, want %d", bits, i, got, want)
			}
		}
	}
}

func TestSetIndexDoesNotDisturbNeighbors(t *testing.T) {
	for _, bits := range []int{1, 2, 4} {
		n := 8 / bits * 2
		p := NewPacked(bits, n)
		max := uint8(1<<bits - 1)
		for i := 0; i < n; i++ {
			p.SetIndex(i, max)
		}
		// Clearing one slot must leave every other slot at max.
		p.SetIndex(3, 0)
		for i := 0; i < n; i++ {
			want := max
			if i == 3 {
				want = 0
			}
			if got := p.Index(i); got != want {
				t.Errorf("bits=%d Index(%d) = %d, want %d", bits, i, got, want)
			}
		}
	}
}

func TestSetIndexMasksValue(t *testing.T) {
	p := NewPacked(2, 4)
	// Values wider than the bit field must not leak into neighbor slots.
	p.SetIndex(1, 0xFF)
	if got := p.Index(1); got != 3 {
		t.Errorf("Index(1) = %d, want 3", got)
	}
	if got := p.Index(0); got != 0 {
		t.Errorf("Index(0) = %d, want 0", got)
	}
	if got := p.Index(2); got != 0 {
		t.Errorf("Index(2) = %d, want 0", got)
	}
}

func TestPackedLen(t *testing.T) {
	tests := []struct {
		bits, n, want int
	}{
		{1, 1, 1},
		{1, 8, 1},
		{1, 9, 2},
		{2, 4, 1},
		{4, 2, 1},
		{4, 5, 3},
		{8, 5, 5},
	}
	for _, tt := range tests {
		if got := PackedLen(tt.bits, tt.n); got != tt.want {
			t.Errorf("PackedLen(%d, %d) = %d, want %d", tt.bits, tt.n, got, tt.want)
		}
	}
}
