package pixel

import "fmt"

// Packed is a bit-packed array of palette color indices using 1, 2, 4 or 8
// bits per pixel. Each byte holds 8/bits indices, least-significant group
// first, so index i lives at byte i/(8/bits), shifted by (i*bits)%8.
type Packed struct {
	bits int
	pix  []byte
}

// PackedLen returns the number of bytes needed to store n pixels at the
// given bit depth.
func PackedLen(bits, n int) int {
	perByte := 8 / bits
	return (n + perByte - 1) / perByte
}

// NewPacked allocates storage for n pixels at the given bit depth. bits must
// be 1, 2, 4 or 8; any other depth cannot address byte-aligned groups.
func NewPacked(bits, n int) *Packed {
	checkDepth(bits)
	return &Packed{bits: bits, pix: make([]byte, PackedLen(bits, n))}
}

// WrapPacked wraps caller-owned storage without copying. The caller keeps
// ownership of pix and must size it with PackedLen.
func WrapPacked(bits int, pix []byte) *Packed {
	checkDepth(bits)
	return &Packed{bits: bits, pix: pix}
}

func checkDepth(bits int) {
	switch bits {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("pixel: bits per pixel must be 1, 2, 4 or 8, got %d", bits))
	}
}

// Bits returns the bit depth of the array.
func (p *Packed) Bits() int {
	return p.bits
}

// Len returns the number of pixel slots the storage holds.
func (p *Packed) Len() int {
	return len(p.pix) * (8 / p.bits)
}

// Bytes exposes the underlying storage.
func (p *Packed) Bytes() []byte {
	return p.pix
}

// Index returns the palette color index of pixel i. No bounds checking is
// performed beyond the slice access itself.
func (p *Packed) Index(i int) uint8 {
	shift := uint(i*p.bits) % 8
	return p.pix[i/(8/p.bits)] >> shift & byte(1<<p.bits-1)
}

// SetIndex stores the palette color index of pixel i, clearing then OR-ing
// only the bit field belonging to i.
func (p *Packed) SetIndex(i int, v uint8) {
	shift := uint(i*p.bits) % 8
	mask := byte(1<<p.bits-1) << shift
	off := i / (8 / p.bits)
	p.pix[off] = p.pix[off]&^mask | v<<shift&mask
}
