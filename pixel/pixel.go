// Package pixel models the byte layouts addressable LED chips expect on the
// wire, and the palette-indexed bit-packed arrays used to store pixels in
// less than a byte each.
//
// A Format is a compile-time-style tag (color order plus optional extra
// channel) and a Pixel is a plain record with named channels, so conversion
// between layouts never depends on byte positions.
package pixel

import "fmt"

// Order is the on-wire ordering of the three color channels.
type Order uint8

const (
	RGB Order = iota // apa106
	GRB              // apa104, ws2812
	BGR              // apa102
)

// Extra identifies the optional fourth byte of a pixel.
type Extra uint8

const (
	// NoExtra is a plain 3-byte color.
	NoExtra Extra = iota
	// White is a trailing white channel byte (sk6812).
	White
	// Brightness is a leading brightness/header byte (apa102, 0b111bbbbb).
	Brightness
)

// Format tags a pixel layout: a color order and at most one extra channel.
// The zero value is plain RGB.
type Format struct {
	Order Order
	Extra Extra
}

// The six layouts in actual use by supported LED chips.
var (
	FormatRGB  = Format{Order: RGB}
	FormatGRB  = Format{Order: GRB}
	FormatBGR  = Format{Order: BGR}
	FormatRGBW = Format{Order: RGB, Extra: White}
	FormatGRBW = Format{Order: GRB, Extra: White}
	FormatHBGR = Format{Order: BGR, Extra: Brightness}
)

// Size returns the number of bytes one pixel occupies on the wire: 3, or 4
// when the format carries an extra channel.
func (f Format) Size() int {
	if f.Extra == NoExtra {
		return 3
	}
	return 4
}

// HasWhite reports whether the format ends with a white channel byte.
func (f Format) HasWhite() bool {
	return f.Extra == White
}

// HasBrightness reports whether the format starts with a brightness/header
// byte.
func (f Format) HasBrightness() bool {
	return f.Extra == Brightness
}

func (f Format) String() string {
	var order string
	switch f.Order {
	case RGB:
		order = "RGB"
	case GRB:
		order = "GRB"
	case BGR:
		order = "BGR"
	default:
		order = "???"
	}
	switch f.Extra {
	case White:
		return order + "W"
	case Brightness:
		return "H" + order
	}
	return order
}

// ParseFormat maps a layout name ("RGB", "GRBW", "HBGR", ...) back to its
// Format tag. It accepts exactly the names String produces.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{FormatRGB, FormatGRB, FormatBGR, FormatRGBW, FormatGRBW, FormatHBGR} {
		if f.String() == s {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("pixel: unknown format %q", s)
}

// Pixel is one color sample with named channels. X holds the extra channel
// when the pixel's format has one: the white level for trailing-white
// formats, or the brightness/header byte for leading-brightness formats.
// Channel meaning is defined by the Format the pixel travels with; the
// struct itself has no byte order.
type Pixel struct {
	R, G, B uint8
	X       uint8
}

// Convert re-expresses p, described by from, as a pixel described by to.
// When the formats match p passes through unchanged. Otherwise R, G and B
// copy by name; the extra channel copies only when both formats carry the
// same kind, else white defaults to 0 and brightness to 0xFF so the result
// stays visually neutral.
func Convert(p Pixel, from, to Format) Pixel {
	if from == to {
		return p
	}
	out := Pixel{R: p.R, G: p.G, B: p.B}
	switch {
	case to.HasWhite():
		if from.HasWhite() {
			out.X = p.X
		}
	case to.HasBrightness():
		out.X = 0xFF
		if from.HasBrightness() {
			out.X = p.X
		}
	}
	return out
}

// Put encodes p into dst using layout f and returns the number of bytes
// written (f.Size()). dst must have room for f.Size() bytes.
func Put(dst []byte, p Pixel, f Format) int {
	i := 0
	if f.HasBrightness() {
		dst[0] = p.X
		i = 1
	}
	switch f.Order {
	case RGB:
		dst[i], dst[i+1], dst[i+2] = p.R, p.G, p.B
	case GRB:
		dst[i], dst[i+1], dst[i+2] = p.G, p.R, p.B
	case BGR:
		dst[i], dst[i+1], dst[i+2] = p.B, p.G, p.R
	}
	if f.HasWhite() {
		dst[3] = p.X
		return 4
	}
	return i + 3
}

// At decodes pixel number i from a buffer holding consecutive pixels in
// layout f. No bounds checking is performed.
func At(buf []byte, i int, f Format) Pixel {
	b := buf[i*f.Size():]
	var p Pixel
	j := 0
	if f.HasBrightness() {
		p.X = b[0]
		j = 1
	}
	switch f.Order {
	case RGB:
		p.R, p.G, p.B = b[j], b[j+1], b[j+2]
	case GRB:
		p.G, p.R, p.B = b[j], b[j+1], b[j+2]
	case BGR:
		p.B, p.G, p.R = b[j], b[j+1], b[j+2]
	}
	if f.HasWhite() {
		p.X = b[3]
	}
	return p
}

// Expand565 unpacks a 16-bit sample (5 bits red, 6 bits green, 5 bits blue)
// into a pixel of layout to, multiplying each channel by brightness to scale
// the low bit depth up to 8 bits. A brightness of 0 is treated as 1. No
// overflow clamping is done: the caller picks a brightness that keeps
// channel*brightness within 8 bits.
func Expand565(v uint16, brightness uint8, to Format) Pixel {
	if brightness == 0 {
		brightness = 1
	}
	p := Pixel{
		R: uint8(v>>11) * brightness,
		G: uint8(v>>5&0x3F) * brightness,
		B: uint8(v&0x1F) * brightness,
	}
	if to.HasBrightness() {
		p.X = 0xFF
	}
	return p
}

// Palette is an ordered color table addressed by the indices stored in a
// Packed array. Its length matches 1<<bits of the Packed source; lookups are
// not bounds checked beyond the usual slice semantics.
type Palette []Pixel
