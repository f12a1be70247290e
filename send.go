package fabled

import "github.com/fabled-go/fabled/pixel"

// Chips speaking the strobe protocol expect the leading byte of every pixel
// to carry this marker in its top three bits, with the brightness level in
// the rest.
const strobeHeaderBits = 0xE0

// SendBytes pushes raw bytes already laid out in the strip's native format.
// This is the fast path: nothing is converted or rewritten, the bytes go to
// the wire as-is. len(b) must be a multiple of the native pixel size;
// no validation is performed.
func (d *Dev) SendBytes(b []byte) {
	d.sendBytes(b)
	if d.protocol == Strobe {
		d.pixelsSent += len(b) / d.bpp
	}
}

// sendPixel encodes one native pixel and pushes it. For brightness-prefixed
// strips the header marker bits are forced on here, so a caller-supplied
// brightness byte can never silently break the chip's framing.
func (d *Dev) sendPixel(p pixel.Pixel) {
	var buf [4]byte
	n := pixel.Put(buf[:], p, d.format)
	if d.format.HasBrightness() {
		buf[0] |= strobeHeaderBits
	}
	d.sendBytes(buf[:n])
}

// Send displays the pixels at the current position in the strip. Pixels
// described by the native format are encoded directly; any other layout is
// converted pixel by pixel first (see pixel.Convert for the channel
// defaulting rules).
func (d *Dev) Send(px []pixel.Pixel, f pixel.Format) {
	if f == d.format {
		for _, p := range px {
			d.sendPixel(p)
		}
	} else {
		for _, p := range px {
			d.sendPixel(pixel.Convert(p, f, d.format))
		}
	}
	if d.protocol == Strobe {
		d.pixelsSent += len(px)
	}
}

// SendMapped displays pixels through a remap table: the entry at physical
// position i names the index in px of the color shown there. A nil remap is
// the identity. Remap entries are trusted, not bounds checked.
func (d *Dev) SendMapped(px []pixel.Pixel, f pixel.Format, remap []int) {
	if remap == nil {
		d.Send(px, f)
		return
	}
	for _, ri := range remap {
		d.sendPixel(pixel.Convert(px[ri], f, d.format))
	}
	if d.protocol == Strobe {
		d.pixelsSent += len(remap)
	}
}

// SendPacked displays n palette-indexed pixels from a bit-packed array.
// For each physical position the logical index resolves through remap (nil
// for identity), the palette color index decodes from src at that logical
// position, and pal supplies the pixel, assumed to be in fmt f.
func (d *Dev) SendPacked(n int, src *pixel.Packed, pal pixel.Palette, f pixel.Format, remap []int) {
	for i := 0; i < n; i++ {
		ri := i
		if remap != nil {
			ri = remap[i]
		}
		d.sendPixel(pixel.Convert(pal[src.Index(ri)], f, d.format))
	}
	if d.protocol == Strobe {
		d.pixelsSent += n
	}
}

// Send565 displays packed 16-bit pixels (5 bits red, 6 green, 5 blue), each
// channel scaled up by brightness. See pixel.Expand565 for the overflow
// contract.
func (d *Dev) Send565(vals []uint16, brightness uint8) {
	for _, v := range vals {
		d.sendPixel(pixel.Expand565(v, brightness, d.format))
	}
	if d.protocol == Strobe {
		d.pixelsSent += len(vals)
	}
}

// Draw is the begin/send/end composition for one whole frame of pixels.
func (d *Dev) Draw(px []pixel.Pixel, f pixel.Format) {
	d.Begin()
	d.Send(px, f)
	d.End()
}

// DrawBytes is the begin/send/end composition for a native raw buffer.
func (d *Dev) DrawBytes(b []byte) {
	d.Begin()
	d.SendBytes(b)
	d.End()
}

// Draw565 is the begin/send/end composition for packed 16-bit pixels.
func (d *Dev) Draw565(vals []uint16, brightness uint8) {
	d.Begin()
	d.Send565(vals, brightness)
	d.End()
}

// Grey sets n pixels to the same level on every channel.
func (d *Dev) Grey(n int, value uint8) {
	d.Begin()
	p := pixel.Pixel{R: value, G: value, B: value, X: value}
	if d.format.HasBrightness() {
		p.X = 0xFF
	}
	for i := 0; i < n; i++ {
		d.sendPixel(p)
	}
	if d.protocol == Strobe {
		d.pixelsSent += n
	}
	d.End()
}

// Clear blanks n pixels.
func (d *Dev) Clear(n int) {
	d.Grey(n, 0)
}
