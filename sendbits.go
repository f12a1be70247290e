package fabled

// sendBytes pushes count native-format bytes onto the wire, most significant
// bit first, using the strategy the Dev was built with.
//
// The caller must have opened a session with Begin: with interrupts live, a
// timer tick mid-byte stretches a pulse past tolerance and resets the strip.
func (d *Dev) sendBytes(b []byte) {
	switch d.protocol {
	case OnePort:
		d.onePortSend(b)
	case TwoPortSplit, TwoPortInterleaved:
		d.twoPortSend(b)
	case EightPort:
		d.eightPortSend(b)
	case Strobe:
		d.strobeSend(b)
	}
}

// onePortSend is the one-wire NRZ baseline: a one is high for High1 cycles
// then low for Low1, a zero is high for High0 then low for Low0. Each delay
// gives back the cycles the toggle itself consumed.
func (d *Dev) onePortSend(b []byte) {
	h1 := int(d.t.High1) - pinToggleCycles
	l1 := int(d.t.Low1) - pinToggleCycles
	h0 := int(d.t.High0) - pinToggleCycles
	l0 := int(d.t.Low0) - pinToggleCycles

	for _, v := range b {
		for bit := 7; bit >= 0; bit-- {
			if v>>uint(bit)&1 != 0 {
				d.data.High()
				d.timer.DelayCycles(h1)
				d.data.Low()
				d.timer.DelayCycles(l1)
			} else {
				d.data.High()
				d.timer.DelayCycles(h0)
				d.data.Low()
				d.timer.DelayCycles(l0)
			}
		}
	}
}

// twoPortSend drives two strips in the time of one. Both lines share a
// single bit period derived from the one-bit windows: lines carrying a one
// go high for the whole High1 window, lines carrying a zero get a short
// High0 pulse inside it, and everything sits low for the Low1 tail.
//
// Split mode pairs byte i with byte i+len/2; interleaved mode pairs each
// even pixel with the odd pixel that follows it.
func (d *Dev) twoPortSend(b []byte) {
	if d.protocol == TwoPortSplit {
		half := len(b) / 2
		for pos := 0; pos < half; pos++ {
			d.twoPortByte(b[pos], b[pos+half])
		}
		return
	}
	step := 2 * d.bpp
	for pix := 0; pix+step <= len(b); pix += step {
		for k := 0; k < d.bpp; k++ {
			d.twoPortByte(b[pix+k], b[pix+d.bpp+k])
		}
	}
}

// twoPortByte emits one byte per line, bit-parallel.
func (d *Dev) twoPortByte(v0, v1 byte) {
	for bit := 7; bit >= 0; bit-- {
		mask := byte(1) << uint(bit)
		one0 := v0&mask != 0
		one1 := v1&mask != 0

		if one0 {
			d.data.High()
		}
		if one1 {
			d.clock.High()
		}
		if !one0 {
			d.data.High()
			d.timer.DelayCycles(int(d.t.High0) - pinToggleCycles)
			d.data.Low()
		}
		if !one1 {
			d.clock.High()
			d.timer.DelayCycles(int(d.t.High0) - pinToggleCycles)
			d.clock.Low()
		}
		d.timer.DelayCycles(int(d.t.High1) - 2*pinToggleCycles)
		d.data.Low()
		d.clock.Low()
		d.timer.DelayCycles(int(d.t.Low1) - 2*pinToggleCycles)
	}
}

// eightPortSend feeds up to eight lines from one register, line j taking
// the j-th len/lines slice of the array. All eight source bytes cannot load
// in one instruction, so the loads pipeline: on the iteration for bit b,
// only line b (when wired) pulls its next byte; lines still ramping up stay
// out of the ready mask and are held low. Three register stores frame each
// bit period: all ready lines high, the per-line data bits, then all low.
// Extra parallel lines therefore cost almost nothing.
func (d *Dev) eightPortSend(b []byte) {
	lines := int(d.last-d.first) + 1
	block := len(b) / lines / d.bpp * d.bpp

	var shift [8]uint8
	var ready uint8

	for c := 0; c < block; c++ {
		for bit := 7; bit >= 0; bit-- {
			if bit >= int(d.first) && bit <= int(d.last) {
				ready |= 1 << uint(bit)
				shift[bit] = b[c+(bit-int(d.first))*block]
			}

			// Line j's turn in the byte cycle is offset by its pin index, so
			// at bit b it contributes bit (7-j+b) mod 8 of its shift register.
			// Not-ready registers are still zero and contribute a safe low.
			var bits uint8
			for j := 0; j < 8; j++ {
				if shift[j]>>uint((7-j+bit)%8)&1 != 0 {
					bits |= 1 << uint(j)
				}
			}

			d.port.Write(ready)
			d.timer.DelayCycles(int(d.t.High0) - pinToggleCycles)
			d.port.Write(bits)
			d.timer.DelayCycles(int(d.t.High1) - int(d.t.High0) + pinToggleCycles)
			d.port.Write(0x00)
			d.timer.DelayCycles(int(d.t.Low0) - pinToggleCycles - eightPortSlackCycles)
		}
	}
}

// strobeSend shifts bytes out on the data line, pulsing the clock low then
// high around every bit. The chips sample on the rising edge, so there is
// no cycle budget to hit.
func (d *Dev) strobeSend(b []byte) {
	for _, v := range b {
		for bit := 7; bit >= 0; bit-- {
			d.clock.Low()
			if v>>uint(bit)&1 != 0 {
				d.data.High()
			} else {
				d.data.Low()
			}
			d.clock.High()
		}
	}
}

// strobeFrame holds the data line at the given level and clocks out the
// given number of eight-pulse frame words. A low frame resets the chain
// before a refresh; a high frame flushes the last pixels through it.
func (d *Dev) strobeFrame(words int, high bool) {
	if high {
		d.data.High()
	} else {
		d.data.Low()
	}
	for c := 0; c < 8*words; c++ {
		d.clock.Low()
		d.clock.High()
	}
}
