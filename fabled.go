package fabled

import (
	"errors"
	"fmt"

	"github.com/fabled-go/fabled/pixel"
)

// Protocol selects the low-level strategy used to push bits onto the wire.
type Protocol int

const (
	// OnePort drives a single data line with the one-wire NRZ scheme; the
	// baseline every other strategy builds on.
	OnePort Protocol = iota + 1
	// TwoPortSplit drives two data lines in lockstep, sending the first half
	// of the byte array to one and the second half to the other.
	TwoPortSplit
	// TwoPortInterleaved drives two data lines in lockstep, sending even
	// pixels to one and odd pixels to the other.
	TwoPortInterleaved
	// EightPort drives up to eight data lines from one port register, each
	// fed from its own slice of the byte array.
	EightPort
	// Strobe is the clock+data scheme of globally latched chips (apa102).
	// Receivers sample on the clock edge, so no cycle-accurate delays are
	// needed.
	Strobe

	// Declared for configuration completeness; New rejects them.
	OnePortPWM
	OnePortUART
	HardwareSPI
)

func (p Protocol) String() string {
	switch p {
	case OnePort:
		return "one-port bitbang"
	case TwoPortSplit:
		return "two-port-split bitbang"
	case TwoPortInterleaved:
		return "two-port-interleaved bitbang"
	case EightPort:
		return "eight-port bitbang"
	case Strobe:
		return "strobe bitbang"
	case OnePortPWM:
		return "one-port pwm"
	case OnePortUART:
		return "one-port uart"
	case HardwareSPI:
		return "hardware spi"
	}
	return "unknown protocol"
}

// ParseProtocol maps a protocol name, as used in timing profiles, to its
// Protocol value. It accepts the names String produces.
func ParseProtocol(s string) (Protocol, error) {
	for p := OnePort; p <= HardwareSPI; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("fabled: unknown protocol %q", s)
}

// Opts is the configuration for a strip driver. Every field is fixed for
// the lifetime of the Dev.
type Opts struct {
	// Timings are the protocol's signal windows in CPU cycles. Unused by
	// Strobe.
	Timings Timings

	// Format is the byte layout the strip expects on its data line.
	Format pixel.Format

	// Protocol selects the bit generation strategy.
	Protocol Protocol

	// Data is the data line. Required by every protocol except EightPort.
	Data Line

	// Clock is the second line: the clock for Strobe, the second data line
	// for the two-port protocols. Unused otherwise.
	Clock Line

	// Port is the eight bit register feeding the EightPort protocol, with
	// FirstPin..LastPin the contiguous span of its pins actually wired to
	// strips.
	Port     Register
	FirstPin uint8
	LastPin  uint8

	// Timer supplies the delay primitives. Required.
	Timer Timer

	// IRQ gates host interrupts for the duration of a session. Optional;
	// leave nil on hosts without interrupt control.
	IRQ IRQ
}

// Dev is the handle to one LED strip (or one bank of parallel strips).
//
// A Dev is not safe for concurrent use: the design assumes exactly one
// strip-driving goroutine per instance, and sessions must not nest.
type Dev struct {
	t        Timings
	format   pixel.Format
	protocol Protocol
	bpp      int

	data  Line
	clock Line
	port  Register
	first uint8
	last  uint8

	timer Timer
	irq   IRQ

	// Session state. irqState is the saved interrupt snapshot for one-wire
	// protocols; pixelsSent sizes the Strobe closing frame.
	irqState   uint8
	pixelsSent int
}

// New validates the configuration, drives the configured lines to their
// idle level and returns a driver handle. Unsupported protocol variants and
// missing capabilities are rejected here: this is the construction-time
// analog of a failed build, not a runtime check in the transmit path.
func New(opts *Opts) (*Dev, error) {
	if opts == nil {
		return nil, errors.New("fabled: opts are required")
	}
	switch opts.Protocol {
	case OnePort, TwoPortSplit, TwoPortInterleaved, EightPort, Strobe:
	case OnePortPWM, OnePortUART, HardwareSPI:
		return nil, fmt.Errorf("fabled: protocol %s is not implemented", opts.Protocol)
	default:
		return nil, fmt.Errorf("fabled: %s", opts.Protocol)
	}
	if opts.Timer == nil {
		return nil, errors.New("fabled: a Timer is required")
	}

	d := &Dev{
		t:        opts.Timings,
		format:   opts.Format,
		protocol: opts.Protocol,
		bpp:      opts.Format.Size(),
		data:     opts.Data,
		clock:    opts.Clock,
		port:     opts.Port,
		first:    opts.FirstPin,
		last:     opts.LastPin,
		timer:    opts.Timer,
		irq:      opts.IRQ,
	}

	switch opts.Protocol {
	case EightPort:
		if opts.Port == nil {
			return nil, errors.New("fabled: eight-port protocol needs a port Register")
		}
		if opts.FirstPin > opts.LastPin || opts.LastPin > 7 {
			return nil, fmt.Errorf("fabled: invalid pin span %d..%d", opts.FirstPin, opts.LastPin)
		}
		d.port.Write(0x00)
	case TwoPortSplit, TwoPortInterleaved:
		if opts.Data == nil || opts.Clock == nil {
			return nil, fmt.Errorf("fabled: %s needs two data lines", opts.Protocol)
		}
		d.data.Low()
		d.clock.Low()
	case Strobe:
		if opts.Data == nil || opts.Clock == nil {
			return nil, errors.New("fabled: strobe protocol needs data and clock lines")
		}
		// Reset the chain so it accepts a fresh refresh.
		d.strobeFrame(16, false)
	default:
		if opts.Data == nil {
			return nil, errors.New("fabled: a data Line is required")
		}
		d.data.Low()
	}
	return d, nil
}

// Format returns the strip's native pixel layout.
func (d *Dev) Format() pixel.Format {
	return d.format
}

// Protocol returns the transmission strategy in use.
func (d *Dev) Protocol() Protocol {
	return d.protocol
}

// Begin opens a write sequence to the strip. For the Strobe protocol it
// emits the zero start frame that makes the chips accept a refresh; for the
// one-wire protocols it first holds the line low for the configured minimum
// refresh time, then disables interrupts, remembering the prior state.
//
// Call End as soon as possible after the sends. Sessions must not nest.
func (d *Dev) Begin() {
	if d.protocol == Strobe {
		d.strobeFrame(4, false)
		return
	}
	d.timer.Sleep(d.t.MinRefresh)
	if d.irq != nil {
		d.irqState = d.irq.Disable()
	}
}

// End closes the write sequence opened by Begin. For the Strobe protocol it
// clocks out a trailer of ceil(pixelsSent/2) frame words: chips in the
// chain propagate their value one clock pulse at a time, so the trailer
// must supply enough pulses for the last pixel to reach the end. For the
// one-wire protocols it restores the saved interrupt state.
func (d *Dev) End() {
	if d.protocol == Strobe {
		d.pixelsSent++
		d.strobeFrame(d.pixelsSent/2, true)
		d.pixelsSent = 0
		return
	}
	if d.irq != nil {
		d.irq.Restore(d.irqState)
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("fabled.Dev{%s %s}", d.format, d.protocol)
}
