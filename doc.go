// Package fabled drives addressable LED strips by bit-banging their serial
// protocols on general purpose I/O pins, using CPU cycle counting instead
// of dedicated serial hardware.
//
// It targets microcontrollers and memory-mapped GPIO hosts where a pin
// toggle costs a known, constant number of cycles. The per-chip timing
// windows are configuration, not code: presets exist for the common chips
// and anything else loads from a YAML profile.
//
// # Transmission strategies
//
// Five protocols are implemented:
//
//   - OnePort: the one-wire NRZ scheme (ws2812/sk6812 class chips) on a
//     single data line.
//   - TwoPortSplit: two data lines toggled in one shared bit period, each
//     sending half of the pixel array, two strips in the time of one.
//   - TwoPortInterleaved: same timing, but even pixels go to one line and
//     odd pixels to the other.
//   - EightPort: up to eight lines fed from one 8-bit port register, three
//     register stores per bit period.
//   - Strobe: the clock+data scheme of globally latched chips (apa102);
//     no cycle accuracy needed since receivers sample on the clock edge.
//
// # Capabilities
//
// The platform primitives are injected: a Line toggles one pin, a Register
// stores eight pins at once, a Timer busy-waits exact cycle counts, and an
// optional IRQ gates interrupts during a session. PinLine adapts any
// periph.io gpio.PinOut.
//
// # Basic usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/physic"
//		"periph.io/x/host/v3"
//
//		"github.com/fabled-go/fabled"
//		"github.com/fabled-go/fabled/pixel"
//	)
//
//	func main() {
//		host.Init()
//
//		opts := fabled.WS2812B(16*physic.MegaHertz, fabled.PinLine(gpioreg.ByName("GPIO18")))
//		opts.Timer = fabled.SleepTimer{CPU: 16 * physic.MegaHertz}
//		dev, _ := fabled.New(opts)
//
//		frame := []pixel.Pixel{{R: 255}, {G: 255}, {B: 255}}
//		dev.Draw(frame, pixel.FormatRGB)
//	}
//
// # Timing model
//
// A logical one is pin-high for Timings.High1 cycles then low for Low1; a
// zero is high for High0 then low for Low0. Cycles converts a datasheet's
// nanosecond windows at a CPU frequency, rounding up, and the generators
// pre-subtract the fixed cost of the toggle instructions themselves.
//
// # Sessions
//
// Writes are bracketed by Begin and End. For one-wire protocols Begin waits
// out the strip's minimum refresh time and then disables interrupts until
// End: the transmit loops are cycle counted, and any preemption mid-frame
// corrupts the pulse train. One session at a time per Dev, one goroutine
// per Dev; the hot path performs no run time checks.
//
// # Pixel formats and palettes
//
// The pixel subpackage models the six byte layouts in use (RGB, GRB, BGR,
// RGBW, GRBW and brightness-prefixed HBGR), converts between them, expands
// packed 16-bit RGB565 samples, and stores palette indices bit-packed at 1,
// 2, 4 or 8 bits per pixel. Send variants accept any of these plus an
// optional physical-to-logical remap table.
package fabled
