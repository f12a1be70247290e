package fabled

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

const nsPerSec = 1000000000

// Pin set/clear instructions consume cycles of their own (sbi/cbi class
// instructions take 2), so every delay issued by the bit generators
// pre-subtracts this from the configured window.
const pinToggleCycles = 2

// The eight-port bit assembly costs roughly this many cycles per bit period
// on top of the port stores; it comes out of the final low phase.
const eightPortSlackCycles = 20

// Timings holds one LED protocol's signal windows in CPU cycles: how long
// the line stays high then low for a logical one and for a logical zero,
// plus the minimum low time that latches a frame. High1+Low1 and High0+Low0
// should both approximate the protocol's nominal bit period; the driver
// trusts the configuration and does not enforce it.
type Timings struct {
	High1 uint16
	Low1  uint16
	High0 uint16
	Low0  uint16

	MinRefresh time.Duration
}

// Cycles returns the minimal whole number of CPU cycles at cpu that covers
// the duration d: ceil(ns * Hz / 1e9).
func Cycles(d time.Duration, cpu physic.Frequency) uint32 {
	hz := uint64(cpu / physic.Hertz)
	return uint32((uint64(d.Nanoseconds())*hz + nsPerSec - 1) / nsPerSec)
}

// Nanoseconds is the inverse of Cycles, rounded up: the shortest duration
// fully covered by the given cycle count at cpu.
func Nanoseconds(cycles uint32, cpu physic.Frequency) time.Duration {
	hz := uint64(cpu / physic.Hertz)
	return time.Duration((uint64(cycles)*nsPerSec + hz - 1) / hz)
}
