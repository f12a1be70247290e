package fabled

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Line is a single GPIO output toggled inside the cycle-counted transmit
// loops. Implementations must cost a small, constant number of instructions
// per call; the timing budgets assume a two cycle toggle (pinToggleCycles).
type Line interface {
	High()
	Low()
}

// Register is an eight bit wide GPIO port whose pins change in one store.
// Bit i of bits drives pin i. Required by the EightPort protocol, which
// feeds up to eight strips from a single register write per phase.
type Register interface {
	Write(bits uint8)
}

// Timer supplies the two delay primitives of the transmit loops.
//
// DelayCycles busy-waits exactly n CPU cycles without yielding; n <= 0 is a
// no-op. Sleep is only used before a session starts, to hold the line low
// long enough for the strip to latch the previous frame, and may schedule.
type Timer interface {
	DelayCycles(n int)
	Sleep(d time.Duration)
}

// IRQ captures and restores the host interrupt enable state around a
// transmission. Any interrupt taken mid-frame stretches a pulse past the
// protocol tolerance and resets the strip.
type IRQ interface {
	Disable() (state uint8)
	Restore(state uint8)
}

// PinLine adapts a periph.io output pin to a Line. The error returned by
// Out is dropped: the transmit loops cannot branch on it without breaking
// their cycle budget. Use memory-mapped pins so the toggle cost stays
// constant.
func PinLine(p gpio.PinOut) Line {
	return pinLine{p}
}

type pinLine struct {
	p gpio.PinOut
}

func (l pinLine) High() { _ = l.p.Out(gpio.High) }
func (l pinLine) Low()  { _ = l.p.Out(gpio.Low) }

// SleepTimer implements Timer on the Go runtime clock for hosted platforms.
// DelayCycles converts the cycle count at CPU into a nanosecond busy-wait;
// it is monotonic but nowhere near cycle-accurate, so it suits the Strobe
// protocol and bench setups rather than tight one-wire windows.
type SleepTimer struct {
	CPU physic.Frequency
}

func (t SleepTimer) DelayCycles(n int) {
	if n <= 0 {
		return
	}
	end := time.Now().Add(Nanoseconds(uint32(n), t.CPU))
	for time.Now().Before(end) {
	}
}

func (t SleepTimer) Sleep(d time.Duration) {
	time.Sleep(d)
}
