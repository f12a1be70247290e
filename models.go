package fabled

import (
	"time"

	"periph.io/x/conn/v3/physic"

	"github.com/fabled-go/fabled/pixel"
)

// Per-chip presets. Each returns an Opts with the chip's signal windows
// resolved to cycles at the given CPU frequency, plus its native format and
// protocol; the caller still supplies the Timer (and IRQ where needed)
// before calling New. The nanosecond windows are the aggressive end of each
// datasheet's tolerance bands.

func timings(cpu physic.Frequency, h1, l1, h0, l0 time.Duration, refresh time.Duration) Timings {
	return Timings{
		High1:      uint16(Cycles(h1, cpu)),
		Low1:       uint16(Cycles(l1, cpu)),
		High0:      uint16(Cycles(h0, cpu)),
		Low0:       uint16(Cycles(l0, cpu)),
		MinRefresh: refresh,
	}
}

// WS2812B configures the mainstream WS2812B on a single data line.
func WS2812B(cpu physic.Frequency, data Line) *Opts {
	return &Opts{
		Timings:  timings(cpu, 500*time.Nanosecond, 125*time.Nanosecond, 125*time.Nanosecond, 188*time.Nanosecond, 20*time.Millisecond),
		Format:   pixel.FormatGRB,
		Protocol: OnePort,
		Data:     data,
	}
}

// WS2812BSplit drives two WS2812B strips in parallel, each showing half of
// the pixel array.
func WS2812BSplit(cpu physic.Frequency, data1, data2 Line) *Opts {
	o := WS2812B(cpu, data1)
	o.Protocol = TwoPortSplit
	o.Clock = data2
	return o
}

// WS2812BInterleaved drives two WS2812B strips in parallel, even pixels on
// one line and odd pixels on the other.
func WS2812BInterleaved(cpu physic.Frequency, data1, data2 Line) *Opts {
	o := WS2812B(cpu, data1)
	o.Protocol = TwoPortInterleaved
	o.Clock = data2
	return o
}

// WS2812BEight drives up to eight WS2812B strips from one port register,
// using the register pins first through last.
func WS2812BEight(cpu physic.Frequency, port Register, first, last uint8) *Opts {
	o := WS2812B(cpu, nil)
	o.Protocol = EightPort
	o.Port = port
	o.FirstPin = first
	o.LastPin = last
	return o
}

// WS2812 configures the first generation WS2812.
func WS2812(cpu physic.Frequency, data Line) *Opts {
	return &Opts{
		Timings:  timings(cpu, 550*time.Nanosecond, 200*time.Nanosecond, 200*time.Nanosecond, 550*time.Nanosecond, 50*time.Millisecond),
		Format:   pixel.FormatGRB,
		Protocol: OnePort,
		Data:     data,
	}
}

// APA104 configures the APA104 (and the pin-compatible PL9823).
func APA104(cpu physic.Frequency, data Line) *Opts {
	return &Opts{
		Timings:  timings(cpu, 1210*time.Nanosecond, 200*time.Nanosecond, 200*time.Nanosecond, 1210*time.Nanosecond, 50*time.Millisecond),
		Format:   pixel.FormatGRB,
		Protocol: OnePort,
		Data:     data,
	}
}

// APA106 is an APA104 with RGB instead of GRB channel ordering.
func APA106(cpu physic.Frequency, data Line) *Opts {
	o := APA104(cpu, data)
	o.Format = pixel.FormatRGB
	return o
}

// SK6812 configures the four channel RGBW SK6812.
func SK6812(cpu physic.Frequency, data Line) *Opts {
	return &Opts{
		Timings:  timings(cpu, 1210*time.Nanosecond, 200*time.Nanosecond, 200*time.Nanosecond, 1210*time.Nanosecond, 84*time.Millisecond),
		Format:   pixel.FormatRGBW,
		Protocol: OnePort,
		Data:     data,
	}
}

// SK6812B is an SK6812 with GRBW channel ordering.
func SK6812B(cpu physic.Frequency, data Line) *Opts {
	o := SK6812(cpu, data)
	o.Format = pixel.FormatGRBW
	return o
}

// APA102 configures the clock+data APA102. The strobe protocol carries no
// cycle windows; the chips sample on the clock edge at whatever rate the
// lines toggle.
func APA102(data, clock Line) *Opts {
	return &Opts{
		Timings:  Timings{MinRefresh: 84 * time.Millisecond},
		Format:   pixel.FormatHBGR,
		Protocol: Strobe,
		Data:     data,
		Clock:    clock,
	}
}
