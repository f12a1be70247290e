package fabled

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/fabled-go/fabled/pixel"
)

// Profile is a chip timing description in protocol units, the form LED
// datasheets use, so unsupported chips can ship as configuration instead of
// code. Cycle counts are resolved against a CPU frequency by Opts.
type Profile struct {
	Name string `yaml:"name"`

	// Signal windows in nanoseconds.
	High1NS int `yaml:"high1_ns"`
	Low1NS  int `yaml:"low1_ns"`
	High0NS int `yaml:"high0_ns"`
	Low0NS  int `yaml:"low0_ns"`

	// Minimum low time latching the previous frame, in milliseconds.
	RefreshMS int `yaml:"refresh_ms"`

	// Native pixel layout name: RGB, GRB, BGR, RGBW, GRBW or HBGR.
	Format string `yaml:"format"`

	// Protocol name as produced by Protocol.String, e.g. "one-port bitbang".
	Protocol string `yaml:"protocol"`
}

// LoadProfile reads a YAML chip profile from path.
func LoadProfile(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfile(b)
}

// ParseProfile decodes a YAML chip profile.
func ParseProfile(b []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("fabled: parsing profile: %w", err)
	}
	return &p, nil
}

// Opts resolves the profile into driver options at the given CPU frequency.
// Lines, Timer and IRQ are left for the caller to wire in.
func (p *Profile) Opts(cpu physic.Frequency) (*Opts, error) {
	f, err := pixel.ParseFormat(p.Format)
	if err != nil {
		return nil, fmt.Errorf("fabled: profile %q: %w", p.Name, err)
	}
	proto, err := ParseProtocol(p.Protocol)
	if err != nil {
		return nil, fmt.Errorf("fabled: profile %q: unknown protocol %q", p.Name, p.Protocol)
	}
	return &Opts{
		Timings: Timings{
			High1:      uint16(Cycles(time.Duration(p.High1NS)*time.Nanosecond, cpu)),
			Low1:       uint16(Cycles(time.Duration(p.Low1NS)*time.Nanosecond, cpu)),
			High0:      uint16(Cycles(time.Duration(p.High0NS)*time.Nanosecond, cpu)),
			Low0:       uint16(Cycles(time.Duration(p.Low0NS)*time.Nanosecond, cpu)),
			MinRefresh: time.Duration(p.RefreshMS) * time.Millisecond,
		},
		Format:   f,
		Protocol: proto,
	}, nil
}
