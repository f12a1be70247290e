package pixel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fabled-go/fabled/pixel"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		f    Format
		want int
	}{
		{FormatRGB, 3},
		{FormatGRB, 3},
		{FormatBGR, 3},
		{FormatRGBW, 4},
		{FormatGRBW, 4},
		{FormatHBGR, 4},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if got := tt.f.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatExtraChannel(t *testing.T) {
	for _, f := range []Format{FormatRGB, FormatGRB, FormatBGR} {
		if f.HasWhite() || f.HasBrightness() {
			t.Errorf("%s should carry no extra channel", f)
		}
	}
	if !FormatRGBW.HasWhite() || !FormatGRBW.HasWhite() {
		t.Error("trailing white formats should report HasWhite")
	}
	if !FormatHBGR.HasBrightness() {
		t.Error("HBGR should report HasBrightness")
	}
	// The two extra-channel kinds are mutually exclusive by construction.
	if FormatRGBW.HasBrightness() || FormatHBGR.HasWhite() {
		t.Error("a format must not report both extra channel kinds")
	}
}

func TestFormatStringRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatRGB, FormatGRB, FormatBGR, FormatRGBW, FormatGRBW, FormatHBGR} {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v, want %v", f.String(), got, f)
		}
	}
	if _, err := ParseFormat("RBG"); err == nil {
		t.Error("ParseFormat should reject unsupported orders")
	}
}

var convertCases = []struct {
	name     string
	p        Pixel
	from, to Format
	want     Pixel
}{
	{"identity GRB", Pixel{R: 1, G: 2, B: 3}, FormatGRB, FormatGRB, Pixel{R: 1, G: 2, B: 3}},
	{"identity keeps extra byte", Pixel{R: 1, G: 2, B: 3, X: 9}, FormatGRBW, FormatGRBW, Pixel{R: 1, G: 2, B: 3, X: 9}},
	{"rgb to grb", Pixel{R: 10, G: 20, B: 30}, FormatRGB, FormatGRB, Pixel{R: 10, G: 20, B: 30}},
	{"white copied", Pixel{R: 1, G: 2, B: 3, X: 77}, FormatRGBW, FormatGRBW, Pixel{R: 1, G: 2, B: 3, X: 77}},
	{"white defaults to zero", Pixel{R: 1, G: 2, B: 3}, FormatRGB, FormatGRBW, Pixel{R: 1, G: 2, B: 3, X: 0}},
	{"white dropped", Pixel{R: 1, G: 2, B: 3, X: 77}, FormatGRBW, FormatBGR, Pixel{R: 1, G: 2, B: 3}},
	{"brightness defaults to max", Pixel{R: 1, G: 2, B: 3}, FormatRGB, FormatHBGR, Pixel{R: 1, G: 2, B: 3, X: 0xFF}},
	{"brightness not taken from white", Pixel{R: 1, G: 2, B: 3, X: 5}, FormatRGBW, FormatHBGR, Pixel{R: 1, G: 2, B: 3, X: 0xFF}},
	{"white not taken from brightness", Pixel{R: 1, G: 2, B: 3, X: 0xE5}, FormatHBGR, FormatRGBW, Pixel{R: 1, G: 2, B: 3, X: 0}},
}

func TestConvert(t *testing.T) {
	for _, tt := range convertCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.p, tt.from, tt.to))
		})
	}
}

func TestPutByteOrder(t *testing.T) {
	p := Pixel{R: 10, G: 20, B: 30, X: 40}
	tests := []struct {
		f    Format
		want []byte
	}{
		{FormatRGB, []byte{10, 20, 30}},
		{FormatGRB, []byte{20, 10, 30}},
		{FormatBGR, []byte{30, 20, 10}},
		{FormatRGBW, []byte{10, 20, 30, 40}},
		{FormatGRBW, []byte{20, 10, 30, 40}},
		{FormatHBGR, []byte{40, 30, 20, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			var buf [4]byte
			n := Put(buf[:], p, tt.f)
			assert.Equal(t, tt.f.Size(), n)
			assert.Equal(t, tt.want, buf[:n])
		})
	}
}

func TestAtInvertsPut(t *testing.T) {
	pixels := []Pixel{
		{R: 1, G: 2, B: 3, X: 4},
		{R: 0xFF, G: 0, B: 0x80, X: 0xE1},
		{R: 10, G: 20, B: 30, X: 0},
	}
	for _, f := range []Format{FormatRGB, FormatGRB, FormatBGR, FormatRGBW, FormatGRBW, FormatHBGR} {
		buf := make([]byte, len(pixels)*f.Size())
		for i, p := range pixels {
			Put(buf[i*f.Size():], p, f)
		}
		for i, p := range pixels {
			if !f.HasWhite() && !f.HasBrightness() {
				p.X = 0
			}
			assert.Equal(t, p, At(buf, i, f), "format %s pixel %d", f, i)
		}
	}
}

// Native GRB strip fed an RGB pixel {r=10,g=20,b=30} must put {20,10,30} on
// the wire.
func TestConvertScenarioRGBToGRB(t *testing.T) {
	native := Convert(Pixel{R: 10, G: 20, B: 30}, FormatRGB, FormatGRB)
	var buf [4]byte
	n := Put(buf[:], native, FormatGRB)
	assert.Equal(t, []byte{20, 10, 30}, buf[:n])
}

func TestExpand565(t *testing.T) {
	tests := []struct {
		name       string
		v          uint16
		brightness uint8
		to         Format
		want       Pixel
	}{
		{"white brightness 1", 0xFFFF, 1, FormatGRB, Pixel{R: 31, G: 63, B: 31}},
		{"zero brightness clamps to 1", 0xFFFF, 0, FormatGRB, Pixel{R: 31, G: 63, B: 31}},
		{"channels isolated", 0xF800, 2, FormatRGB, Pixel{R: 62}},
		{"green only", 0x07E0, 3, FormatRGB, Pixel{G: 189}},
		{"blue only", 0x001F, 4, FormatRGB, Pixel{B: 124}},
		{"brightness header defaults", 0x0000, 1, FormatHBGR, Pixel{X: 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand565(tt.v, tt.brightness, tt.to))
		})
	}
}
