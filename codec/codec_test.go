package codec

import (
	"errors"
	"math"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [3]float64
	}{
		{"name", "red", [3]float64{1, 0, 0}},
		{"name mixed case", "Blue", [3]float64{0, 0, 1}},
		{"name with space", "light gray", [3]float64{211.0 / 255, 211.0 / 255, 211.0 / 255}},
		{"name with underscore", "dark_slate_blue", [3]float64{72.0 / 255, 61.0 / 255, 139.0 / 255}},
		{"hex six", "#ff8000", [3]float64{1, 128.0 / 255, 0}},
		{"hex three", "#f00", [3]float64{1, 0, 0}},
		{"hex upper", "#00FF00", [3]float64{0, 1, 0}},
		{"hex integer", "0x0000ff", [3]float64{0, 0, 1}},
		{"tuple", "(0.5, 0.25, 1)", [3]float64{0.5, 0.25, 1}},
		{"bare tuple", "1, 2, 3", [3]float64{1, 2, 3}},
		{"padded", "  black ", [3]float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text)
			if err != nil {
				t.Fatalf("Decode(%q) unexpected error: %v", tt.text, err)
			}
			if !near(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"not a color",
		"#zzzzzz",
		"#12345",
		"0xgg",
		"0x1000000",
		"(1, 2)",
		"(1, x, 3)",
	} {
		_, err := Decode(text)
		if !errors.Is(err, ErrFormat) {
			t.Errorf("Decode(%q) err = %v, want ErrFormat", text, err)
		}
		var fe *FormatError
		if !errors.As(err, &fe) || fe.Text != text {
			t.Errorf("Decode(%q) err = %v, want *FormatError for the input", text, err)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		c    [3]float64
		want string
	}{
		{[3]float64{1, 0, 0}, "red"},
		{[3]float64{0, 1, 1}, "aqua"},
		{[3]float64{0.5, 0.5, 0.5}, "(0.5, 0.5, 0.5)"},
		{[3]float64{1, 128.0 / 255, 1.0 / 255}, "#ff8001"},
		{[3]float64{2, 0, 0}, "(2, 0, 0)"},
		{[3]float64{-0.25, 0, 1}, "(-0.25, 0, 1)"},
		{[3]float64{math.NaN(), math.NaN(), math.NaN()}, "(NaN, NaN, NaN)"},
		{[3]float64{1, math.NaN(), 0}, "(1, NaN, 0)"},
	}

	for _, tt := range tests {
		if got := Encode(tt.c); got != tt.want {
			t.Errorf("Encode(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, c := range [][3]float64{
		{1, 0, 0},
		{0.5, 0.25, 0.125},
		{10.0 / 255, 20.0 / 255, 30.0 / 255},
		{1.5, -1, 0},
	} {
		got, err := Decode(Encode(c))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)) error: %v", c, err)
		}
		if !near(got, c) {
			t.Errorf("Decode(Encode(%v)) = %v", c, got)
		}
	}
}

func TestHex(t *testing.T) {
	c := FromHex(0xFF8000)
	if !near(c, [3]float64{1, 128.0 / 255, 0}) {
		t.Errorf("FromHex(0xFF8000) = %v", c)
	}
	if got := ToHex(c); got != 0xFF8000 {
		t.Errorf("ToHex(%v) = %#06x, want 0xff8000", c, got)
	}
	if got := FromHex(0xAB000000); got != [3]float64{} {
		t.Errorf("FromHex ignores high bits: got %v", got)
	}
	if got := ToHex([3]float64{2, -1, 0.5}); got != 0xFF0080 {
		t.Errorf("ToHex clamps: got %#06x, want 0xff0080", got)
	}
}

func TestNames(t *testing.T) {
	var codec Names
	if c, err := codec.Decode("white"); err != nil || c != [3]float64{1, 1, 1} {
		t.Errorf("Names.Decode(white) = (%v, %v)", c, err)
	}
	if got := codec.Encode([3]float64{0, 0, 0}); got != "black" {
		t.Errorf("Names.Encode(black) = %q", got)
	}
	names := ColorNames()
	if len(names) == 0 || names[0] != "aliceblue" {
		t.Errorf("ColorNames()[0] = %v, want aliceblue", names[:1])
	}
	if name, ok := NameOf([3]float64{math.NaN(), 0, 0}); ok {
		t.Errorf("NameOf(NaN, 0, 0) = %q, want no name", name)
	}
	if _, ok := NameOf([3]float64{0.5, 0.5, 0.5}); ok {
		t.Error("NameOf(0.5 gray) should not find a name")
	}
}

func near(a, b [3]float64) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -1e-9 || d > 1e-9 {
			return false
		}
	}
	return true
}
