package pymath

import (
	"errors"
	"math"
	"testing"
)

func TestPythonTrueDiv(t *testing.T) {
	var p Python
	got, err := p.TrueDiv(1, 4)
	if err != nil || got != 0.25 {
		t.Errorf("TrueDiv(1, 4) = (%v, %v), want (0.25, nil)", got, err)
	}
	if _, err := p.TrueDiv(1, 0); !errors.Is(err, ErrZeroDivision) {
		t.Errorf("TrueDiv(1, 0) err = %v, want ErrZeroDivision", err)
	}
}

func TestPythonMod(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{7, -3, -2},
		{-7, -3, -1},
		{1.5, 1, 0.5},
		{-0.25, 1, 0.75},
	}

	var p Python
	for _, tt := range tests {
		got, err := p.Mod(tt.a, tt.b)
		if err != nil {
			t.Fatalf("Mod(%v, %v) unexpected error: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("Mod(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := p.Mod(1, 0); !errors.Is(err, ErrZeroDivision) {
		t.Errorf("Mod(1, 0) err = %v, want ErrZeroDivision", err)
	}
	if got := Mod(-3, 3); got != 0 || math.Signbit(got) {
		t.Errorf("Mod(-3, 3) = %v, want +0", got)
	}
}

func TestPythonPow(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		want    float64
		wantErr error
	}{
		{"square", 3, 2, 9, nil},
		{"root", 0.25, 0.5, 0.5, nil},
		{"negative base integer exponent", -2, 3, -8, nil},
		{"negative base fractional exponent", -8, 1.0 / 3, 0, ErrDomain},
		{"zero to negative", 0, -1, 0, ErrZeroDivision},
		{"zero to zero", 0, 0, 1, nil},
		{"overflow", 10, 400, 0, ErrOverflow},
	}

	var p Python
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Pow(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Pow(%v, %v) err = %v, want %v", tt.a, tt.b, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Pow(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		digits int
		want   float64
	}{
		{0.5, 0, 0},
		{1.5, 0, 2},
		{2.5, 0, 2},
		{-0.5, 0, 0},
		{0.125, 2, 0.12},
		{0.375, 2, 0.38},
		{1234, -2, 1200},
		{1250, -2, 1200},
		{math.Inf(1), 2, math.Inf(1)},
		{5, -400, 0},
		{-5, -400, 0},
		{1e300, -400, 0},
	}

	for _, tt := range tests {
		if got := Round(tt.v, tt.digits); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.digits, got, tt.want)
		}
	}
}

func TestIEEE(t *testing.T) {
	var p IEEE
	if got, err := p.TrueDiv(1, 0); err != nil || !math.IsInf(got, 1) {
		t.Errorf("TrueDiv(1, 0) = (%v, %v), want (+Inf, nil)", got, err)
	}
	if got, _ := p.Mod(-7, 3); got != -1 {
		t.Errorf("Mod(-7, 3) = %v, want -1", got)
	}
	if got, err := p.Pow(-8, 1.0/3); err != nil || !math.IsNaN(got) {
		t.Errorf("Pow(-8, 1/3) = (%v, %v), want (NaN, nil)", got, err)
	}
	if got := p.Round(2.5, 0); got != 3 {
		t.Errorf("Round(2.5, 0) = %v, want 3", got)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		v    float64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{-1, -2},
		{-2, -2},
		{0.5, 1 << 60},
		{math.Inf(1), 314159},
		{math.Inf(-1), -314159},
		{1e6, 1000000},
	}

	for _, tt := range tests {
		if got := Hash(tt.v); got != tt.want {
			t.Errorf("Hash(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestHashTuple(t *testing.T) {
	// hash((1, 2, 3)) on 64-bit CPython 3.8 and later.
	if got, want := HashTuple(1, 2, 3), int64(529344067295497451); got != want {
		t.Errorf("HashTuple(1, 2, 3) = %d, want %d", got, want)
	}
	if HashTuple(0.5, 0, 1) == HashTuple(0, 0.5, 1) {
		t.Error("HashTuple ignores element order")
	}
}
