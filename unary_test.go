package tint

import (
	"testing"

	"github.com/gogpu/tint/pymath"
)

func TestListUnary(t *testing.T) {
	tests := []struct {
		name string
		op   func(*UnitList)
		want []Unit
	}{
		{"abs", (*UnitList).Abs, []Unit{1.5, 0.5, 0, 2}},
		{"floor", (*UnitList).Floor, []Unit{-2, 0, 0, 2}},
		{"ceil", (*UnitList).Ceil, []Unit{-1, 1, 0, 2}},
		{"trunc", (*UnitList).Trunc, []Unit{-1, 0, 0, 2}},
		{"neg", (*UnitList).Neg, []Unit{1.5, -0.5, 0, -2}},
		{"invert", (*UnitList).Invert, []Unit{2.5, 0.5, 1, -1}},
		{"round", func(l *UnitList) { l.Round(0) }, []Unit{-2, 0, 0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := gray(-1.5, 0.5, 0, 2)
			tt.op(l)
			if !equalValues(values(l), tt.want...) {
				t.Errorf("got %v, want %v", values(l), tt.want)
			}
		})
	}
}

func TestListInvertByte(t *testing.T) {
	l := NewList(RGB255{255, 0, 100})
	l.Invert()
	if c, _ := l.Get(0); c != (RGB255{0, 255, 155}) {
		t.Errorf("Invert() = %v, want (0, 255, 155)", c)
	}
	l.Invert()
	if c, _ := l.Get(0); c != (RGB255{255, 0, 100}) {
		t.Errorf("double Invert() = %v", c)
	}
}

func TestListRoundPolicy(t *testing.T) {
	py := gray(0.125, 2.5, 3.5)
	py.Round(2)
	if !equalValues(values(py), 0.12, 2.5, 3.5) {
		t.Errorf("Python Round(2) = %v", values(py))
	}
	py = gray(2.5, 3.5)
	py.Round(0)
	if !equalValues(values(py), 2, 4) {
		t.Errorf("Python Round(0) = %v, want half to even", values(py))
	}

	ieee := New[Unit](WithNumericPolicy(pymath.IEEE{}))
	ieee.Append(RGB{2.5, 3.5, -2.5})
	ieee.Round(0)
	if c, _ := ieee.Get(0); c != (RGB{3, 4, -3}) {
		t.Errorf("IEEE Round(0) = %v, want half away from zero", c)
	}
}

func TestZeroKeepsLength(t *testing.T) {
	l := NewList(Red, White, Blue)
	l.Zero()
	if l.Len() != 3 {
		t.Fatalf("Zero() changed length to %d", l.Len())
	}
	for i, c := range l.All() {
		if c != Black {
			t.Errorf("color %d = %v after Zero, want black", i, c)
		}
	}
}

func TestClearEmpties(t *testing.T) {
	l := NewList(Red, White, Blue)
	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("Clear() left %d colors", l.Len())
	}
	l.Append(Green)
	if c, _ := l.Get(0); l.Len() != 1 || c != Green {
		t.Errorf("list after Clear and Append = %v", l)
	}
}
