package slicing

import (
	"errors"
	"testing"
)

func TestFixKey(t *testing.T) {
	tests := []struct {
		name   string
		key    int
		size   int
		want   int
		wantOK bool
	}{
		{"first", 0, 3, 0, true},
		{"last", 2, 3, 2, true},
		{"past end", 3, 3, 3, false},
		{"minus one", -1, 3, 2, true},
		{"minus size", -3, 3, 0, true},
		{"minus size minus one", -4, 3, -1, false},
		{"empty", 0, 0, 0, false},
		{"empty negative", -1, 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FixKey(tt.key, tt.size)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FixKey(%d, %d) = (%d, %v), want (%d, %v)",
					tt.key, tt.size, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		key, size, want int
	}{
		{1000, 3, 3},
		{3, 3, 3},
		{1, 3, 1},
		{-1, 3, 2},
		{-1000, 3, 0},
		{5, 0, 0},
		{-5, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.key, tt.size); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.key, tt.size, got, tt.want)
		}
	}
}

// pySlice mirrors list(range(size))[start:stop:step] by walking the resolved
// bounds, which is how every caller consumes Resolve.
func pySlice(start, stop, step, size int) []int {
	begin, end, err := Resolve(start, stop, step, size)
	if err != nil {
		return nil
	}
	n := Length(begin, end, step)
	out := make([]int, 0, n)
	for i, k := 0, begin; i < n; i, k = i+1, k+step {
		out = append(out, k)
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		size              int
		want              []int
	}{
		{"all", Omit, Omit, 1, 5, []int{0, 1, 2, 3, 4}},
		{"reversed", Omit, Omit, -1, 5, []int{4, 3, 2, 1, 0}},
		{"head", Omit, 2, 1, 5, []int{0, 1}},
		{"tail", -2, Omit, 1, 5, []int{3, 4}},
		{"every other", Omit, Omit, 2, 5, []int{0, 2, 4}},
		{"every other reversed", Omit, Omit, -2, 5, []int{4, 2, 0}},
		{"stop past end", 1, 100, 1, 5, []int{1, 2, 3, 4}},
		{"start before begin", -100, 2, 1, 5, []int{0, 1}},
		{"negative step clamps start", 100, Omit, -1, 3, []int{2, 1, 0}},
		{"negative step stop", 4, 1, -1, 5, []int{4, 3, 2}},
		{"negative step negative stop", Omit, -100, -1, 3, []int{2, 1, 0}},
		{"empty forward", 3, 1, 1, 5, []int{}},
		{"empty backward", 1, 3, -1, 5, []int{}},
		{"empty sequence", Omit, Omit, 1, 0, []int{}},
		{"empty sequence reversed", Omit, Omit, -1, 0, []int{}},
		{"step three", 1, Omit, 3, 8, []int{1, 4, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pySlice(tt.start, tt.stop, tt.step, tt.size)
			if len(got) != len(tt.want) {
				t.Fatalf("slice = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("slice = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestResolveZeroStep(t *testing.T) {
	if _, _, err := Resolve(Omit, Omit, 0, 3); !errors.Is(err, ErrZeroStep) {
		t.Errorf("Resolve with zero step: err = %v, want ErrZeroStep", err)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		begin, end, step, want int
	}{
		{0, 5, 1, 5},
		{0, 5, 2, 3},
		{5, 0, 1, 0},
		{4, -1, -1, 5},
		{4, -1, -2, 3},
		{0, 4, -1, 0},
		{2, 2, 1, 0},
	}

	for _, tt := range tests {
		if got := Length(tt.begin, tt.end, tt.step); got != tt.want {
			t.Errorf("Length(%d, %d, %d) = %d, want %d", tt.begin, tt.end, tt.step, got, tt.want)
		}
	}
}
