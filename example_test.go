package tint_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/tint"
	"github.com/gogpu/tint/pymath"
)

func ExampleSpreadTokens() {
	l, err := tint.SpreadTokens[tint.Unit]([]any{2, "red", 2, "blue"})
	if err != nil {
		panic(err)
	}
	fmt.Println(l)
	// Output: [red, (0.5, 0, 0.5), blue]
}

func ExampleList_GetSlice() {
	l := tint.NewList(tint.Red, tint.White, tint.Blue, tint.Black)
	rev, _ := l.GetSlice(tint.Slice(tint.Omit, tint.Omit, -1))
	fmt.Println(rev)
	// Output: [black, blue, white, red]
}

func ExampleList_Div() {
	l := tint.NewList(tint.RGB{1, 0.5, 0})
	err := l.Div(tint.Scalar[tint.Unit](0))
	fmt.Println(errors.Is(err, pymath.ErrZeroDivision))
	fmt.Println(l)
	// Output:
	// true
	// [(1, 0.5, 0)]
}

func ExampleAddOver() {
	l := tint.NewList(tint.Black)
	out, _ := tint.AddOver(tint.Scalar[tint.Unit](0.5), tint.Of(l))
	fmt.Println(out, l)
	// Output: [(0.5, 0.5, 0.5)] [black]
}

func ExampleColor_ToHSV() {
	hsv := tint.RGB255{255, 0, 0}.ToHSV()
	fmt.Println(hsv[0], hsv[1], hsv[2])
	// Output: 0 255 255
}
