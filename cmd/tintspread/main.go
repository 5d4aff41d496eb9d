// Command tintspread prints or renders a color gradient described by a
// spread of weights and colors.
//
// Usage:
//
//	tintspread [flags] [token ...]
//
// Tokens are whole-number weights and colors (names, "#rrggbb", "0xrrggbb"
// or "(r, g, b)" tuples). A weight sets how many steps lead to the next
// color:
//
//	tintspread black 4 white
//	tintspread -spec "red 10 '(1, 1, 0)' 10 blue" -png ramp.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/gogpu/tint"
)

type config struct {
	resample int
	linear   bool
	hsv      bool
	png      string
	cell     int
}

func main() {
	var (
		spec   = flag.String("spec", "", "spread tokens as one shell-quoted string")
		scale  = flag.String("scale", "unit", "channel scale for printed values: unit or byte")
		hsv    = flag.Bool("hsv", false, "print hue, saturation and value instead of colors")
		out    = flag.String("png", "", "also render a swatch PNG to this file")
		cell   = flag.Int("cell", 56, "swatch cell size in pixels")
		n      = flag.Int("resample", 0, "resample the spread to this many colors")
		linear = flag.Bool("linear", false, "mix colors in linear light when resampling")
		debug  = flag.Bool("debug", false, "log library debug output to stderr")
	)
	flag.Parse()

	if *debug {
		tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	words := flag.Args()
	if *spec != "" {
		split, err := shellquote.Split(*spec)
		if err != nil {
			log.Fatalf("Bad -spec: %v", err)
		}
		words = append(split, words...)
	}
	if len(words) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config{resample: *n, linear: *linear, hsv: *hsv, png: *out, cell: *cell}
	tokens := parseTokens(words)

	var err error
	switch *scale {
	case "unit":
		err = run[tint.Unit](os.Stdout, tokens, cfg)
	case "byte":
		err = run[tint.Byte](os.Stdout, tokens, cfg)
	default:
		log.Fatalf("Unknown -scale %q: want unit or byte", *scale)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// parseTokens turns command-line words into spread tokens: integers are
// weights and everything else is color text.
func parseTokens(words []string) []any {
	tokens := make([]any, 0, len(words))
	for _, w := range words {
		if n, err := strconv.Atoi(w); err == nil {
			tokens = append(tokens, n)
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// run builds the spread, prints one line per color and optionally writes
// the swatch.
func run[T tint.Channel[T]](w io.Writer, tokens []any, cfg config) error {
	l, err := tint.SpreadTokens[T](tokens)
	if err != nil {
		return err
	}
	if cfg.resample > 0 {
		if l, err = l.Resample(cfg.resample, cfg.linear); err != nil {
			return err
		}
	}

	if cfg.png != "" {
		if err := writeSwatch(cfg.png, l, cfg.cell); err != nil {
			return err
		}
		log.Printf("Swatch saved to %s (%d colors)\n", cfg.png, l.Len())
	}

	if cfg.hsv {
		l.RGBToHSV()
		for _, c := range l.All() {
			fmt.Fprintf(w, "%g %g %g\n", c[0], c[1], c[2])
		}
		return nil
	}
	for _, c := range l.All() {
		fmt.Fprintf(w, "%-16s %g %g %g\n", c, c[0], c[1], c[2])
	}
	return nil
}
