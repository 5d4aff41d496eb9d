package codec

import (
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// byLevels maps an 8-bit color to the first of its names in alphabetical
// order, so that "aqua" wins over "cyan" and "gray" over "grey".
var byLevels = func() map[[3]uint8]string {
	m := make(map[[3]uint8]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		k := [3]uint8{c.R, c.G, c.B}
		if _, ok := m[k]; !ok {
			m[k] = name
		}
	}
	return m
}()

// foldName reduces a color name to its table key: case folded with spaces,
// dashes and underscores removed.
func foldName(name string) string {
	name = cases.Fold().String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, name)
}

// Lookup returns the normalized color for a name.
func Lookup(name string) ([3]float64, bool) {
	c, ok := colornames.Map[foldName(name)]
	if !ok {
		return [3]float64{}, false
	}
	return [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}, true
}

// NameOf returns the name of a normalized color, if it has one. Only colors
// whose channels sit exactly on 8-bit levels can have a name.
func NameOf(c [3]float64) (string, bool) {
	if !is8Bit(c) {
		return "", false
	}
	name, ok := byLevels[[3]uint8{level(c[0]), level(c[1]), level(c[2])}]
	return name, ok
}

// ColorNames returns all known color names in alphabetical order.
func ColorNames() []string {
	return append([]string(nil), colornames.Names...)
}
