// Package sigil classifies questionnaire answers into a four-letter sigil
// code and describes the sixteen resulting types.
package sigil

import (
	"fmt"
	"strings"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// Axis is one binary trait axis. First is the default pole.
type Axis struct {
	First  byte
	Second byte
	Name   string
}

// Axes lists the four axes in code order.
var Axes = [4]Axis{
	{First: 'V', Second: 'S', Name: "catalyst/ward"},
	{First: 'I', Second: 'C', Name: "aether/terra"},
	{First: 'E', Second: 'L', Name: "chalice/blade"},
	{First: 'Q', Second: 'D', Name: "spark/rune"},
}

// Code is a four-letter sigil code such as "VIEQ".
type Code string

// DefaultCode is used when a reading is requested without a sigil.
const DefaultCode Code = "VIEQ"

// axisOf returns the axis index and whether letter is that axis' first pole.
func axisOf(letter byte) (idx int, first bool, ok bool) {
	for i, a := range Axes {
		switch letter {
		case a.First:
			return i, true, true
		case a.Second:
			return i, false, true
		}
	}
	return 0, false, false
}

// ParseCode validates s: exactly one letter per axis, in axis order.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != len(Axes) {
		return "", fmt.Errorf("%w: %q must have %d letters", domain.ErrInvalidSigil, s, len(Axes))
	}
	for i, a := range Axes {
		if s[i] != a.First && s[i] != a.Second {
			return "", fmt.Errorf("%w: %q letter %d must be %c or %c", domain.ErrInvalidSigil, s, i+1, a.First, a.Second)
		}
	}
	return Code(s), nil
}

// Core returns the first letter, the code's core trait.
func (c Code) Core() byte {
	if c == "" {
		return 0
	}
	return c[0]
}

// Has reports whether the code contains letter.
func (c Code) Has(letter byte) bool {
	return strings.IndexByte(string(c), letter) >= 0
}

// Dominance names the pole a code takes on the last three axes.
type Dominance struct {
	ArcanaFocus  string // aether | terra
	EmotionFocus string // chalice | blade
	ActionFocus  string // spark | rune
}

// AxisDominance reads the I/C, E/L and Q/D letters of c.
func AxisDominance(c Code) Dominance {
	at := func(i int) byte {
		if i < len(c) {
			return c[i]
		}
		return 0
	}
	d := Dominance{ArcanaFocus: "terra", EmotionFocus: "blade", ActionFocus: "rune"}
	if at(1) == 'I' {
		d.ArcanaFocus = "aether"
	}
	if at(2) == 'E' {
		d.EmotionFocus = "chalice"
	}
	if at(3) == 'Q' {
		d.ActionFocus = "spark"
	}
	return d
}
