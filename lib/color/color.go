// Package color validates and inspects the CSS color strings accepted in
// shape styles.
package color

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	// DefaultFill is the fill color of rendered shapes without an explicit
	// background.
	DefaultFill = "black"
	// DefaultLine is the color of the orientation line drawn inside rendered
	// segments.
	DefaultLine = "white"

	Empty = ""
	None  = "none"
)

// Validate parses colorString and returns its normalized hex form.
func Validate(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	return c.HexString(), nil
}

// Darken decreases the luminance of the color by 10%.
func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return l, nil
}
