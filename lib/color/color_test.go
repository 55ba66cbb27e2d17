package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	hex, err := Validate("red")
	assert.NoError(t, err)
	assert.Equal(t, "#ff0000", hex)

	hex, err = Validate("#0f0")
	assert.NoError(t, err)
	assert.Equal(t, "#00ff00", hex)

	_, err = Validate("definitely not a color")
	assert.Error(t, err)
}

func TestLuminance(t *testing.T) {
	white, err := Luminance("white")
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, white, 0.001)

	black, err := Luminance("black")
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, black, 0.001)
}

func TestLuminanceCategory(t *testing.T) {
	for colorString, want := range map[string]string{
		"white":   "bright",
		"#cccccc": "normal",
		"gray":    "dark",
		"black":   "darker",
	} {
		got, err := LuminanceCategory(colorString)
		assert.NoError(t, err)
		assert.Equal(t, want, got, colorString)
	}
}

func TestDarken(t *testing.T) {
	darker, err := Darken("#ff0000")
	assert.NoError(t, err)
	assert.NotEqual(t, "#ff0000", darker)

	l1, err := Luminance("#ff0000")
	assert.NoError(t, err)
	l2, err := Luminance(darker)
	assert.NoError(t, err)
	assert.Less(t, l2, l1)
}
