package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionVector(t *testing.T) {
	assert.Equal(t, Point{0, 1}, *Up.Vector())
	assert.Equal(t, Point{0, -1}, *Down.Vector())
	assert.Equal(t, Point{-1, 0}, *Left.Vector())
	assert.Equal(t, Point{1, 0}, *Right.Vector())

	assert.Equal(t, Point{0, 3}, *Up.Multiply(3))
	assert.Equal(t, Point{-2.5, 0}, *Left.Multiply(2.5))
}

func TestDirectionOrientation(t *testing.T) {
	assert.True(t, Left.IsHorizontal())
	assert.True(t, Right.IsHorizontal())
	assert.False(t, Up.IsHorizontal())

	assert.True(t, Up.IsVertical())
	assert.True(t, Down.IsVertical())
	assert.False(t, Right.IsVertical())
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, Down, Up.GetOpposite())
	assert.Equal(t, Up, Down.GetOpposite())
	assert.Equal(t, Right, Left.GetOpposite())
	assert.Equal(t, Left, Right.GetOpposite())
}

func TestParseDirection(t *testing.T) {
	for _, want := range []Direction{Up, Down, Left, Right} {
		got, err := ParseDirection(want.ToString())
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDirection("diagonal")
	assert.Error(t, err)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "2", FormatFloat(2))
	assert.Equal(t, "-2", FormatFloat(-2))
	assert.Equal(t, "2.5", FormatFloat(2.5))
	assert.Equal(t, "0", FormatFloat(0))
}
