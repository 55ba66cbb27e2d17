package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(3, -4)

	assert.Equal(t, Point{4, -2}, *p1.Add(p2))
	assert.Equal(t, Point{-2, 6}, *p1.Subtract(p2))
	assert.Equal(t, Point{2, 4}, *p1.Multiply(2))
	assert.Equal(t, Point{0.5, 1}, *p1.Divide(2))
	assert.Equal(t, Point{-1, -2}, *p1.Negate())

	// The operands are untouched.
	assert.Equal(t, Point{1, 2}, *p1)
	assert.Equal(t, Point{3, -4}, *p2)
}

func TestPointLength(t *testing.T) {
	assert.Equal(t, 5.0, NewPoint(3, 4).Length())
	assert.Equal(t, 0.0, Origin.Length())
}

func TestPointUnit(t *testing.T) {
	u := NewPoint(0, 10).Unit()
	assert.Equal(t, Point{0, 1}, *u)

	u = NewPoint(-3, 0).Unit()
	assert.Equal(t, Point{-1, 0}, *u)

	u = Origin.Unit()
	assert.True(t, math.IsNaN(u.X))
	assert.True(t, math.IsNaN(u.Y))
}

func TestPointEquality(t *testing.T) {
	assert.True(t, NewPoint(1, 2).Equals(NewPoint(1, 2)))
	assert.False(t, NewPoint(1, 2).Equals(NewPoint(2, 1)))

	c := NewPoint(1, 2).Copy()
	assert.True(t, c.Equals(NewPoint(1, 2)))
}

func TestPointToString(t *testing.T) {
	assert.Equal(t, "(1, 2)", NewPoint(1, 2).ToString())
	assert.Equal(t, "(0.5, -3)", NewPoint(0.5, -3).ToString())
}

func TestExtendVerticalLineSegments(t *testing.T) {
	p1 := &Point{0, 0}
	p2 := &Point{0, 1}

	v := p1.VectorTo(p2)
	v = v.Multiply(2)
	p2New := p1.AddVector(v)
	expected := Point{0, 2}
	assert.Equal(t, expected, *p2New)

	v = p2.VectorTo(p1)
	v = v.Multiply(2)
	p1New := p2.AddVector(v)
	expected = Point{0, -1}
	assert.Equal(t, expected, *p1New)
}

func TestExtendHorizontalLineSegment(t *testing.T) {
	p1 := &Point{0, 0}
	p2 := &Point{1, 0}

	v := p1.VectorTo(p2)
	v = v.Multiply(1.5)
	p2New := p1.AddVector(v)
	expected := Point{1.5, 0}
	assert.Equal(t, expected, *p2New)
}
