package geo

import (
	"fmt"
	"math"
)

// Point is a position in 2D space. The y axis grows upward, as on a math
// plot, not downward like in SVG coordinates.
//
// All arithmetic methods return new points and never mutate the receiver.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Origin is the zero point.
var Origin = NewPoint(0, 0)

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return p1.X == p2.X && p1.Y == p2.Y
}

func (p1 *Point) Compare(p2 *Point) int {
	xCompare := Sign(p1.X - p2.X)
	if xCompare == 0 {
		return Sign(p1.Y - p2.Y)
	}
	return xCompare
}

// Add adds two points component wise.
func (p1 *Point) Add(p2 *Point) *Point {
	return NewPoint(p1.X+p2.X, p1.Y+p2.Y)
}

// Subtract subtracts two points component wise.
func (p1 *Point) Subtract(p2 *Point) *Point {
	return NewPoint(p1.X-p2.X, p1.Y-p2.Y)
}

// Multiply scales both components by f.
func (p *Point) Multiply(f float64) *Point {
	return NewPoint(p.X*f, p.Y*f)
}

// Divide divides both components by f.
func (p *Point) Divide(f float64) *Point {
	return NewPoint(p.X/f, p.Y/f)
}

// Dot is the dot product of the two points taken as vectors.
func (p1 *Point) Dot(p2 *Point) float64 {
	return p1.X*p2.X + p1.Y*p2.Y
}

func (p *Point) Negate() *Point {
	return NewPoint(-p.X, -p.Y)
}

// Length is the distance from the origin.
func (p *Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Unit returns a point with the same direction and length 1.
// The components of the unit of the zero point are NaN.
func (p *Point) Unit() *Point {
	return p.Divide(p.Length())
}

// Transpose returns the point with x and y flipped.
func (p *Point) Transpose() *Point {
	return NewPoint(p.Y, p.X)
}

// Interpolate returns the point t of the way between a and b.
func (a *Point) Interpolate(b *Point, t float64) *Point {
	return NewPoint(
		a.X*(1.0-t)+b.X*t,
		a.Y*(1.0-t)+b.Y*t,
	)
}

// Moves the given point by Vector
func (start *Point) AddVector(v Vector) *Point {
	return start.ToVector().Add(v).ToPoint()
}

// Creates a Vector of the size between start and endpoint, pointing to endpoint
func (start *Point) VectorTo(endpoint *Point) Vector {
	return endpoint.ToVector().Minus(start.ToVector())
}

// Creates a Vector pointing to point
func (endpoint *Point) ToVector() Vector {
	return []float64{endpoint.X, endpoint.Y}
}

// ToString formats the point as "(x, y)". Floats with an integral value are
// printed without a decimal part, so NewPoint(1, 2.5) prints as "(1, 2.5)".
func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%s, %s)", FormatFloat(p.X), FormatFloat(p.Y))
}

func (p *Point) String() string {
	return p.ToString()
}
