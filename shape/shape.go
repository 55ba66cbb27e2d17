// Package shape implements axis-aligned 2D shapes: rectangles with a
// declarative stretch/translate handle algebra, oriented path segments and
// nestable groups with bounding-box bookkeeping.
//
// Shapes live on a plane whose y axis grows upward. Rectangles are described
// by their center point plus width and height, so an edge coordinate is
// always center ± size/2.
package shape

import (
	"fmt"

	"github.com/unihd-cag/simple-geometry/lib/geo"
)

// Bounded is anything with four axis-aligned edges.
type Bounded interface {
	Left() float64
	Right() float64
	Bottom() float64
	Top() float64
}

// Shape is the common interface of Rect, Segment and Group.
//
// Shapes are not safe for concurrent mutation; they are plain data
// structures, like the rest of this package.
type Shape interface {
	Bounded

	// MoveBy translates the shape rigidly by delta.
	MoveBy(delta *geo.Point)
	// Clone returns a deep copy. The user data value itself is carried over
	// by reference.
	Clone() Shape
	// User returns the user data attached to the shape, if any.
	User() interface{}

	fmt.Stringer
}

// Edge identifies one of the four edges of a Bounded shape.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeBottom
	EdgeTop
)

func (e Edge) ToString() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeTop:
		return "top"
	default:
		return ""
	}
}

func (e Edge) String() string {
	return e.ToString()
}

func (e Edge) GetOpposite() Edge {
	switch e {
	case EdgeLeft:
		return EdgeRight
	case EdgeRight:
		return EdgeLeft
	case EdgeBottom:
		return EdgeTop
	default:
		return EdgeBottom
	}
}

// IsHorizontal reports whether moving the edge changes the x axis.
func (e Edge) IsHorizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// EdgeCoord returns the coordinate of edge e: an x value for left/right, a y
// value for bottom/top.
func EdgeCoord(s Bounded, e Edge) float64 {
	switch e {
	case EdgeLeft:
		return s.Left()
	case EdgeRight:
		return s.Right()
	case EdgeBottom:
		return s.Bottom()
	default:
		return s.Top()
	}
}

// Anchor identifies one of the nine named points of a Bounded shape: the four
// corners, the four edge midpoints and the center.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// AnchorPoint returns the position of anchor a on s.
func AnchorPoint(s Bounded, a Anchor) *geo.Point {
	var x, y float64

	switch a {
	case AnchorTopLeft, AnchorCenterLeft, AnchorBottomLeft:
		x = s.Left()
	case AnchorTopCenter, AnchorCenter, AnchorBottomCenter:
		x = (s.Left() + s.Right()) / 2
	default:
		x = s.Right()
	}

	switch a {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		y = s.Top()
	case AnchorCenterLeft, AnchorCenter, AnchorCenterRight:
		y = (s.Bottom() + s.Top()) / 2
	default:
		y = s.Bottom()
	}

	return geo.NewPoint(x, y)
}

// moveEdgeTo translates s rigidly so that edge e lands on coordinate v.
func moveEdgeTo(s Shape, e Edge, v float64) {
	offset := v - EdgeCoord(s, e)
	if e.IsHorizontal() {
		s.MoveBy(geo.NewPoint(offset, 0))
	} else {
		s.MoveBy(geo.NewPoint(0, offset))
	}
}

// moveAnchorTo translates s rigidly so that anchor a lands on p.
func moveAnchorTo(s Shape, a Anchor, p *geo.Point) {
	s.MoveBy(p.Subtract(AnchorPoint(s, a)))
}

func formatUser(user interface{}) string {
	if user == nil {
		return ""
	}
	if s, ok := user.(string); ok {
		return fmt.Sprintf(" %q", s)
	}
	return fmt.Sprintf(" %v", user)
}
