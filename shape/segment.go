package shape

import (
	"errors"
	"fmt"

	"github.com/unihd-cag/simple-geometry/lib/geo"
)

// Segment is an oriented path segment: a rectangle plus a direction along one
// of the coordinate axes. The string form is the rect's plus the direction,
// e.g. "[-5:5, -10:10] (up)".
type Segment struct {
	Rect
	Direction geo.Direction
}

// NewSegment creates a segment from a center point, size and direction.
func NewSegment(x, y, width, height float64, direction geo.Direction) *Segment {
	return &Segment{Rect: *NewRect(x, y, width, height), Direction: direction}
}

// SegmentFromRect creates a segment covering rect, pointing in direction.
// The rect's user data is carried over.
func SegmentFromRect(r *Rect, direction geo.Direction) *Segment {
	return &Segment{Rect: *r.Copy(), Direction: direction}
}

// SegmentFromStartEnd creates a segment from its start point, end point and
// thickness. The direction is inferred; the two points must share an axis.
func SegmentFromStartEnd(start, end *geo.Point, thickness float64) (*Segment, error) {
	center := end.Add(start).Divide(2)

	var direction geo.Direction
	var width, height float64
	switch {
	case start.X == end.X:
		if end.Y > start.Y {
			direction = geo.Up
		} else {
			direction = geo.Down
		}
		width = thickness
		height = end.Subtract(start).Length()
	case start.Y == end.Y:
		if end.X > start.X {
			direction = geo.Right
		} else {
			direction = geo.Left
		}
		width = end.Subtract(start).Length()
		height = thickness
	default:
		return nil, errors.New("segment must be parallel to one of the coordinate axes")
	}

	return NewSegment(center.X, center.Y, width, height, direction), nil
}

// startAnchor is where the segment begins, e.g. the bottom center for
// direction up.
func startAnchor(d geo.Direction) Anchor {
	switch d {
	case geo.Up:
		return AnchorBottomCenter
	case geo.Down:
		return AnchorTopCenter
	case geo.Left:
		return AnchorCenterRight
	default:
		return AnchorCenterLeft
	}
}

func endAnchor(d geo.Direction) Anchor {
	return startAnchor(d.GetOpposite())
}

// Start is the start point of the segment. For direction up it coincides with
// the bottom center of the underlying rect.
func (s *Segment) Start() *geo.Point {
	return s.Anchor(startAnchor(s.Direction))
}

// SetStart translates the whole segment so its start point lands on p.
func (s *Segment) SetStart(p *geo.Point) {
	moveAnchorTo(s, startAnchor(s.Direction), p)
}

// End is the end point of the segment. For direction up it coincides with the
// top center of the underlying rect.
func (s *Segment) End() *geo.Point {
	return s.Anchor(endAnchor(s.Direction))
}

// SetEnd translates the whole segment so its end point lands on p.
func (s *Segment) SetEnd(p *geo.Point) {
	moveAnchorTo(s, endAnchor(s.Direction), p)
}

// Length is the side along the segment's direction: the width for horizontal
// segments, the height for vertical ones.
func (s *Segment) Length() float64 {
	if s.Direction.IsHorizontal() {
		return s.Width
	}
	return s.Height
}

// Thickness is the side perpendicular to the segment's direction.
func (s *Segment) Thickness() float64 {
	if s.Direction.IsHorizontal() {
		return s.Height
	}
	return s.Width
}

// ToRect returns a copy of the underlying rect without the orientation.
func (s *Segment) ToRect() *Rect {
	return s.Rect.Copy()
}

// Translate applies move directives, like Rect.Translate.
func (s *Segment) Translate(moves ...Move) *Segment {
	for _, m := range moves {
		m.applyMove(s)
	}
	return s
}

func (s *Segment) Copy() *Segment {
	copied := *s
	return &copied
}

func (s *Segment) Clone() Shape {
	return s.Copy()
}

func (s *Segment) String() string {
	return fmt.Sprintf("%s (%s)%s", s.edgesString(), s.Direction, formatUser(s.UserData))
}
