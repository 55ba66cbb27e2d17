package shape

import (
	"fmt"

	"github.com/unihd-cag/simple-geometry/lib/geo"
	"github.com/unihd-cag/simple-geometry/lib/go2"
)

// Rect is an axis-aligned rectangle defined by its center point, width and
// height. UserData is an arbitrary value carried along for styling and
// identification; the geometry never inspects it.
//
// The string form is "[left:right, bottom:top]", so NewRect(0, 0, 10, 20)
// prints as [-5:5, -10:10].
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	UserData interface{}
}

// NewRect creates a rect from its center point and size.
// It panics if width or height is negative.
func NewRect(x, y, width, height float64) *Rect {
	if width < 0 {
		panic(fmt.Sprintf("rect width must not be negative: %v", width))
	}
	if height < 0 {
		panic(fmt.Sprintf("rect height must not be negative: %v", height))
	}
	return &Rect{X: x, Y: y, Width: width, Height: height}
}

// FromSize creates a rect of the given size centered on the origin.
func FromSize(width, height float64) *Rect {
	return NewRect(0, 0, width, height)
}

// FromEdges creates a rect from its edge coordinates.
// It panics if left > right or bottom > top.
func FromEdges(left, right, bottom, top float64) *Rect {
	return NewRect((left+right)/2, (bottom+top)/2, right-left, top-bottom)
}

func (r *Rect) Left() float64   { return r.X - r.Width/2 }
func (r *Rect) Right() float64  { return r.X + r.Width/2 }
func (r *Rect) Bottom() float64 { return r.Y - r.Height/2 }
func (r *Rect) Top() float64    { return r.Y + r.Height/2 }

// LongSide is the longer of width and height.
func (r *Rect) LongSide() float64 {
	return go2.Max(r.Width, r.Height)
}

// ShortSide is the shorter of width and height.
func (r *Rect) ShortSide() float64 {
	return go2.Min(r.Width, r.Height)
}

// Anchor returns the position of one of the nine named points of the rect.
func (r *Rect) Anchor(a Anchor) *geo.Point {
	return AnchorPoint(r, a)
}

// Center is shorthand for Anchor(AnchorCenter).
func (r *Rect) Center() *geo.Point {
	return geo.NewPoint(r.X, r.Y)
}

func (r *Rect) MoveBy(delta *geo.Point) {
	r.X += delta.X
	r.Y += delta.Y
}

// SetLeft translates the whole rect so its left edge lands on v.
func (r *Rect) SetLeft(v float64)   { moveEdgeTo(r, EdgeLeft, v) }
func (r *Rect) SetRight(v float64)  { moveEdgeTo(r, EdgeRight, v) }
func (r *Rect) SetBottom(v float64) { moveEdgeTo(r, EdgeBottom, v) }
func (r *Rect) SetTop(v float64)    { moveEdgeTo(r, EdgeTop, v) }

// MoveTo translates the whole rect so anchor a lands on p.
func (r *Rect) MoveTo(a Anchor, p *geo.Point) *Rect {
	moveAnchorTo(r, a, p)
	return r
}

// SetCenter is shorthand for MoveTo(AnchorCenter, p).
func (r *Rect) SetCenter(p *geo.Point) *Rect {
	return r.MoveTo(AnchorCenter, p)
}

// Translate applies move directives built from handles, e.g.
//
//	r.Translate(BottomLeft.MoveTo(geo.Origin))          // bottom left corner to (0, 0)
//	r.Translate(Left.MoveToPosition(Right.By(1)))       // move right by width+1
func (r *Rect) Translate(moves ...Move) *Rect {
	for _, m := range moves {
		m.applyMove(r)
	}
	return r
}

// Stretch moves the given edges or corners while leaving the opposite edge or
// corner intact. Directives are built from the package handle variables:
//
//	r.Stretch(Left.To(0))                   // left edge to absolute 0
//	r.Stretch(Left.By(1))                   // left edge out by 1
//	r.Stretch(BottomLeft.To(geo.Origin))    // corner to (0, 0)
//	r.Stretch(Out.By(1))                    // all edges out by 1
//
// Absolute stretches of distinct edges commute, so
// r.Stretch(Left.To(0), Right.To(6)) equals r.Stretch(Left.To(0)) followed by
// r.Stretch(Right.To(6)).
func (r *Rect) Stretch(directives ...Stretch) *Rect {
	for _, d := range directives {
		d.applyStretch(r)
	}
	return r
}

// stretchEdgeBy moves a single edge. A positive offset always stretches away
// from the center for right/top and towards it for left/bottom; handles
// pre-apply their factor so that By(n) with n > 0 stretches outward on every
// edge.
func (r *Rect) stretchEdgeBy(e Edge, offset float64) {
	switch e {
	case EdgeLeft:
		r.Width -= offset
		r.X += offset / 2
	case EdgeRight:
		r.Width += offset
		r.X += offset / 2
	case EdgeBottom:
		r.Height -= offset
		r.Y += offset / 2
	case EdgeTop:
		r.Height += offset
		r.Y += offset / 2
	}
}

// IsInsideOf reports whether r lies fully inside other. The comparison is
// closed: a rect is inside an identical rect.
func (r *Rect) IsInsideOf(other Bounded) bool {
	return r.Left() >= other.Left() &&
		r.Right() <= other.Right() &&
		r.Bottom() >= other.Bottom() &&
		r.Top() <= other.Top()
}

// Contains is the inverse of IsInsideOf.
func (r *Rect) Contains(other Bounded) bool {
	return other.Left() >= r.Left() &&
		other.Right() <= r.Right() &&
		other.Bottom() >= r.Bottom() &&
		other.Top() <= r.Top()
}

// Intersection returns the overlapping region of r and other, or nil when
// they do not strictly overlap. Rects that merely share an edge do not
// intersect.
func (r *Rect) Intersection(other Bounded) *Rect {
	left := go2.Max(r.Left(), other.Left())
	right := go2.Min(r.Right(), other.Right())
	bottom := go2.Max(r.Bottom(), other.Bottom())
	top := go2.Min(r.Top(), other.Top())

	if left >= right || bottom >= top {
		return nil
	}
	return FromEdges(left, right, bottom, top)
}

// Union returns the smallest rect containing both r and other.
func (r *Rect) Union(other Bounded) *Rect {
	return FromEdges(
		go2.Min(r.Left(), other.Left()),
		go2.Max(r.Right(), other.Right()),
		go2.Min(r.Bottom(), other.Bottom()),
		go2.Max(r.Top(), other.Top()),
	)
}

// Copy returns a copy of the rect. The user data value is carried over by
// reference; use CopyWithUser to replace it.
func (r *Rect) Copy() *Rect {
	copied := *r
	return &copied
}

// CopyWithUser returns a copy of the rect with new user data.
func (r *Rect) CopyWithUser(user interface{}) *Rect {
	copied := r.Copy()
	copied.UserData = user
	return copied
}

func (r *Rect) Clone() Shape {
	return r.Copy()
}

func (r *Rect) User() interface{} {
	return r.UserData
}

func (r *Rect) String() string {
	return r.edgesString() + formatUser(r.UserData)
}

func (r *Rect) edgesString() string {
	return fmt.Sprintf("[%s:%s, %s:%s]",
		geo.FormatFloat(r.Left()), geo.FormatFloat(r.Right()),
		geo.FormatFloat(r.Bottom()), geo.FormatFloat(r.Top()))
}
