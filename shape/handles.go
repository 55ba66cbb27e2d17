package shape

import (
	"fmt"
	"strings"

	"github.com/unihd-cag/simple-geometry/lib/geo"
)

// Stretch is a directive consumed by Rect.Stretch. It is produced from the
// package handle variables, never constructed directly.
type Stretch interface {
	applyStretch(r *Rect)
}

// Move is a directive consumed by the Translate methods of Rect, Segment and
// Group.
type Move interface {
	applyMove(s Shape)
}

// EdgeHandle refers to one edge of a shape, optionally shifted by an offset.
// The zero-offset handles are the package variables Left, Right, Bottom and
// Top.
//
// Used as a stretch directive, an edge handle moves its edge by the offset
// while the opposite edge stays in place.
type EdgeHandle struct {
	edge   Edge
	factor float64
	offset float64
}

// Handles for the four edges of a shape.
var (
	Left   = EdgeHandle{EdgeLeft, -1, 0}
	Right  = EdgeHandle{EdgeRight, 1, 0}
	Bottom = EdgeHandle{EdgeBottom, -1, 0}
	Top    = EdgeHandle{EdgeTop, 1, 0}
)

// By offsets the edge away from the center of the shape. Negative amounts
// offset towards the center, so Left.By(-1) shrinks where Left.By(1) grows.
func (h EdgeHandle) By(offset float64) EdgeHandle {
	return EdgeHandle{h.edge, h.factor, h.offset + h.factor*offset}
}

// Position is the coordinate of the handle on s: the edge coordinate plus the
// handle's offset.
func (h EdgeHandle) Position(s Bounded) float64 {
	return EdgeCoord(s, h.edge) + h.offset
}

// To produces an absolute stretch directive that moves the edge to the given
// coordinate.
func (h EdgeHandle) To(target float64) Stretch {
	return edgeTarget{h.edge, target}
}

// MoveTo produces a move directive that translates the shape so the handle's
// position lands on v.
func (h EdgeHandle) MoveTo(v float64) Move {
	return edgeMove{h, func(Bounded) float64 { return v }}
}

// MoveToPosition is like MoveTo with the target evaluated against the shape
// when the move is applied, so Left.MoveToPosition(Right.By(1)) moves a shape
// right by its width plus one.
func (h EdgeHandle) MoveToPosition(target EdgeHandle) Move {
	return edgeMove{h, target.Position}
}

func (h EdgeHandle) applyStretch(r *Rect) {
	r.stretchEdgeBy(h.edge, h.offset)
}

func (h EdgeHandle) String() string {
	offset := ""
	if h.factor != 0 {
		offset = signedFloat(h.offset)
	}
	return fmt.Sprintf("stretch handle %s%s", h.edge, offset)
}

// edgeTarget is an absolute stretch: move the edge to a coordinate.
type edgeTarget struct {
	edge   Edge
	target float64
}

func (t edgeTarget) applyStretch(r *Rect) {
	r.stretchEdgeBy(t.edge, t.target-EdgeCoord(r, t.edge))
}

// edgeMove translates a shape so an edge handle's position reaches a target.
type edgeMove struct {
	handle EdgeHandle
	target func(Bounded) float64
}

func (m edgeMove) applyMove(s Shape) {
	offset := m.target(s) - m.handle.Position(s)
	if m.handle.edge.IsHorizontal() {
		s.MoveBy(geo.NewPoint(offset, 0))
	} else {
		s.MoveBy(geo.NewPoint(0, offset))
	}
}

// CornerHandle refers to one corner of a shape: a pair of edge handles. The
// zero-offset handles are the package variables TopLeft, TopRight, BottomLeft
// and BottomRight.
type CornerHandle struct {
	y EdgeHandle
	x EdgeHandle
}

// Handles for the four corners of a shape.
var (
	TopLeft     = CornerHandle{Top, Left}
	TopRight    = CornerHandle{Top, Right}
	BottomLeft  = CornerHandle{Bottom, Left}
	BottomRight = CornerHandle{Bottom, Right}
)

// By offsets the corner away from the center by the same amount on both axes.
func (h CornerHandle) By(offset float64) CornerHandle {
	return h.ByVector(geo.NewPoint(offset, offset))
}

// ByVector offsets the corner away from the center by v, component wise.
// Negative components offset towards the center.
func (h CornerHandle) ByVector(v *geo.Point) CornerHandle {
	return CornerHandle{h.y.By(v.Y), h.x.By(v.X)}
}

// Position is the position of the corner on s, shifted by the handle's
// offset.
func (h CornerHandle) Position(s Bounded) *geo.Point {
	return geo.NewPoint(h.x.Position(s), h.y.Position(s))
}

// To produces an absolute stretch directive that moves the corner to p while
// the opposite corner stays in place.
func (h CornerHandle) To(p *geo.Point) Stretch {
	return cornerTarget{h, p}
}

// MoveTo produces a move directive that translates the shape so the corner
// lands on p.
func (h CornerHandle) MoveTo(p *geo.Point) Move {
	return cornerMove{h, p}
}

func (h CornerHandle) applyStretch(r *Rect) {
	h.x.applyStretch(r)
	h.y.applyStretch(r)
}

func (h CornerHandle) String() string {
	vector := geo.NewPoint(h.x.offset, h.y.offset)
	return fmt.Sprintf("stretch handle %s_%s+%s", h.y.edge, h.x.edge, vector)
}

type cornerTarget struct {
	handle CornerHandle
	target *geo.Point
}

func (t cornerTarget) applyStretch(r *Rect) {
	t.handle.x.To(t.target.X).applyStretch(r)
	t.handle.y.To(t.target.Y).applyStretch(r)
}

type cornerMove struct {
	handle CornerHandle
	target *geo.Point
}

func (m cornerMove) applyMove(s Shape) {
	s.MoveBy(m.target.Subtract(m.handle.Position(s)))
}

// MultiHandle refers to several edges at once. The package variables are
// Width (left and right), Height (top and bottom), Out (all edges outward)
// and In (all edges inward).
type MultiHandle struct {
	name  string
	edges []EdgeHandle
}

var (
	Width  = MultiHandle{"width", []EdgeHandle{Left, Right}}
	Height = MultiHandle{"height", []EdgeHandle{Top, Bottom}}
	Out    = MultiHandle{"out", []EdgeHandle{Left, Right, Top, Bottom}}
	In     = MultiHandle{"in", []EdgeHandle{
		{EdgeLeft, 1, 0},
		{EdgeRight, -1, 0},
		{EdgeBottom, 1, 0},
		{EdgeTop, -1, 0},
	}}
)

// By offsets every edge of the handle away from the center, so Out.By(1)
// grows a rect by one on each side and In.By(1) shrinks it likewise.
func (h MultiHandle) By(offset float64) MultiHandle {
	edges := make([]EdgeHandle, len(h.edges))
	for i, e := range h.edges {
		edges[i] = e.By(offset)
	}
	return MultiHandle{h.name, edges}
}

func (h MultiHandle) applyStretch(r *Rect) {
	for _, e := range h.edges {
		e.applyStretch(r)
	}
}

func (h MultiHandle) String() string {
	handles := make([]string, len(h.edges))
	for i, e := range h.edges {
		handles[i] = fmt.Sprintf("%s%s", e.edge, signedFloat(e.offset))
	}
	return fmt.Sprintf("stretch handles %s", strings.Join(handles, ", "))
}

func signedFloat(v float64) string {
	s := geo.FormatFloat(v)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}
