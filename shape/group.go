package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unihd-cag/simple-geometry/lib/geo"
)

// Group is an ordered collection of shapes or nested groups with a maintained
// bounding box.
//
// The bounding box only ever grows: it is extended on Append but the group
// does not track mutations of shapes it already contains. After changing a
// contained shape in place, call Update.
type Group struct {
	Shapes []Shape
	// BBox is the bounding box of all contained shapes. It is nil while the
	// group is empty.
	BBox *Rect

	UserData interface{}
}

func NewGroup(shapes ...Shape) *Group {
	g := &Group{}
	g.AppendAll(shapes...)
	return g
}

// Append adds one shape to the group and extends the bounding box.
func (g *Group) Append(s Shape) {
	g.Shapes = append(g.Shapes, s)
	g.growBBox(s)
}

// AppendAll adds all given shapes to the group.
func (g *Group) AppendAll(shapes ...Shape) {
	for _, s := range shapes {
		g.Append(s)
	}
}

func (g *Group) growBBox(s Shape) {
	if g.BBox == nil {
		g.BBox = FromEdges(s.Left(), s.Right(), s.Bottom(), s.Top())
		return
	}
	if s.Left() < g.BBox.Left() {
		g.BBox.Stretch(Left.To(s.Left()))
	}
	if s.Right() > g.BBox.Right() {
		g.BBox.Stretch(Right.To(s.Right()))
	}
	if s.Bottom() < g.BBox.Bottom() {
		g.BBox.Stretch(Bottom.To(s.Bottom()))
	}
	if s.Top() > g.BBox.Top() {
		g.BBox.Stretch(Top.To(s.Top()))
	}
}

// Update recalculates the bounding box from all contained shapes. This is
// necessary after a contained shape was changed in place.
func (g *Group) Update() {
	for _, s := range g.Shapes {
		g.growBBox(s)
	}
}

func (g *Group) bbox() *Rect {
	if g.BBox == nil {
		panic("group has no shapes")
	}
	return g.BBox
}

func (g *Group) Left() float64   { return g.bbox().Left() }
func (g *Group) Right() float64  { return g.bbox().Right() }
func (g *Group) Bottom() float64 { return g.bbox().Bottom() }
func (g *Group) Top() float64    { return g.bbox().Top() }

// Center is the center of the bounding box.
func (g *Group) Center() *geo.Point {
	return g.bbox().Center()
}

func (g *Group) Width() float64  { return g.bbox().Width }
func (g *Group) Height() float64 { return g.bbox().Height }

// MoveBy translates every contained shape and the bounding box rigidly.
func (g *Group) MoveBy(delta *geo.Point) {
	if g.BBox == nil {
		return
	}
	for _, s := range g.Shapes {
		s.MoveBy(delta)
	}
	g.BBox.MoveBy(delta)
}

// SetLeft translates the whole group so the bounding box's left edge lands on
// v.
func (g *Group) SetLeft(v float64)   { moveEdgeTo(g, EdgeLeft, v) }
func (g *Group) SetRight(v float64)  { moveEdgeTo(g, EdgeRight, v) }
func (g *Group) SetBottom(v float64) { moveEdgeTo(g, EdgeBottom, v) }
func (g *Group) SetTop(v float64)    { moveEdgeTo(g, EdgeTop, v) }

// MoveTo translates the whole group so bounding box anchor a lands on p.
func (g *Group) MoveTo(a Anchor, p *geo.Point) *Group {
	moveAnchorTo(g, a, p)
	return g
}

// SetCenter is shorthand for MoveTo(AnchorCenter, p).
func (g *Group) SetCenter(p *geo.Point) *Group {
	return g.MoveTo(AnchorCenter, p)
}

// Translate applies move directives, like Rect.Translate.
func (g *Group) Translate(moves ...Move) *Group {
	for _, m := range moves {
		m.applyMove(g)
	}
	return g
}

// Copy deep-copies the group and all contained shapes.
func (g *Group) Copy() *Group {
	copied := &Group{UserData: g.UserData}
	for _, s := range g.Shapes {
		copied.Append(s.Clone())
	}
	return copied
}

func (g *Group) Clone() Shape {
	return g.Copy()
}

func (g *Group) User() interface{} {
	return g.UserData
}

func (g *Group) String() string {
	inner := make([]string, len(g.Shapes))
	for i, s := range g.Shapes {
		inner[i] = s.String()
	}
	bbox := ""
	if g.BBox != nil {
		bbox = " " + g.BBox.String()
	}
	return fmt.Sprintf("{%s}%s", strings.Join(inner, ", "), bbox)
}

// PathFromPoints creates a path, a group of segments, from a list of absolute
// points. Consecutive points must share an axis. Interior endpoints are
// padded by thickness/2 so that joints overlap squarely; duplicate
// consecutive points are skipped. The user data is attached to every segment.
//
//	                     end
//	                 +----O----+
//	                 |    |    |
//	             +---+----|----|    ---
//	             |   |    |    |     |
//	    start -> O--------O----+   thickness
//	             |   |    |    |     |
//	             +--------+----+    ---
func PathFromPoints(thickness float64, user interface{}, points ...*geo.Point) (*Group, error) {
	if len(points) < 2 {
		return nil, errors.New("path needs at least two points")
	}

	g := &Group{UserData: user}
	lastIndex := len(points) - 2
	for i := 0; i <= lastIndex; i++ {
		start, end := points[i], points[i+1]
		if start.X != end.X && start.Y != end.Y {
			return nil, fmt.Errorf("consecutive path points must share an axis: %s -> %s", start, end)
		}
		if start.Equals(end) {
			continue
		}
		pad := end.Subtract(start).Unit().Multiply(thickness / 2)
		if i > 0 {
			start = start.Subtract(pad)
		}
		if i < lastIndex {
			end = end.Add(pad)
		}
		segment, err := SegmentFromStartEnd(start, end, thickness)
		if err != nil {
			return nil, err
		}
		segment.UserData = user
		g.Append(segment)
	}
	return g, nil
}

// PathFromVectors creates a path from a starting point and cumulative
// direction vectors, e.g. geo.Right.Multiply(10) followed by
// geo.Up.Multiply(5).
func PathFromVectors(thickness float64, user interface{}, start *geo.Point, vectors ...*geo.Point) (*Group, error) {
	points := make([]*geo.Point, 0, len(vectors)+1)
	points = append(points, start)
	current := start
	for _, v := range vectors {
		current = current.Add(v)
		points = append(points, current)
	}
	return PathFromPoints(thickness, user, points...)
}

// GridCell is one cell produced by Grid: the copy of the template group plus
// its column and row index.
type GridCell struct {
	Col   int
	Row   int
	Group *Group
}

// Grid spans a grid of copies of the group, laid out edge to edge.
// g.Grid(5, geo.Right, 3, geo.Down) produces 5 times 3 copies growing
// rightward and downward from the group's own position:
//
//	XOOOO
//	OOOOO
//	OOOOO
//
// X is the position of the original group. Cells are produced row by row.
func (g *Group) Grid(xSteps int, xDirection geo.Direction, ySteps int, yDirection geo.Direction) ([]GridCell, error) {
	xTarget, xSource, err := gridEdges(xDirection)
	if err != nil {
		return nil, err
	}
	yTarget, ySource, err := gridEdges(yDirection)
	if err != nil {
		return nil, err
	}

	cells := make([]GridCell, 0, xSteps*ySteps)
	for row, rowGroup := range gridLine(g, yTarget, ySource, ySteps) {
		for col, cell := range gridLine(rowGroup, xTarget, xSource, xSteps) {
			cells = append(cells, GridCell{Col: col, Row: row, Group: cell})
		}
	}
	return cells, nil
}

// gridEdges maps a direction to the edge that moves (target) and the edge it
// moves onto (source): stepping right sets the left edge to the right edge.
func gridEdges(d geo.Direction) (target, source Edge, err error) {
	switch d {
	case geo.Up:
		source = EdgeTop
	case geo.Down:
		source = EdgeBottom
	case geo.Left:
		source = EdgeLeft
	case geo.Right:
		source = EdgeRight
	default:
		return 0, 0, fmt.Errorf("grid direction must be up, down, left or right")
	}
	return source.GetOpposite(), source, nil
}

func gridLine(g *Group, target, source Edge, times int) []*Group {
	if times < 1 {
		return nil
	}
	cursor := g.Copy()
	line := []*Group{cursor.Copy()}
	for i := 1; i < times; i++ {
		moveEdgeTo(cursor, target, EdgeCoord(cursor, source))
		line = append(line, cursor.Copy())
	}
	return line
}
