package shape

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unihd-cag/simple-geometry/lib/geo"
)

func TestGroupBBoxGrowsOnAppend(t *testing.T) {
	g := NewGroup()
	assert.Nil(t, g.BBox)

	g.Append(FromEdges(0, 10, 0, 4))
	assert.Equal(t, 0.0, g.Left())
	assert.Equal(t, 10.0, g.Right())

	g.Append(FromEdges(-5, 5, 2, 8))
	assert.Equal(t, -5.0, g.Left())
	assert.Equal(t, 10.0, g.Right())
	assert.Equal(t, 0.0, g.Bottom())
	assert.Equal(t, 8.0, g.Top())
}

func TestGroupEmptyPanics(t *testing.T) {
	g := NewGroup()
	assert.Panics(t, func() { g.Left() })
	assert.Panics(t, func() { g.Center() })
}

func TestGroupUpdate(t *testing.T) {
	r := FromEdges(0, 10, 0, 4)
	g := NewGroup(r)

	// The group does not see in-place mutations...
	r.MoveBy(geo.NewPoint(100, 0))
	assert.Equal(t, 10.0, g.Right())

	// ...until Update is called. The bounding box only grows.
	g.Update()
	assert.Equal(t, 110.0, g.Right())
	assert.Equal(t, 0.0, g.Left())
}

func TestGroupMoveBy(t *testing.T) {
	r := FromEdges(0, 10, 0, 4)
	s := NewSegment(0, 0, 2, 10, geo.Up)
	g := NewGroup(r, s)

	g.MoveBy(geo.NewPoint(1, 2))

	assert.Equal(t, 1.0, r.Left())
	assert.Equal(t, geo.Point{X: 1, Y: 2}, *s.Center())
	// The bbox moved with the shapes.
	assert.Equal(t, -3.0, g.Bottom())
	assert.Equal(t, 11.0, g.Right())
}

func TestGroupEdgeSettersTranslateChildren(t *testing.T) {
	a := FromEdges(0, 10, 0, 4)
	b := FromEdges(20, 30, 0, 4)
	g := NewGroup(a, b)

	g.SetLeft(100)

	// Both children moved rigidly; their spacing is intact.
	assert.Equal(t, 100.0, g.Left())
	assert.Equal(t, 100.0, a.Left())
	assert.Equal(t, 120.0, b.Left())
}

func TestGroupMoveToAnchor(t *testing.T) {
	g := NewGroup(FromEdges(0, 10, 0, 4))
	g.MoveTo(AnchorCenter, geo.Origin)

	assert.Equal(t, geo.Point{X: 0, Y: 0}, *g.Center())
	assert.Equal(t, -5.0, g.Left())
}

func TestGroupCopyIsDeep(t *testing.T) {
	r := FromEdges(0, 10, 0, 4)
	g := NewGroup(r)

	c := g.Copy()
	c.MoveBy(geo.NewPoint(5, 5))

	assert.Equal(t, 0.0, r.Left())
	assert.Equal(t, 0.0, g.Left())
	assert.Equal(t, 5.0, c.Left())
}

func TestGroupNesting(t *testing.T) {
	inner := NewGroup(FromEdges(0, 10, 0, 4))
	outer := NewGroup(inner, FromEdges(-5, 0, 0, 4))

	assert.Equal(t, -5.0, outer.Left())
	assert.Equal(t, 10.0, outer.Right())

	outer.MoveBy(geo.NewPoint(1, 0))
	assert.Equal(t, 1.0, inner.Left())
}

func TestGroupString(t *testing.T) {
	g := NewGroup(FromEdges(0, 2, 0, 2))
	assert.Equal(t, "{[0:2, 0:2]} [0:2, 0:2]", g.String())
}

func TestPathFromPoints(t *testing.T) {
	g, err := PathFromPoints(2, "red",
		geo.NewPoint(0, 0),
		geo.NewPoint(0, 10),
		geo.NewPoint(10, 10),
	)
	require.NoError(t, err)
	require.Len(t, g.Shapes, 2)

	first := g.Shapes[0].(*Segment)
	assert.Equal(t, geo.Up, first.Direction)
	// The interior joint is padded by thickness/2 so the corner is square.
	assert.Equal(t, 11.0, first.Length())
	assert.Equal(t, "red", first.UserData)

	second := g.Shapes[1].(*Segment)
	assert.Equal(t, geo.Right, second.Direction)
	assert.Equal(t, -1.0, second.Left())
	assert.Equal(t, 10.0, second.Right())

	assert.Equal(t, "red", g.UserData)
	assert.Equal(t, -1.0, g.Left())
	assert.Equal(t, 11.0, g.Top())
}

func TestPathSkipsDuplicatePoints(t *testing.T) {
	g, err := PathFromPoints(2, nil,
		geo.NewPoint(0, 0),
		geo.NewPoint(0, 10),
		geo.NewPoint(0, 10),
		geo.NewPoint(10, 10),
	)
	require.NoError(t, err)
	assert.Len(t, g.Shapes, 2)
}

func TestPathErrors(t *testing.T) {
	_, err := PathFromPoints(2, nil, geo.NewPoint(0, 0))
	assert.Error(t, err)

	_, err = PathFromPoints(2, nil, geo.NewPoint(0, 0), geo.NewPoint(5, 5))
	assert.Error(t, err)
}

func TestPathFromVectors(t *testing.T) {
	g, err := PathFromVectors(2, nil,
		geo.NewPoint(0, 0),
		geo.Right.Multiply(10),
		geo.Up.Multiply(5),
	)
	require.NoError(t, err)
	require.Len(t, g.Shapes, 2)

	last := g.Shapes[1].(*Segment)
	assert.Equal(t, geo.Point{X: 10, Y: 5}, *last.End())
}

func TestGrid(t *testing.T) {
	g := NewGroup(FromEdges(0, 10, 0, 4))

	cells, err := g.Grid(3, geo.Right, 2, geo.Down)
	require.NoError(t, err)
	require.Len(t, cells, 6)

	// Cells are produced row by row, edge to edge.
	assert.Equal(t, 0, cells[0].Col)
	assert.Equal(t, 0, cells[0].Row)
	assert.Equal(t, 0.0, cells[0].Group.Left())
	assert.Equal(t, 0.0, cells[0].Group.Bottom())

	assert.Equal(t, 1, cells[1].Col)
	assert.Equal(t, 10.0, cells[1].Group.Left())

	assert.Equal(t, 2, cells[2].Col)
	assert.Equal(t, 20.0, cells[2].Group.Left())

	assert.Equal(t, 0, cells[3].Col)
	assert.Equal(t, 1, cells[3].Row)
	assert.Equal(t, 0.0, cells[3].Group.Left())
	assert.Equal(t, -4.0, cells[3].Group.Bottom())

	// The original group is untouched.
	assert.Equal(t, 0.0, g.Left())
}

func TestGridRejectsNone(t *testing.T) {
	g := NewGroup(FromEdges(0, 1, 0, 1))
	_, err := g.Grid(2, geo.NONE, 2, geo.Down)
	assert.Error(t, err)
}

func TestGroupBBoxInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	g := NewGroup()
	for i := 0; i < 100; i++ {
		r := NewRect(
			rnd.Float64()*200-100,
			rnd.Float64()*200-100,
			rnd.Float64()*50,
			rnd.Float64()*50,
		)
		g.Append(r)

		// Every shape appended so far lies inside the bounding box.
		for _, s := range g.Shapes {
			assert.GreaterOrEqual(t, s.Left(), g.Left())
			assert.LessOrEqual(t, s.Right(), g.Right())
			assert.GreaterOrEqual(t, s.Bottom(), g.Bottom())
			assert.LessOrEqual(t, s.Top(), g.Top())
		}
	}
}
