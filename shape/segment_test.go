package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unihd-cag/simple-geometry/lib/geo"
)

func TestSegmentFromStartEnd(t *testing.T) {
	s, err := SegmentFromStartEnd(geo.NewPoint(0, 0), geo.NewPoint(0, 10), 2)
	require.NoError(t, err)

	assert.Equal(t, geo.Up, s.Direction)
	assert.Equal(t, 10.0, s.Length())
	assert.Equal(t, 2.0, s.Thickness())
	assert.Equal(t, geo.Point{X: 0, Y: 0}, *s.Start())
	assert.Equal(t, geo.Point{X: 0, Y: 10}, *s.End())

	s, err = SegmentFromStartEnd(geo.NewPoint(10, 0), geo.NewPoint(0, 0), 2)
	require.NoError(t, err)
	assert.Equal(t, geo.Left, s.Direction)
	assert.Equal(t, 10.0, s.Length())
	assert.Equal(t, geo.Point{X: 10, Y: 0}, *s.Start())
	assert.Equal(t, geo.Point{X: 0, Y: 0}, *s.End())
}

func TestSegmentFromStartEndDiagonal(t *testing.T) {
	_, err := SegmentFromStartEnd(geo.NewPoint(0, 0), geo.NewPoint(1, 1), 2)
	assert.Error(t, err)
}

func TestSegmentSetStart(t *testing.T) {
	s := NewSegment(0, 0, 2, 10, geo.Up)
	s.SetStart(geo.NewPoint(5, 5))

	// Rigid translation: length and thickness stay.
	assert.Equal(t, geo.Point{X: 5, Y: 5}, *s.Start())
	assert.Equal(t, geo.Point{X: 5, Y: 15}, *s.End())
	assert.Equal(t, 10.0, s.Length())
	assert.Equal(t, 2.0, s.Thickness())
}

func TestSegmentSetEnd(t *testing.T) {
	s := NewSegment(0, 0, 10, 2, geo.Right)
	s.SetEnd(geo.Origin)

	assert.Equal(t, geo.Point{X: 0, Y: 0}, *s.End())
	assert.Equal(t, geo.Point{X: -10, Y: 0}, *s.Start())
}

func TestSegmentFromRect(t *testing.T) {
	r := FromSize(10, 2)
	r.UserData = "red"
	s := SegmentFromRect(r, geo.Right)

	assert.Equal(t, "red", s.UserData)
	// The rect is copied, not shared.
	s.MoveBy(geo.NewPoint(1, 0))
	assert.Equal(t, geo.Point{X: 0, Y: 0}, *r.Center())
}

func TestSegmentString(t *testing.T) {
	s := NewSegment(0, 0, 2, 10, geo.Up)
	assert.Equal(t, "[-1:1, -5:5] (up)", s.String())

	s.UserData = "red"
	assert.Equal(t, `[-1:1, -5:5] (up) "red"`, s.String())
}

func TestSegmentToRect(t *testing.T) {
	s := NewSegment(1, 2, 10, 2, geo.Left)
	r := s.ToRect()

	assert.Equal(t, geo.Point{X: 1, Y: 2}, *r.Center())
	r.MoveBy(geo.NewPoint(1, 1))
	assert.Equal(t, geo.Point{X: 1, Y: 2}, *s.Center())
}
