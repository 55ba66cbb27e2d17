package scene

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unihd-cag/simple-geometry/lib/geo"
	"github.com/unihd-cag/simple-geometry/lib/go2"
	"github.com/unihd-cag/simple-geometry/shape"
)

func TestParseMinimal(t *testing.T) {
	s, err := Parse([]byte(`{"width": 100, "height": 200}`))
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Width)
	assert.Equal(t, 200.0, s.Height)
	assert.Empty(t, s.Shapes)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"width": 100, "height": 200, "wdith": 1}`))
	assert.Error(t, err)
}

func TestParseRejectsBadSize(t *testing.T) {
	_, err := Parse([]byte(`{"width": 0, "height": 200}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"width": 100, "height": -1}`))
	assert.Error(t, err)
}

func TestBuildRect(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 100, "height": 200,
		"shapes": [
			{"kind": "rect", "width": 20, "height": 10, "center": {"x": 5, "y": 5}, "style": "red"},
			{"kind": "rect", "left": -5, "right": 5, "bottom": 0, "top": 4}
		]
	}`))
	require.NoError(t, err)

	c, err := s.Build()
	require.NoError(t, err)
	require.Len(t, c.Shapes, 2)

	first := c.Shapes[0].(*shape.Rect)
	assert.Equal(t, geo.Point{X: 5, Y: 5}, *first.Center())
	assert.Equal(t, 20.0, first.Width)
	assert.Equal(t, "red", first.UserData)

	second := c.Shapes[1].(*shape.Rect)
	assert.Equal(t, -5.0, second.Left())
	assert.Equal(t, 4.0, second.Top())
	assert.Nil(t, second.UserData)
}

func TestBuildRectErrors(t *testing.T) {
	for _, body := range []string{
		`{"kind": "rect"}`,
		`{"kind": "rect", "left": 0, "right": 10}`,
		`{"kind": "rect", "left": 10, "right": 0, "bottom": 0, "top": 1}`,
		`{"kind": "rect", "width": -1, "height": 1}`,
	} {
		s, err := Parse([]byte(`{"width": 10, "height": 10, "shapes": [` + body + `]}`))
		require.NoError(t, err, body)

		_, err = s.Build()
		assert.Error(t, err, body)
	}
}

func TestBuildSegment(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 100, "height": 200,
		"shapes": [
			{"kind": "segment", "start": {"x": 0, "y": 0}, "end": {"x": 0, "y": 50}, "thickness": 2},
			{"kind": "segment", "width": 10, "height": 2, "direction": "right"}
		]
	}`))
	require.NoError(t, err)

	c, err := s.Build()
	require.NoError(t, err)
	require.Len(t, c.Shapes, 2)

	vertical := c.Shapes[0].(*shape.Segment)
	assert.Equal(t, geo.Up, vertical.Direction)
	assert.Equal(t, 50.0, vertical.Length())

	horizontal := c.Shapes[1].(*shape.Segment)
	assert.Equal(t, geo.Right, horizontal.Direction)
	assert.Equal(t, 10.0, horizontal.Length())
}

func TestBuildSegmentErrors(t *testing.T) {
	for _, body := range []string{
		`{"kind": "segment", "start": {"x": 0, "y": 0}, "end": {"x": 1, "y": 1}, "thickness": 2}`,
		`{"kind": "segment", "start": {"x": 0, "y": 0}, "thickness": 2}`,
		`{"kind": "segment", "width": 10, "height": 2}`,
		`{"kind": "segment", "width": 10, "height": 2, "direction": "sideways"}`,
	} {
		s, err := Parse([]byte(`{"width": 10, "height": 10, "shapes": [` + body + `]}`))
		require.NoError(t, err)

		_, err = s.Build()
		assert.Error(t, err, body)
	}
}

func TestBuildPath(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 100, "height": 200,
		"shapes": [
			{"kind": "path", "thickness": 2, "points": [
				{"x": 0, "y": 0}, {"x": 0, "y": 10}, {"x": 10, "y": 10}
			]},
			{"kind": "path", "thickness": 2, "start": {"x": 0, "y": 0}, "vectors": [
				{"x": 10, "y": 0}, {"x": 0, "y": 5}
			]}
		]
	}`))
	require.NoError(t, err)

	c, err := s.Build()
	require.NoError(t, err)

	fromPoints := c.Shapes[0].(*shape.Group)
	assert.Len(t, fromPoints.Shapes, 2)

	fromVectors := c.Shapes[1].(*shape.Group)
	require.Len(t, fromVectors.Shapes, 2)
	last := fromVectors.Shapes[1].(*shape.Segment)
	assert.Equal(t, geo.Point{X: 10, Y: 5}, *last.End())
}

func TestBuildGroup(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 100, "height": 200,
		"shapes": [
			{"kind": "group", "shapes": [
				{"kind": "rect", "width": 10, "height": 10},
				{"kind": "rect", "left": 10, "right": 20, "bottom": 0, "top": 10}
			]}
		]
	}`))
	require.NoError(t, err)

	c, err := s.Build()
	require.NoError(t, err)

	g := c.Shapes[0].(*shape.Group)
	assert.Len(t, g.Shapes, 2)
	assert.Equal(t, -5.0, g.Left())
	assert.Equal(t, 20.0, g.Right())
}

func TestBuildGrid(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 100, "height": 200,
		"shapes": [
			{"kind": "grid", "cols": 3, "rows": 2,
			 "shape": {"kind": "rect", "left": 0, "right": 10, "bottom": 0, "top": 4}}
		]
	}`))
	require.NoError(t, err)

	c, err := s.Build()
	require.NoError(t, err)

	g := c.Shapes[0].(*shape.Group)
	require.Len(t, g.Shapes, 6)
	// Defaults: columns grow rightward, rows downward.
	assert.Equal(t, 0.0, g.Left())
	assert.Equal(t, 30.0, g.Right())
	assert.Equal(t, -4.0, g.Bottom())
	assert.Equal(t, 4.0, g.Top())
}

func TestBuildStyleValidation(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 10, "height": 10,
		"shapes": [{"kind": "rect", "width": 2, "height": 2, "style": "not a color"}]
	}`))
	require.NoError(t, err)
	_, err = s.Build()
	assert.Error(t, err)

	s, err = Parse([]byte(`{
		"width": 10, "height": 10,
		"shapes": [{"kind": "rect", "width": 2, "height": 2, "style": {"background": "none"}}]
	}`))
	require.NoError(t, err)
	_, err = s.Build()
	assert.NoError(t, err)
}

func TestBuildUnknownKind(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 10, "height": 10,
		"shapes": [{"kind": "circle", "width": 2, "height": 2}]
	}`))
	require.NoError(t, err)

	_, err = s.Build()
	assert.Error(t, err)
}

func TestBuildProgrammatic(t *testing.T) {
	s := &Scene{
		Width:  100,
		Height: 100,
		Shapes: []Def{
			{
				Kind:   "rect",
				Left:   go2.Pointer(0.0),
				Right:  go2.Pointer(10.0),
				Bottom: go2.Pointer(0.0),
				Top:    go2.Pointer(4.0),
			},
			{
				Kind:      "segment",
				Start:     &geo.Point{X: 0, Y: 0},
				End:       &geo.Point{X: 20, Y: 0},
				Thickness: go2.Pointer(2.0),
			},
		},
	}

	c, err := s.Build()
	require.NoError(t, err)
	require.Len(t, c.Shapes, 2)
	assert.Equal(t, 10.0, c.Shapes[0].(*shape.Rect).Right())
	assert.Equal(t, geo.Right, c.Shapes[1].(*shape.Segment).Direction)
}

func TestStyleRoundTrip(t *testing.T) {
	s, err := Parse([]byte(`{
		"width": 10, "height": 10,
		"shapes": [
			{"kind": "rect", "width": 2, "height": 2, "style": "red"},
			{"kind": "rect", "width": 2, "height": 2, "style": {"background": "none"}}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "red", s.Shapes[0].Style.Color)
	assert.Nil(t, s.Shapes[0].Style.Props)
	assert.Equal(t, "none", s.Shapes[1].Style.Props["background"])

	colorJSON, err := json.Marshal(s.Shapes[0].Style)
	require.NoError(t, err)
	assert.Equal(t, `"red"`, string(colorJSON))

	propsJSON, err := json.Marshal(s.Shapes[1].Style)
	require.NoError(t, err)
	assert.Equal(t, `{"background":"none"}`, string(propsJSON))
}
