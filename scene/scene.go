// Package scene reads shape scenes from JSON and builds canvases from them.
//
// A scene file looks like:
//
//	{
//	  "width": 200,
//	  "height": 100,
//	  "shapes": [
//	    {"kind": "rect", "width": 20, "height": 10, "style": "red"},
//	    {"kind": "segment", "start": {"x": 0, "y": 0}, "end": {"x": 0, "y": 40}, "thickness": 2}
//	  ]
//	}
package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"oss.terrastruct.com/xdefer"

	"github.com/unihd-cag/simple-geometry/lib/color"
	"github.com/unihd-cag/simple-geometry/lib/geo"
	"github.com/unihd-cag/simple-geometry/renderers/htmlcanvas"
	"github.com/unihd-cag/simple-geometry/shape"
)

type Scene struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Scale is applied to the canvas and all shape positions. Zero means 1.
	Scale float64 `json:"scale,omitempty"`

	Shapes []Def `json:"shapes"`
}

// Def describes one shape of any kind. Which fields apply depends on kind.
type Def struct {
	Kind string `json:"kind"`

	// rect, or the body of a segment given as rect plus direction.
	Left   *float64   `json:"left,omitempty"`
	Right  *float64   `json:"right,omitempty"`
	Bottom *float64   `json:"bottom,omitempty"`
	Top    *float64   `json:"top,omitempty"`
	Center *geo.Point `json:"center,omitempty"`
	Width  *float64   `json:"width,omitempty"`
	Height *float64   `json:"height,omitempty"`

	// segment and path.
	Direction string       `json:"direction,omitempty"`
	Start     *geo.Point   `json:"start,omitempty"`
	End       *geo.Point   `json:"end,omitempty"`
	Thickness *float64     `json:"thickness,omitempty"`
	Points    []*geo.Point `json:"points,omitempty"`
	Vectors   []*geo.Point `json:"vectors,omitempty"`

	// group.
	Shapes []Def `json:"shapes,omitempty"`

	// grid.
	Shape        *Def   `json:"shape,omitempty"`
	Cols         int    `json:"cols,omitempty"`
	Rows         int    `json:"rows,omitempty"`
	ColDirection string `json:"colDirection,omitempty"`
	RowDirection string `json:"rowDirection,omitempty"`

	Style *Style `json:"style,omitempty"`
}

// Style is either a single color string or a map of CSS properties.
type Style struct {
	Color string
	Props htmlcanvas.Style
}

func (s *Style) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &s.Color); err == nil {
		return nil
	}
	s.Color = ""
	return json.Unmarshal(b, &s.Props)
}

func (s *Style) MarshalJSON() ([]byte, error) {
	if s.Props != nil {
		return json.Marshal(s.Props)
	}
	return json.Marshal(s.Color)
}

// user is the value attached as shape user data, consumed by the canvas's
// default style getter.
func (s *Style) user() interface{} {
	if s == nil {
		return nil
	}
	if s.Props != nil {
		return s.Props
	}
	return s.Color
}

func (s *Style) validate() error {
	if s == nil {
		return nil
	}
	if s.Color != "" {
		return validateColor(s.Color)
	}
	for _, key := range []string{"background", "color", "path-background", "path_background"} {
		v, ok := s.Props[key].(string)
		if !ok {
			continue
		}
		if err := validateColor(v); err != nil {
			return err
		}
	}
	return nil
}

func validateColor(s string) error {
	if s == color.Empty || s == color.None {
		return nil
	}
	if _, err := color.Validate(s); err != nil {
		return fmt.Errorf("invalid color %q: %w", s, err)
	}
	return nil
}

// Parse decodes a scene from JSON. Unknown fields are an error.
func Parse(b []byte) (_ *Scene, err error) {
	defer xdefer.Errorf(&err, "failed to parse scene")

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %v x %v", s.Width, s.Height)
	}
	if s.Scale < 0 {
		return nil, fmt.Errorf("scale must not be negative, got %v", s.Scale)
	}
	return &s, nil
}

// Build constructs a canvas holding all the scene's shapes.
func (s *Scene) Build() (_ *htmlcanvas.Canvas, err error) {
	defer xdefer.Errorf(&err, "failed to build scene")

	c := htmlcanvas.NewCanvas(s.Width, s.Height)
	if s.Scale != 0 {
		c.Scale = s.Scale
	}
	for i, def := range s.Shapes {
		built, err := buildShape(def)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		c.Append(built)
	}
	return c, nil
}

func buildShape(def Def) (shape.Shape, error) {
	if err := def.Style.validate(); err != nil {
		return nil, err
	}

	switch def.Kind {
	case "rect":
		return buildRect(def)
	case "segment":
		return buildSegment(def)
	case "path":
		return buildPath(def)
	case "group":
		return buildGroup(def)
	case "grid":
		return buildGrid(def)
	case "":
		return nil, errors.New("missing shape kind")
	default:
		return nil, fmt.Errorf("unknown shape kind %q", def.Kind)
	}
}

func buildRect(def Def) (*shape.Rect, error) {
	var r *shape.Rect
	switch {
	case def.Left != nil || def.Right != nil || def.Bottom != nil || def.Top != nil:
		if def.Left == nil || def.Right == nil || def.Bottom == nil || def.Top == nil {
			return nil, errors.New("rect from edges needs left, right, bottom and top")
		}
		if *def.Left > *def.Right || *def.Bottom > *def.Top {
			return nil, errors.New("rect edges must be ordered left <= right and bottom <= top")
		}
		r = shape.FromEdges(*def.Left, *def.Right, *def.Bottom, *def.Top)
	case def.Width != nil && def.Height != nil:
		if *def.Width < 0 || *def.Height < 0 {
			return nil, errors.New("rect size must not be negative")
		}
		r = shape.FromSize(*def.Width, *def.Height)
		if def.Center != nil {
			r.SetCenter(def.Center)
		}
	default:
		return nil, errors.New("rect needs either all four edges or width and height")
	}
	r.UserData = def.Style.user()
	return r, nil
}

func buildSegment(def Def) (*shape.Segment, error) {
	if def.Start != nil || def.End != nil {
		if def.Start == nil || def.End == nil || def.Thickness == nil {
			return nil, errors.New("segment from endpoints needs start, end and thickness")
		}
		seg, err := shape.SegmentFromStartEnd(def.Start, def.End, *def.Thickness)
		if err != nil {
			return nil, err
		}
		seg.UserData = def.Style.user()
		return seg, nil
	}

	if def.Direction == "" {
		return nil, errors.New("segment needs either start and end or a rect and a direction")
	}
	direction, err := geo.ParseDirection(def.Direction)
	if err != nil {
		return nil, err
	}
	body := def
	body.Kind = "rect"
	body.Direction = ""
	r, err := buildRect(body)
	if err != nil {
		return nil, err
	}
	return shape.SegmentFromRect(r, direction), nil
}

func buildPath(def Def) (*shape.Group, error) {
	if def.Thickness == nil {
		return nil, errors.New("path needs a thickness")
	}
	user := def.Style.user()

	if len(def.Points) > 0 {
		if def.Start != nil || len(def.Vectors) > 0 {
			return nil, errors.New("path takes either points or start and vectors, not both")
		}
		return shape.PathFromPoints(*def.Thickness, user, def.Points...)
	}
	if def.Start == nil || len(def.Vectors) == 0 {
		return nil, errors.New("path needs either points or start and vectors")
	}
	return shape.PathFromVectors(*def.Thickness, user, def.Start, def.Vectors...)
}

func buildGroup(def Def) (*shape.Group, error) {
	if len(def.Shapes) == 0 {
		return nil, errors.New("group needs at least one shape")
	}
	g := &shape.Group{UserData: def.Style.user()}
	for i, child := range def.Shapes {
		built, err := buildShape(child)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		g.Append(built)
	}
	return g, nil
}

func buildGrid(def Def) (*shape.Group, error) {
	if def.Shape == nil {
		return nil, errors.New("grid needs a template shape")
	}
	if def.Cols < 1 || def.Rows < 1 {
		return nil, fmt.Errorf("grid needs at least one column and one row, got %d x %d", def.Cols, def.Rows)
	}

	colDirection, err := parseGridDirection(def.ColDirection, geo.Right)
	if err != nil {
		return nil, err
	}
	rowDirection, err := parseGridDirection(def.RowDirection, geo.Down)
	if err != nil {
		return nil, err
	}

	built, err := buildShape(*def.Shape)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	template, ok := built.(*shape.Group)
	if !ok {
		template = shape.NewGroup(built)
	}

	cells, err := template.Grid(def.Cols, colDirection, def.Rows, rowDirection)
	if err != nil {
		return nil, err
	}
	g := &shape.Group{UserData: def.Style.user()}
	for _, cell := range cells {
		g.Append(cell.Group)
	}
	return g, nil
}

func parseGridDirection(s string, fallback geo.Direction) (geo.Direction, error) {
	if s == "" {
		return fallback, nil
	}
	return geo.ParseDirection(s)
}
