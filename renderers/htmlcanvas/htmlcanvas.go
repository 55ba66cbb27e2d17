// Package htmlcanvas renders shapes as absolutely positioned HTML divs.
//
// The canvas spans a centered coordinate system: the origin sits in the
// middle, x grows rightward and y grows upward (positioning uses the CSS
// bottom property). Four dotted quadrant boxes mark the axes.
package htmlcanvas

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/unihd-cag/simple-geometry/lib/color"
	"github.com/unihd-cag/simple-geometry/lib/geo"
	"github.com/unihd-cag/simple-geometry/shape"
)

// Style is a set of CSS properties. Keys may use underscores in place of
// dashes; numeric values are rendered with px units.
type Style map[string]interface{}

// StyleGetter turns a shape's user data into style information. It may
// return a color string, used as the background, a Style applied wholesale,
// or nil for the canvas defaults.
type StyleGetter func(user interface{}) interface{}

// MapGetter builds a StyleGetter from a lookup table keyed by user data.
// Missing entries fall back to the canvas defaults.
func MapGetter(m map[interface{}]interface{}) StyleGetter {
	return func(user interface{}) interface{} {
		return m[user]
	}
}

// PathPrefix marks style keys that apply to the orientation line of a
// segment instead of its body.
const PathPrefix = "path-"

type Canvas struct {
	Width  float64
	Height float64
	// Scale is applied to the canvas and every shape position. Zero means 1.
	Scale float64

	// ContainerStyle is merged into the style of the outermost div.
	ContainerStyle Style

	// StyleGetter maps user data to styles. Nil means user data is used as
	// the style directly.
	StyleGetter StyleGetter

	// DefaultColor is the background of shapes whose style carries none.
	DefaultColor string
	// DefaultLineColor is the fallback color of segment orientation lines.
	DefaultLineColor string

	Shapes []shape.Shape
}

func NewCanvas(width, height float64) *Canvas {
	return &Canvas{
		Width:            width,
		Height:           height,
		Scale:            1,
		DefaultColor:     color.DefaultFill,
		DefaultLineColor: color.DefaultLine,
	}
}

// Append adds shapes to the canvas. They are rendered in insertion order.
func (c *Canvas) Append(shapes ...shape.Shape) {
	c.Shapes = append(c.Shapes, shapes...)
}

func (c *Canvas) scale() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

func (c *Canvas) styleOf(user interface{}) interface{} {
	if c.StyleGetter == nil {
		return user
	}
	return c.StyleGetter(user)
}

func (c *Canvas) defaultColor() string {
	if c.DefaultColor == "" {
		return color.DefaultFill
	}
	return c.DefaultColor
}

func (c *Canvas) defaultLineColor() string {
	if c.DefaultLineColor == "" {
		return color.DefaultLine
	}
	return c.DefaultLineColor
}

// Render writes the canvas as an HTML fragment, one element per line.
func (c *Canvas) Render(w io.Writer) error {
	scale := c.scale()
	width := c.Width * scale
	height := c.Height * scale

	container := newDiv()
	container.set("position", "relative")
	container.set("width", width)
	container.set("height", height)
	container.merge(c.ContainerStyle)
	container.writeOpen(w)

	for _, corner := range []struct{ x, y string }{
		{"left", "bottom"},
		{"right", "bottom"},
		{"left", "top"},
		{"right", "top"},
	} {
		axis := newDiv()
		axis.set("position", "absolute")
		axis.set("width", width/2)
		axis.set("height", height/2)
		axis.set("border", "1px dotted black")
		axis.set("box-sizing", "border-box")
		axis.set(corner.x, 0.0)
		axis.set(corner.y, 0.0)
		axis.writeOpen(w)
		axis.writeClose(w)
	}

	if err := c.renderShapes(w, c.Shapes); err != nil {
		return err
	}

	container.writeClose(w)
	return nil
}

func (c *Canvas) renderShapes(w io.Writer, shapes []shape.Shape) error {
	for _, s := range shapes {
		switch s := s.(type) {
		case *shape.Segment:
			if err := c.renderRect(w, &s.Rect, s.Direction); err != nil {
				return err
			}
		case *shape.Rect:
			if err := c.renderRect(w, s, geo.NONE); err != nil {
				return err
			}
		case *shape.Group:
			// Grouping is invisible in the output.
			if err := c.renderShapes(w, s.Shapes); err != nil {
				return err
			}
		default:
			return fmt.Errorf("cannot draw unknown shape of type %T", s)
		}
	}
	return nil
}

func (c *Canvas) renderRect(w io.Writer, r *shape.Rect, direction geo.Direction) error {
	scale := c.scale()

	div := newDiv()
	div.set("position", "absolute")
	div.set("left", (r.Left()+c.Width/2)*scale)
	div.set("bottom", (r.Bottom()+c.Height/2)*scale)
	div.set("width", r.Width*scale)
	div.set("height", r.Height*scale)
	div.set("box-sizing", "border-box")
	if err := c.applyStyle(div, r.UserData, false, c.defaultColor()); err != nil {
		return err
	}

	if direction == geo.NONE {
		div.writeOpen(w)
		div.writeClose(w)
		return nil
	}

	div.set("display", "flex")
	div.set("align-items", "center")
	div.set("justify-content", "center")

	line := newDiv()
	if direction.IsHorizontal() {
		line.set("width", "100%")
		line.set("height", 2.0)
	} else {
		line.set("width", 2.0)
		line.set("height", "100%")
	}
	if err := c.applyStyle(line, r.UserData, true, c.defaultLineColor()); err != nil {
		return err
	}

	div.writeOpen(w)
	line.writeOpen(w)
	line.writeClose(w)
	div.writeClose(w)
	return nil
}

// applyStyle resolves the user data through the style getter and merges the
// result into the div. Keys carrying the path prefix style the orientation
// line only; forLine selects them, stripped of the prefix.
func (c *Canvas) applyStyle(d *div, user interface{}, forLine bool, fallback string) error {
	switch style := c.styleOf(user).(type) {
	case nil:
	case string:
		if !forLine {
			d.set("background", style)
		}
	case Style:
		c.mergeStyle(d, style, forLine)
	case map[string]interface{}:
		c.mergeStyle(d, style, forLine)
	default:
		return fmt.Errorf("style of %v must be a string or a map, not %T", user, style)
	}

	if d.get("background") == nil {
		d.set("background", fallback)
	}
	return nil
}

func (c *Canvas) mergeStyle(d *div, style map[string]interface{}, forLine bool) {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := cssKey(k)
		if forLine != strings.HasPrefix(key, PathPrefix) {
			continue
		}
		if forLine {
			key = strings.TrimPrefix(key, PathPrefix)
		}
		d.set(key, style[k])
	}
}

// RenderPage writes a complete standalone HTML document around the canvas.
func (c *Canvas) RenderPage(w io.Writer, title string) error {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
`, html.EscapeString(title))
	if err := c.Render(w); err != nil {
		return err
	}
	io.WriteString(w, "</body>\n</html>\n")
	return nil
}

// HTML renders the canvas fragment into a string.
func (c *Canvas) HTML() (string, error) {
	var sb strings.Builder
	if err := c.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// div is an insertion-ordered set of CSS properties for one element.
type div struct {
	keys  []string
	props map[string]interface{}
}

func newDiv() *div {
	return &div{props: make(map[string]interface{})}
}

func (d *div) set(key string, value interface{}) {
	key = cssKey(key)
	if _, ok := d.props[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.props[key] = value
}

func (d *div) get(key string) interface{} {
	return d.props[cssKey(key)]
}

func (d *div) merge(style Style) {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.set(k, style[k])
	}
}

func (d *div) writeOpen(w io.Writer) {
	props := make([]string, len(d.keys))
	for i, k := range d.keys {
		props[i] = fmt.Sprintf("%s: %s", k, cssValue(d.props[k]))
	}
	fmt.Fprintf(w, "<div style=\"%s\">\n", html.EscapeString(strings.Join(props, "; ")))
}

func (d *div) writeClose(w io.Writer) {
	io.WriteString(w, "</div>\n")
}

func cssKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func cssValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return geo.FormatFloat(v) + "px"
	case float32:
		return geo.FormatFloat(float64(v)) + "px"
	case int:
		return fmt.Sprintf("%dpx", v)
	default:
		return fmt.Sprintf("%v", value)
	}
}
