package scene

import (
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/surface"
)

type shapeKind int

const (
	kindRect shapeKind = iota
	kindCircle
	kindPath
)

// Shape is a rectangle, circle or path.
type Shape struct {
	node
	kind     shapeKind
	size     graphics.Size
	radius   float64
	fill     graphics.Color
	stroke   surface.Stroke
	opacity  float64
	pathData string
	pathBox  graphics.Rect
	attrs    map[string]string
}

func (s *Shape) SetFill(c graphics.Color) { s.fill = c }

func (s *Shape) Fill() graphics.Color { return s.fill }

func (s *Shape) SetStroke(st surface.Stroke) { s.stroke = st }

func (s *Shape) Stroke() surface.Stroke { return s.stroke }

func (s *Shape) SetOpacity(o float64) { s.opacity = graphics.Clamp(o, 0, 1) }

func (s *Shape) Opacity() float64 { return s.opacity }

// SetSize resizes rectangles and circles. Paths keep the extent of their data.
func (s *Shape) SetSize(width, height float64) {
	switch s.kind {
	case kindRect:
		s.size = graphics.Size{Width: width, Height: height}
	case kindCircle:
		s.size = graphics.Size{Width: width, Height: width}
	}
}

func (s *Shape) Size() graphics.Size { return s.size }

// SetRadius sets the corner radius of a rectangle or the radius of a circle.
func (s *Shape) SetRadius(r float64) {
	switch s.kind {
	case kindRect:
		s.radius = r
	case kindCircle:
		s.size = graphics.Size{Width: 2 * r, Height: 2 * r}
	}
}

// Radius returns the corner radius of a rectangle or the radius of a circle.
func (s *Shape) Radius() float64 {
	if s.kind == kindCircle {
		return s.size.Width / 2
	}
	return s.radius
}

// SetAttr stores an extra attribute emitted verbatim in the SVG output.
func (s *Shape) SetAttr(name, value string) {
	if s.attrs == nil {
		s.attrs = make(map[string]string)
	}
	s.attrs[name] = value
}

func (s *Shape) BBox() graphics.Rect {
	if s.kind == kindPath {
		return s.pathBox.Translate(s.pos.X, s.pos.Y)
	}
	return graphics.RectFromLTWH(s.pos.X, s.pos.Y, s.size.Width, s.size.Height)
}

func (s *Shape) Bounds() graphics.Rect {
	o := s.origin()
	return s.BBox().Translate(o.X, o.Y)
}

const (
	defaultFamily   = "Arial, Helvetica, sans-serif"
	defaultFontSize = 16
)

// Text is a single line of text.
type Text struct {
	node
	text string
	font surface.Font
	fill graphics.Color
}

func (t *Text) SetText(s string) { t.text = s }

func (t *Text) Text() string { return t.text }

// SetFont replaces the font. Zero fields keep their previous value.
func (t *Text) SetFont(f surface.Font) {
	if f.Family != "" {
		t.font.Family = f.Family
	}
	if f.Size > 0 {
		t.font.Size = f.Size
	}
	if f.Weight > 0 {
		t.font.Weight = f.Weight
	}
}

func (t *Text) Font() surface.Font { return t.font }

func (t *Text) SetFill(c graphics.Color) { t.fill = c }

func (t *Text) Fill() graphics.Color { return t.fill }

func (t *Text) Length() float64 {
	return t.scene.measurer.Measure(t.text, t.font).Width
}

func (t *Text) BBox() graphics.Rect {
	size := t.scene.measurer.Measure(t.text, t.font)
	return graphics.RectFromLTWH(t.pos.X, t.pos.Y, size.Width, size.Height)
}

func (t *Text) Bounds() graphics.Rect {
	o := t.origin()
	return t.BBox().Translate(o.X, o.Y)
}

// baseline is the distance from the top of the bbox to the text baseline.
func (t *Text) baseline() float64 {
	ascent, _ := t.scene.measurer.Metrics(t.font)
	return ascent
}
