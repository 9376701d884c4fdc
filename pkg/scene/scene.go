// Package scene is an in-memory retained vector scene implementing the
// [surface] interfaces.
//
// A Scene owns a root group; widgets build their geometry beneath it. The
// scene answers geometry queries (bbox, bounds, visibility), measures text
// with the Go fonts, and serializes itself as SVG. It does not deliver
// events; the host window does that using [Scene.HitTest]-style bounds
// checks on the regions it has registered.
package scene

import (
	"strconv"

	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/surface"
)

// Scene is a tree of groups and shapes with a fixed viewport size.
type Scene struct {
	root     *Group
	size     graphics.Size
	measurer *Measurer
	nextID   int
}

// Option configures a Scene.
type Option func(*Scene)

// WithMeasurer overrides the text measurer. Nil selects the estimating fallback.
func WithMeasurer(m *Measurer) Option {
	return func(s *Scene) { s.measurer = m }
}

// New creates an empty scene of the given viewport size.
func New(size graphics.Size, opts ...Option) *Scene {
	s := &Scene{size: size, measurer: DefaultMeasurer()}
	for _, opt := range opts {
		opt(s)
	}
	s.root = &Group{}
	s.root.init(s, nil, s.root, "g")
	return s
}

// Root returns the top-level group.
func (s *Scene) Root() surface.Group {
	return s.root
}

// Size returns the viewport size.
func (s *Scene) Size() graphics.Size {
	return s.size
}

// SetSize changes the viewport size.
func (s *Scene) SetSize(size graphics.Size) {
	s.size = size
}

// Find returns the node with the given id, or nil.
func (s *Scene) Find(id string) surface.Node {
	var found surface.Node
	walk(s.root, func(n surface.Node) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Len returns the number of nodes below the root.
func (s *Scene) Len() int {
	count := 0
	walk(s.root, func(surface.Node) bool {
		count++
		return true
	})
	return count - 1
}

func (s *Scene) allocID(prefix string) string {
	s.nextID++
	return prefix + strconv.Itoa(s.nextID)
}

// walk visits n and its descendants depth-first until visit returns false.
func walk(n surface.Node, visit func(surface.Node) bool) bool {
	if !visit(n) {
		return false
	}
	if g, ok := n.(*Group); ok {
		for _, child := range g.children {
			if !walk(child, visit) {
				return false
			}
		}
	}
	return true
}

// node holds the state shared by every scene node.
type node struct {
	scene  *Scene
	parent *Group
	self   surface.Node
	id     string
	pos    graphics.Offset
	hidden bool
}

func (n *node) init(s *Scene, parent *Group, self surface.Node, prefix string) {
	n.scene = s
	n.parent = parent
	n.self = self
	n.id = s.allocID(prefix)
	if parent != nil {
		parent.children = append(parent.children, self)
	}
}

func (n *node) ID() string { return n.id }

func (n *node) Move(x, y float64) {
	n.pos = graphics.Offset{X: x, Y: y}
}

func (n *node) Position() graphics.Offset { return n.pos }

func (n *node) Show() { n.hidden = false }

func (n *node) Hide() { n.hidden = true }

func (n *node) Visible() bool {
	if n.hidden {
		return false
	}
	if n.parent != nil {
		return n.parent.Visible()
	}
	return true
}

func (n *node) Remove() {
	if n.parent == nil {
		return
	}
	children := n.parent.children
	for i, c := range children {
		if c == n.self {
			n.parent.children = append(children[:i:i], children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// origin is the surface position of the coordinate system this node is placed in.
func (n *node) origin() graphics.Offset {
	if n.parent == nil {
		return graphics.Offset{}
	}
	return n.parent.origin().Add(n.parent.pos)
}

// Group is a container node.
type Group struct {
	node
	children []surface.Node
}

// Group creates a nested group.
func (g *Group) Group() surface.Group {
	child := &Group{}
	child.init(g.scene, g, child, "g")
	return child
}

// Rect creates a rectangle of the given size at (0, 0).
func (g *Group) Rect(width, height float64) surface.Shape {
	return g.newShape(kindRect, "rect", graphics.Size{Width: width, Height: height})
}

// Circle creates a circle whose bbox is diameter x diameter at (0, 0).
func (g *Group) Circle(diameter float64) surface.Shape {
	return g.newShape(kindCircle, "circle", graphics.Size{Width: diameter, Height: diameter})
}

// Path creates a path from SVG path data. Unparseable data yields an empty bbox.
func (g *Group) Path(d string) surface.Shape {
	s := g.newShape(kindPath, "path", graphics.Size{})
	s.pathData = d
	s.pathBox = pathBounds(d)
	s.size = s.pathBox.Size()
	return s
}

// Text creates a text node.
func (g *Group) Text(content string) surface.Text {
	t := &Text{
		text: content,
		font: surface.Font{Family: defaultFamily, Size: defaultFontSize, Weight: surface.WeightNormal},
		fill: graphics.ColorBlack,
	}
	t.init(g.scene, g, t, "text")
	return t
}

// Children returns the group's children in paint order.
func (g *Group) Children() []surface.Node {
	out := make([]surface.Node, len(g.children))
	copy(out, g.children)
	return out
}

// BBox is the union of the visible children's boxes, offset by the group position.
func (g *Group) BBox() graphics.Rect {
	var box graphics.Rect
	for _, c := range g.children {
		if child, ok := c.(interface{ isHidden() bool }); ok && child.isHidden() {
			continue
		}
		box = box.Union(c.BBox())
	}
	if box.IsEmpty() {
		return graphics.RectFromLTWH(g.pos.X, g.pos.Y, 0, 0)
	}
	return box.Translate(g.pos.X, g.pos.Y)
}

// Bounds is BBox in surface coordinates.
func (g *Group) Bounds() graphics.Rect {
	o := g.origin()
	return g.BBox().Translate(o.X, o.Y)
}

func (n *node) isHidden() bool { return n.hidden }

func (g *Group) newShape(kind shapeKind, prefix string, size graphics.Size) *Shape {
	s := &Shape{
		kind:    kind,
		size:    size,
		fill:    graphics.ColorBlack,
		opacity: 1,
	}
	s.init(g.scene, g, s, prefix)
	return s
}
