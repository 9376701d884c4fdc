// Package surface declares the narrow vector rendering surface widgets draw on.
//
// A surface is a retained tree of groups and shapes. Widgets create their
// geometry under a [Group], mutate it through setters, and register one or
// more invisible regions with [Surface.Listen] to receive pointer and key
// notifications. [github.com/go-drift/vectorui/pkg/scene] provides the in-memory
// implementation used by the host window.
package surface

import (
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
)

// Stroke describes an outline.
type Stroke struct {
	Color graphics.Color
	Width float64
}

// Font weights.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// Font describes how text is set.
type Font struct {
	Family string
	Size   float64
	Weight int
}

// Node is anything placed in the tree.
type Node interface {
	// ID is unique within the surface.
	ID() string
	// Move places the node's top-left corner relative to its parent group.
	Move(x, y float64)
	// Position is the last value passed to Move.
	Position() graphics.Offset
	// BBox is the node's extent in its parent's coordinates.
	BBox() graphics.Rect
	// Bounds is the node's extent in surface coordinates.
	Bounds() graphics.Rect
	Show()
	Hide()
	// Visible reports whether the node and all of its ancestors are shown.
	Visible() bool
	// Remove detaches the node from its parent.
	Remove()
}

// Shape is a rectangle, circle or path.
type Shape interface {
	Node
	SetFill(c graphics.Color)
	Fill() graphics.Color
	SetStroke(s Stroke)
	Stroke() Stroke
	SetOpacity(o float64)
	Opacity() float64
	// SetSize resizes a rectangle. For circles the width is the diameter.
	SetSize(width, height float64)
	Size() graphics.Size
	SetRadius(r float64)
}

// Text is a single line of text. Its position is the top-left of its bbox.
type Text interface {
	Node
	SetText(s string)
	Text() string
	SetFont(f Font)
	Font() Font
	SetFill(c graphics.Color)
	// Length is the advance width of the current text.
	Length() float64
}

// Group is a container node. Children are painted in creation order.
type Group interface {
	Node
	Group() Group
	Rect(width, height float64) Shape
	Circle(diameter float64) Shape
	// Path creates a path from SVG path data ("M4 12 L8 8 L12 12").
	Path(d string) Shape
	Text(s string) Text
	Children() []Node
}

// Listener receives notifications for a registered hit region.
type Listener interface {
	HandlePointer(ev gestures.PointerEvent)
	HandleKey(ev gestures.KeyEvent)
}

// Surface is the anchor a container exposes to its widgets.
type Surface interface {
	// Root is the group new widget geometry is created under.
	Root() Group
	Size() graphics.Size
	// Listen subscribes region to pointer and key delivery. The returned
	// function cancels the subscription.
	Listen(region Shape, l Listener) (cancel func())
}
