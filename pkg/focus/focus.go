// Package focus tracks which widget receives keyboard input and moves focus
// between widgets, in tab order or by direction.
package focus

import "math"

// FocusRect represents a rectangle for focus geometry calculations.
type FocusRect struct {
	Left, Top, Right, Bottom float64
}

// Center returns the center point of the rectangle.
func (r FocusRect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// IsValid returns true if the rect has positive dimensions.
func (r FocusRect) IsValid() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}

// Target is implemented by anything that can hold focus.
type Target interface {
	// CanFocus reports whether the target currently accepts focus.
	CanFocus() bool
	// FocusRect is the target's geometry for directional traversal.
	FocusRect() FocusRect
	// TabIndex orders traversal. Positive indices come first in ascending
	// order, then zero indices in insertion order.
	TabIndex() int
}

// TraversalDirection indicates the focus traversal direction.
type TraversalDirection int

const (
	// TraversalDirectionUp moves focus upward.
	TraversalDirectionUp TraversalDirection = iota

	// TraversalDirectionDown moves focus downward.
	TraversalDirectionDown

	// TraversalDirectionLeft moves focus leftward.
	TraversalDirectionLeft

	// TraversalDirectionRight moves focus rightward.
	TraversalDirectionRight
)

// Node is one focusable entry in a Scope.
type Node struct {
	Target Target
	// OnFocusChange is called when the node gains or loses focus.
	OnFocusChange func(hasFocus bool)

	hasFocus bool
	order    int
}

func (n *Node) canReceiveFocus() bool {
	return n != nil && n.Target != nil && n.Target.CanFocus()
}

// HasFocus reports whether this node has focus.
func (n *Node) HasFocus() bool {
	return n.hasFocus
}

// Scope owns a set of nodes and the one that is focused. The zero value is
// ready to use.
type Scope struct {
	nodes   []*Node
	focused *Node
	added   int
}

// Add appends a node to the scope.
func (s *Scope) Add(n *Node) {
	n.order = s.added
	s.added++
	s.nodes = append(s.nodes, n)
}

// Remove drops a node, unfocusing it first.
func (s *Scope) Remove(n *Node) {
	if s.focused == n {
		s.setFocus(nil)
	}
	for i, existing := range s.nodes {
		if existing == n {
			s.nodes = append(s.nodes[:i:i], s.nodes[i+1:]...)
			return
		}
	}
}

// Focused returns the focused node, or nil.
func (s *Scope) Focused() *Node {
	return s.focused
}

// Request focuses n if it can receive focus.
func (s *Scope) Request(n *Node) bool {
	if !n.canReceiveFocus() {
		return false
	}
	s.setFocus(n)
	return true
}

// Unfocus clears focus.
func (s *Scope) Unfocus() {
	s.setFocus(nil)
}

// SetFirstFocus focuses the first node in traversal order.
func (s *Scope) SetFirstFocus() bool {
	for _, n := range s.ordered() {
		if n.canReceiveFocus() {
			s.setFocus(n)
			return true
		}
	}
	return false
}

// MoveFocus moves focus by delta positions in traversal order, wrapping at
// either end and skipping nodes that cannot receive focus.
func (s *Scope) MoveFocus(delta int) bool {
	nodes := s.ordered()
	if len(nodes) == 0 {
		return false
	}
	if s.focused != nil && !s.focused.canReceiveFocus() {
		s.setFocus(nil)
	}

	current := -1
	for i, n := range nodes {
		if n == s.focused {
			current = i
			break
		}
	}
	if current < 0 && delta < 0 {
		current = 0
	}
	count := len(nodes)
	for step := 1; step <= count; step++ {
		candidate := nodes[wrapIndex(current+delta*step, count)]
		if candidate.canReceiveFocus() {
			s.setFocus(candidate)
			return true
		}
	}
	return false
}

// FocusInDirection moves focus to the closest node in direction, falling
// back to linear traversal when there is none.
func (s *Scope) FocusInDirection(direction TraversalDirection) bool {
	current := s.focused
	if current == nil || !current.canReceiveFocus() {
		return s.SetFirstFocus()
	}
	currentRect := current.Target.FocusRect()
	if !currentRect.IsValid() {
		return s.MoveFocus(linearDelta(direction))
	}

	var best *Node
	bestScore := math.MaxFloat64
	for _, n := range s.nodes {
		if n == current || !n.canReceiveFocus() {
			continue
		}
		r := n.Target.FocusRect()
		if !r.IsValid() || !isInDirection(currentRect, r, direction) {
			continue
		}
		if score := directionalScore(currentRect, r, direction); score < bestScore {
			bestScore = score
			best = n
		}
	}
	if best == nil {
		return s.MoveFocus(linearDelta(direction))
	}
	s.setFocus(best)
	return true
}

// ordered returns the nodes in traversal order.
func (s *Scope) ordered() []*Node {
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	// insertion sort keeps equal indices in insertion order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b *Node) bool {
	ai, bi := a.Target.TabIndex(), b.Target.TabIndex()
	switch {
	case ai > 0 && bi > 0:
		if ai != bi {
			return ai < bi
		}
		return a.order < b.order
	case ai > 0:
		return true
	case bi > 0:
		return false
	default:
		return a.order < b.order
	}
}

// linearDelta returns +1 or -1 for linear focus traversal based on direction.
func linearDelta(direction TraversalDirection) int {
	if direction == TraversalDirectionUp || direction == TraversalDirectionLeft {
		return -1
	}
	return 1
}

// isInDirection checks if target rect is in the specified direction from source.
func isInDirection(source, target FocusRect, direction TraversalDirection) bool {
	sourceCX, sourceCY := source.Center()
	targetCX, targetCY := target.Center()

	switch direction {
	case TraversalDirectionUp:
		return targetCY < sourceCY
	case TraversalDirectionDown:
		return targetCY > sourceCY
	case TraversalDirectionLeft:
		return targetCX < sourceCX
	case TraversalDirectionRight:
		return targetCX > sourceCX
	}
	return false
}

// directionalScore calculates a score for how good a target is for directional focus.
// Lower scores are better. Combines distance with alignment penalty.
func directionalScore(source, target FocusRect, direction TraversalDirection) float64 {
	sourceCX, sourceCY := source.Center()
	targetCX, targetCY := target.Center()

	var primaryDist, crossDist float64

	switch direction {
	case TraversalDirectionUp, TraversalDirectionDown:
		primaryDist = math.Abs(targetCY - sourceCY)
		crossDist = math.Abs(targetCX - sourceCX)
	case TraversalDirectionLeft, TraversalDirectionRight:
		primaryDist = math.Abs(targetCX - sourceCX)
		crossDist = math.Abs(targetCY - sourceCY)
	}

	// Weight cross-axis distance more heavily to prefer aligned elements
	return primaryDist + crossDist*2
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

func (s *Scope) setFocus(n *Node) {
	if s.focused == n {
		return
	}
	prev := s.focused
	s.focused = n
	if prev != nil {
		prev.hasFocus = false
		if prev.OnFocusChange != nil {
			prev.OnFocusChange(false)
		}
	}
	if n != nil {
		n.hasFocus = true
		if n.OnFocusChange != nil {
			n.OnFocusChange(true)
		}
	}
}
