package testing

import (
	"fmt"

	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// center returns the center of the first widget matched by finder.
func (t *WidgetTester) center(op string, finder Finder) (graphics.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Offset{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	return result.First().Bounds().Center(), nil
}

// Tap simulates a press and release at the center of the first widget
// matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	pos, err := t.center("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(pos)
}

// TapAt moves the pointer to pos, then presses and releases there.
func (t *WidgetTester) TapAt(pos graphics.Offset) error {
	id := int(allocPointerID())
	if err := t.SendPointerMove(pos, id); err != nil {
		return err
	}
	if err := t.SendPointerDown(pos, id); err != nil {
		return err
	}
	return t.SendPointerUp(pos, id)
}

// Hover moves the pointer, with no button held, onto the center of the
// first widget matched by finder.
func (t *WidgetTester) Hover(finder Finder) error {
	pos, err := t.center("Hover", finder)
	if err != nil {
		return err
	}
	return t.HoverAt(pos)
}

// HoverAt moves the pointer to pos.
func (t *WidgetTester) HoverAt(pos graphics.Offset) error {
	return t.SendPointerMove(pos, int(allocPointerID()))
}

// Leave moves the pointer out of the window.
func (t *WidgetTester) Leave() error {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: allocPointerID(),
		Position:  t.pointer,
		Phase:     gestures.PointerPhaseLeave,
		Buttons:   t.buttons,
	})
}

// Drag presses at the center of the first widget matched by finder, moves
// by delta and releases.
func (t *WidgetTester) Drag(finder Finder, delta graphics.Offset) error {
	start, err := t.center("Drag", finder)
	if err != nil {
		return err
	}
	return t.DragFrom(start, delta)
}

// DragFrom presses at start, moves by delta in a few steps and releases.
func (t *WidgetTester) DragFrom(start, delta graphics.Offset) error {
	id := int(allocPointerID())
	if err := t.SendPointerMove(start, id); err != nil {
		return err
	}
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}

	steps := 4
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := graphics.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		}
		if err := t.SendPointerMove(pos, id); err != nil {
			return err
		}
	}

	end := graphics.Offset{X: start.X + delta.X, Y: start.Y + delta.Y}
	return t.SendPointerUp(end, id)
}

// SendPointerDown presses the primary button at pos.
func (t *WidgetTester) SendPointerDown(pos graphics.Offset, pointerID int) error {
	t.buttons |= gestures.ButtonPrimary
	return t.sendPointer(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
		Buttons:   t.buttons,
	})
}

// SendPointerMove moves the pointer to pos, keeping any held buttons.
func (t *WidgetTester) SendPointerMove(pos graphics.Offset, pointerID int) error {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     gestures.PointerPhaseMove,
		Buttons:   t.buttons,
	})
}

// SendPointerUp releases every button at pos.
func (t *WidgetTester) SendPointerUp(pos graphics.Offset, pointerID int) error {
	t.buttons = 0
	return t.sendPointer(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     gestures.PointerPhaseUp,
	})
}

// SendPointerCancel aborts the current pointer sequence.
func (t *WidgetTester) SendPointerCancel(pointerID int) error {
	t.buttons = 0
	return t.sendPointer(gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  t.pointer,
		Phase:     gestures.PointerPhaseCancel,
	})
}

func (t *WidgetTester) sendPointer(ev gestures.PointerEvent) error {
	size := t.window.Size()
	if ev.Phase != gestures.PointerPhaseLeave && ev.Phase != gestures.PointerPhaseCancel {
		if ev.Position.X < 0 || ev.Position.Y < 0 || ev.Position.X > size.Width || ev.Position.Y > size.Height {
			return fmt.Errorf("pointer %s at (%g, %g) is outside the %gx%g window",
				ev.Phase, ev.Position.X, ev.Position.Y, size.Width, size.Height)
		}
	}
	t.pointer = ev.Position
	t.window.DispatchPointer(ev)
	return nil
}

// Key releases the key with the given code, e.g. gestures.KeySpace.
func (t *WidgetTester) Key(code string) {
	t.window.DispatchKey(gestures.KeyEvent{Code: code})
}

// Tab moves keyboard focus forward.
func (t *WidgetTester) Tab() {
	t.window.DispatchKey(gestures.KeyEvent{Code: gestures.KeyTab})
}

// ShiftTab moves keyboard focus backward.
func (t *WidgetTester) ShiftTab() {
	t.window.DispatchKey(gestures.KeyEvent{Code: gestures.KeyTab, Shift: true})
}
