package widget_test

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/vectorui/pkg/errors"
	"github.com/go-drift/vectorui/pkg/gestures"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/scene"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
	"github.com/go-drift/vectorui/pkg/widget"
)

// testSurface is a scene with a listener registry.
type testSurface struct {
	*scene.Scene
	listeners map[surface.Shape]surface.Listener
}

func (s *testSurface) Listen(region surface.Shape, l surface.Listener) func() {
	s.listeners[region] = l
	return func() { delete(s.listeners, region) }
}

type testContainer struct {
	surface *testSurface
	widgets []widget.Widget
}

func (c *testContainer) Surface() surface.Surface  { return c.surface }
func (c *testContainer) AddWidget(w widget.Widget) { c.widgets = append(c.widgets, w) }

func (c *testContainer) RemoveWidget(w widget.Widget) {
	for i, existing := range c.widgets {
		if existing == w {
			c.widgets = append(c.widgets[:i:i], c.widgets[i+1:]...)
			return
		}
	}
}

func newContainer() *testContainer {
	return &testContainer{surface: &testSurface{
		Scene:     scene.New(graphics.Size{Width: 400, Height: 300}),
		listeners: map[surface.Shape]surface.Listener{},
	}}
}

// counter is a minimal widget that counts hook calls.
type counter struct {
	widget.Base
	interaction.NopBehavior
	region   surface.Shape
	releases int
	updates  int
}

func newCounter(c widget.Container) *counter {
	p := &counter{}
	p.Init(c, p, semantics.RoleButton)
	p.SetSize(40, 20)
	widget.Must(p.Render(func(g surface.Group) {
		p.region = g.Rect(40, 20)
		p.region.SetOpacity(0)
		widget.Must(p.RegisterEvent(p.region))
	}))
	widget.Must(p.SetState(interaction.IdleUp{}))
	return p
}

func (p *counter) PressReleaseState() {
	p.releases++
	p.Raise(widget.EventArgs{Event: p.RawEvent()})
}

func (p *counter) Update() {
	p.updates++
	p.Base.Update()
}

func TestInitRegistersWithContainer(t *testing.T) {
	c := newContainer()
	p := newCounter(c)
	if len(c.widgets) != 1 || c.widgets[0] != widget.Widget(p) {
		t.Fatalf("container widgets = %v", c.widgets)
	}
	if p.ID() == "" {
		t.Error("expected an id")
	}
	if p.Role() != semantics.RoleButton {
		t.Errorf("Role() = %v", p.Role())
	}
	if !p.Enabled() || !p.Selectable() || p.Draggable() {
		t.Errorf("flags enabled=%v selectable=%v draggable=%v", p.Enabled(), p.Selectable(), p.Draggable())
	}
	if _, ok := p.State().(interaction.IdleUp); !ok {
		t.Errorf("State() = %v, want IdleUp", p.State())
	}
}

func TestIDsAreUnique(t *testing.T) {
	c := newContainer()
	if newCounter(c).ID() == newCounter(c).ID() {
		t.Error("two widgets share an id")
	}
}

func TestRenderRequiresDefaults(t *testing.T) {
	p := &counter{}
	p.Init(newContainer(), p, semantics.RoleButton)
	err := p.Render(nil)
	if !stderrors.Is(err, widget.ErrDefaultsMissing) {
		t.Fatalf("Render() = %v, want ErrDefaultsMissing", err)
	}
	var werr *errors.WidgetError
	if !stderrors.As(err, &werr) || werr.Kind != errors.KindConstruction {
		t.Errorf("expected a construction WidgetError, got %#v", err)
	}
}

func TestRenderTwiceFails(t *testing.T) {
	p := newCounter(newContainer())
	if err := p.Render(nil); !stderrors.Is(err, widget.ErrAlreadyRendered) {
		t.Errorf("second Render() = %v, want ErrAlreadyRendered", err)
	}
}

func TestRenderWithoutInit(t *testing.T) {
	var p counter
	if err := p.Render(nil); !stderrors.Is(err, widget.ErrNotInitialized) {
		t.Errorf("Render() = %v, want ErrNotInitialized", err)
	}
}

func TestSetStateOrdering(t *testing.T) {
	p := &counter{}
	p.Init(newContainer(), p, semantics.RoleButton)
	p.SetSize(10, 10)
	if err := p.SetState(interaction.IdleUp{}); !stderrors.Is(err, widget.ErrNotRendered) {
		t.Errorf("SetState before Render = %v, want ErrNotRendered", err)
	}
	widget.Must(p.Render(nil))
	if err := p.SetState(interaction.IdleUp{}); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if err := p.SetState(interaction.Hover{}); !stderrors.Is(err, widget.ErrStateAlreadySet) {
		t.Errorf("second SetState = %v, want ErrStateAlreadySet", err)
	}
}

func TestRegisterEventRoutesToController(t *testing.T) {
	c := newContainer()
	p := newCounter(c)
	l, ok := c.surface.listeners[p.region]
	if !ok {
		t.Fatal("region was not registered")
	}
	l.HandlePointer(gestures.PointerEvent{Phase: gestures.PointerPhaseDown})
	if p.State().Kind() != interaction.KindPressed {
		t.Fatalf("State() = %v, want Pressed", p.State())
	}
	up := gestures.PointerEvent{Phase: gestures.PointerPhaseUp}
	l.HandlePointer(up)
	if p.releases != 1 {
		t.Errorf("releases = %d, want 1", p.releases)
	}
	if p.RawEvent() != any(up) {
		t.Errorf("RawEvent() = %v, want the pointer-up", p.RawEvent())
	}
}

func TestRegisterNilRegion(t *testing.T) {
	p := newCounter(newContainer())
	if err := p.RegisterEvent(nil); !stderrors.Is(err, widget.ErrNilRegion) {
		t.Errorf("RegisterEvent(nil) = %v, want ErrNilRegion", err)
	}
}

func TestMoveRepositionsGroup(t *testing.T) {
	p := newCounter(newContainer())
	p.Move(12, 50)
	want := graphics.RectFromLTWH(12, 50, 40, 20)
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if p.State().Kind() != interaction.KindIdleUp {
		t.Errorf("Move changed state to %v", p.State())
	}
}

func TestRaiseOrderAndIsolation(t *testing.T) {
	rec := &errors.Recorder{}
	prev := errors.SetHandler(rec)
	defer errors.SetHandler(prev)

	p := newCounter(newContainer())
	var order []string
	p.Subscribe(widget.Handle(func(widget.EventArgs) { order = append(order, "first") }))
	p.Subscribe(func(widget.EventArgs) error {
		order = append(order, "failing")
		return stderrors.New("subscriber failed")
	})
	p.Subscribe(widget.Handle(func(widget.EventArgs) {
		order = append(order, "panicking")
		panic("subscriber panicked")
	}))
	p.Subscribe(widget.Handle(func(args widget.EventArgs) {
		if args.Widget != widget.Widget(p) {
			t.Errorf("args.Widget = %v, want the raising widget", args.Widget)
		}
		order = append(order, "last")
	}))

	err := p.Raise(widget.EventArgs{})
	want := []string{"first", "failing", "panicking", "last"}
	if len(order) != len(want) {
		t.Fatalf("delivery order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("delivery order = %v, want %v", order, want)
		}
	}
	if err == nil {
		t.Fatal("Raise() should return the subscriber failures")
	}
	if len(rec.Errors) != 2 {
		t.Fatalf("reported %d errors, want 2", len(rec.Errors))
	}
	for _, e := range rec.Errors {
		if e.Kind != errors.KindSubscriber || e.Widget != p.ID() {
			t.Errorf("reported %v", e)
		}
	}
	var perr *errors.PanicError
	if !stderrors.As(err, &perr) {
		t.Error("joined error should contain the recovered panic")
	}
	if p.State().Kind() != interaction.KindIdleUp {
		t.Errorf("State() = %v after failing subscribers", p.State())
	}
}

func TestSubscribeCancel(t *testing.T) {
	p := newCounter(newContainer())
	calls := 0
	cancel := p.Subscribe(widget.Handle(func(widget.EventArgs) { calls++ }))
	p.Raise(widget.EventArgs{})
	cancel()
	p.Raise(widget.EventArgs{})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDisableMidPressSettles(t *testing.T) {
	c := newContainer()
	p := newCounter(c)
	l := c.surface.listeners[p.region]
	l.HandlePointer(gestures.PointerEvent{Phase: gestures.PointerPhaseDown})

	p.SetEnabled(false)
	if p.State().Kind() != interaction.KindIdleUp {
		t.Fatalf("State() = %v, want IdleUp", p.State())
	}
	if p.updates == 0 {
		t.Error("SetEnabled should reconcile visuals")
	}
	l.HandlePointer(gestures.PointerEvent{Phase: gestures.PointerPhaseUp})
	if p.releases != 0 {
		t.Error("disabled widget committed a press")
	}
}

func TestDestroyUnregisters(t *testing.T) {
	c := newContainer()
	p := newCounter(c)
	p.Destroy()
	if len(c.surface.listeners) != 0 {
		t.Errorf("listeners left after Destroy: %d", len(c.surface.listeners))
	}
	if len(c.surface.Root().Children()) != 0 {
		t.Error("geometry left after Destroy")
	}
	if len(c.widgets) != 0 {
		t.Errorf("container still holds %d widgets", len(c.widgets))
	}
	p.Destroy()
	if len(c.widgets) != 0 {
		t.Error("second Destroy changed the container")
	}
}
