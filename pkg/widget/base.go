package widget

import (
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/go-drift/vectorui/pkg/errors"
	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/interaction"
	"github.com/go-drift/vectorui/pkg/semantics"
	"github.com/go-drift/vectorui/pkg/surface"
)

// Construction errors. They are wrapped in a *errors.WidgetError of kind
// KindConstruction.
var (
	ErrNotInitialized  = stderrors.New("widget: Init was not called")
	ErrDefaultsMissing = stderrors.New("widget: size must be set before Render")
	ErrAlreadyRendered = stderrors.New("widget: Render called twice")
	ErrNotRendered     = stderrors.New("widget: Render has not been called")
	ErrStateAlreadySet = interaction.ErrStateAlreadySet
	ErrNilState        = interaction.ErrNilState
	ErrNilRegion       = stderrors.New("widget: nil hit region")
)

// Base is the state shared by every widget. The zero value is unusable;
// call Init first.
type Base struct {
	id     string
	parent Container
	self   Widget
	group  surface.Group

	width, height float64
	role          semantics.Role
	enabled       bool
	selectable    bool
	draggable     bool
	backcolor     graphics.Color
	tabIndex      int

	controller  *interaction.Controller
	rawEvent    any
	regions     []func()
	subscribers []*subscription
	destroyed   bool
}

type subscription struct {
	fn Subscriber
}

// Init binds the base to its container and to the concrete widget that
// embeds it. The role is fixed from here on. Widgets start enabled and
// selectable.
func (b *Base) Init(parent Container, self Widget, role semantics.Role) {
	b.id = uuid.NewString()
	b.parent = parent
	b.self = self
	b.role = role
	b.enabled = true
	b.selectable = true
	b.backcolor = graphics.ColorWhite
	b.controller = interaction.NewController(target{Behavior: self, base: b})
	if r, ok := parent.(Registrar); ok {
		r.AddWidget(self)
	}
}

// Render creates the widget's root group and passes it to draw. It must be
// called exactly once, after the size is set.
func (b *Base) Render(draw func(g surface.Group)) error {
	switch {
	case b.controller == nil:
		return b.constructionError("widget.Render", ErrNotInitialized)
	case b.group != nil:
		return b.constructionError("widget.Render", ErrAlreadyRendered)
	case b.width <= 0 || b.height <= 0:
		return b.constructionError("widget.Render", ErrDefaultsMissing)
	}
	b.group = b.parent.Surface().Root().Group()
	if draw != nil {
		draw(b.group)
	}
	return nil
}

// SetState seeds the initial interaction state. It may only be called once,
// after Render.
func (b *Base) SetState(initial interaction.State) error {
	if b.group == nil {
		return b.constructionError("widget.SetState", ErrNotRendered)
	}
	if err := b.controller.SetState(initial); err != nil {
		return b.constructionError("widget.SetState", err)
	}
	return nil
}

// RegisterEvent makes region deliver pointer and key notifications to the
// widget's controller. A widget may register several regions.
func (b *Base) RegisterEvent(region surface.Shape) error {
	return b.listen("widget.RegisterEvent", region, b)
}

// Listen attaches a listener of the widget's own to region, bypassing the
// controller. Widgets use it for secondary controls such as step buttons.
func (b *Base) Listen(region surface.Shape, l surface.Listener) error {
	return b.listen("widget.Listen", region, l)
}

func (b *Base) listen(op string, region surface.Shape, l surface.Listener) error {
	if b.group == nil {
		return b.constructionError(op, ErrNotRendered)
	}
	if region == nil {
		return b.constructionError(op, ErrNilRegion)
	}
	b.regions = append(b.regions, b.parent.Surface().Listen(region, l))
	return nil
}

// Destroy unregisters every hit region, removes the widget's geometry and
// tells a Registrar container the widget is gone. It is safe to call twice.
func (b *Base) Destroy() {
	for _, cancel := range b.regions {
		cancel()
	}
	b.regions = nil
	if b.group != nil {
		b.group.Remove()
	}
	if b.destroyed {
		return
	}
	b.destroyed = true
	if r, ok := b.parent.(Registrar); ok && b.self != nil {
		r.RemoveWidget(b.self)
	}
}

// Update is the base reconciliation step. Concrete widgets reconcile their
// own shapes and then call it.
func (b *Base) Update() {}

// Move places the widget's root group at (x, y) in container coordinates.
func (b *Base) Move(x, y float64) {
	if b.group != nil {
		b.group.Move(x, y)
	}
}

// Position is the last position passed to Move.
func (b *Base) Position() graphics.Offset {
	if b.group == nil {
		return graphics.Offset{}
	}
	return b.group.Position()
}

// Bounds is the widget's extent in container coordinates.
func (b *Base) Bounds() graphics.Rect {
	if b.group == nil {
		return graphics.Rect{}
	}
	return b.group.Bounds()
}

// Subscribe adds fn to the notification channel. Subscribers are called in
// subscription order. The returned function removes fn.
func (b *Base) Subscribe(fn Subscriber) (cancel func()) {
	s := &subscription{fn: fn}
	b.subscribers = append(b.subscribers, s)
	return func() {
		for i, existing := range b.subscribers {
			if existing == s {
				b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Raise delivers args to every subscriber. A subscriber that fails or
// panics is reported to the error handler and the rest still run. Raise
// returns the joined failures.
func (b *Base) Raise(args EventArgs) error {
	if args.Widget == nil {
		args.Widget = b.self
	}
	var errs []error
	for _, s := range b.subscribers {
		if err := b.deliver(s.fn, args); err != nil {
			werr := &errors.WidgetError{
				Op:     "widget.Raise",
				Kind:   errors.KindSubscriber,
				Widget: b.id,
				Err:    err,
			}
			errors.Report(werr)
			errs = append(errs, werr)
		}
	}
	return stderrors.Join(errs...)
}

func (b *Base) deliver(fn Subscriber, args EventArgs) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Recovered("widget.Raise", r)
		}
	}()
	return fn(args)
}

// Observe registers fn for every transition of the widget's controller.
func (b *Base) Observe(fn func(interaction.Transition)) (cancel func()) {
	return b.controller.Observe(fn)
}

func (b *Base) constructionError(op string, err error) error {
	return &errors.WidgetError{
		Op:         op,
		Kind:       errors.KindConstruction,
		Widget:     b.id,
		Err:        err,
		StackTrace: errors.CaptureStack(),
	}
}

// Must panics if err is non-nil. Constructors use it to fail fast on
// construction errors.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func (b *Base) String() string {
	return fmt.Sprintf("%s(%s)", b.role, b.id)
}
