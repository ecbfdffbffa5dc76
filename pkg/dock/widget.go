package dock

// Widget kinds passed to [Factory.NewWidget]. Renderers can use the
// kind to pick chrome (borders, tab strips, dividers) per container.
const (
	WidgetRoot    = "root"
	WidgetSplit   = "split"
	WidgetLineUp  = "lineup"
	WidgetTabbing = "tabbing"
	WidgetLeaf    = "view"
)

// Widget is the rendered surface backing a container or view. The
// layout tree owns widget geometry and visibility; everything else
// (styling, input, painting) belongs to the rendering collaborator.
type Widget interface {
	// SetBounds assigns the widget's rectangle.
	SetBounds(Rect)

	// Bounds returns the last assigned rectangle.
	Bounds() Rect

	// SetVisible shows or hides the widget.
	SetVisible(bool)

	// Visible reports whether the widget is shown.
	Visible() bool

	// Destroy releases the widget's resources. The widget must not be
	// used afterwards.
	Destroy()
}

// Factory creates widgets for the layout tree. Implementations decide
// what a widget actually is: a styled terminal region, a test double,
// or nothing at all.
type Factory interface {
	// NewWidget creates a widget for the given kind (one of the
	// Widget* constants).
	NewWidget(kind string) Widget
}

// nullWidget tracks geometry and visibility but renders nothing.
type nullWidget struct {
	bounds  Rect
	visible bool
}

func (w *nullWidget) SetBounds(r Rect)  { w.bounds = r }
func (w *nullWidget) Bounds() Rect      { return w.bounds }
func (w *nullWidget) SetVisible(v bool) { w.visible = v }
func (w *nullWidget) Visible() bool     { return w.visible }
func (w *nullWidget) Destroy()          {}

// nullFactory produces nullWidgets.
type nullFactory struct{}

func (nullFactory) NewWidget(string) Widget { return &nullWidget{visible: true} }

// NewNullFactory returns a factory whose widgets track geometry and
// visibility but have no rendering backend. Useful for headless
// layout computation and tests.
func NewNullFactory() Factory { return nullFactory{} }
