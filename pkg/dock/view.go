package dock

import "strings"

// NoReference is the sentinel reference id for views that carry their
// content inline (text views). Such views are embedded verbatim in
// dumps instead of being resolved externally.
const NoReference = -1

// View is externally supplied content rendered inside a [Leaf]. The
// layout tree never inspects view content; it only negotiates size and
// visibility and forwards lifecycle events.
type View interface {
	// MinSize returns the smallest extent the view can usefully render at.
	MinSize() Size

	// Visible reports whether the view is shown.
	Visible() bool

	// SetVisible shows or hides the view.
	SetVisible(bool)

	// Widget returns the view's rendered surface.
	Widget() Widget

	// Resized notifies the view that its widget's bounds changed.
	Resized()

	// Destroy releases the view. Called exactly once, by the owning
	// leaf's Destroy.
	Destroy()

	// Reference returns the view's persistence reference id, or
	// NoReference for inline-content views.
	Reference() int
}

// ViewResolver resolves a persisted view reference id back to a live
// view during [Restore]. It is supplied by the embedding application;
// the dock package persists only opaque reference ids.
type ViewResolver func(ref int) (View, error)

// TextView is the built-in inline-content view: it owns a literal text
// block and persists it verbatim (reference id NoReference).
type TextView struct {
	widget  Widget
	content string
	min     Size
}

// NewTextView creates a text view rendering the given content. The
// minimum size is derived from the content's line grid.
func NewTextView(f Factory, content string) *TextView {
	return &TextView{
		widget:  f.NewWidget(WidgetLeaf),
		content: content,
		min:     textExtent(content),
	}
}

// Content returns the literal text this view renders.
func (v *TextView) Content() string { return v.content }

// MinSize returns the content's line grid extent.
func (v *TextView) MinSize() Size { return v.min }

// Visible reports whether the view's widget is shown.
func (v *TextView) Visible() bool { return v.widget.Visible() }

// SetVisible shows or hides the view's widget.
func (v *TextView) SetVisible(visible bool) { v.widget.SetVisible(visible) }

// Widget returns the view's surface.
func (v *TextView) Widget() Widget { return v.widget }

// Resized is a no-op; text reflows on render.
func (v *TextView) Resized() {}

// Destroy releases the view's widget.
func (v *TextView) Destroy() { v.widget.Destroy() }

// Reference returns NoReference: text views embed their content inline.
func (v *TextView) Reference() int { return NoReference }

// WidgetView wraps a pre-existing widget as a view. It persists by
// reference id; the embedding application resolves the id back to the
// widget on restore.
type WidgetView struct {
	widget Widget
	ref    int
	min    Size
}

// NewWidgetView wraps an existing widget under the given reference id.
// min is the widget's minimum useful extent as known by the caller.
func NewWidgetView(w Widget, ref int, min Size) *WidgetView {
	return &WidgetView{widget: w, ref: ref, min: min}
}

// MinSize returns the caller-declared minimum extent.
func (v *WidgetView) MinSize() Size { return v.min }

// Visible reports whether the wrapped widget is shown.
func (v *WidgetView) Visible() bool { return v.widget.Visible() }

// SetVisible shows or hides the wrapped widget.
func (v *WidgetView) SetVisible(visible bool) { v.widget.SetVisible(visible) }

// Widget returns the wrapped widget.
func (v *WidgetView) Widget() Widget { return v.widget }

// Resized is a no-op; the wrapped widget observes its own bounds.
func (v *WidgetView) Resized() {}

// Destroy releases the wrapped widget.
func (v *WidgetView) Destroy() { v.widget.Destroy() }

// Reference returns the persistence reference id.
func (v *WidgetView) Reference() int { return v.ref }

// textExtent measures a text block: widest line by rune count, and the
// number of lines (at least 1x1 for non-degenerate layout).
func textExtent(s string) Size {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	if w < 1 {
		w = 1
	}
	return Size{Width: w, Height: len(lines)}
}
