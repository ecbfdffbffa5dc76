package dock

// Leaf wraps exactly one view as a layout-tree node. Size and
// visibility delegate to the view.
type Leaf struct {
	base
	view View
}

func newLeaf(f Factory, v View, opts Options) (*Leaf, error) {
	if v == nil {
		return nil, ErrNilView
	}
	return &Leaf{base: base{factory: f, opts: opts}, view: v}, nil
}

// View returns the wrapped view.
func (l *Leaf) View() View { return l.view }

// Widget returns the view's surface; a leaf has no surface of its own.
func (l *Leaf) Widget() Widget { return l.view.Widget() }

// MinSize proxies to the view.
func (l *Leaf) MinSize() Size { return l.view.MinSize() }

// Visible proxies to the view.
func (l *Leaf) Visible() bool { return l.view.Visible() }

// SetVisible proxies to the view.
func (l *Leaf) SetVisible(v bool) { l.view.SetVisible(v) }

// SetBounds assigns the rectangle and forwards it to the view.
func (l *Leaf) SetBounds(r Rect) {
	l.bounds = r
	l.Resized()
}

// Resized pushes the current bounds into the view's widget and
// notifies the view.
func (l *Leaf) Resized() {
	l.view.Widget().SetBounds(l.bounds)
	l.view.Resized()
}

// Dump emits a view node: inline content for text views, a reference
// id for everything else.
func (l *Leaf) Dump() *Dump {
	d := l.baseDump(TypeView)
	if l.view.Reference() == NoReference {
		if tv, ok := l.view.(*TextView); ok {
			d.Content = tv.Content()
		}
		return d
	}
	ref := l.view.Reference()
	d.View = &ref
	return d
}

// Destroy detaches from the parent (if any) and destroys the view.
func (l *Leaf) Destroy() {
	l.detach(l)
	l.view.Destroy()
}
