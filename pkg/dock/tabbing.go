package dock

// TabStripHeight is the vertical extent reserved for the tab strip
// above the active child.
const TabStripHeight = 1

// Tabbing shows one of its children at a time, switched through a tab
// strip. Inactive children stay mounted and merely turn invisible, so
// switching tabs is a visibility flip, not a rebuild.
type Tabbing struct {
	parentBase
	active int
}

func newTabbing(f Factory, active int, children []Container, opts Options) (*Tabbing, error) {
	t := &Tabbing{parentBase: parentBase{base: newBase(f, WidgetTabbing, opts)}}
	for _, c := range children {
		if err := t.attach(t, c); err != nil {
			return nil, err
		}
	}
	if active < 0 || (len(children) > 0 && active >= len(children)) {
		return nil, ErrActiveRange
	}
	t.active = active
	t.applyActive()
	return t, nil
}

// Active returns the index of the visible child.
func (t *Tabbing) Active() int { return t.active }

// ActiveChild returns the visible child, or nil when empty.
func (t *Tabbing) ActiveChild() Container {
	if t.active < len(t.children) {
		return t.children[t.active]
	}
	return nil
}

// SetActive switches the visible child: the previous one is hidden,
// the addressed one shown, and the content area relayouted.
func (t *Tabbing) SetActive(i int) error {
	if i < 0 || i >= len(t.children) {
		return ErrActiveRange
	}
	t.active = i
	t.applyActive()
	t.Resized()
	return nil
}

// applyActive makes exactly the active child visible.
func (t *Tabbing) applyActive() {
	for i, c := range t.children {
		c.SetVisible(i == t.active)
	}
}

// MinSize is the element-wise maximum over all children, plus the tab
// strip. Every child must fit the content area, not just the active
// one, so switching tabs never forces a resize.
func (t *Tabbing) MinSize() Size {
	var w, h int
	for _, c := range t.children {
		m := c.MinSize()
		if m.Width > w {
			w = m.Width
		}
		if m.Height > h {
			h = m.Height
		}
	}
	if len(t.children) == 0 {
		return Size{}
	}
	return Size{Width: w, Height: h + TabStripHeight}
}

// SetBounds assigns the rectangle and lays out the children.
func (t *Tabbing) SetBounds(r Rect) {
	t.storeBounds(r)
	t.Resized()
}

// Resized gives every child the content area below the tab strip.
// All children get bounds, visible or not, so a later switch needs no
// layout pass.
func (t *Tabbing) Resized() {
	if len(t.children) == 0 || t.bounds.Empty() {
		return
	}
	content := Rect{
		X:      t.bounds.X,
		Y:      t.bounds.Y + TabStripHeight,
		Width:  t.bounds.Width,
		Height: t.bounds.Height - TabStripHeight,
	}
	for _, c := range t.children {
		c.SetBounds(content)
	}
}

// Push appends a child as a new trailing tab. The active index is
// unchanged, so a push into a populated tabbing starts hidden; the
// sole child of a previously empty tabbing becomes the visible tab.
func (t *Tabbing) Push(c Container) error {
	if err := t.attach(t, c); err != nil {
		return err
	}
	t.applyActive()
	t.Resized()
	return nil
}

// Remove detaches the child and moves the active index off it if
// needed, keeping exactly one child visible.
func (t *Tabbing) Remove(c Container) bool {
	idx := -1
	for i, ch := range t.children {
		if ch == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	t.parentBase.Remove(c)
	if idx < t.active || (t.active == idx && t.active == len(t.children)) {
		if t.active > 0 {
			t.active--
		}
	}
	t.applyActive()
	t.Resized()
	return true
}

// Replace swaps old for new in place, keeping the new child's
// visibility consistent with the active index.
func (t *Tabbing) Replace(old, new Container) bool {
	if !t.parentBase.Replace(t, old, new) {
		return false
	}
	t.applyActive()
	t.Resized()
	return true
}

// Dump emits the tabbing node with the active index.
func (t *Tabbing) Dump() *Dump {
	d := t.baseDump(TypeTabbing)
	active := t.active
	d.Active = &active
	d.Children = t.childDumps()
	return d
}

// Destroy detaches from the parent and recursively destroys all
// children and the tab strip surface.
func (t *Tabbing) Destroy() {
	t.detach(t)
	t.destroyChildren()
	t.widget.Destroy()
}
