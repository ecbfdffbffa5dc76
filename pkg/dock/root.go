package dock

// Root is the top-level wrapper owning exactly one child subtree. It
// is the entry point for dumping a whole layout and the terminal
// ancestor during restore.
type Root struct {
	parentBase
}

func newRoot(f Factory, child Container, opts Options) (*Root, error) {
	r := &Root{parentBase: parentBase{base: newBase(f, WidgetRoot, opts)}}
	if err := r.attach(r, child); err != nil {
		return nil, err
	}
	return r, nil
}

// Replace swaps the subtree in place and lays the new one out.
func (r *Root) Replace(old, new Container) bool {
	if !r.parentBase.Replace(r, old, new) {
		return false
	}
	r.Resized()
	return true
}

// Child returns the single owned subtree, or nil after SwapChild
// detached it without a replacement.
func (r *Root) Child() Container {
	if len(r.children) == 0 {
		return nil
	}
	return r.children[0]
}

// SwapChild replaces the subtree: the old child is detached (not
// destroyed) and returned, the new one attached and sized to the
// root's bounds. Destroying the old subtree is the caller's call.
func (r *Root) SwapChild(c Container) (Container, error) {
	if c == nil {
		return nil, ErrNilChild
	}
	if c.Parent() != nil {
		return nil, ErrOwnedChild
	}
	old := r.Child()
	if old != nil {
		r.Remove(old)
	}
	if err := r.attach(r, c); err != nil {
		return old, err
	}
	r.Resized()
	return old, nil
}

// MinSize proxies to the child.
func (r *Root) MinSize() Size {
	if c := r.Child(); c != nil {
		return c.MinSize()
	}
	return Size{}
}

// SetBounds assigns the rectangle and lays out the subtree.
func (r *Root) SetBounds(rect Rect) {
	r.storeBounds(rect)
	r.Resized()
}

// Resized hands the full bounds to the child.
func (r *Root) Resized() {
	if c := r.Child(); c != nil && !r.bounds.Empty() {
		c.SetBounds(r.bounds)
	}
}

// Dump wraps the child's dump under a root node.
func (r *Root) Dump() *Dump {
	d := r.baseDump(TypeRoot)
	d.Children = r.childDumps()
	return d
}

// Destroy tears down the subtree and the root surface. A root has no
// parent, so there is nothing to detach from.
func (r *Root) Destroy() {
	r.destroyChildren()
	r.widget.Destroy()
}
