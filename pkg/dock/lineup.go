package dock

// LineUp arranges any number of children along one axis in one of two
// modes. Equal share gives every child 1/N of the available primary
// space; stacked keeps each child at its own minimum extent, relying on
// the widget's scroll affordance when the children overflow.
type LineUp struct {
	sequential
	stacked bool
}

func newLineUp(f Factory, o Orientation, stacked bool, children []Container, opts Options) (*LineUp, error) {
	l := &LineUp{
		sequential: sequential{
			parentBase:  parentBase{base: newBase(f, WidgetLineUp, opts)},
			orientation: o,
		},
		stacked: stacked,
	}
	for _, c := range children {
		if err := l.attach(l, c); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Stacked reports whether children keep their natural size (true) or
// share the axis equally (false).
func (l *LineUp) Stacked() bool { return l.stacked }

// MinSize aggregates the children: maximum across the cross axis, and
// along the primary axis the sum for equal share or the maximum for
// stacked mode.
func (l *LineUp) MinSize() Size {
	if l.stacked {
		return l.foldMinMax()
	}
	return l.foldMin(0)
}

// SetBounds assigns the rectangle and lays out the children.
func (l *LineUp) SetBounds(r Rect) {
	l.storeBounds(r)
	l.Resized()
}

// Resized distributes the primary axis. Equal share hands each child
// 1/N, spreading the integer remainder over the leading children;
// stacked places each child at its own minimum extent in order.
func (l *LineUp) Resized() {
	n := len(l.children)
	if n == 0 || l.bounds.Empty() {
		return
	}
	if l.stacked {
		offset := 0
		for _, c := range l.children {
			extent := c.MinSize().primary(l.orientation)
			c.SetBounds(rectFromAxes(l.bounds, l.orientation, offset, extent))
			offset += extent
		}
		return
	}
	avail := l.bounds.Size().primary(l.orientation)
	share, rest := avail/n, avail%n
	offset := 0
	for i, c := range l.children {
		extent := share
		if i < rest {
			extent++
		}
		c.SetBounds(rectFromAxes(l.bounds, l.orientation, offset, extent))
		offset += extent
	}
}

// Push appends a child and relayouts.
func (l *LineUp) Push(c Container) error {
	if err := l.attach(l, c); err != nil {
		return err
	}
	l.Resized()
	return nil
}

// Remove detaches the child and redistributes the freed space.
func (l *LineUp) Remove(c Container) bool {
	if !l.parentBase.Remove(c) {
		return false
	}
	l.Resized()
	return true
}

// Replace swaps old for new in place.
func (l *LineUp) Replace(old, new Container) bool {
	if !l.parentBase.Replace(l, old, new) {
		return false
	}
	l.Resized()
	return true
}

// Dump emits the lineup node with orientation and stack flag.
func (l *LineUp) Dump() *Dump {
	d := l.baseDump(TypeLineUp)
	d.Orientation = l.orientation.String()
	d.Stacked = l.stacked
	d.Children = l.childDumps()
	return d
}

// Destroy detaches from the parent and recursively destroys all
// children and the lineup's own surface.
func (l *LineUp) Destroy() {
	l.detach(l)
	l.destroyChildren()
	l.widget.Destroy()
}
