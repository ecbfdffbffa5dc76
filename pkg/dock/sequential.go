package dock

// sequential is the shared machinery for containers laying children
// out along one axis (Split and LineUp). The orientation is fixed at
// construction and persisted.
type sequential struct {
	parentBase
	orientation Orientation
}

// Orientation returns the container's primary axis.
func (q *sequential) Orientation() Orientation { return q.orientation }

// CanDrop reports whether the drop area token is compatible with the
// container's orientation. The drag-and-drop collaborator calls this
// to filter proposed drop targets.
func (q *sequential) CanDrop(area DropArea) bool {
	return area.compatible(q.orientation)
}

// HideableHeader reports whether the container suppresses its wrap
// header. True for fixed layouts, which must not be rearranged.
func (q *sequential) HideableHeader() bool { return q.opts.FixedLayout }

// foldMin aggregates the children's minimum sizes: sum plus padding
// along the primary axis, maximum across the cross axis. With no
// children the aggregate is zero; callers are expected to keep at
// least one child attached.
func (q *sequential) foldMin(padding int) Size {
	if len(q.children) == 0 {
		return Size{}
	}
	var primary, cross int
	for _, c := range q.children {
		m := c.MinSize()
		primary += m.primary(q.orientation)
		if v := m.cross(q.orientation); v > cross {
			cross = v
		}
	}
	primary += padding
	return sizeFromAxes(q.orientation, primary, cross)
}

// foldMinMax is like foldMin but takes the maximum along the primary
// axis instead of the sum (stacked line-ups scroll, so only the
// largest child constrains them).
func (q *sequential) foldMinMax() Size {
	if len(q.children) == 0 {
		return Size{}
	}
	var primary, cross int
	for _, c := range q.children {
		m := c.MinSize()
		if v := m.primary(q.orientation); v > primary {
			primary = v
		}
		if v := m.cross(q.orientation); v > cross {
			cross = v
		}
	}
	return sizeFromAxes(q.orientation, primary, cross)
}

// sizeFromAxes assembles a Size from primary/cross extents.
func sizeFromAxes(o Orientation, primary, cross int) Size {
	if o == Vertical {
		return Size{Width: cross, Height: primary}
	}
	return Size{Width: primary, Height: cross}
}

// rectFromAxes assembles a child rectangle inside bounds: the child
// occupies [offset, offset+extent) along the primary axis and the full
// cross extent.
func rectFromAxes(bounds Rect, o Orientation, offset, extent int) Rect {
	if o == Vertical {
		return Rect{X: bounds.X, Y: bounds.Y + offset, Width: bounds.Width, Height: extent}
	}
	return Rect{X: bounds.X + offset, Y: bounds.Y, Width: extent, Height: bounds.Height}
}
