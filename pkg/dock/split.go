package dock

import "math"

// DividerThickness is the primary-axis extent reserved for a split's
// divider.
const DividerThickness = 1

// defaultPushRatio is the ratio given to sub-splits created when
// pushing children beyond the second.
const defaultPushRatio = 0.5

// Split arranges two children along one axis, separated by a movable
// divider at a persisted ratio: the first child receives ratio x
// available space, the second the remainder minus the divider.
//
// A split always holds exactly two children internally. Pushing more
// children nests them as additional split levels in the second slot,
// so the n-ary builder API maps onto a strictly binary tree.
type Split struct {
	sequential
	ratio float64
}

func newSplit(f Factory, o Orientation, ratio float64, first, second Container, opts Options) (*Split, error) {
	if ratio < 0 || ratio > 1 {
		return nil, ErrRatioRange
	}
	s := &Split{
		sequential: sequential{
			parentBase:  parentBase{base: newBase(f, WidgetSplit, opts)},
			orientation: o,
		},
		ratio: ratio,
	}
	if err := s.attach(s, first); err != nil {
		return nil, err
	}
	if err := s.attach(s, second); err != nil {
		return nil, err
	}
	return s, nil
}

// Ratio returns the first child's share of the primary axis.
func (s *Split) Ratio() float64 { return s.ratio }

// First returns the child occupying the ratio share.
func (s *Split) First() Container { return s.children[0] }

// Second returns the child occupying the remainder. For splits pushed
// beyond two children this is a nested *Split.
func (s *Split) Second() Container { return s.children[1] }

// SetRatio updates the divider position and relayouts. The stored
// ratio is taken as requested; minimum sizes are enforced during
// layout, so a ratio that would starve a child is rendered clamped.
func (s *Split) SetRatio(ratio float64) error {
	if ratio < 0 || ratio > 1 {
		return ErrRatioRange
	}
	s.ratio = ratio
	s.Resized()
	return nil
}

// MoveDivider shifts the divider by delta cells along the primary
// axis, clamped so neither side drops below its aggregated minimum
// size. This is the drag collaborator's entry point; the resulting
// ratio is what gets persisted.
func (s *Split) MoveDivider(delta int) {
	avail := s.availPrimary()
	if avail <= 0 {
		return
	}
	extent := s.clampFirst(s.firstExtent(avail)+delta, avail)
	s.ratio = float64(extent) / float64(avail)
	s.Resized()
}

// MinSize sums the children's primary extents plus the divider, and
// takes the maximum across the cross axis.
func (s *Split) MinSize() Size { return s.foldMin(DividerThickness) }

// SetBounds assigns the rectangle and lays out both children.
func (s *Split) SetBounds(r Rect) {
	s.storeBounds(r)
	s.Resized()
}

// Resized allocates ratio x available to the first child and the
// remainder minus the divider to the second, clamping so each side
// keeps at least its minimum size whenever the available space allows.
func (s *Split) Resized() {
	if len(s.children) < 2 || s.bounds.Empty() {
		return
	}
	avail := s.availPrimary()
	first := s.clampFirst(s.firstExtent(avail), avail)
	s.children[0].SetBounds(rectFromAxes(s.bounds, s.orientation, 0, first))
	s.children[1].SetBounds(rectFromAxes(s.bounds, s.orientation, first+DividerThickness, avail-first))
}

// Push adds another child, nesting it as a sub-split in the second
// slot so the tree stays binary.
func (s *Split) Push(c Container) error {
	if c == nil {
		return ErrNilChild
	}
	if c.Parent() != nil {
		return ErrOwnedChild
	}
	if len(s.children) < 2 {
		return s.attach(s, c)
	}
	second := s.children[1]
	s.Remove(second)
	nested, err := newSplit(s.factory, s.orientation, defaultPushRatio, second, c, Options{})
	if err != nil {
		// Re-attach so a failed push leaves the split intact.
		s.attach(s, second)
		return err
	}
	if err := s.attach(s, nested); err != nil {
		return err
	}
	s.Resized()
	return nil
}

// Replace swaps old for new among the two slots.
func (s *Split) Replace(old, new Container) bool {
	return s.parentBase.Replace(s, old, new)
}

// Dump emits the split node with orientation and ratio.
func (s *Split) Dump() *Dump {
	d := s.baseDump(TypeSplit)
	d.Orientation = s.orientation.String()
	ratio := s.ratio
	d.Ratio = &ratio
	d.Children = s.childDumps()
	return d
}

// Destroy detaches from the parent and recursively destroys both
// children and the split's own surface.
func (s *Split) Destroy() {
	s.detach(s)
	s.destroyChildren()
	s.widget.Destroy()
}

// availPrimary is the primary-axis space left for children once the
// divider is accounted for.
func (s *Split) availPrimary() int {
	avail := s.bounds.Size().primary(s.orientation) - DividerThickness
	if avail < 0 {
		return 0
	}
	return avail
}

// firstExtent converts the stored ratio to a cell extent.
func (s *Split) firstExtent(avail int) int {
	return int(math.Round(s.ratio * float64(avail)))
}

// clampFirst bounds the first child's extent so both children keep
// their minimum sizes. When the available space cannot honor both
// minimums the raw extent is only kept within [0, avail].
func (s *Split) clampFirst(extent, avail int) int {
	lo := s.children[0].MinSize().primary(s.orientation)
	hi := avail - s.children[1].MinSize().primary(s.orientation)
	if lo <= hi {
		if extent < lo {
			return lo
		}
		if extent > hi {
			return hi
		}
		return extent
	}
	if extent < 0 {
		return 0
	}
	if extent > avail {
		return avail
	}
	return extent
}
