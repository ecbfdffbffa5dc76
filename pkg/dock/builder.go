package dock

import "errors"

// ErrSplitChildren is returned when a split builder reaches Build with
// fewer than two children.
var ErrSplitChildren = errors.New("split requires at least two children")

// ErrNoChildren is returned when a lineup or tabbing builder reaches
// Build with no children.
var ErrNoChildren = errors.New("container requires at least one child")

// Builder is deferred container construction: builders accumulate
// configuration fluently and hold no live containers until Build,
// which constructs children before their parent.
type Builder interface {
	Build(f Factory) (Container, error)
}

// Text starts a leaf builder around an inline text view.
func Text(content string) *ViewBuilder {
	return &ViewBuilder{content: content}
}

// Wrap starts a leaf builder around an externally supplied view.
func Wrap(v View) *ViewBuilder {
	return &ViewBuilder{view: v, wrapped: true}
}

// ViewBuilder builds a leaf.
type ViewBuilder struct {
	content string
	view    View
	wrapped bool
	opts    Options
}

// Named sets the container name.
func (b *ViewBuilder) Named(name string) *ViewBuilder { b.opts.Name = name; return b }

// Fixed marks the leaf immovable for drag-and-drop.
func (b *ViewBuilder) Fixed() *ViewBuilder { b.opts.Fixed = true; return b }

// AutoWrap requests automatic wrapping when content is pushed beside
// the leaf.
func (b *ViewBuilder) AutoWrap() *ViewBuilder { b.opts.AutoWrap = true; return b }

// Build constructs the leaf. A wrapped nil view is an error, not an
// empty text view.
func (b *ViewBuilder) Build(f Factory) (Container, error) {
	v := b.view
	if v == nil && !b.wrapped {
		v = NewTextView(f, b.content)
	}
	return newLeaf(f, v, b.opts)
}

// HSplit starts a horizontal split builder: ratio is the first child's
// share of the width.
func HSplit(ratio float64, children ...Builder) *SplitBuilder {
	return SplitOf(Horizontal, ratio, children...)
}

// VSplit starts a vertical split builder: ratio is the first child's
// share of the height.
func VSplit(ratio float64, children ...Builder) *SplitBuilder {
	return SplitOf(Vertical, ratio, children...)
}

// SplitOf starts a split builder with an explicit orientation.
func SplitOf(o Orientation, ratio float64, children ...Builder) *SplitBuilder {
	return &SplitBuilder{orientation: o, ratio: ratio, children: children}
}

// SplitBuilder builds a split. Children beyond the second nest as
// sub-splits during Build.
type SplitBuilder struct {
	orientation Orientation
	ratio       float64
	children    []Builder
	opts        Options
}

// Named sets the container name.
func (b *SplitBuilder) Named(name string) *SplitBuilder { b.opts.Name = name; return b }

// Fixed marks the split immovable for drag-and-drop.
func (b *SplitBuilder) Fixed() *SplitBuilder { b.opts.Fixed = true; return b }

// FixedLayout suppresses the wrap header, pinning the arrangement.
func (b *SplitBuilder) FixedLayout() *SplitBuilder { b.opts.FixedLayout = true; return b }

// AutoWrap requests automatic wrapping on adjacent pushes.
func (b *SplitBuilder) AutoWrap() *SplitBuilder { b.opts.AutoWrap = true; return b }

// Push appends another child builder.
func (b *SplitBuilder) Push(c Builder) *SplitBuilder { b.children = append(b.children, c); return b }

// Build constructs the children in order, then the split.
func (b *SplitBuilder) Build(f Factory) (Container, error) {
	if len(b.children) < 2 {
		return nil, ErrSplitChildren
	}
	built, err := buildChildren(f, b.children)
	if err != nil {
		return nil, err
	}
	s, err := newSplit(f, b.orientation, b.ratio, built[0], built[1], b.opts)
	if err != nil {
		return nil, err
	}
	for _, c := range built[2:] {
		if err := s.Push(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// HLineUp starts a horizontal lineup builder.
func HLineUp(children ...Builder) *LineUpBuilder {
	return LineUpOf(Horizontal, children...)
}

// VLineUp starts a vertical lineup builder.
func VLineUp(children ...Builder) *LineUpBuilder {
	return LineUpOf(Vertical, children...)
}

// LineUpOf starts a lineup builder with an explicit orientation.
func LineUpOf(o Orientation, children ...Builder) *LineUpBuilder {
	return &LineUpBuilder{orientation: o, children: children}
}

// LineUpBuilder builds a lineup.
type LineUpBuilder struct {
	orientation Orientation
	stacked     bool
	children    []Builder
	opts        Options
}

// Stacked switches to natural-size mode with scrolling overflow.
func (b *LineUpBuilder) Stacked() *LineUpBuilder { b.stacked = true; return b }

// Named sets the container name.
func (b *LineUpBuilder) Named(name string) *LineUpBuilder { b.opts.Name = name; return b }

// Fixed marks the lineup immovable for drag-and-drop.
func (b *LineUpBuilder) Fixed() *LineUpBuilder { b.opts.Fixed = true; return b }

// FixedLayout suppresses the wrap header, pinning the arrangement.
func (b *LineUpBuilder) FixedLayout() *LineUpBuilder { b.opts.FixedLayout = true; return b }

// AutoWrap requests automatic wrapping on adjacent pushes.
func (b *LineUpBuilder) AutoWrap() *LineUpBuilder { b.opts.AutoWrap = true; return b }

// Push appends another child builder.
func (b *LineUpBuilder) Push(c Builder) *LineUpBuilder { b.children = append(b.children, c); return b }

// Build constructs the children in order, then the lineup.
func (b *LineUpBuilder) Build(f Factory) (Container, error) {
	if len(b.children) == 0 {
		return nil, ErrNoChildren
	}
	built, err := buildChildren(f, b.children)
	if err != nil {
		return nil, err
	}
	return newLineUp(f, b.orientation, b.stacked, built, b.opts)
}

// Tabs starts a tabbing builder. The first child is active unless
// Active or PushActive says otherwise.
func Tabs(children ...Builder) *TabbingBuilder {
	return &TabbingBuilder{children: children}
}

// TabbingBuilder builds a tabbing container.
type TabbingBuilder struct {
	active   int
	children []Builder
	opts     Options
}

// Active marks the child at index i as the initially visible tab.
func (b *TabbingBuilder) Active(i int) *TabbingBuilder { b.active = i; return b }

// Named sets the container name.
func (b *TabbingBuilder) Named(name string) *TabbingBuilder { b.opts.Name = name; return b }

// Fixed marks the tabbing immovable for drag-and-drop.
func (b *TabbingBuilder) Fixed() *TabbingBuilder { b.opts.Fixed = true; return b }

// AutoWrap requests automatic wrapping on adjacent pushes.
func (b *TabbingBuilder) AutoWrap() *TabbingBuilder { b.opts.AutoWrap = true; return b }

// Push appends another tab.
func (b *TabbingBuilder) Push(c Builder) *TabbingBuilder { b.children = append(b.children, c); return b }

// PushActive appends another tab and marks it active.
func (b *TabbingBuilder) PushActive(c Builder) *TabbingBuilder {
	b.children = append(b.children, c)
	b.active = len(b.children) - 1
	return b
}

// Build constructs the tabs in order, then the tabbing container.
func (b *TabbingBuilder) Build(f Factory) (Container, error) {
	if len(b.children) == 0 {
		return nil, ErrNoChildren
	}
	built, err := buildChildren(f, b.children)
	if err != nil {
		return nil, err
	}
	return newTabbing(f, b.active, built, b.opts)
}

// BuildRoot builds the subtree and wraps it under a fresh root.
func BuildRoot(f Factory, b Builder) (*Root, error) {
	if b == nil {
		return nil, ErrNilChild
	}
	child, err := b.Build(f)
	if err != nil {
		return nil, err
	}
	return newRoot(f, child, Options{})
}

func buildChildren(f Factory, builders []Builder) ([]Container, error) {
	out := make([]Container, len(builders))
	for i, b := range builders {
		if b == nil {
			return nil, ErrNilChild
		}
		c, err := b.Build(f)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
