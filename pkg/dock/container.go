package dock

import "errors"

var (
	// ErrNilChild is returned by constructors and push operations when
	// a child container is nil.
	ErrNilChild = errors.New("child container must not be nil")

	// ErrNilView is returned when a leaf is created without a view.
	ErrNilView = errors.New("view must not be nil")

	// ErrRatioRange is returned when a split ratio falls outside [0,1].
	ErrRatioRange = errors.New("ratio must be in [0,1]")

	// ErrActiveRange is returned by [Tabbing.SetActive] when the index
	// does not address a child.
	ErrActiveRange = errors.New("active index out of range")

	// ErrOwnedChild is returned when attaching a container that still
	// belongs to another parent. Detach it first; a child belongs to at
	// most one parent at a time.
	ErrOwnedChild = errors.New("container already has a parent")
)

// Container is a node in the layout tree. All containers share the
// same capability set: size negotiation, visibility, resize
// propagation, serialization, and explicit teardown.
type Container interface {
	// MinSize returns the smallest extent the subtree can render at.
	// Minimum sizes aggregate from the leaves up.
	MinSize() Size

	// Visible reports whether the container is shown.
	Visible() bool

	// SetVisible shows or hides the container and its surface.
	SetVisible(bool)

	// Bounds returns the container's current rectangle.
	Bounds() Rect

	// SetBounds assigns the rectangle and lays out the subtree.
	SetBounds(Rect)

	// Resized re-runs layout with the current bounds. Resize
	// notifications flow from the root down.
	Resized()

	// Dump serializes the subtree to its persisted mirror.
	Dump() *Dump

	// Destroy detaches the container from its parent (if any) and
	// recursively destroys children, views, and widgets. Destroy is
	// the sole teardown path; call it exactly once.
	Destroy()

	// Parent returns the owning parent, or nil for a detached
	// container or the root.
	Parent() Parent

	// Widget returns the container's rendered surface.
	Widget() Widget

	// Options returns the container's shared persisted options.
	Options() Options

	setParent(Parent)
}

// Parent is a container owning an ordered sequence of children.
// Insertion order is significant: it determines layout order and tab
// order.
type Parent interface {
	Container

	// Children returns a snapshot of the child sequence. Mutating the
	// returned slice does not affect the tree.
	Children() []Container

	// Remove detaches the child from this parent. It reports whether
	// the child was found. The child is not destroyed.
	Remove(Container) bool

	// Replace swaps old for new in place, preserving order. It reports
	// whether old was found. The old child is detached, not destroyed.
	Replace(old, new Container) bool
}

// Options are the shared persisted fields every container carries.
type Options struct {
	// Name labels the container in dumps and tab strips.
	Name string

	// Fixed marks the container immovable for drag-and-drop.
	Fixed bool

	// FixedLayout suppresses the wrap-with-header behavior.
	FixedLayout bool

	// AutoWrap requests automatic wrapping when content is pushed
	// beside this container.
	AutoWrap bool
}

// base carries state common to every container.
type base struct {
	parent  Parent
	widget  Widget
	factory Factory
	bounds  Rect
	opts    Options
}

func newBase(f Factory, kind string, opts Options) base {
	return base{widget: f.NewWidget(kind), factory: f, opts: opts}
}

func (b *base) Bounds() Rect       { return b.bounds }
func (b *base) Parent() Parent     { return b.parent }
func (b *base) Widget() Widget     { return b.widget }
func (b *base) Options() Options   { return b.opts }
func (b *base) setParent(p Parent) { b.parent = p }
func (b *base) Visible() bool      { return b.widget.Visible() }
func (b *base) SetVisible(v bool)  { b.widget.SetVisible(v) }

func (b *base) storeBounds(r Rect) {
	b.bounds = r
	b.widget.SetBounds(r)
}

// detach removes c from its parent, if it has one.
func (b *base) detach(c Container) {
	if b.parent != nil {
		b.parent.Remove(c)
	}
}

// baseDump seeds a dump with the shared option fields.
func (b *base) baseDump(typ string) *Dump {
	return &Dump{
		Type:        typ,
		Name:        b.opts.Name,
		Fixed:       b.opts.Fixed,
		FixedLayout: b.opts.FixedLayout,
		AutoWrap:    b.opts.AutoWrap,
	}
}

// parentBase adds child ownership to base.
type parentBase struct {
	base
	children []Container
}

// Children returns a snapshot copy, so callers may mutate the tree
// while iterating (resize during remove, destroy during traversal).
func (p *parentBase) Children() []Container {
	out := make([]Container, len(p.children))
	copy(out, p.children)
	return out
}

// attach appends child and points its parent back-reference at owner.
// owner must be the concrete container embedding this parentBase.
func (p *parentBase) attach(owner Parent, child Container) error {
	if child == nil {
		return ErrNilChild
	}
	if child.Parent() != nil {
		return ErrOwnedChild
	}
	child.setParent(owner)
	p.children = append(p.children, child)
	return nil
}

// Remove detaches child without destroying it.
func (p *parentBase) Remove(child Container) bool {
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			child.setParent(nil)
			return true
		}
	}
	return false
}

// Replace swaps old for new in place. old is detached, not destroyed.
func (p *parentBase) Replace(owner Parent, old, new Container) bool {
	if new == nil || new.Parent() != nil {
		return false
	}
	for i, c := range p.children {
		if c == old {
			old.setParent(nil)
			new.setParent(owner)
			p.children[i] = new
			return true
		}
	}
	return false
}

// destroyChildren tears down all children over a snapshot: each
// child's Destroy detaches it from this parent, mutating the live
// slice mid-iteration otherwise.
func (p *parentBase) destroyChildren() {
	for _, c := range p.Children() {
		c.Destroy()
	}
}

// childDumps serializes all children in order.
func (p *parentBase) childDumps() []*Dump {
	out := make([]*Dump, len(p.children))
	for i, c := range p.children {
		out[i] = c.Dump()
	}
	return out
}
