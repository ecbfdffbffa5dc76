package dock

import "fmt"

// Restore reconstructs a container tree from a dump. View references
// are resolved through the supplied resolver; inline-content view
// nodes become text views without consulting it. The dump is validated
// up front, so a malformed dump is rejected before any container is
// built.
func Restore(f Factory, d *Dump, resolve ViewResolver) (*Root, error) {
	if d == nil {
		return nil, fmt.Errorf("nil dump")
	}
	if d.Type != TypeRoot {
		return nil, fmt.Errorf("restore expects a root node, got %q", d.Type)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	child, err := restoreNode(f, d.Children[0], resolve)
	if err != nil {
		return nil, err
	}
	return newRoot(f, child, optsFromDump(d))
}

func restoreNode(f Factory, d *Dump, resolve ViewResolver) (Container, error) {
	switch d.Type {
	case TypeSplit:
		return restoreSplit(f, d, resolve)
	case TypeLineUp:
		return restoreLineUp(f, d, resolve)
	case TypeTabbing:
		return restoreTabbing(f, d, resolve)
	case TypeView:
		return restoreLeaf(f, d, resolve)
	default:
		return nil, fmt.Errorf("unknown dump node type %q", d.Type)
	}
}

func restoreSplit(f Factory, d *Dump, resolve ViewResolver) (*Split, error) {
	o, err := ParseOrientation(d.Orientation)
	if err != nil {
		return nil, err
	}
	children, err := restoreChildren(f, d.Children, resolve)
	if err != nil {
		return nil, err
	}
	s, err := newSplit(f, o, *d.Ratio, children[0], children[1], optsFromDump(d))
	if err != nil {
		return nil, err
	}
	// Dumps written by this package are strictly binary, but an n-ary
	// split node restores through the same push path builders use.
	for _, c := range children[2:] {
		if err := s.Push(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func restoreLineUp(f Factory, d *Dump, resolve ViewResolver) (*LineUp, error) {
	o, err := ParseOrientation(d.Orientation)
	if err != nil {
		return nil, err
	}
	children, err := restoreChildren(f, d.Children, resolve)
	if err != nil {
		return nil, err
	}
	return newLineUp(f, o, d.Stacked, children, optsFromDump(d))
}

func restoreTabbing(f Factory, d *Dump, resolve ViewResolver) (*Tabbing, error) {
	children, err := restoreChildren(f, d.Children, resolve)
	if err != nil {
		return nil, err
	}
	active := 0
	if d.Active != nil {
		active = *d.Active
	}
	return newTabbing(f, active, children, optsFromDump(d))
}

func restoreLeaf(f Factory, d *Dump, resolve ViewResolver) (*Leaf, error) {
	var v View
	if d.View != nil {
		if resolve == nil {
			return nil, fmt.Errorf("view node references id %d but no resolver was supplied", *d.View)
		}
		resolved, err := resolve(*d.View)
		if err != nil {
			return nil, fmt.Errorf("resolve view %d: %w", *d.View, err)
		}
		v = resolved
	} else {
		v = NewTextView(f, d.Content)
	}
	return newLeaf(f, v, optsFromDump(d))
}

func restoreChildren(f Factory, dumps []*Dump, resolve ViewResolver) ([]Container, error) {
	out := make([]Container, len(dumps))
	for i, cd := range dumps {
		c, err := restoreNode(f, cd, resolve)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func optsFromDump(d *Dump) Options {
	return Options{
		Name:        d.Name,
		Fixed:       d.Fixed,
		FixedLayout: d.FixedLayout,
		AutoWrap:    d.AutoWrap,
	}
}
