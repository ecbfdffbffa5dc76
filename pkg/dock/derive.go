package dock

import (
	"fmt"

	"github.com/docktile/docktile/pkg/dock/markup"
)

// NodeViewFactory produces a view for a markup view node. Supplied by
// the embedding application when view nodes carry more than literal
// text; the default wraps the node's text as a text view.
type NodeViewFactory func(n *markup.Node) (View, error)

// DeriveSource parses a markup document and derives a live container
// tree from it.
func DeriveSource(f Factory, src string, vf NodeViewFactory) (*Root, error) {
	n, err := markup.Parse(src)
	if err != nil {
		return nil, err
	}
	return Derive(f, n, vf)
}

// Derive builds a container tree equivalent to the parsed markup
// node, wrapped under a fresh root. Layout kinds map to containers;
// view nodes go through the view factory.
func Derive(f Factory, n *markup.Node, vf NodeViewFactory) (*Root, error) {
	if n == nil {
		return nil, ErrNilChild
	}
	if vf == nil {
		vf = func(n *markup.Node) (View, error) { return NewTextView(f, n.Text), nil }
	}
	child, err := deriveNode(f, n, vf)
	if err != nil {
		return nil, err
	}
	return newRoot(f, child, Options{})
}

func deriveNode(f Factory, n *markup.Node, vf NodeViewFactory) (Container, error) {
	switch n.Kind {
	case markup.KindHSplit:
		return deriveSplit(f, n, Horizontal, vf)
	case markup.KindVSplit:
		return deriveSplit(f, n, Vertical, vf)
	case markup.KindLineUp, markup.KindHLineUp:
		return deriveLineUp(f, n, Horizontal, false, vf)
	case markup.KindVLineUp:
		return deriveLineUp(f, n, Vertical, false, vf)
	case markup.KindStack, markup.KindVStack:
		return deriveLineUp(f, n, Vertical, true, vf)
	case markup.KindHStack:
		return deriveLineUp(f, n, Horizontal, true, vf)
	case markup.KindTabbing:
		return deriveTabbing(f, n, vf)
	case markup.KindView:
		return deriveLeaf(f, n, vf)
	default:
		return nil, fmt.Errorf("line %d: no container for layout kind %q", n.Line, n.Kind)
	}
}

func deriveSplit(f Factory, n *markup.Node, o Orientation, vf NodeViewFactory) (*Split, error) {
	if len(n.Children) < 2 {
		return nil, fmt.Errorf("line %d: %s needs at least two children, got %d", n.Line, n.Kind, len(n.Children))
	}
	ratio, err := n.FloatAttr("ratio", defaultPushRatio)
	if err != nil {
		return nil, err
	}
	children, err := deriveChildren(f, n, vf)
	if err != nil {
		return nil, err
	}
	s, err := newSplit(f, o, ratio, children[0], children[1], optsFromNode(n))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	for _, c := range children[2:] {
		if err := s.Push(c); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
	}
	return s, nil
}

func deriveLineUp(f Factory, n *markup.Node, o Orientation, stacked bool, vf NodeViewFactory) (*LineUp, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("line %d: %s needs at least one child", n.Line, n.Kind)
	}
	children, err := deriveChildren(f, n, vf)
	if err != nil {
		return nil, err
	}
	return newLineUp(f, o, stacked, children, optsFromNode(n))
}

func deriveTabbing(f Factory, n *markup.Node, vf NodeViewFactory) (*Tabbing, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("line %d: tabbing needs at least one child", n.Line)
	}
	active, err := n.IntAttr("active", 0)
	if err != nil {
		return nil, err
	}
	children, err := deriveChildren(f, n, vf)
	if err != nil {
		return nil, err
	}
	t, err := newTabbing(f, active, children, optsFromNode(n))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return t, nil
}

func deriveLeaf(f Factory, n *markup.Node, vf NodeViewFactory) (*Leaf, error) {
	v, err := vf(n)
	if err != nil {
		return nil, fmt.Errorf("line %d: view factory: %w", n.Line, err)
	}
	l, err := newLeaf(f, v, optsFromNode(n))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return l, nil
}

func deriveChildren(f Factory, n *markup.Node, vf NodeViewFactory) ([]Container, error) {
	out := make([]Container, len(n.Children))
	for i, cn := range n.Children {
		c, err := deriveNode(f, cn, vf)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func optsFromNode(n *markup.Node) Options {
	return Options{
		Name:        n.Attr("name", ""),
		Fixed:       n.BoolAttr("fixed"),
		FixedLayout: n.BoolAttr("fixed-layout"),
		AutoWrap:    n.BoolAttr("auto-wrap"),
	}
}
