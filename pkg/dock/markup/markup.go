// Package markup parses the indentation-based layout description
// format. A document is a tree of nodes, each tagged with a layout
// kind; pkg/dock derives a live container tree from it.
//
// Example document:
//
//	hsplit ratio=0.3
//	  view name=sidebar
//	    | Files
//	  tabbing active=1
//	    view
//	      | build log
//	    view
//	      | test log
//
// Node lines start with a kind token followed by key=value attributes.
// Lines starting with "|" are literal text content of the enclosing
// view. Nesting is by indentation.
package markup

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout kind tokens.
const (
	KindHSplit  = "hsplit"
	KindVSplit  = "vsplit"
	KindLineUp  = "lineup"
	KindHLineUp = "hlineup"
	KindVLineUp = "vlineup"
	KindStack   = "stack"
	KindHStack  = "hstack"
	KindVStack  = "vstack"
	KindTabbing = "tabbing"
	KindView    = "view"
)

// Node is one parsed markup element.
type Node struct {
	// Kind is the layout kind token.
	Kind string

	// Attrs holds the key=value attributes from the node line.
	Attrs map[string]string

	// Text is the joined literal content, for view nodes.
	Text string

	// Line is the 1-based source line the node starts on.
	Line int

	Children []*Node
}

// Attr returns the attribute value, or def when absent.
func (n *Node) Attr(key, def string) string {
	if v, ok := n.Attrs[key]; ok {
		return v
	}
	return def
}

// FloatAttr returns the attribute parsed as a float, or def when
// absent.
func (n *Node) FloatAttr(key string, def float64) (float64, error) {
	v, ok := n.Attrs[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: attribute %s=%q is not a number", n.Line, key, v)
	}
	return f, nil
}

// IntAttr returns the attribute parsed as an int, or def when absent.
func (n *Node) IntAttr(key string, def int) (int, error) {
	v, ok := n.Attrs[key]
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("line %d: attribute %s=%q is not an integer", n.Line, key, v)
	}
	return i, nil
}

// BoolAttr reports whether the flag attribute is present and truthy.
// A bare flag (empty value) counts as true.
func (n *Node) BoolAttr(key string) bool {
	v, ok := n.Attrs[key]
	if !ok {
		return false
	}
	return v == "" || v == "true" || v == "1" || v == "yes"
}

func knownKind(k string) bool {
	switch k {
	case KindHSplit, KindVSplit,
		KindLineUp, KindHLineUp, KindVLineUp,
		KindStack, KindHStack, KindVStack,
		KindTabbing, KindView:
		return true
	}
	return false
}

// String renders the node back to markup form, for diagnostics.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(n.Kind)
	for k, v := range n.Attrs {
		fmt.Fprintf(b, " %s=%s", k, v)
	}
	b.WriteByte('\n')
	if n.Text != "" {
		for _, line := range strings.Split(n.Text, "\n") {
			b.WriteString(indent)
			b.WriteString("  | ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	for _, c := range n.Children {
		c.write(b, depth+1)
	}
}
