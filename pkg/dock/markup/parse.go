package markup

import (
	"fmt"
	"strings"
)

// Parse reads a markup document and returns its single top-level
// node. Blank lines and lines starting with "#" are skipped. Errors
// carry the 1-based source line.
func Parse(src string) (*Node, error) {
	nodes, err := parseLines(src)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty markup document")
	}
	if len(nodes) > 1 {
		return nil, fmt.Errorf("line %d: multiple top-level nodes, expected one", nodes[1].Line)
	}
	return nodes[0], nil
}

type frame struct {
	indent int
	node   *Node
}

func parseLines(src string) ([]*Node, error) {
	var top []*Node
	var stack []frame

	for i, raw := range strings.Split(src, "\n") {
		lineno := i + 1
		trimmed := strings.TrimLeft(raw, " ")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "\t") {
			return nil, fmt.Errorf("line %d: indentation must use spaces, not tabs", lineno)
		}
		indent := len(raw) - len(trimmed)

		// Pop frames until the top is a proper ancestor.
		for len(stack) > 0 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}

		if strings.HasPrefix(trimmed, "|") {
			if len(stack) == 0 {
				return nil, fmt.Errorf("line %d: text outside any node", lineno)
			}
			owner := stack[len(stack)-1].node
			if owner.Kind != KindView {
				return nil, fmt.Errorf("line %d: text content only allowed inside view nodes, not %s", lineno, owner.Kind)
			}
			text := strings.TrimPrefix(strings.TrimPrefix(trimmed, "|"), " ")
			if owner.Text != "" {
				owner.Text += "\n"
			}
			owner.Text += text
			continue
		}

		node, err := parseNodeLine(trimmed, lineno)
		if err != nil {
			return nil, err
		}
		if len(stack) == 0 {
			top = append(top, node)
		} else {
			parent := stack[len(stack)-1].node
			if parent.Kind == KindView {
				return nil, fmt.Errorf("line %d: view nodes cannot have children", lineno)
			}
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, frame{indent: indent, node: node})
	}
	return top, nil
}

func parseNodeLine(s string, lineno int) (*Node, error) {
	fields, err := splitFields(s, lineno)
	if err != nil {
		return nil, err
	}
	kind := fields[0]
	if !knownKind(kind) {
		return nil, fmt.Errorf("line %d: unknown layout kind %q", lineno, kind)
	}
	n := &Node{Kind: kind, Line: lineno}
	for _, f := range fields[1:] {
		key, value, _ := strings.Cut(f, "=")
		if key == "" {
			return nil, fmt.Errorf("line %d: malformed attribute %q", lineno, f)
		}
		if n.Attrs == nil {
			n.Attrs = map[string]string{}
		}
		n.Attrs[key] = value
	}
	return n, nil
}

// splitFields splits on spaces, keeping double-quoted values intact.
func splitFields(s string, lineno int) ([]string, error) {
	var fields []string
	var cur strings.Builder
	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ' ' && !quoted:
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if quoted {
		return nil, fmt.Errorf("line %d: unterminated quote", lineno)
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields, nil
}
