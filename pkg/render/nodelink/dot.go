package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/docktile/docktile/pkg/dock"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes per-node options (name, ratio, active index)
	// in node labels. When false, only the node kind is shown.
	Detailed bool
}

// ToDOT converts a layout dump to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered with
// [RenderSVG] or any Graphviz tool.
//
// Branch nodes (splits, lineups, tabbings) are drawn as ellipses
// labeled with their kind and orientation; views are drawn as rounded
// boxes labeled with their content or reference id.
func ToDOT(d *dock.Dump, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if d != nil {
		writeNode(&buf, d, 0, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, d *dock.Dump, id int, opts Options) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	if d.Type == dock.TypeView {
		fmt.Fprintf(buf, "  %s [label=%q, shape=box, style=\"filled,rounded\"];\n", nodeID, viewLabel(d))
		return next
	}

	fmt.Fprintf(buf, "  %s [label=%q, shape=ellipse];\n", nodeID, branchLabel(d, opts))
	for _, c := range d.Children {
		fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, next)
		next = writeNode(buf, c, next, opts)
	}
	return next
}

func viewLabel(d *dock.Dump) string {
	if d.Content != "" {
		first, _, _ := strings.Cut(d.Content, "\n")
		return first
	}
	if d.View != nil {
		return fmt.Sprintf("view %d", *d.View)
	}
	return "view"
}

func branchLabel(d *dock.Dump, opts Options) string {
	label := d.Type
	if d.Orientation != "" {
		label += " " + d.Orientation
	}
	if !opts.Detailed {
		return label
	}

	var parts []string
	if d.Name != "" {
		parts = append(parts, "name: "+d.Name)
	}
	if d.Ratio != nil {
		parts = append(parts, fmt.Sprintf("ratio: %g", *d.Ratio))
	}
	if d.Active != nil {
		parts = append(parts, fmt.Sprintf("active: %d", *d.Active))
	}
	if d.Stacked {
		parts = append(parts, "stacked")
	}
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or embedding.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
