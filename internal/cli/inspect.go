package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docktile/docktile/pkg/dock"
	"github.com/docktile/docktile/pkg/render/nodelink"
)

// inspectCommand creates the inspect command for visualizing tree structure.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [layout]",
		Short: "Visualize a layout's tree structure",
		Long: `Visualize a layout's tree structure.

The layout argument is either a markup file or a dump (.json) file.
The default output is an indented tree summary; use --format dot for
Graphviz DOT source to feed into external tools, or --format svg for
an in-process Graphviz rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text (default), dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include node options in labels")

	return cmd
}

// runInspect loads the layout and emits its structure diagram.
func (c *CLI) runInspect(ctx context.Context, input, format, output string, detailed bool) error {
	root, err := loadRoot(dock.NewNullFactory(), input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	dump := root.Dump()
	root.Destroy()

	switch format {
	case "text":
		var b strings.Builder
		writeTree(&b, dump, 0)
		return writeOutput(output, []byte(b.String()))
	case "dot":
		return writeOutput(output, []byte(nodelink.ToDOT(dump, nodelink.Options{Detailed: detailed})))
	case "svg":
		p := newProgress(c.Logger)
		svg, err := nodelink.RenderSVG(nodelink.ToDOT(dump, nodelink.Options{Detailed: detailed}))
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
		p.done("Rendered structure diagram")
		return writeOutput(output, svg)
	default:
		return fmt.Errorf("unsupported format %q (use text, dot or svg)", format)
	}
}

// writeTree prints one dump node per line, indented by depth.
func writeTree(b *strings.Builder, d *dock.Dump, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(d.Type)
	if d.Orientation != "" {
		fmt.Fprintf(b, " %s", d.Orientation)
	}
	if d.Ratio != nil {
		fmt.Fprintf(b, " ratio=%g", *d.Ratio)
	}
	if d.Active != nil {
		fmt.Fprintf(b, " active=%d", *d.Active)
	}
	if d.Stacked {
		b.WriteString(" stacked")
	}
	if d.Name != "" {
		fmt.Fprintf(b, " name=%s", d.Name)
	}
	if d.Type == dock.TypeView {
		if d.View != nil {
			fmt.Fprintf(b, " ref=%d", *d.View)
		} else if first, _, _ := strings.Cut(d.Content, "\n"); first != "" {
			fmt.Fprintf(b, " %q", first)
		}
	}
	b.WriteString("\n")
	for _, c := range d.Children {
		writeTree(b, c, depth+1)
	}
}
