package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docktile/docktile/pkg/render/term"
)

// renderCommand creates the render command for painting terminal frames.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		width  int
		height int
		plain  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "render [layout]",
		Short: "Render a layout as a terminal frame",
		Long: `Render a layout as a terminal frame.

The layout argument is either a markup file or a dump (.json) file
produced by 'derive'. Use '-' to read markup from stdin.

The frame is sized by --width and --height (defaulting to the config
file's render section). Rendering fails if the frame is smaller than
the layout's minimum size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], width, height, plain, output)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", 0, "frame width in cells (default from config)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "frame height in cells (default from config)")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors and styling")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runRender loads the layout and paints it.
func (c *CLI) runRender(ctx context.Context, input string, width, height int, plain bool, output string) error {
	if width == 0 {
		width = c.Config.Render.Width
	}
	if height == 0 {
		height = c.Config.Render.Height
	}

	root, err := loadRoot(term.NewFactory(), input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	defer root.Destroy()

	styles := term.DefaultStyles()
	if plain || c.Config.Render.Plain {
		styles = term.PlainStyles()
	}

	p := newProgress(c.Logger)
	frame, err := term.NewRenderer(styles).Render(withLogger(ctx, c.Logger), root, width, height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	p.done(fmt.Sprintf("Rendered %dx%d frame", width, height))

	return writeOutput(output, []byte(frame+"\n"))
}
