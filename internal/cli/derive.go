package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/docktile/docktile/pkg/dock"
	"github.com/docktile/docktile/pkg/store"
)

// deriveCommand creates the derive command for compiling markup into dumps.
func (c *CLI) deriveCommand() *cobra.Command {
	var (
		output string
		save   string
	)

	cmd := &cobra.Command{
		Use:   "derive [markup]",
		Short: "Derive a layout dump from markup",
		Long: `Derive a layout dump from markup.

The markup argument is a markup file describing the layout tree by
indentation. Use '-' to read from stdin. The derived tree is emitted
as a JSON dump suitable for 'render', 'inspect' or restoring inside
an application.

With --save, the dump is additionally stored under the given layout
name in the configured store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDerive(cmd.Context(), args[0], output, save)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&save, "save", "", "also save the dump under this layout name")

	return cmd
}

// runDerive parses the markup, derives the tree and emits its dump.
func (c *CLI) runDerive(ctx context.Context, input, output, save string) error {
	var (
		src []byte
		err error
	)
	if input == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(input)
	}
	if err != nil {
		return fmt.Errorf("read markup: %w", err)
	}

	p := newProgress(c.Logger)
	root, err := dock.DeriveSource(dock.NewNullFactory(), string(src), nil)
	if err != nil {
		return fmt.Errorf("derive %s: %w", input, err)
	}
	defer root.Destroy()

	dump := root.Dump()
	p.done("Derived layout")

	if save != "" {
		st, err := c.newStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		l := &store.Layout{Name: save, Dump: dump}
		if err := st.Put(ctx, l); err != nil {
			return fmt.Errorf("save layout %s: %w", save, err)
		}
		printSuccess("Saved layout %s", save)
	}

	data, err := dock.MarshalDump(dump)
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}
	return writeOutput(output, append(data, '\n'))
}
