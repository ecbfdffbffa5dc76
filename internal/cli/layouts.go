package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docktile/docktile/pkg/dock"
	"github.com/docktile/docktile/pkg/store"
)

// layoutsCommand creates the layouts command group for store management.
func (c *CLI) layoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage stored layouts",
		Long: `Manage stored layouts.

Layouts are named dumps kept in the configured store backend (file,
redis, mongo or memory; see the store section of the config file).`,
	}

	cmd.AddCommand(c.layoutsListCommand())
	cmd.AddCommand(c.layoutsShowCommand())
	cmd.AddCommand(c.layoutsSaveCommand())
	cmd.AddCommand(c.layoutsDeleteCommand())

	return cmd
}

func (c *CLI) layoutsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayoutsList(cmd.Context())
		},
	}
}

func (c *CLI) runLayoutsList(ctx context.Context) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	layouts, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}
	if len(layouts) == 0 {
		printInfo("No layouts stored")
		return nil
	}
	for _, l := range layouts {
		printKeyValue(l.Name, fmt.Sprintf("updated %s", l.UpdatedAt.Format("2006-01-02 15:04")))
	}
	return nil
}

func (c *CLI) layoutsShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Print a stored layout's dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayoutsShow(cmd.Context(), args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *CLI) runLayoutsShow(ctx context.Context, name, output string) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	l, err := st.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("get layout %s: %w", name, err)
	}
	data, err := dock.MarshalDump(l.Dump)
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}
	return writeOutput(output, append(data, '\n'))
}

func (c *CLI) layoutsSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [name] [layout]",
		Short: "Save a layout file under a name",
		Long: `Save a layout file under a name.

The layout argument is either a markup file or a dump (.json) file;
markup is derived before saving so the store always holds dumps.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayoutsSave(cmd.Context(), args[0], args[1])
		},
	}
	return cmd
}

func (c *CLI) runLayoutsSave(ctx context.Context, name, input string) error {
	root, err := loadRoot(dock.NewNullFactory(), input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	dump := root.Dump()
	root.Destroy()

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	l := &store.Layout{Name: name, Dump: dump}
	if err := st.Put(ctx, l); err != nil {
		return fmt.Errorf("save layout %s: %w", name, err)
	}
	printSuccess("Saved layout %s", name)
	return nil
}

func (c *CLI) layoutsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a stored layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayoutsDelete(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runLayoutsDelete(ctx context.Context, name string) error {
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete layout %s: %w", name, err)
	}
	printSuccess("Deleted layout %s", name)
	return nil
}
