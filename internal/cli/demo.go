package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spf13/cobra"

	"github.com/docktile/docktile/pkg/dock"
	"github.com/docktile/docktile/pkg/render/term"
	"github.com/docktile/docktile/pkg/store"
)

// demoMarkup is the layout shown when no file is given.
const demoMarkup = `# docktile demo layout
hsplit ratio=0.25
  vlineup
    view
      | files
      | ─────
      | cmd/
      | internal/
      | pkg/
    view
      | outline
  vsplit ratio=0.7
    tabbing active=0
      view name=editor
        | main.go
      view name=readme
        | README.md
    tabbing active=0
      view name=shell
        | $ _
      view name=logs
        | ...
`

// demoCommand creates the demo command for interactive exploration.
func (c *CLI) demoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [layout]",
		Short: "Explore a layout interactively",
		Long: `Explore a layout interactively.

Opens a terminal UI showing the rendered layout. Without an argument
a built-in demo layout is used; otherwise the argument is a markup or
dump (.json) file.

Keys:
  ←/→ h/l   move the divider of the first horizontal split
  ↑/↓ k/j   move the divider of the first vertical split
  tab       cycle the active tab of the first tab group
  s         save the current layout to the store as 'demo'
  q         quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runDemo(input)
		},
	}
	return cmd
}

// runDemo loads the layout and hands it to the bubbletea program.
func (c *CLI) runDemo(input string) error {
	f := term.NewFactory()

	var (
		root *dock.Root
		err  error
	)
	if input == "" {
		root, err = dock.DeriveSource(f, demoMarkup, nil)
	} else {
		root, err = loadRoot(f, input)
	}
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	defer root.Destroy()

	save := func(d *dock.Dump) error {
		ctx := context.Background()
		st, err := c.newStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		return st.Put(ctx, &store.Layout{Name: "demo", Dump: d})
	}

	m := newDemoModel(root, save)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}

// =============================================================================
// DemoModel - Interactive layout exploration
// =============================================================================

// demoModel is the bubbletea model for the demo command.
type demoModel struct {
	root     *dock.Root
	renderer *term.Renderer
	save     func(*dock.Dump) error
	status   string
	width    int
	height   int
}

func newDemoModel(root *dock.Root, save func(*dock.Dump) error) demoModel {
	return demoModel{
		root:     root,
		renderer: term.NewRenderer(term.DefaultStyles()),
		save:     save,
	}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.moveDivider(dock.Horizontal, -1)
		case "right", "l":
			m.moveDivider(dock.Horizontal, 1)
		case "up", "k":
			m.moveDivider(dock.Vertical, -1)
		case "down", "j":
			m.moveDivider(dock.Vertical, 1)
		case "tab":
			m.cycleTab()
		case "s":
			if err := m.save(m.root.Dump()); err != nil {
				m.status = fmt.Sprintf("save failed: %v", err)
			} else {
				m.status = "saved as 'demo'"
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m demoModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := StyleTitle.Render("docktile demo")
	help := StyleDim.Render("←/→ ↑/↓ move dividers  ⇥ switch tab  s save  q quit")
	if m.status != "" {
		help += "  " + StyleValue.Render(m.status)
	}

	frameHeight := m.height - 2
	frame, err := m.renderer.Render(context.Background(), m.root, m.width, frameHeight)
	if err != nil {
		frame = StyleDim.Render(fmt.Sprintf("terminal too small: %v", err))
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(frame)
	b.WriteString("\n")
	b.WriteString(help)
	return b.String()
}

// moveDivider shifts the first split with the given orientation.
func (m demoModel) moveDivider(o dock.Orientation, delta int) {
	if s := findSplit(m.root.Child(), o); s != nil {
		s.MoveDivider(delta)
	}
}

// cycleTab advances the active tab of the first tab group.
func (m demoModel) cycleTab() {
	t := findTabbing(m.root.Child())
	if t == nil {
		return
	}
	next := (t.Active() + 1) % len(t.Children())
	_ = t.SetActive(next)
}

func findSplit(c dock.Container, o dock.Orientation) *dock.Split {
	if s, ok := c.(*dock.Split); ok && s.Orientation() == o {
		return s
	}
	if p, ok := c.(dock.Parent); ok {
		for _, child := range p.Children() {
			if s := findSplit(child, o); s != nil {
				return s
			}
		}
	}
	return nil
}

func findTabbing(c dock.Container) *dock.Tabbing {
	if t, ok := c.(*dock.Tabbing); ok {
		return t
	}
	if p, ok := c.(dock.Parent); ok {
		for _, child := range p.Children() {
			if t := findTabbing(child); t != nil {
				return t
			}
		}
	}
	return nil
}
