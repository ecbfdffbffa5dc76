// Package term renders a dock container tree as styled terminal text.
//
// The renderer walks the tree after layout and composes each
// container's region with lipgloss, so the output of a 80x24 render is
// a frame of exactly 80 columns and 24 rows. It also provides a
// [dock.Factory] whose widgets track geometry for the layout pass;
// painting happens in the renderer, not the widgets.
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/docktile/docktile/pkg/dock"
	"github.com/docktile/docktile/pkg/observability"
)

// Styles controls the visual appearance of a rendered frame.
type Styles struct {
	Divider   lipgloss.Style
	TabStrip  lipgloss.Style
	ActiveTab lipgloss.Style
	View      lipgloss.Style
}

// DefaultStyles returns the standard frame appearance: dim dividers,
// bold active tab.
func DefaultStyles() Styles {
	return Styles{
		Divider:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TabStrip:  lipgloss.NewStyle().Faint(true),
		ActiveTab: lipgloss.NewStyle().Bold(true),
		View:      lipgloss.NewStyle(),
	}
}

// PlainStyles returns styles without any terminal attributes, for
// tests and non-TTY output.
func PlainStyles() Styles {
	return Styles{
		Divider:   lipgloss.NewStyle(),
		TabStrip:  lipgloss.NewStyle(),
		ActiveTab: lipgloss.NewStyle(),
		View:      lipgloss.NewStyle(),
	}
}

// Renderer composes container trees into terminal frames.
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer with the given styles.
func NewRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render lays the tree out at width x height and returns the frame.
func (r *Renderer) Render(ctx context.Context, root *dock.Root, width, height int) (string, error) {
	observability.Layout().OnRenderStart(ctx, width, height)
	start := time.Now()

	frame, err := r.render(root, width, height)
	observability.Layout().OnRenderComplete(ctx, time.Since(start), err)
	return frame, err
}

func (r *Renderer) render(root *dock.Root, width, height int) (string, error) {
	if width < 1 || height < 1 {
		return "", fmt.Errorf("frame size %dx%d too small", width, height)
	}
	if min := root.MinSize(); width < min.Width || height < min.Height {
		return "", fmt.Errorf("frame size %dx%d below layout minimum %dx%d",
			width, height, min.Width, min.Height)
	}
	root.SetBounds(dock.Rect{Width: width, Height: height})
	child := root.Child()
	if child == nil {
		return r.fill(width, height, ""), nil
	}
	return r.container(child), nil
}

// container renders one container at the extent of its laid-out
// bounds.
func (r *Renderer) container(c dock.Container) string {
	w, h := c.Bounds().Width, c.Bounds().Height
	switch v := c.(type) {
	case *dock.Leaf:
		return r.leaf(v, w, h)
	case *dock.Split:
		return r.split(v, w, h)
	case *dock.LineUp:
		return r.lineUp(v, w, h)
	case *dock.Tabbing:
		return r.tabbing(v, w, h)
	default:
		return r.fill(w, h, "")
	}
}

func (r *Renderer) leaf(l *dock.Leaf, w, h int) string {
	content := ""
	switch view := l.View().(type) {
	case *dock.TextView:
		content = view.Content()
	default:
		// External views paint themselves; show the reference slot.
		if name := l.Options().Name; name != "" {
			content = fmt.Sprintf("[%s]", name)
		} else if ref := view.Reference(); ref != dock.NoReference {
			content = fmt.Sprintf("[view %d]", ref)
		}
	}
	return r.styles.View.Render(r.fill(w, h, content))
}

func (r *Renderer) split(s *dock.Split, w, h int) string {
	first := r.container(s.First())
	second := r.container(s.Second())
	if s.Orientation() == dock.Horizontal {
		divider := r.styles.Divider.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
		return lipgloss.JoinHorizontal(lipgloss.Top, first, divider, second)
	}
	divider := r.styles.Divider.Render(strings.Repeat("─", w))
	return lipgloss.JoinVertical(lipgloss.Left, first, divider, second)
}

func (r *Renderer) lineUp(l *dock.LineUp, w, h int) string {
	parts := make([]string, 0, len(l.Children()))
	for _, c := range l.Children() {
		parts = append(parts, r.container(c))
	}
	var joined string
	if l.Orientation() == dock.Horizontal {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		joined = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	// Stacked line-ups may overflow their bounds; crop to the frame.
	return lipgloss.NewStyle().MaxWidth(w).MaxHeight(h).Render(joined)
}

func (r *Renderer) tabbing(t *dock.Tabbing, w, h int) string {
	labels := make([]string, 0, len(t.Children()))
	for i, c := range t.Children() {
		label := c.Options().Name
		if label == "" {
			label = fmt.Sprintf("tab %d", i+1)
		}
		if i == t.Active() {
			label = r.styles.ActiveTab.Render("[" + label + "]")
		} else {
			label = " " + label + " "
		}
		labels = append(labels, label)
	}
	strip := r.styles.TabStrip.Render(lipgloss.NewStyle().MaxWidth(w).Render(strings.Join(labels, " ")))

	body := r.fill(w, h-dock.TabStripHeight, "")
	if active := t.ActiveChild(); active != nil {
		body = r.container(active)
	}
	return lipgloss.JoinVertical(lipgloss.Left, strip, body)
}

// fill renders content into a fixed w x h cell, padding and cropping
// as needed.
func (r *Renderer) fill(w, h int, content string) string {
	if w < 1 || h < 1 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(w).Height(h).
		MaxWidth(w).MaxHeight(h).
		Render(content)
}

// termWidget tracks geometry and visibility for the layout pass.
type termWidget struct {
	bounds  dock.Rect
	visible bool
}

func (w *termWidget) SetBounds(r dock.Rect) { w.bounds = r }
func (w *termWidget) Bounds() dock.Rect     { return w.bounds }
func (w *termWidget) SetVisible(v bool)     { w.visible = v }
func (w *termWidget) Visible() bool         { return w.visible }
func (w *termWidget) Destroy()              {}

// factory produces termWidgets.
type factory struct{}

func (factory) NewWidget(string) dock.Widget { return &termWidget{visible: true} }

// NewFactory returns the dock.Factory used for terminal rendering.
func NewFactory() dock.Factory { return factory{} }
