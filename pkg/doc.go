// Package pkg provides the core libraries for Docktile layout management.
//
// # Overview
//
// Docktile models dockable tiling layouts as trees of containers:
// splits, lineups and tab groups over leaf views. The pkg directory
// is organized into five main areas:
//
//  1. [dock] - Domain logic (container tree, layout, dumps, builders, markup)
//  2. [render] - Visualization (terminal frames, node-link diagrams)
//  3. [store] - Layout persistence (file, Redis, MongoDB, memory)
//  4. [errors] - Structured error codes and input validation
//  5. [observability] - Pluggable instrumentation hooks
//
// # Architecture
//
// The typical data flow through Docktile:
//
//	Markup / JSON dump
//	         ↓
//	    [dock] package (derive or restore the container tree)
//	         ↓
//	    layout (min sizes up, bounds down)
//	         ↓
//	    [render/term] or [render/nodelink] output
//
// # Quick Start
//
// Derive a layout from markup and render it as a terminal frame:
//
//	import (
//	    "context"
//	    "github.com/docktile/docktile/pkg/dock"
//	    "github.com/docktile/docktile/pkg/render/term"
//	)
//
//	// 1. Derive the container tree
//	f := term.NewFactory()
//	root, _ := dock.DeriveSource(f, "hsplit ratio=0.3\n  view\n    | left\n  view\n    | right\n", nil)
//	defer root.Destroy()
//
//	// 2. Render to a frame
//	r := term.NewRenderer(term.DefaultStyles())
//	frame, _ := r.Render(context.Background(), root, 80, 24)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [dock] - The container tree: splits with draggable dividers, lineups
// with equal or natural sizing, tab groups with visibility switching,
// and leaves wrapping externally supplied views. Includes JSON dumps,
// restore, fluent builders and the indentation markup language (in
// [dock/markup]).
//
// ## Rendering
//
// [render/term] - Paints a laid-out tree as a text frame with lipgloss
// styling; used by the CLI render and demo commands.
//
// [render/nodelink] - Emits the tree structure as Graphviz DOT or SVG.
//
// ## Infrastructure
//
// [store] - Named layout persistence behind a single interface.
// FileStore for CLI use (filesystem fan-out), RedisStore and
// MongoStore for the server, MemoryStore for testing.
//
// [errors] - Error codes, wrapping helpers and layout-name/path
// validation shared by the CLI and server.
//
// [observability] - Hook interfaces for layout, store and server
// events, with no-op defaults.
//
// [dock]: github.com/docktile/docktile/pkg/dock
// [dock/markup]: github.com/docktile/docktile/pkg/dock/markup
// [render/term]: github.com/docktile/docktile/pkg/render/term
// [render/nodelink]: github.com/docktile/docktile/pkg/render/nodelink
// [store]: github.com/docktile/docktile/pkg/store
// [errors]: github.com/docktile/docktile/pkg/errors
// [observability]: github.com/docktile/docktile/pkg/observability
package pkg
