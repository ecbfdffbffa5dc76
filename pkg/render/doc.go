// Package render provides visualization backends for layout trees.
//
// # Overview
//
// This package groups the renderers that turn container trees and
// their dumps into visible output:
//
//   - Terminal frames (in [term] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Terminal Frames
//
// The [term] subpackage paints a laid-out container tree into a text
// frame sized to the root's bounds, with single-cell dividers between
// split halves and a tab strip above tabbing content. This is the
// renderer the CLI uses for `docktile render` and the interactive demo.
//
//	r := term.NewRenderer(term.DefaultStyles())
//	frame, err := r.Render(ctx, root)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the tree structure as a directed
// graph using Graphviz. Branch nodes appear as ellipses and views as
// rounded boxes.
//
//	dot := nodelink.ToDOT(root.Dump(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [term]: github.com/docktile/docktile/pkg/render/term
// [nodelink]: github.com/docktile/docktile/pkg/render/nodelink
package render
