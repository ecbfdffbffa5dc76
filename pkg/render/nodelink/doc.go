// Package nodelink renders layout trees as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations of layout dumps
// using Graphviz: branch nodes (splits, lineups, tabbings) appear as
// ellipses and views as rounded boxes, connected top-down. It's an
// alternative to the terminal frame renderer for cases where the tree
// structure itself is the thing to inspect.
//
// # Usage
//
// Convert a dump to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root.Dump(), nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include per-node options
//     (name, ratio, active index, stacked mode)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB), mirroring
// the parent-to-child direction of the container tree.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
