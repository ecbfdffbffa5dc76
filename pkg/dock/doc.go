// Package dock implements a docking/tiling layout tree: resizable,
// splittable, tabbable panel containers with JSON serialization and a
// fluent builder API.
//
// # Architecture
//
// The layout is a tree of containers. Leaves wrap a [View] (externally
// supplied content); inner nodes arrange their children:
//
//   - [Split]: two children separated by a divider at a ratio; pushing
//     more children nests additional split levels, so the tree stays
//     strictly binary internally while the builder exposes an n-ary API.
//   - [LineUp]: N children along one axis, either in equal shares or
//     stacked at their natural size with scrolling.
//   - [Tabbing]: N children with exactly one active at a time.
//   - [Root]: the single top-level wrapper owning one child subtree.
//
// Resize notifications flow from the root down through the tree;
// minimum-size queries flow from the leaves up. Rendering surfaces are
// created through a [Factory] so the tree itself stays presentation
// agnostic - pass [NewNullFactory] for headless use.
//
// # Serialization
//
// Every container dumps itself to a [Dump], a JSON-serializable tree
// mirror. [Restore] reconstructs an equivalent tree from a dump; view
// content is resolved through a caller-supplied [ViewResolver], except
// inline text content which is embedded verbatim.
//
// # Usage
//
// Build a layout, dump it, and restore it:
//
//	f := dock.NewNullFactory()
//	root, err := dock.BuildRoot(f,
//	    dock.HSplit(0.3,
//	        dock.Text("sidebar"),
//	        dock.Tabs(dock.Text("editor"), dock.Text("terminal")).Active(1),
//	    ))
//	if err != nil {
//	    return err
//	}
//	root.SetBounds(dock.Rect{Width: 120, Height: 40})
//
//	d := root.Dump()
//	restored, err := dock.Restore(f, d, nil)
//
// The tree is not safe for concurrent use; all operations are expected
// to run on a single goroutine (typically the UI event loop).
package dock
