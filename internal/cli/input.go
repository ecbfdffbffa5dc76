package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/docktile/docktile/pkg/dock"
	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/observability"
)

// loadRoot reads a layout description from path and builds the
// container tree. Files ending in .json are treated as dumps and
// restored; anything else is parsed as markup and derived. A path of
// "-" reads markup from stdin.
func loadRoot(f dock.Factory, path string) (*dock.Root, error) {
	if path == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return dock.DeriveSource(f, string(src), nil)
	}

	if err := apperrors.ValidatePath(path); err != nil {
		return nil, err
	}

	if filepath.Ext(path) == ".json" {
		d, err := dock.ReadDumpFile(path)
		if err != nil {
			return nil, err
		}
		ctx := context.Background()
		observability.Layout().OnRestoreStart(ctx, countNodes(d))
		start := time.Now()
		root, err := dock.Restore(f, d, placeholderResolver(f))
		observability.Layout().OnRestoreComplete(ctx, time.Since(start), err)
		return root, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return dock.DeriveSource(f, string(src), nil)
}

// countNodes counts the nodes of a dump tree.
func countNodes(d *dock.Dump) int {
	n := 1
	for _, c := range d.Children {
		n += countNodes(c)
	}
	return n
}

// placeholderResolver resolves persisted view references to empty
// placeholder widgets. The CLI has no live application views, so
// reference views render as "[view N]" markers.
func placeholderResolver(f dock.Factory) dock.ViewResolver {
	return func(ref int) (dock.View, error) {
		w := f.NewWidget(dock.WidgetLeaf)
		return dock.NewWidgetView(w, ref, dock.Size{Width: 1, Height: 1}), nil
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := apperrors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}
