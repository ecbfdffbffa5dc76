package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore persists layouts as JSON files in a directory, one file
// per layout. File names are hashed from the layout name so arbitrary
// names never reach the filesystem directly.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Put saves the layout, replacing any previous version.
func (s *FileStore) Put(ctx context.Context, l *Layout) error {
	prev, err := s.Get(ctx, nameOf(l))
	if err != nil && err != ErrNotFound {
		return err
	}
	if err := prepare(l, prev); err != nil {
		return err
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	path := s.path(l.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Get loads the layout with the given name.
func (s *FileStore) Get(ctx context.Context, name string) (*Layout, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// List walks the store directory and returns all layouts sorted by
// name.
func (s *FileStore) List(ctx context.Context) ([]*Layout, error) {
	var out []*Layout
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var l Layout
		if err := json.Unmarshal(data, &l); err != nil {
			// Foreign file in the store directory - skip it.
			return nil
		}
		if l.Name != "" {
			out = append(out, &l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the layout with the given name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Close does nothing for file stores.
func (s *FileStore) Close() error {
	return nil
}

// path converts a layout name to a file path.
// Uses a hash-based directory structure to avoid too many files in one dir.
func (s *FileStore) path(name string) string {
	sum := sha256.Sum256([]byte(name))
	hash := hex.EncodeToString(sum[:])
	// Use first 2 chars as subdirectory for distribution
	return filepath.Join(s.dir, hash[:2], hash[2:]+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
