package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps layouts in process memory.
// Useful for tests and for serving without configured persistence.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string]*Layout
	closed  bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: map[string]*Layout{}}
}

// Put saves the layout under its name.
func (s *MemoryStore) Put(ctx context.Context, l *Layout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := prepare(l, s.layouts[nameOf(l)]); err != nil {
		return err
	}
	cp := *l
	s.layouts[l.Name] = &cp
	return nil
}

// Get loads the layout with the given name.
func (s *MemoryStore) Get(ctx context.Context, name string) (*Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	l, ok := s.layouts[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

// List returns all layouts sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]*Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	out := make([]*Layout, 0, len(s.layouts))
	for _, l := range s.layouts {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the layout with the given name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if _, ok := s.layouts[name]; !ok {
		return ErrNotFound
	}
	delete(s.layouts, name)
	return nil
}

// Close drops all layouts.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.layouts = nil
	return nil
}

func nameOf(l *Layout) string {
	if l == nil {
		return ""
	}
	return l.Name
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
