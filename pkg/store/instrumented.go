package store

import (
	"context"
	"encoding/json"

	"github.com/docktile/docktile/pkg/observability"
)

// Instrumented wraps a Store and emits observability events for every
// operation.
type Instrumented struct {
	backend string
	inner   Store
}

// Instrument wraps s so store hooks see its operations. backend names
// the implementation in events ("file", "redis", "mongo", ...).
func Instrument(backend string, s Store) *Instrumented {
	return &Instrumented{backend: backend, inner: s}
}

// Put saves the layout and records the write.
func (s *Instrumented) Put(ctx context.Context, l *Layout) error {
	if err := s.inner.Put(ctx, l); err != nil {
		return err
	}
	size := 0
	if data, err := json.Marshal(l); err == nil {
		size = len(data)
	}
	observability.Store().OnStorePut(ctx, s.backend, l.Name, size)
	return nil
}

// Get loads the layout and records hit or miss.
func (s *Instrumented) Get(ctx context.Context, name string) (*Layout, error) {
	l, err := s.inner.Get(ctx, name)
	observability.Store().OnStoreGet(ctx, s.backend, name, err == nil)
	return l, err
}

// List proxies to the wrapped store.
func (s *Instrumented) List(ctx context.Context) ([]*Layout, error) {
	return s.inner.List(ctx)
}

// Delete removes the layout and records the delete.
func (s *Instrumented) Delete(ctx context.Context, name string) error {
	if err := s.inner.Delete(ctx, name); err != nil {
		return err
	}
	observability.Store().OnStoreDelete(ctx, s.backend, name)
	return nil
}

// Close closes the wrapped store.
func (s *Instrumented) Close() error {
	return s.inner.Close()
}

// Ensure Instrumented implements Store.
var _ Store = (*Instrumented)(nil)
