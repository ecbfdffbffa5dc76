package store

import "context"

// NullStore is a no-op store that never persists anything.
// Useful for testing or when persistence should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore {
	return &NullStore{}
}

// Put does nothing beyond validating the layout.
func (s *NullStore) Put(ctx context.Context, l *Layout) error {
	return prepare(l, nil)
}

// Get always reports the layout as missing.
func (s *NullStore) Get(ctx context.Context, name string) (*Layout, error) {
	return nil, ErrNotFound
}

// List always returns an empty result.
func (s *NullStore) List(ctx context.Context) ([]*Layout, error) {
	return nil, nil
}

// Delete always reports the layout as missing.
func (s *NullStore) Delete(ctx context.Context, name string) error {
	return ErrNotFound
}

// Close does nothing.
func (s *NullStore) Close() error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
