// Package store persists named layouts. A layout is a dump tree plus
// bookkeeping metadata; backends share the Store interface so the CLI
// and the HTTP service can swap file, Redis, MongoDB, in-memory and
// null storage freely.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/docktile/docktile/pkg/dock"
	apperrors "github.com/docktile/docktile/pkg/errors"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a requested layout does not exist.
	ErrNotFound = errors.New("layout not found")

	// ErrClosed is returned when operating on a closed store.
	ErrClosed = errors.New("store is closed")
)

// Layout is a persisted named layout.
type Layout struct {
	ID        string     `json:"id" bson:"_id"`
	Name      string     `json:"name" bson:"name"`
	Dump      *dock.Dump `json:"dump" bson:"dump"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// Store persists layouts by name.
type Store interface {
	// Put saves the layout, replacing any layout with the same name.
	// New layouts get a fresh ID and CreatedAt; updates keep both and
	// bump UpdatedAt.
	Put(ctx context.Context, l *Layout) error

	// Get loads the layout with the given name.
	// Returns ErrNotFound when it does not exist.
	Get(ctx context.Context, name string) (*Layout, error)

	// List returns all layouts sorted by name.
	List(ctx context.Context) ([]*Layout, error)

	// Delete removes the layout with the given name.
	// Returns ErrNotFound when it does not exist.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// prepare validates the record and fills in identity and timestamps,
// carrying over identity from prev on updates.
func prepare(l *Layout, prev *Layout) error {
	if l == nil {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "layout must not be nil")
	}
	if err := apperrors.ValidateLayoutName(l.Name); err != nil {
		return err
	}
	if l.Dump == nil {
		return apperrors.New(apperrors.ErrCodeInvalidDump, "layout %s has no dump", l.Name)
	}
	if err := l.Dump.Validate(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidDump, err, "layout %s", l.Name)
	}

	now := time.Now().UTC()
	if prev != nil {
		l.ID = prev.ID
		l.CreatedAt = prev.CreatedAt
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
	return nil
}
