package store

import (
	"context"
	"testing"

	"github.com/docktile/docktile/pkg/dock"
	apperrors "github.com/docktile/docktile/pkg/errors"
)

func sampleDump(t *testing.T) *dock.Dump {
	t.Helper()
	root, err := dock.BuildRoot(dock.NewNullFactory(),
		dock.HSplit(0.3, dock.Text("A"), dock.Text("B")))
	if err != nil {
		t.Fatalf("build sample layout: %v", err)
	}
	return root.Dump()
}

// storeBackends returns the backends that run without external
// services.
func storeBackends(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestStorePutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			l := &Layout{Name: "editor", Dump: sampleDump(t)}
			if err := s.Put(ctx, l); err != nil {
				t.Fatalf("Put: %v", err)
			}
			if l.ID == "" || l.CreatedAt.IsZero() || l.UpdatedAt.IsZero() {
				t.Errorf("Put did not fill identity: %+v", l)
			}

			got, err := s.Get(ctx, "editor")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.ID != l.ID || got.Name != "editor" {
				t.Errorf("Get = %+v, want id %s", got, l.ID)
			}
			if got.Dump == nil || got.Dump.Type != dock.TypeRoot {
				t.Errorf("Get returned dump %+v", got.Dump)
			}
		})
	}
}

func TestStoreUpdateKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			first := &Layout{Name: "editor", Dump: sampleDump(t)}
			if err := s.Put(ctx, first); err != nil {
				t.Fatalf("Put: %v", err)
			}

			second := &Layout{Name: "editor", Dump: sampleDump(t)}
			if err := s.Put(ctx, second); err != nil {
				t.Fatalf("second Put: %v", err)
			}
			if second.ID != first.ID {
				t.Errorf("update changed ID from %s to %s", first.ID, second.ID)
			}
			if !second.CreatedAt.Equal(first.CreatedAt) {
				t.Errorf("update changed CreatedAt")
			}
			if second.UpdatedAt.Before(first.UpdatedAt) {
				t.Errorf("update did not advance UpdatedAt")
			}
		})
	}
}

func TestStoreListSorted(t *testing.T) {
	ctx := context.Background()
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			for _, n := range []string{"zeta", "alpha", "mid"} {
				if err := s.Put(ctx, &Layout{Name: n, Dump: sampleDump(t)}); err != nil {
					t.Fatalf("Put %s: %v", n, err)
				}
			}
			got, err := s.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			want := []string{"alpha", "mid", "zeta"}
			if len(got) != len(want) {
				t.Fatalf("List returned %d layouts, want %d", len(got), len(want))
			}
			for i, l := range got {
				if l.Name != want[i] {
					t.Errorf("List[%d] = %s, want %s", i, l.Name, want[i])
				}
			}
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			if _, err := s.Get(ctx, "absent"); err != ErrNotFound {
				t.Errorf("Get: err = %v, want ErrNotFound", err)
			}
			if err := s.Delete(ctx, "absent"); err != ErrNotFound {
				t.Errorf("Delete: err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			if err := s.Put(ctx, &Layout{Name: "editor", Dump: sampleDump(t)}); err != nil {
				t.Fatalf("Put: %v", err)
			}
			if err := s.Delete(ctx, "editor"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := s.Get(ctx, "editor"); err != ErrNotFound {
				t.Errorf("Get after delete: err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreRejectsInvalidLayouts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	if err := s.Put(ctx, nil); !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("nil layout: err = %v", err)
	}
	if err := s.Put(ctx, &Layout{Name: "../evil", Dump: sampleDump(t)}); !apperrors.Is(err, apperrors.ErrCodeInvalidName) {
		t.Errorf("bad name: err = %v", err)
	}
	if err := s.Put(ctx, &Layout{Name: "editor"}); !apperrors.Is(err, apperrors.ErrCodeInvalidDump) {
		t.Errorf("missing dump: err = %v", err)
	}
	if err := s.Put(ctx, &Layout{Name: "editor", Dump: &dock.Dump{Type: "grid"}}); !apperrors.Is(err, apperrors.ErrCodeInvalidDump) {
		t.Errorf("malformed dump: err = %v", err)
	}
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	s := NewNullStore()
	defer s.Close()

	if err := s.Put(ctx, &Layout{Name: "editor", Dump: sampleDump(t)}); err != nil {
		t.Errorf("Put: %v", err)
	}
	if _, err := s.Get(ctx, "editor"); err != ErrNotFound {
		t.Errorf("NullStore should not store data, got err = %v", err)
	}
	layouts, err := s.List(ctx)
	if err != nil || len(layouts) != 0 {
		t.Errorf("List = %v, %v", layouts, err)
	}
}

func TestInstrumentedStorePassesThrough(t *testing.T) {
	ctx := context.Background()
	s := Instrument("memory", NewMemoryStore())
	defer s.Close()

	if err := s.Put(ctx, &Layout{Name: "editor", Dump: sampleDump(t)}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := s.Get(ctx, "editor"); err != nil {
		t.Errorf("Get: %v", err)
	}
	if err := s.Delete(ctx, "editor"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}
