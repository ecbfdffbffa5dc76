package server

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/docktile/docktile/pkg/dock"
	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/observability"
	"github.com/docktile/docktile/pkg/store"
)

// maxBodySize caps request bodies; layouts are small trees.
const maxBodySize = 1 << 20

// layoutSummary is the list representation: metadata without the dump.
type layoutSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	layouts, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]layoutSummary, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, layoutSummary{
			ID:        l.ID,
			Name:      l.Name,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	l, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, l)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := apperrors.ValidateLayoutName(name); err != nil {
		s.writeError(w, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "reading request body"))
		return
	}
	dump, err := dock.UnmarshalDump(body)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidDump, err, "parsing dump"))
		return
	}

	created := false
	if _, err := s.store.Get(r.Context(), name); err == store.ErrNotFound {
		created = true
	}

	l := &store.Layout{Name: name, Dump: dump}
	if err := s.store.Put(r.Context(), l); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("layout saved", "name", name, "id", l.ID)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	s.writeJSON(w, status, l)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Delete(r.Context(), name); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("layout deleted", "name", name)
	w.WriteHeader(http.StatusNoContent)
}

// handleDerive parses markup from the request body and returns the
// dump of the derived tree. Nothing is stored; use PUT to persist the
// result.
func (s *Server) handleDerive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "reading request body"))
		return
	}

	ctx := r.Context()
	observability.Layout().OnDeriveStart(ctx, len(body))
	start := time.Now()
	root, err := dock.DeriveSource(dock.NewNullFactory(), string(body), nil)
	observability.Layout().OnDeriveComplete(ctx, time.Since(start), err)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidMarkup, err, "deriving layout"))
		return
	}
	defer root.Destroy()

	s.writeJSON(w, http.StatusOK, root.Dump())
}
