// Package server exposes the layout store and the markup deriver over
// HTTP. It is a small JSON API: layouts are addressed by name, bodies
// are dump trees, and derive turns markup into a dump without storing
// anything.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/store"
)

// Server serves the layout API.
type Server struct {
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by the given store.
func New(st store.Store, logger *log.Logger) *Server {
	s := &Server{store: st, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/layouts", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{name}", s.handleGet)
		r.Put("/{name}", s.handlePut)
		r.Delete("/{name}", s.handleDelete)
	})
	r.Post("/derive", s.handleDerive)

	s.router = r
	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("layout service listening", "addr", addr)
	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeJSON writes v as a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

// writeError maps an error to a status code and JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(apperrors.ErrCodeInternal)
	body.Error.Message = apperrors.UserMessage(err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
		body.Error.Code = string(apperrors.ErrCodeLayoutNotFound)
	case apperrors.GetCode(err) != "":
		body.Error.Code = string(apperrors.GetCode(err))
		switch apperrors.GetCode(err) {
		case apperrors.ErrCodeLayoutNotFound, apperrors.ErrCodeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrCodeStore, apperrors.ErrCodeInternal:
			status = http.StatusInternalServerError
		default:
			status = http.StatusBadRequest
		}
	}
	s.writeJSON(w, status, body)
}
