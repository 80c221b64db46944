package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/rapport/pkg/domain"
	"github.com/aretw0/rapport/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Manager is the subset of session.Manager the HTTP adapter drives.
type Manager interface {
	Act(ctx context.Context, personID string, action domain.Action) (session.Outcome, error)
	Reset(ctx context.Context, personID string) (domain.Snapshot, error)
	Get(ctx context.Context, personID string) (domain.Snapshot, error)
	List(ctx context.Context) ([]string, error)
}

// PersonResponse is the JSON view of a stored person.
type PersonResponse struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	State domain.State `json:"state"`
}

// TransitionResponse is one row of the transition table.
type TransitionResponse struct {
	From     domain.State  `json:"from"`
	Action   domain.Action `json:"action"`
	Template string        `json:"template"`
	Next     domain.State  `json:"next"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server holds the handlers for the HTTP API.
type Server struct {
	Manager Manager
	Logger  *slog.Logger
}

// NewHandler creates a new HTTP handler for the manager.
// If metrics is non-nil it is mounted on /metrics.
func NewHandler(mgr Manager, logger *slog.Logger, metrics http.Handler) http.Handler {
	s := &Server{Manager: mgr, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/transitions", s.Transitions)
	r.Get("/people", s.ListPeople)
	r.Route("/people/{id}", func(r chi.Router) {
		r.Get("/", s.GetPerson)
		r.Post("/greet", s.act(domain.Greet))
		r.Post("/farewell", s.act(domain.Farewell))
		r.Post("/reset", s.Reset)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) act(action domain.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		out, err := s.Manager.Act(r.Context(), id, action)
		if err != nil {
			s.fail(w, "Act failed", err)
			return
		}
		s.writeJSON(w, http.StatusOK, out)
	}
}

// Reset handles POST /people/{id}/reset.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.Manager.Reset(r.Context(), id)
	if err != nil {
		s.fail(w, "Reset failed", err)
		return
	}
	s.writeJSON(w, http.StatusOK, PersonResponse{ID: id, Name: snap.Name, State: snap.State})
}

// GetPerson handles GET /people/{id}.
func (s *Server) GetPerson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := s.Manager.Get(r.Context(), id)
	if err != nil {
		s.fail(w, "Get failed", err)
		return
	}
	s.writeJSON(w, http.StatusOK, PersonResponse{ID: id, Name: snap.Name, State: snap.State})
}

// ListPeople handles GET /people.
func (s *Server) ListPeople(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Manager.List(r.Context())
	if err != nil {
		s.fail(w, "List failed", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// Transitions handles GET /transitions.
func (s *Server) Transitions(w http.ResponseWriter, r *http.Request) {
	rows := domain.Transitions()
	resp := make([]TransitionResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, TransitionResponse{
			From:     row.From,
			Action:   row.Action,
			Template: row.Reaction.Template,
			Next:     row.Reaction.Next,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPersonNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPersonID), errors.Is(err, domain.ErrUnknownAction):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.Logger.Error(msg, "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
