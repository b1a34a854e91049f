// internal/httpserver/server.go
//
// HTTP server wiring for the spelling bee skill.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Skill endpoint: POST /skill (optionally behind a bearer token).
//
// Notes:
//   - Request bodies are validated against the envelope schema before the
//     skill handler sees them.
//   - Unknown intents/request types surface as 500 skill_failure, which the
//     voice platform reports to the user as a skill error.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/skill"
)

const maxBodyBytes = 64 << 10

// Options configures the optional parts of the server.
type Options struct {
	ClientOrigin string                    // CORS origin; defaults to http://localhost:5173
	JWTSecret    string                    // when set, POST /skill requires a bearer token
	Metrics      http.Handler              // served at /metrics when non-nil
	WordStats    func() (int, map[int]int) // served at /debug/words when non-nil
}

// Server bundles the router and the skill handler.
type Server struct {
	r     *chi.Mux
	skill *skill.Handler
}

// New constructs a Server, installs middleware, and registers routes.
func New(h *skill.Handler, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), skill: h}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one debug line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"spellingbee-go","endpoints":["/health","/metrics","POST /skill"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	if opts.Metrics != nil {
		s.r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	if opts.WordStats != nil {
		s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
			total, per := opts.WordStats()
			_ = json.NewEncoder(w).Encode(map[string]any{"total": total, "perLength": per})
		})
	}

	// Skill endpoint
	if opts.JWTSecret != "" {
		s.r.With(requireBearer(opts.JWTSecret)).Post("/skill", s.handleSkill)
	} else {
		s.r.Post("/skill", s.handleSkill)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleSkill decodes one platform request and answers it.
func (s *Server) handleSkill(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
		return
	}
	env, err := skill.DecodeRequest(body)
	if err != nil {
		log.Warn().Err(err).Str("requestId", chimw.GetReqID(r.Context())).Msg("reject skill request")
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}

	res, err := s.skill.Handle(r.Context(), env)
	switch {
	case errors.Is(err, skill.ErrApplicationMismatch):
		writeError(w, http.StatusForbidden, "wrong_application")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "skill_failure")
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeError writes {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
