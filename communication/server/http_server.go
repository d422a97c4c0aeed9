package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"tablut/communication"
	"tablut/searcher"
	"tablut/searcher/agent"
)

// Server exposes an agent over HTTP. Searches are serialised because agents
// keep per-search state.
type Server struct {
	agent agent.Agent
	mutex sync.Mutex
}

func NewServer(a agent.Agent) *Server {
	return &Server{agent: a}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get(communication.HealthPath, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post(communication.MovePath, s.handleMove)
	return r
}

// ListenAndServe blocks serving the agent on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Msg("starting agent server")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload communication.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse{Error: "invalid payload"})
		return
	}
	state, err := payload.State()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse{Error: err.Error()})
		return
	}

	s.mutex.Lock()
	move, metric, err := s.agent.FindMove(state)
	s.mutex.Unlock()

	if errors.Is(err, searcher.ErrNoLegalMoves) {
		writeJSON(w, http.StatusConflict, communication.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("agent failed to find a move")
		writeJSON(w, http.StatusInternalServerError, communication.ErrorResponse{Error: "agent failed"})
		return
	}

	log.Debug().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("move", move.String()).
		Int("score", metric.Score).
		Msg("served move")
	writeJSON(w, http.StatusOK, communication.NewMoveResponse(move, metric))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
