// Package server exposes the solver and the bots over HTTP.
//
// Endpoints:
//   - GET  /health              liveness
//   - GET  /lengths             supported word lengths
//   - GET  /strategies          strategy names for /bots
//   - POST /solve               candidates and a suggestion for a guess history
//   - POST /bots/{strategy}/run play one game against a given secret
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/config"
	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
	"github.com/powellquiring/versebot/wordlist"
)

type Server struct {
	r      *chi.Mux
	cfg    *config.Config
	logger zerolog.Logger

	mu      sync.Mutex
	indexes map[int]*candidate.Index
}

func New(cfg *config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		logger:  logger,
		indexes: make(map[int]*candidate.Index),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/lengths", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]int{"lengths": wordlist.Lengths()})
	})
	s.r.Get("/strategies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"strategies": strategy.Kinds()})
	})
	s.r.Post("/solve", s.handleSolve)
	s.r.Route("/bots", func(r chi.Router) {
		r.Post("/{strategy}/run", s.handleBotRun)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: r.URL.Path})
	})
	return s
}

// Start serves HTTP on addr
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, s.r)
}

// Router exposes the router for tests
func (s *Server) Router() chi.Router { return s.r }

// index returns the shared, read only index for length, loading the list on first use
func (s *Server) index(length int) (*candidate.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ret, ok := s.indexes[length]; ok {
		return ret, nil
	}
	words, err := wordlist.LoadOrEmbedded(s.cfg.WordsDir, length)
	if err != nil {
		return nil, err
	}
	dict, err := wordle.NewDictionary(words)
	if err != nil {
		return nil, err
	}
	ret := candidate.NewIndex(dict)
	s.indexes[length] = ret
	s.logger.Debug().Int("length", length).Int("words", dict.Len()).Msg("word list loaded")
	return ret, nil
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the error kinds to a status, unknown errors are a 500
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, wordle.ErrEmptyCandidateSet):
		status, code = http.StatusUnprocessableEntity, "empty_candidate_set"
	case errors.Is(err, wordle.ErrInvalidRating):
		status, code = http.StatusBadRequest, "invalid_rating"
	case errors.Is(err, wordle.ErrInvalidWord):
		status, code = http.StatusBadRequest, "invalid_word"
	case errors.Is(err, wordle.ErrConfiguration):
		status, code = http.StatusBadRequest, "configuration"
	}
	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorBody{Error: code, Message: err.Error()})
}
