// Package server exposes the rules engine and game sessions over HTTP.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

const jsonContentType = "application/json"

// Server routes API requests to the engine and the game store.
type Server struct {
	router   *mux.Router
	cfg      *config.Config
	games    *game.Store
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// New builds a server over cfg. Requests are logged through logger.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router: mux.NewRouter(),
		cfg:    cfg,
		games:  game.NewStore(logger),
		log:    logger.With("package", "server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.Use(handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{s.log}),
		handlers.PrintRecoveryStack(s.cfg.Verbosity >= config.Verbose),
	))
	if s.cfg.Server.AccessLog {
		r.Use(func(next http.Handler) http.Handler {
			return handlers.LoggingHandler(s.cfg.LogFile, next)
		})
	}

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Handle("/legal-moves", jsonBody(s.legalMovesHandler)).Methods(http.MethodPost)
	v1.Handle("/perft", jsonBody(s.perftHandler)).Methods(http.MethodPost)
	v1.Handle("/games", jsonBody(s.createGameHandler)).Methods(http.MethodPost)
	v1.HandleFunc("/games/{id}", s.getGameHandler).Methods(http.MethodGet)
	v1.HandleFunc("/games/{id}", s.deleteGameHandler).Methods(http.MethodDelete)
	v1.Handle("/games/{id}/moves", jsonBody(s.playMoveHandler)).Methods(http.MethodPost)
	v1.HandleFunc("/games/{id}/undo", s.undoHandler).Methods(http.MethodPost)
	v1.HandleFunc("/ws/perft", s.wsPerftHandler)
}

// ServeHTTP dispatches to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer returns an http.Server for s using the configured address
// and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Server.ListenAddr,
		Handler:      s,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Games returns the session store.
func (s *Server) Games() *game.Store {
	return s.games
}

// jsonBody rejects POST bodies that are not JSON.
func jsonBody(f http.HandlerFunc) http.Handler {
	return handlers.ContentTypeHandler(f, jsonContentType)
}

// recoveryLogger sends recovered panics to slog.
type recoveryLogger struct {
	log *slog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("recovered from panic", "panic", v)
}

// parsePosition parses fen with the configured rules. An empty FEN means
// the starting position.
func (s *Server) parsePosition(fen string) (chess.Position, error) {
	if fen == "" {
		return engine.NewStartPosition(), nil
	}
	return engine.ParseFEN(fen, s.cfg.Rules.FENOptions()...)
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrInvalidFEN),
		errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrInvalidDepth),
		errors.Is(err, errors.ErrNothingToUndo):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	resp := errorResponse{Error: err.Error()}
	var fenErr *errors.FENError
	if errors.As(err, &fenErr) {
		resp.Field = fenErr.Field.String()
	}
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	} else {
		s.log.Debug("request rejected", "status", code, "error", err)
	}
	writeJSON(w, code, resp)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return false
	}
	return true
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "no such endpoint: " + r.URL.Path})
}
