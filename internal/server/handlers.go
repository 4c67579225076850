package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

type positionRequest struct {
	FEN string `json:"fen"`
}

type legalMovesResponse struct {
	FEN       string   `json:"fen"`
	Moves     []string `json:"moves"`
	Count     int      `json:"count"`
	InCheck   bool     `json:"inCheck"`
	Checkmate bool     `json:"checkmate"`
	Stalemate bool     `json:"stalemate"`
}

func (s *Server) legalMovesHandler(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pos, err := s.parsePosition(req.FEN)
	if err != nil {
		s.writeError(w, err)
		return
	}

	moves := engine.MoveStrings(engine.LegalMoves(pos))
	writeJSON(w, http.StatusOK, legalMovesResponse{
		FEN:       engine.FormatFEN(pos),
		Moves:     moves,
		Count:     len(moves),
		InCheck:   engine.IsInCheck(pos, pos.ToMove),
		Checkmate: engine.IsCheckmate(pos),
		Stalemate: engine.IsStalemate(pos),
	})
}

type perftRequest struct {
	FEN    string `json:"fen"`
	Depth  int    `json:"depth"`
	Divide bool   `json:"divide"`
}

type perftResponse struct {
	FEN       string            `json:"fen"`
	Depth     int               `json:"depth"`
	Nodes     uint64            `json:"nodes"`
	Divide    map[string]uint64 `json:"divide,omitempty"`
	ElapsedMS int64             `json:"elapsedMs"`
}

func (s *Server) perftHandler(w http.ResponseWriter, r *http.Request) {
	var req perftRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.runPerft(r.Context(), req, nil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// runPerft validates req and counts it with the configured worker count.
// progress, if set, sees every finished root move.
func (s *Server) runPerft(ctx context.Context, req perftRequest, progress engine.ProgressFunc) (perftResponse, error) {
	if err := s.cfg.Perft.CheckDepth(req.Depth); err != nil {
		return perftResponse{}, err
	}
	pos, err := s.parsePosition(req.FEN)
	if err != nil {
		return perftResponse{}, err
	}

	var divide map[string]uint64
	if req.Divide {
		divide = make(map[string]uint64)
	}
	start := time.Now()
	nodes, err := engine.ParallelPerft(ctx, pos, req.Depth, s.cfg.Perft.Workers, func(rc engine.RootCount) {
		if divide != nil {
			divide[rc.Move.String()] = rc.Nodes
		}
		if progress != nil {
			progress(rc)
		}
	})
	if err != nil {
		return perftResponse{}, err
	}

	elapsed := time.Since(start)
	fen := engine.FormatFEN(pos)
	s.log.Info("perft", "fen", fen, "depth", req.Depth, "nodes", nodes, "elapsed", elapsed)
	return perftResponse{
		FEN:       fen,
		Depth:     req.Depth,
		Nodes:     nodes,
		Divide:    divide,
		ElapsedMS: elapsed.Milliseconds(),
	}, nil
}

func (s *Server) createGameHandler(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pos, err := s.parsePosition(req.FEN)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g := s.games.Create(pos)
	w.Header().Set("Location", "/v1/games/"+g.ID.String())
	writeJSON(w, http.StatusCreated, g.Snapshot())
}

// withGame resolves the {id} route variable before calling f.
func (s *Server) withGame(w http.ResponseWriter, r *http.Request, f func(*game.Game)) {
	g, err := s.games.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	f(g)
}

func (s *Server) getGameHandler(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(g *game.Game) {
		writeJSON(w, http.StatusOK, g.Snapshot())
	})
}

func (s *Server) deleteGameHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.games.Delete(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	Move string `json:"move"`
}

func (s *Server) playMoveHandler(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(g *game.Game) {
		var req moveRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		m, err := g.PlayUCI(req.Move)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.log.Debug("move played", "game", g.ID, "move", m)
		writeJSON(w, http.StatusOK, g.Snapshot())
	})
}

func (s *Server) undoHandler(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, func(g *game.Game) {
		if _, err := g.Undo(); err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, g.Snapshot())
	})
}
