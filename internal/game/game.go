// Package game keeps playable game sessions on top of the rules engine.
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Status is the outcome state of a game.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
	InsufficientMaterial
)

var statusNames = [...]string{
	"ongoing", "checkmate", "stalemate", "fifty-move-rule",
	"threefold-repetition", "insufficient-material",
}

// String returns the name of the status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown game status %q", text)
}

// IsOver reports whether the status ends the game.
func (s Status) IsOver() bool {
	return s != Ongoing
}

// ply is one played move with the position it was played from.
type ply struct {
	move   chess.Move
	before chess.Position
}

// Game is a single game session. All methods are safe for concurrent use.
type Game struct {
	ID uuid.UUID

	mu          sync.Mutex
	position    chess.Position
	history     []ply
	repetitions *hashing.RepetitionTracker
}

// New starts a game from pos with a fresh ID.
func New(pos chess.Position) *Game {
	g := &Game{
		ID:          uuid.New(),
		position:    pos,
		repetitions: hashing.NewRepetitionTracker(),
	}
	g.repetitions.Record(pos)
	return g
}

// Position returns the current position.
func (g *Game) Position() chess.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

// Moves returns the moves played so far, oldest first.
func (g *Game) Moves() []chess.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	moves := make([]chess.Move, len(g.history))
	for i, p := range g.history {
		moves[i] = p.move
	}
	return moves
}

// LegalMoves returns the legal moves in the current position. A finished
// game has none.
func (g *Game) LegalMoves() []chess.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status().IsOver() {
		return nil
	}
	return engine.LegalMoves(g.position)
}

// Play applies m to the current position. Moves are refused once the game
// is over.
func (g *Game) Play(m chess.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.play(m)
}

// PlayUCI resolves a UCI move text against the current position and plays
// it, returning the resolved move.
func (g *Game) PlayUCI(text string) (chess.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, err := engine.ParseUCIMove(g.position, text)
	if err != nil {
		return chess.Move{}, err
	}
	return m, g.play(m)
}

func (g *Game) play(m chess.Move) error {
	if st := g.status(); st.IsOver() {
		return &errors.MoveError{
			Err:  errors.Wrapf(errors.ErrIllegalMove, "game ended by %s", st),
			Move: m.String(),
			FEN:  engine.FormatFEN(g.position),
		}
	}

	before := g.position
	if err := engine.ApplyInPlace(&g.position, m); err != nil {
		return err
	}
	g.history = append(g.history, ply{move: m, before: before})
	g.repetitions.Record(g.position)
	return nil
}

// Undo takes back the last move and returns it.
func (g *Game) Undo() (chess.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.history) == 0 {
		return chess.Move{}, errors.ErrNothingToUndo
	}
	last := g.history[len(g.history)-1]
	g.repetitions.Forget(g.position)
	g.position = last.before
	g.history = g.history[:len(g.history)-1]
	return last.move, nil
}

// Status returns the current outcome state.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status()
}

// status checks the terminal conditions in priority order: mate and
// stalemate end the game outright, then the draw rules.
func (g *Game) status() Status {
	pos := g.position
	if !engine.HasLegalMoves(pos) {
		if engine.IsInCheck(pos, pos.ToMove) {
			return Checkmate
		}
		return Stalemate
	}
	if g.repetitions.Count(pos) >= 3 {
		return ThreefoldRepetition
	}
	if engine.IsFiftyMoveDraw(pos) {
		return FiftyMoveRule
	}
	if engine.HasInsufficientMaterial(pos) {
		return InsufficientMaterial
	}
	return Ongoing
}

// Snapshot is a serializable view of a game.
type Snapshot struct {
	ID         string   `json:"id"`
	FEN        string   `json:"fen"`
	ToMove     string   `json:"toMove"`
	Status     Status   `json:"status"`
	Winner     string   `json:"winner,omitempty"`
	InCheck    bool     `json:"inCheck"`
	Moves      []string `json:"moves"`
	LegalMoves []string `json:"legalMoves"`
}

// Snapshot returns the current state of the game in one consistent view.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.status()
	snap := Snapshot{
		ID:         g.ID.String(),
		FEN:        engine.FormatFEN(g.position),
		ToMove:     g.position.ToMove.String(),
		Status:     st,
		InCheck:    engine.IsInCheck(g.position, g.position.ToMove),
		Moves:      make([]string, 0, len(g.history)),
		LegalMoves: []string{},
	}
	if st == Checkmate {
		snap.Winner = g.position.ToMove.Opposite().String()
	}
	for _, p := range g.history {
		snap.Moves = append(snap.Moves, p.move.String())
	}
	if !st.IsOver() {
		snap.LegalMoves = engine.MoveStrings(engine.LegalMoves(g.position))
	}
	return snap
}

// String returns a one-line summary for logging.
func (g *Game) String() string {
	s := g.Snapshot()
	return fmt.Sprintf("game %s [%s] %s", s.ID, s.Status, s.FEN)
}
