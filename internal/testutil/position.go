package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustParseFEN parses fen with clock checks relaxed, failing the test on error.
func MustParseFEN(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen, engine.WithLenientClocks())
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// MoveStrings returns the UCI text of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := engine.MoveStrings(moves)
	sort.Strings(out)
	return out
}
