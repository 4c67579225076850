package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseUCIMove resolves a UCI move such as "e2e4" or "a7a8q" against the
// legal moves of pos. The category is taken from the matching legal move,
// so callers never construct one themselves.
func ParseUCIMove(pos chess.Position, text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, FEN: FormatFEN(pos)}
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "move %q: %v", text, err)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "move %q: %v", text, err)
	}
	promotion := chess.NoPiece
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
		if promotion == chess.NoPiece || promotion == chess.Pawn || promotion == chess.King {
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "move %q: bad promotion piece", text)
		}
	}

	for _, m := range LegalMoves(pos) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, FEN: FormatFEN(pos)}
}

// MoveStrings renders moves in UCI notation, preserving order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// DescribeMove returns a short human readable description of m in pos,
// e.g. "White Knight g1-f3 (Quiet)".
func DescribeMove(pos chess.Position, m chess.Move) string {
	return fmt.Sprintf("%v %v-%v (%v)", pos.Board.At(m.From), m.From, m.To, m.Class)
}
