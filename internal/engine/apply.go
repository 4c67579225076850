package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Apply returns the position after m. The move must be a member of
// LegalMoves(pos); anything else is rejected with a *errors.MoveError
// wrapping ErrIllegalMove and pos is returned unchanged.
func Apply(pos chess.Position, m chess.Move) (chess.Position, error) {
	if !IsLegal(pos, m) {
		return pos, illegalMove(pos, m)
	}
	applyUnchecked(&pos, m)
	return pos, nil
}

// ApplyInPlace is Apply for a position owned by the caller, such as the
// current position of a game. On error *pos is left untouched.
func ApplyInPlace(pos *chess.Position, m chess.Move) error {
	if !IsLegal(*pos, m) {
		return illegalMove(*pos, m)
	}
	applyUnchecked(pos, m)
	return nil
}

func illegalMove(pos chess.Position, m chess.Move) error {
	return &errors.MoveError{Err: errors.ErrIllegalMove, Move: m.String(), FEN: FormatFEN(pos)}
}

// applyUnchecked mutates pos for a move known to be at least pseudo-legal.
func applyUnchecked(pos *chess.Position, m chess.Move) {
	moved := pos.Board.At(m.From)
	placed := moved

	switch m.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastleRook(pos, m)

	case chess.EnPassantCapture:
		// The captured pawn is beside the capturing pawn, not on m.To.
		pos.Board.Clear(chess.Sq(m.To.File, m.From.Rank))

	case chess.Promotion, chess.PromotionCapture:
		placed = chess.NewPiece(moved.Colour, m.Promotion)
	}

	pos.Board.Clear(m.From)
	pos.Board.Set(m.To, placed)

	updateMetadata(pos, moved, m)
}

// applyCastleRook moves the rook that accompanies a castling king.
func applyCastleRook(pos *chess.Position, m chess.Move) {
	rookFrom, rookTo := castleRookSquares(m)
	rook := pos.Board.At(rookFrom)
	pos.Board.Clear(rookFrom)
	pos.Board.Set(rookTo, rook)
}

// updateMetadata applies the clock, en passant, castling and side-to-move
// transitions for a move that has already been made on the board.
func updateMetadata(pos *chess.Position, moved chess.Piece, m chess.Move) {
	colour := moved.Colour

	// Update halfmove clock
	if moved.Kind == chess.Pawn || m.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	// Set en passant square only after a double pawn push
	pos.ClearEnPassant()
	if m.Class == chess.DoublePawnPush {
		pos.SetEnPassant(chess.Sq(m.From.File, (m.From.Rank+m.To.Rank)/2))
	}

	updateCastlingRights(pos, moved, m)

	if colour == chess.Black {
		pos.FullmoveNumber++
	}
	pos.ToMove = colour.Opposite()
}
