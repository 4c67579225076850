package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Files of the pieces taking part in castling.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
	kingsideKingTo    = 6
	queensideKingTo   = 2
	kingsideRookTo    = 5
	queensideRookTo   = 3
)

// castlingMoves appends castling candidates for colour. The king must be
// on its home square and the rook on its corner with every square between
// them empty. Attacked squares are checked by the legality filter.
func castlingMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	home := colour.HomeRank()
	if from != chess.Sq(kingFile, home) {
		return moves
	}
	rook := chess.NewPiece(colour, chess.Rook)

	if pos.Castling.Kingside(colour) {
		rookSq := chess.Sq(kingsideRookFile, home)
		if pos.Board.At(rookSq) == rook && isPathClear(&pos.Board, from, rookSq) {
			moves = append(moves, chess.Move{From: from, To: chess.Sq(kingsideKingTo, home), Class: chess.KingsideCastle})
		}
	}
	if pos.Castling.Queenside(colour) {
		rookSq := chess.Sq(queensideRookFile, home)
		if pos.Board.At(rookSq) == rook && isPathClear(&pos.Board, from, rookSq) {
			moves = append(moves, chess.Move{From: from, To: chess.Sq(queensideKingTo, home), Class: chess.QueensideCastle})
		}
	}
	return moves
}

// castleRookSquares returns the rook's origin and destination for a
// castling move.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	rank := m.From.Rank
	if m.Class == chess.KingsideCastle {
		return chess.Sq(kingsideRookFile, rank), chess.Sq(kingsideRookTo, rank)
	}
	return chess.Sq(queensideRookFile, rank), chess.Sq(queensideRookTo, rank)
}

// castleTransitSquare returns the square the king crosses while castling.
func castleTransitSquare(m chess.Move) chess.Square {
	return chess.Sq((m.From.File+m.To.File)/2, m.From.Rank)
}

// castlingIsSafe reports whether the king neither starts on nor crosses an
// attacked square. The landing square is covered by the post-move check.
func castlingIsSafe(pos *chess.Position, m chess.Move) bool {
	enemy := pos.ToMove.Opposite()
	return !IsSquareAttacked(pos, m.From, enemy) &&
		!IsSquareAttacked(pos, castleTransitSquare(m), enemy)
}

// updateCastlingRights clears the rights lost by a move: both rights of a
// king that moves, and the right of any rook corner that is vacated or
// captured on.
func updateCastlingRights(pos *chess.Position, moved chess.Piece, m chess.Move) {
	if !pos.Castling.Any() {
		return
	}
	if moved.Kind == chess.King {
		pos.Castling.ClearSide(moved.Colour)
	}
	pos.Castling.ClearForSquare(m.From)
	pos.Castling.ClearForSquare(m.To)
}
