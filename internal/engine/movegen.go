package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// defaultMoveListLength preallocates move slices; most positions have
// fewer pseudo-legal moves than this.
const defaultMoveListLength = 48

// PseudoLegalMoves returns every move of the side to move that obeys piece
// movement and occupancy rules, without checking king safety. Pieces are
// visited from a1 to h8, rank by rank.
func PseudoLegalMoves(pos chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, defaultMoveListLength)
	colour := pos.ToMove
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			piece := pos.Board.At(sq)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			moves = pieceMoves(&pos, sq, piece, moves)
		}
	}
	return moves
}

// PieceMoves returns the pseudo-legal moves of the piece on sq. It returns
// nil if sq is empty.
func PieceMoves(pos chess.Position, sq chess.Square) []chess.Move {
	piece := pos.Board.At(sq)
	if piece.IsEmpty() {
		return nil
	}
	return pieceMoves(&pos, sq, piece, nil)
}

// pieceMoves dispatches on the piece kind.
func pieceMoves(pos *chess.Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	board := &pos.Board
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(pos, from, piece.Colour, moves)
	case chess.Knight:
		return step(board, from, piece.Colour, knightJumps, moves)
	case chess.Bishop:
		return slide(board, from, piece.Colour, diagonalDirs, moves)
	case chess.Rook:
		return slide(board, from, piece.Colour, straightDirs, moves)
	case chess.Queen:
		return slide(board, from, piece.Colour, allDirs, moves)
	case chess.King:
		moves = step(board, from, piece.Colour, allDirs, moves)
		return castlingMoves(pos, from, piece.Colour, moves)
	}
	return moves
}
