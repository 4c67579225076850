package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnStartRank returns the rank index pawns of colour start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// promotionRank returns the farthest rank from colour's start.
func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return 7
	}
	return 0
}

// pawnMoves generates pushes, captures, en passant and promotions for the
// pawn on from.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	board := &pos.Board
	dir := colour.PawnDirection()

	// Forward moves
	one := from.Offset(0, dir)
	if one.OnBoard() && board.At(one).IsEmpty() {
		moves = appendPawnMove(moves, from, one, colour, false)

		two := from.Offset(0, 2*dir)
		if from.Rank == pawnStartRank(colour) && board.At(two).IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: two, Class: chess.DoublePawnPush})
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		to := from.Offset(df, dir)
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		if !target.IsEmpty() && target.Colour != colour {
			moves = appendPawnMove(moves, from, to, colour, true)
			continue
		}
		if ep, ok := pos.EnPassantTarget(); ok && to == ep && target.IsEmpty() {
			// The victim sits beside the capturing pawn, on its rank.
			victim := board.At(chess.Sq(to.File, from.Rank))
			if victim == chess.NewPiece(colour.Opposite(), chess.Pawn) {
				moves = append(moves, chess.Move{From: from, To: to, Class: chess.EnPassantCapture})
			}
		}
	}
	return moves
}

// appendPawnMove appends a single-step pawn move, expanding it into one
// move per promotion kind when it reaches the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour, capture bool) []chess.Move {
	if to.Rank != promotionRank(colour) {
		class := chess.Quiet
		if capture {
			class = chess.Capture
		}
		return append(moves, chess.Move{From: from, To: to, Class: class})
	}

	class := chess.Promotion
	if capture {
		class = chess.PromotionCapture
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Class: class, Promotion: kind})
	}
	return moves
}
