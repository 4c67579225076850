package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A side
// without a king is never in check.
func IsInCheck(pos chess.Position, colour chess.Colour) bool {
	return isInCheck(&pos, colour)
}

func isInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq, ok := pos.Board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move to or
// capture on sq. It looks outward from sq for each kind of attacker,
// which gives the same answer as scanning every enemy piece's
// destinations.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	board := &pos.Board

	// Pawns attack from one rank behind, in their direction of travel
	pawn := chess.NewPiece(byColour, chess.Pawn)
	back := -byColour.PawnDirection()
	if board.At(sq.Offset(-1, back)) == pawn || board.At(sq.Offset(1, back)) == pawn {
		return true
	}

	knight := chess.NewPiece(byColour, chess.Knight)
	for _, off := range knightJumps {
		if board.At(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.NewPiece(byColour, chess.King)
	for _, off := range allDirs {
		if board.At(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.NewPiece(byColour, chess.Queen)
	if rayHits(board, sq, diagonalDirs, chess.NewPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return rayHits(board, sq, straightDirs, chess.NewPiece(byColour, chess.Rook), queen)
}

// rayHits walks each ray from sq and reports whether the first piece met
// is one of the given sliders.
func rayHits(board *chess.Board, sq chess.Square, dirs []direction, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		c := sq.Offset(dir[0], dir[1])
		for c.OnBoard() {
			piece := board.At(c)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			c = c.Offset(dir[0], dir[1])
		}
	}
	return false
}

// Attackers returns the squares of byColour's pieces whose pseudo-legal
// destinations include sq. It scans the enemy pieces directly and is
// used to cross-check IsSquareAttacked.
func Attackers(pos chess.Position, sq chess.Square, byColour chess.Colour) []chess.Square {
	var found []chess.Square
	scratch := pos
	// A friendly piece of the defender on sq makes it a capture target
	// for every attacker shape.
	if target := scratch.Board.At(sq); target.IsEmpty() || target.Colour == byColour {
		scratch.Board.Set(sq, chess.NewPiece(byColour.Opposite(), chess.Knight))
	}
	scratch.ToMove = byColour
	scratch.ClearEnPassant()

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(file, rank)
			piece := scratch.Board.At(from)
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			for _, m := range pieceMoves(&scratch, from, piece, nil) {
				if m.To == sq && m.IsCapture() {
					found = append(found, from)
					break
				}
			}
		}
	}
	return found
}
