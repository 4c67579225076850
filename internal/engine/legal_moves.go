package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the moves of the side to move that do not leave its
// own king attacked. The order is that of PseudoLegalMoves.
func LegalMoves(pos chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(pos)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if isLegal(&pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos chess.Position) bool {
	for _, m := range PseudoLegalMoves(pos) {
		if isLegal(&pos, m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is a member of the legal-move set of pos.
func IsLegal(pos chess.Position, m chess.Move) bool {
	for _, legal := range LegalMoves(pos) {
		if legal == m {
			return true
		}
	}
	return false
}

// isLegal makes a pseudo-legal move on a copy of the position and checks
// that the mover's king is not attacked afterwards.
func isLegal(pos *chess.Position, m chess.Move) bool {
	if m.IsCastle() && !castlingIsSafe(pos, m) {
		return false
	}

	colour := pos.ToMove
	scratch := *pos
	applyUnchecked(&scratch, m)
	return !isInCheck(&scratch, colour)
}
