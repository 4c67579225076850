package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsCheckmate reports whether the side to move is in check with no legal
// reply.
func IsCheckmate(pos chess.Position) bool {
	return !HasLegalMoves(pos) && IsInCheck(pos, pos.ToMove)
}

// IsStalemate reports whether the side to move has no legal move but is
// not in check.
func IsStalemate(pos chess.Position) bool {
	return !HasLegalMoves(pos) && !IsInCheck(pos, pos.ToMove)
}

// FiftyMoveHalfmoves is the halfmove clock at which either player may
// claim a draw.
const FiftyMoveHalfmoves = 100

// IsFiftyMoveDraw reports whether the fifty-move rule can be claimed.
func IsFiftyMoveDraw(pos chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveHalfmoves
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(pos chess.Position) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			piece := pos.Board.At(sq)
			if piece.IsEmpty() || piece.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			switch piece.Kind {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(sq)
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(sq)
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File+sq.Rank)%2 == 1
}
