package hashing

import (
	"hash/fnv"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist key tables. They are filled once from a fixed seed so keys are
// stable across runs and processes.
var (
	pieceKeys     [2][7][64]uint64 // [colour][kind][square]
	blackToMove   uint64
	castlingKeys  [4]uint64 // K, Q, k, q
	enPassantKeys [8]uint64 // by file
)

const zobristSeed = 0x2545F4914F6CDD1D

func init() {
	state := uint64(zobristSeed)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = next()
			}
		}
	}
	blackToMove = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
}

// GenerateZobristHash returns the Zobrist key of a position. Two positions
// share a key when they have the same placement, side to move, castling
// rights and en passant capture possibility, which is the identity used for
// repetition. The clocks are not part of the key.
func GenerateZobristHash(pos chess.Position) uint64 {
	var hash uint64

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Board.At(chess.Sq(file, rank))
			if piece.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[piece.Colour][piece.Kind][rank*chess.BoardSize+file]
		}
	}

	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}

	for i, has := range [4]bool{
		pos.Castling.WhiteKingside, pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside, pos.Castling.BlackQueenside,
	} {
		if has {
			hash ^= castlingKeys[i]
		}
	}

	if ep, ok := pos.EnPassantTarget(); ok && canCaptureEnPassant(pos, ep) {
		hash ^= enPassantKeys[ep.File]
	}
	return hash
}

// canCaptureEnPassant reports whether the side to move has a legal en
// passant capture onto ep. A target square nobody can legally use, for
// want of a neighbouring pawn or because the capture is pinned, does not
// distinguish positions.
func canCaptureEnPassant(pos chess.Position, ep chess.Square) bool {
	pawn := chess.NewPiece(pos.ToMove, chess.Pawn)
	rank := ep.Rank - pos.ToMove.PawnDirection()
	if pos.Board.At(chess.Sq(ep.File-1, rank)) != pawn && pos.Board.At(chess.Sq(ep.File+1, rank)) != pawn {
		return false
	}
	for _, m := range engine.LegalMoves(pos) {
		if m.Class == chess.EnPassantCapture && m.To == ep {
			return true
		}
	}
	return false
}

// WeakHash is a cheap secondary hash of the piece placement alone, used to
// confirm that two equal Zobrist keys are not a collision.
func WeakHash(pos chess.Position) uint32 {
	h := fnv.New32a()
	var row [chess.BoardSize]byte
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			row[file] = pos.Board.At(chess.Sq(file, rank)).FENLetter()
		}
		h.Write(row[:])
	}
	return h.Sum32()
}
