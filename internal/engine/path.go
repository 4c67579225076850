package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// direction is a (file, rank) step.
type direction [2]int

var (
	diagonalDirs = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs      = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightJumps  = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// slide walks each ray from sq. A ray stops at the edge, includes the first
// enemy piece it meets and stops before a friendly piece.
func slide(board *chess.Board, from chess.Square, colour chess.Colour, dirs []direction, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.At(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to, Class: chess.Capture})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Quiet})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// step tries each single offset from sq, skipping off-board squares and
// squares holding a friendly piece.
func step(board *chess.Board, from chess.Square, colour chess.Colour, offsets []direction, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		switch {
		case target.IsEmpty():
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Quiet})
		case target.Colour != colour:
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Capture})
		}
	}
	return moves
}

// isPathClear reports whether every square strictly between from and to
// on the same rank is empty.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	dir := sign(to.File - from.File)
	for file := from.File + dir; file != to.File; file += dir {
		if !board.At(chess.Sq(file, from.Rank)).IsEmpty() {
			return false
		}
	}
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
