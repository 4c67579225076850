package chess

import "fmt"

// Square is a board coordinate. File and Rank are both in [0,7];
// Square{0, 0} is a1.
type Square struct {
	File int
	Rank int
}

// Sq creates a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard reports whether the square lies on the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by df files and dr ranks.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e3".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: want two characters", name)
	}
	sq := Square{File: int(name[0]) - FileBase, Rank: int(name[1]) - RankBase}
	if !sq.OnBoard() {
		return Square{}, fmt.Errorf("square %q: off the board", name)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on error.
// Intended for constants and tests.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
