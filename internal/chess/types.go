// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceKind is the type of a chess piece, independent of colour.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the name of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the upper-case FEN letter of the kind, or 0 for NoPiece.
func (k PieceKind) Letter() byte {
	letters := []byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return 0
}

// KindFromLetter converts a FEN letter of either case to a piece kind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// PromotionKinds lists the kinds a pawn may promote to, in emission order.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// NewPiece creates a piece of the given colour and kind.
func NewPiece(colour Colour, kind PieceKind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// FENLetter returns the FEN letter for the piece: upper case for White,
// lower case for Black, '.' for an empty square.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a human readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromFENLetter converts a FEN piece letter to a coloured piece.
// The second result is false if the letter is not a piece.
func PieceFromFENLetter(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == NoPiece {
		return Piece{}, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Colour: colour, Kind: kind}, true
}

// Board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)
