package chess

// Board is an 8x8 grid of pieces indexed [rank][file].
type Board [BoardSize][BoardSize]Piece

// At returns the piece on sq. Squares off the board read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b[sq.Rank][sq.File]
}

// Set places a piece on sq.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.Rank][sq.File] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b[sq.Rank][sq.File] = Piece{}
}

// FindKing returns the square of the given colour's king.
// The second result is false if the colour has no king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := Piece{Colour: colour, Kind: King}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b[rank][file] == king {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Kingside reports the kingside right for colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside right for colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// ClearSide removes both rights for colour.
func (c *CastlingRights) ClearSide(colour Colour) {
	if colour == White {
		c.WhiteKingside, c.WhiteQueenside = false, false
	} else {
		c.BlackKingside, c.BlackQueenside = false, false
	}
}

// ClearForSquare removes the right tied to a rook home corner. Squares
// that are not a corner leave the rights unchanged.
func (c *CastlingRights) ClearForSquare(sq Square) {
	switch sq {
	case Square{File: 7, Rank: 0}:
		c.WhiteKingside = false
	case Square{File: 0, Rank: 0}:
		c.WhiteQueenside = false
	case Square{File: 7, Rank: 7}:
		c.BlackKingside = false
	case Square{File: 0, Rank: 7}:
		c.BlackQueenside = false
	}
}

// Any reports whether any castling right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Position is the complete game state needed to generate and apply moves.
// It is a plain value: assigning a Position copies the board with it.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Is an en passant capture possible? If so EPSquare is the square
	// behind the pawn that just made a double push.
	HasEnPassant bool
	EPSquare     Square

	// Half-moves since the last pawn move or capture.
	HalfmoveClock uint

	// Incremented after each Black move.
	FullmoveNumber uint
}

// EnPassantTarget returns the en passant target square, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.EPSquare, p.HasEnPassant
}

// SetEnPassant sets the en passant target square.
func (p *Position) SetEnPassant(sq Square) {
	p.HasEnPassant = true
	p.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (p *Position) ClearEnPassant() {
	p.HasEnPassant = false
	p.EPSquare = Square{}
}

// NewEmptyPosition returns a position with an empty board, White to move
// and the fullmove number set to 1.
func NewEmptyPosition() Position {
	return Position{ToMove: White, FullmoveNumber: 1}
}
