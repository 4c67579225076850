package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	Quiet MoveClass = iota
	Capture
	DoublePawnPush
	KingsideCastle
	QueensideCastle
	EnPassantCapture
	Promotion
	PromotionCapture
)

var moveClassNames = [...]string{
	"Quiet", "Capture", "DoublePawnPush", "KingsideCastle",
	"QueensideCastle", "EnPassantCapture", "Promotion", "PromotionCapture",
}

// String returns the name of the move class.
func (c MoveClass) String() string {
	if c >= 0 && int(c) < len(moveClassNames) {
		return moveClassNames[c]
	}
	return "Unknown"
}

// Move is a fully specified move. It carries no reference to a board.
type Move struct {
	From  Square
	To    Square
	Class MoveClass

	// The piece promoted to (NoPiece unless Class is a promotion).
	Promotion PieceKind
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	switch m.Class {
	case Capture, EnPassantCapture, PromotionCapture:
		return true
	default:
		return false
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == Promotion || m.Class == PromotionCapture
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// String returns the move in UCI long algebraic notation, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(Piece{Colour: Black, Kind: m.Promotion}.FENLetter())
	}
	return s
}
