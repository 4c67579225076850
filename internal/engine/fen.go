// Package engine provides chess move generation, legality checking and
// move application over chess.Position values.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// DefaultMaxHalfmoveClock is the largest halfmove clock the validator
// accepts unless relaxed with WithMaxHalfmoveClock.
const DefaultMaxHalfmoveClock = 50

const fenFieldCount = 6

// fenOptions controls the policy parts of FEN validation.
type fenOptions struct {
	maxHalfmove   uint // 0 means unbounded
	checkCounters bool // fullmove must not be smaller than halfmove
}

// FENOption configures FEN validation.
type FENOption func(*fenOptions)

// WithMaxHalfmoveClock sets the largest accepted halfmove clock.
// Zero removes the bound.
func WithMaxHalfmoveClock(n uint) FENOption {
	return func(o *fenOptions) {
		o.maxHalfmove = n
	}
}

// WithLenientClocks accepts any pair of non-negative counters: no halfmove
// bound and no fullmove/halfmove consistency check. Positions reached by
// long sequences of quiet moves need this to round-trip.
func WithLenientClocks() FENOption {
	return func(o *fenOptions) {
		o.maxHalfmove = 0
		o.checkCounters = false
	}
}

func newFENOptions(opts []FENOption) fenOptions {
	o := fenOptions{maxHalfmove: DefaultMaxHalfmoveClock, checkCounters: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// splitFEN splits on spaces, dropping the empty fragments that runs of
// spaces produce.
func splitFEN(fen string) []string {
	return strings.FieldsFunc(fen, func(r rune) bool { return r == ' ' })
}

func fenError(field errors.FENField, value, reason string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Value: value, Reason: reason}
}

// ValidateFEN checks the six FEN fields in order and returns a *FENError
// wrapping ErrInvalidFEN for the first field that fails.
func ValidateFEN(fen string, opts ...FENOption) error {
	o := newFENOptions(opts)

	parts := splitFEN(fen)
	if len(parts) != fenFieldCount {
		return fenError(errors.FieldCount, "", fmt.Sprintf("want %d fields, got %d", fenFieldCount, len(parts)))
	}

	if err := validatePlacement(parts[0]); err != nil {
		return err
	}
	if err := validateSideToMove(parts[1]); err != nil {
		return err
	}
	if err := validateCastling(parts[2]); err != nil {
		return err
	}
	if err := validateEnPassant(parts[3]); err != nil {
		return err
	}
	halfmove, err := validateHalfmove(parts[4], o)
	if err != nil {
		return err
	}
	return validateFullmove(parts[5], halfmove, o)
}

// validatePlacement checks that there are eight rank groups that each
// cover exactly eight files.
func validatePlacement(placement string) error {
	rank := 0
	files := 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if files != chess.BoardSize {
				return fenError(errors.FieldPlacement, placement, fmt.Sprintf("rank %d has %d files before '/'", chess.BoardSize-rank, files))
			}
			rank++
			if rank >= chess.BoardSize {
				return fenError(errors.FieldPlacement, placement, "more than 8 ranks")
			}
			files = 0
		case c >= '1' && c <= '8':
			files += int(c - '0')
		default:
			if _, ok := chess.PieceFromFENLetter(c); !ok {
				return fenError(errors.FieldPlacement, placement, fmt.Sprintf("invalid character %q", c))
			}
			files++
		}
		if files > chess.BoardSize {
			return fenError(errors.FieldPlacement, placement, fmt.Sprintf("rank %d exceeds 8 files", chess.BoardSize-rank))
		}
	}

	if rank != chess.BoardSize-1 || files != chess.BoardSize {
		return fenError(errors.FieldPlacement, placement, "want 8 complete ranks")
	}
	return nil
}

func validateSideToMove(side string) error {
	if side != "w" && side != "b" {
		return fenError(errors.FieldSideToMove, side, "want 'w' or 'b'")
	}
	return nil
}

// validateCastling accepts "-" or a subset of KQkq without repeats.
func validateCastling(castling string) error {
	if castling == "-" {
		return nil
	}
	var seen [4]bool
	for i := 0; i < len(castling); i++ {
		idx := strings.IndexByte("KQkq", castling[i])
		if idx < 0 {
			return fenError(errors.FieldCastling, castling, fmt.Sprintf("invalid character %q", castling[i]))
		}
		if seen[idx] {
			return fenError(errors.FieldCastling, castling, fmt.Sprintf("duplicate %q", castling[i]))
		}
		seen[idx] = true
	}
	return nil
}

// validateEnPassant accepts "-" or a square on rank 3 or rank 6.
func validateEnPassant(ep string) error {
	if ep == "-" {
		return nil
	}
	if len(ep) != 2 {
		return fenError(errors.FieldEnPassant, ep, "want '-' or a square")
	}
	if ep[0] < 'a' || ep[0] > 'h' {
		return fenError(errors.FieldEnPassant, ep, "file must be a-h")
	}
	if ep[1] != '3' && ep[1] != '6' {
		return fenError(errors.FieldEnPassant, ep, "rank must be 3 or 6")
	}
	return nil
}

// parseCounter parses a non-negative decimal integer made only of digits.
func parseCounter(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}

func validateHalfmove(s string, o fenOptions) (uint64, error) {
	n, ok := parseCounter(s)
	if !ok {
		return 0, fenError(errors.FieldHalfmove, s, "want a non-negative integer")
	}
	if o.maxHalfmove > 0 && n > uint64(o.maxHalfmove) {
		return 0, fenError(errors.FieldHalfmove, s, fmt.Sprintf("exceeds %d", o.maxHalfmove))
	}
	return n, nil
}

func validateFullmove(s string, halfmove uint64, o fenOptions) error {
	n, ok := parseCounter(s)
	if !ok {
		return fenError(errors.FieldFullmove, s, "want a non-negative integer")
	}
	if o.checkCounters && n < halfmove {
		return fenError(errors.FieldFullmove, s, fmt.Sprintf("smaller than halfmove clock %d", halfmove))
	}
	return nil
}

// ParseFEN validates fen and, if it is well formed, builds the position
// it describes.
func ParseFEN(fen string, opts ...FENOption) (chess.Position, error) {
	if err := ValidateFEN(fen, opts...); err != nil {
		return chess.Position{}, err
	}

	parts := splitFEN(fen)
	pos := chess.NewEmptyPosition()

	parsePiecePlacement(&pos, parts[0])
	parseSideToMove(&pos, parts[1])
	parseCastlingRights(&pos, parts[2])
	parseEnPassant(&pos, parts[3])
	parseClocks(&pos, parts[4], parts[5])

	return pos, nil
}

// MustParseFEN is like ParseFEN with lenient clocks but panics on error.
// Intended for constants and tests.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen, WithLenientClocks())
	if err != nil {
		panic(err)
	}
	return pos
}

// NewStartPosition returns the standard starting position.
func NewStartPosition() chess.Position {
	return MustParseFEN(StartFEN)
}

// parsePiecePlacement fills the board from rank 8 down to rank 1,
// files a to h. The field has already been validated.
func parsePiecePlacement(pos *chess.Position, placement string) {
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece, _ := chess.PieceFromFENLetter(c)
			pos.Board.Set(chess.Sq(file, rank), piece)
			file++
		}
	}
}

func parseSideToMove(pos *chess.Position, side string) {
	if side == "b" {
		pos.ToMove = chess.Black
	} else {
		pos.ToMove = chess.White
	}
}

func parseCastlingRights(pos *chess.Position, castling string) {
	pos.Castling = chess.CastlingRights{}
	for _, c := range castling {
		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		}
	}
}

func parseEnPassant(pos *chess.Position, ep string) {
	pos.ClearEnPassant()
	if ep == "-" {
		return
	}
	pos.SetEnPassant(chess.MustSquare(ep))
}

func parseClocks(pos *chess.Position, halfmove, fullmove string) {
	h, _ := parseCounter(halfmove)
	f, _ := parseCounter(fullmove)
	pos.HalfmoveClock = uint(h)
	pos.FullmoveNumber = uint(f)
}

// FormatFEN converts a position to a FEN string.
func FormatFEN(pos chess.Position) string {
	var sb strings.Builder

	writePiecePlacement(&sb, &pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos.ToMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.Castling)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder.
func writePiecePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

func writeCastlingRights(sb *strings.Builder, c chess.CastlingRights) {
	if !c.Any() {
		sb.WriteByte('-')
		return
	}
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
}

func writeEnPassant(sb *strings.Builder, pos chess.Position) {
	if sq, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}
