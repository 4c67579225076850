package engine_test

import (
	"strings"
	"testing"

	corentings "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// referenceFENs are positions rich in pins, checks, castling, en passant
// and promotions.
var referenceFENs = []string{
	engine.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
}

func TestLegalMoves_Counts(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"start", engine.StartFEN, 20},
		{"kiwipete", referenceFENs[1], 48},
		{"position 3", referenceFENs[2], 14},
		{"position 4", referenceFENs[3], 6},
		{"position 5", referenceFENs[4], 44},
		{"en passant", referenceFENs[5], 5},
		{"promotion", referenceFENs[6], 11},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustParseFEN(t, tt.fen)
			if got := len(engine.LegalMoves(pos)); got != tt.want {
				t.Errorf("len(LegalMoves) = %d, want %d: %v", got, tt.want, testutil.MoveStrings(engine.LegalMoves(pos)))
			}
		})
	}
}

func TestLegalMoves_Pins(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			// The e2 rook is pinned along the e-file and may only move on it.
			name: "pinned rook slides along the pin",
			fen:  "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1",
			want: []string{"d1", "d2", "f1", "f2", "e2e3", "e2e4", "e2e5", "e2e6", "e2e7", "e2e8"},
		},
		{
			// Capturing en passant would expose the king on the fifth rank.
			name: "en passant pin",
			fen:  "8/8/8/K2pP2r/8/8/8/7k w - d6 0 2",
			want: []string{"a4", "a6", "b4", "b5", "b6", "e5e6"},
		},
		{
			name: "double check forces king move",
			fen:  "4k3/8/8/8/8/5n2/8/r3K3 w - - 0 1",
			want: []string{"e2", "f2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			var got []string
			for _, m := range engine.LegalMoves(pos) {
				s := m.String()
				// King moves are listed by destination only.
				if pos.Board.At(m.From).Kind == chess.King {
					s = m.To.String()
				}
				got = append(got, s)
			}
			testutil.AssertSameElements(t, got, tt.want)
		})
	}
}

// bruteForceLegal keeps every pseudo-legal move after which the mover's
// king is not a target of any enemy piece, found by scanning the enemy
// pieces rather than looking outward from the king.
func bruteForceLegal(pos chess.Position) []chess.Move {
	var legal []chess.Move
	mover := pos.ToMove
	for _, m := range engine.PseudoLegalMoves(pos) {
		next, ok := makeUnchecked(pos, m)
		if !ok {
			continue
		}
		king, found := next.Board.FindKing(mover)
		if found && len(engine.Attackers(next, king, mover.Opposite())) > 0 {
			continue
		}
		if m.IsCastle() {
			enemy := mover.Opposite()
			transit := chess.Sq((m.From.File+m.To.File)/2, m.From.Rank)
			if len(engine.Attackers(pos, m.From, enemy)) > 0 || len(engine.Attackers(pos, transit, enemy)) > 0 {
				continue
			}
		}
		legal = append(legal, m)
	}
	return legal
}

// makeUnchecked plays m by hand on a copy of the board.
func makeUnchecked(pos chess.Position, m chess.Move) (chess.Position, bool) {
	piece := pos.Board.At(m.From)
	if piece.IsEmpty() {
		return pos, false
	}
	switch m.Class {
	case chess.KingsideCastle:
		pos.Board.Set(chess.Sq(5, m.From.Rank), pos.Board.At(chess.Sq(7, m.From.Rank)))
		pos.Board.Clear(chess.Sq(7, m.From.Rank))
	case chess.QueensideCastle:
		pos.Board.Set(chess.Sq(3, m.From.Rank), pos.Board.At(chess.Sq(0, m.From.Rank)))
		pos.Board.Clear(chess.Sq(0, m.From.Rank))
	case chess.EnPassantCapture:
		pos.Board.Clear(chess.Sq(m.To.File, m.From.Rank))
	case chess.Promotion, chess.PromotionCapture:
		piece = chess.NewPiece(piece.Colour, m.Promotion)
	}
	pos.Board.Clear(m.From)
	pos.Board.Set(m.To, piece)
	return pos, true
}

func TestLegalMoves_MatchesBruteForce(t *testing.T) {
	for _, fen := range referenceFENs {
		root := testutil.MustParseFEN(t, fen)
		forEachNode(t, root, 2, func(pos chess.Position) {
			got := testutil.MoveStrings(engine.LegalMoves(pos))
			want := testutil.MoveStrings(bruteForceLegal(pos))
			testutil.AssertEqual(t, got, want, "legal moves of %s", engine.FormatFEN(pos))
		})
	}
}

func TestIsSquareAttacked_MatchesAttackers(t *testing.T) {
	for _, fen := range referenceFENs {
		root := testutil.MustParseFEN(t, fen)
		forEachNode(t, root, 1, func(pos chess.Position) {
			for rank := 0; rank < chess.BoardSize; rank++ {
				for file := 0; file < chess.BoardSize; file++ {
					sq := chess.Sq(file, rank)
					for _, by := range []chess.Colour{chess.White, chess.Black} {
						want := len(engine.Attackers(pos, sq, by)) > 0
						if got := engine.IsSquareAttacked(&pos, sq, by); got != want {
							t.Fatalf("IsSquareAttacked(%v, %v) = %v, want %v in %s", sq, by, got, want, engine.FormatFEN(pos))
						}
					}
				}
			}
		})
	}
}

// TestLegalMoves_MatchesCorentings compares legal-move sets with an
// independent generator at every node of a shallow tree.
func TestLegalMoves_MatchesCorentings(t *testing.T) {
	depth := 2
	if testing.Short() {
		depth = 1
	}
	for _, fen := range referenceFENs {
		root := testutil.MustParseFEN(t, fen)
		forEachNode(t, root, depth, func(pos chess.Position) {
			current := engine.FormatFEN(pos)
			opt, err := corentings.FEN(current)
			if err != nil {
				t.Fatalf("corentings.FEN(%q): %v", current, err)
			}
			game := corentings.NewGame(opt)
			var want []string
			for _, m := range game.ValidMoves() {
				want = append(want, strings.ToLower(m.String()))
			}
			got := engine.MoveStrings(engine.LegalMoves(pos))
			testutil.AssertSameElements(t, got, want, "legal moves of %s", current)
		})
	}
}

func TestLegalMoves_IsSubsetOfPseudoLegal(t *testing.T) {
	for _, fen := range referenceFENs {
		pos := testutil.MustParseFEN(t, fen)
		pseudo := make(map[chess.Move]bool)
		for _, m := range engine.PseudoLegalMoves(pos) {
			pseudo[m] = true
		}
		for _, m := range engine.LegalMoves(pos) {
			if !pseudo[m] {
				t.Errorf("legal move %s missing from pseudo-legal moves of %s", m, fen)
			}
			if !engine.IsLegal(pos, m) {
				t.Errorf("IsLegal(%s) = false for a generated move", m)
			}
		}
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"start", engine.StartFEN, true},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", false},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParseFEN(t, tt.fen)
			testutil.AssertEqual(t, engine.HasLegalMoves(pos), tt.want)
		})
	}
}

// forEachNode calls fn for pos and every position reachable within depth
// plies.
func forEachNode(t *testing.T, pos chess.Position, depth int, fn func(chess.Position)) {
	t.Helper()
	fn(pos)
	if depth == 0 {
		return
	}
	for _, m := range engine.LegalMoves(pos) {
		next, err := engine.Apply(pos, m)
		if err != nil {
			t.Fatalf("Apply(%s) in %s: %v", m, engine.FormatFEN(pos), err)
		}
		forEachNode(t, next, depth-1, fn)
	}
}
