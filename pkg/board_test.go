package pkg

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
)

const promotionFEN = "8/P7/8/8/8/8/8/K6k w - - 0 1"

func startingFEN(t *testing.T) string {
	t.Helper()
	return chess.NewGame().Position().String()
}

// playMoves applies a sequence of from/to pairs starting from fen and
// returns the final snapshot.
func playMoves(t *testing.T, fen string, moves ...[2]chess.Square) string {
	t.Helper()
	for _, mv := range moves {
		next, _, err := ApplyMove(fen, mv[0], mv[1], chess.NoPieceType)
		if err != nil {
			t.Fatalf("ApplyMove(%s, %s): %v", mv[0], mv[1], err)
		}
		fen = next
	}
	return fen
}

func TestApplyMove(t *testing.T) {
	start := startingFEN(t)
	next, rec, err := ApplyMove(start, chess.E2, chess.E4, chess.NoPieceType)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if next == start {
		t.Error("position did not change")
	}
	want := MoveRecord{Piece: chess.Pawn, From: chess.E2, To: chess.E4}
	if rec != want {
		t.Errorf("record = %+v, want %+v", rec, want)
	}

	game, err := GameFromFEN(next)
	if err != nil {
		t.Fatalf("GameFromFEN: %v", err)
	}
	if got := game.Position().Turn(); got != chess.Black {
		t.Errorf("side to move = %v, want black", got)
	}
}

func TestApplyMoveRejections(t *testing.T) {
	start := startingFEN(t)
	tests := []struct {
		name     string
		from, to chess.Square
		promo    chess.PieceType
	}{
		{"origin equals destination", chess.A1, chess.A1, chess.NoPieceType},
		{"no piece on origin", chess.E3, chess.E4, chess.NoPieceType},
		{"opponent piece on origin", chess.E7, chess.E5, chess.NoPieceType},
		{"illegal pawn jump", chess.E2, chess.E5, chess.NoPieceType},
		{"promotion flag on plain move", chess.E2, chess.E4, chess.Queen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ApplyMove(start, tt.from, tt.to, tt.promo)
			if !errors.Is(err, ErrInvalidMove) {
				t.Errorf("err = %v, want ErrInvalidMove", err)
			}
		})
	}
}

func TestApplyMoveCapture(t *testing.T) {
	fen := playMoves(t, startingFEN(t),
		[2]chess.Square{chess.E2, chess.E4},
		[2]chess.Square{chess.D7, chess.D5},
	)
	_, rec, err := ApplyMove(fen, chess.E4, chess.D5, chess.NoPieceType)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if !rec.Capture {
		t.Error("capture flag not set")
	}
	if got := FormatMove(rec); got != "exd5" {
		t.Errorf("notation = %q, want %q", got, "exd5")
	}
}

func TestApplyMoveEnPassant(t *testing.T) {
	// 1. e4 c5 2. e5 d5 leaves exd6 en passant as the only pawn capture.
	fen := playMoves(t, startingFEN(t),
		[2]chess.Square{chess.E2, chess.E4},
		[2]chess.Square{chess.C7, chess.C5},
		[2]chess.Square{chess.E4, chess.E5},
		[2]chess.Square{chess.D7, chess.D5},
	)
	_, rec, err := ApplyMove(fen, chess.E5, chess.D6, chess.NoPieceType)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if !rec.Capture {
		t.Error("en passant capture flag not set")
	}
	if got := FormatMove(rec); got != "exd6" {
		t.Errorf("notation = %q, want %q", got, "exd6")
	}
}

func TestApplyMovePromotion(t *testing.T) {
	next, rec, err := ApplyMove(promotionFEN, chess.A7, chess.A8, chess.Queen)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if rec.Promotion != chess.Queen {
		t.Errorf("promotion = %v, want queen", rec.Promotion)
	}
	if got := FormatMove(rec); got != "a8=Q" {
		t.Errorf("notation = %q, want %q", got, "a8=Q")
	}
	if next == promotionFEN {
		t.Error("position did not change")
	}
}

func TestAutoPromotion(t *testing.T) {
	if got := autoPromotion(promotionFEN, chess.A7, chess.A8); got != chess.Queen {
		t.Errorf("autoPromotion = %v, want queen", got)
	}
	if got := autoPromotion(startingFEN(t), chess.E2, chess.E4); got != chess.NoPieceType {
		t.Errorf("autoPromotion = %v, want none", got)
	}
}

func TestGameFromFENInvalid(t *testing.T) {
	if _, err := GameFromFEN("not a fen"); err == nil {
		t.Error("expected error for malformed FEN")
	}
}

func TestOutcomeOf(t *testing.T) {
	if got := outcomeOf(startingFEN(t)); got != chess.NoOutcome {
		t.Errorf("outcome = %v, want in progress", got)
	}

	// Fool's mate.
	mate := playMoves(t, startingFEN(t),
		[2]chess.Square{chess.F2, chess.F3},
		[2]chess.Square{chess.E7, chess.E5},
		[2]chess.Square{chess.G2, chess.G4},
		[2]chess.Square{chess.D8, chess.H4},
	)
	if got := outcomeOf(mate); got != chess.BlackWon {
		t.Errorf("outcome = %v, want black won", got)
	}

	stalemate := "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	if got := outcomeOf(stalemate); got != chess.Draw {
		t.Errorf("outcome = %v, want draw", got)
	}
}
