package pkg

import (
	"testing"

	"github.com/notnil/chess"
)

func TestFormatMove(t *testing.T) {
	tests := []struct {
		name string
		rec  MoveRecord
		want string
	}{
		{"pawn push", MoveRecord{Piece: chess.Pawn, From: chess.E2, To: chess.E4}, "e4"},
		{"pawn capture", MoveRecord{Piece: chess.Pawn, From: chess.E4, To: chess.D5, Capture: true}, "exd5"},
		{"knight", MoveRecord{Piece: chess.Knight, From: chess.G1, To: chess.F3}, "Nf3"},
		{"bishop capture", MoveRecord{Piece: chess.Bishop, From: chess.C1, To: chess.G5, Capture: true}, "Bxg5"},
		{"rook", MoveRecord{Piece: chess.Rook, From: chess.A1, To: chess.D1}, "Rd1"},
		{"queen capture", MoveRecord{Piece: chess.Queen, From: chess.D1, To: chess.D8, Capture: true}, "Qxd8"},
		{"king", MoveRecord{Piece: chess.King, From: chess.E1, To: chess.F1}, "Kf1"},
		{"promotion", MoveRecord{Piece: chess.Pawn, From: chess.E7, To: chess.E8, Promotion: chess.Queen}, "e8=Q"},
		{"capture promotion", MoveRecord{Piece: chess.Pawn, From: chess.G7, To: chess.H8, Capture: true, Promotion: chess.Queen}, "gxh8=Q"},
		{"underpromotion", MoveRecord{Piece: chess.Pawn, From: chess.E7, To: chess.E8, Promotion: chess.Knight}, "e8=N"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMove(tt.rec); got != tt.want {
				t.Errorf("FormatMove(%+v) = %q, want %q", tt.rec, got, tt.want)
			}
		})
	}
}
