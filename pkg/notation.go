package pkg

import (
	"strings"

	"github.com/notnil/chess"
)

// FormatMove renders a MoveRecord as a simplified algebraic string. Pawn
// moves omit the piece letter, capturing pawn moves lead with the origin
// file, captures insert "x" and promotions append "=Q" style suffixes.
// Moves are not disambiguated when several identical pieces could reach
// the destination.
func FormatMove(rec MoveRecord) string {
	var sb strings.Builder
	if rec.Piece == chess.Pawn {
		if rec.Capture {
			sb.WriteString(rec.From.File().String())
			sb.WriteString("x")
		}
	} else {
		sb.WriteString(pieceLetter(rec.Piece))
		if rec.Capture {
			sb.WriteString("x")
		}
	}
	sb.WriteString(rec.To.String())
	if rec.Promotion != chess.NoPieceType {
		sb.WriteString("=")
		sb.WriteString(pieceLetter(rec.Promotion))
	}
	return sb.String()
}

func pieceLetter(pt chess.PieceType) string {
	return strings.ToUpper(pt.String())
}
