package pkg

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// ErrInvalidMove is returned when the rules engine rejects a move request.
// It covers bad origin/destination pairs, moves from empty squares and
// illegal promotions alike.
var ErrInvalidMove = errors.New("invalid move")

// MoveRecord describes a move that was accepted by the rules engine.
type MoveRecord struct {
	Piece     chess.PieceType
	From      chess.Square
	To        chess.Square
	Capture   bool
	Promotion chess.PieceType
}

// GameFromFEN loads a game snapshot from its FEN serialization.
func GameFromFEN(gamefen string) (*chess.Game, error) {
	fen, err := chess.FEN(gamefen)
	if err != nil {
		return nil, fmt.Errorf("load fen %q: %w", gamefen, err)
	}
	return chess.NewGame(fen, chess.UseNotation(chess.UCINotation{})), nil
}

// ApplyMove validates from/to/promo against the position in fen and, when
// legal, returns the resulting position plus a record of what was played.
// The input snapshot is never mutated; a rejected move returns
// ErrInvalidMove and nothing else.
func ApplyMove(fen string, from, to chess.Square, promo chess.PieceType) (string, MoveRecord, error) {
	if from == to {
		return "", MoveRecord{}, fmt.Errorf("%w: %s%s", ErrInvalidMove, from, to)
	}
	game, err := GameFromFEN(fen)
	if err != nil {
		return "", MoveRecord{}, err
	}

	board := game.Position().Board()
	for _, valid := range game.ValidMoves() {
		if valid.S1() != from || valid.S2() != to || valid.Promo() != promo {
			continue
		}
		record := MoveRecord{
			Piece:     board.Piece(from).Type(),
			From:      from,
			To:        to,
			Capture:   board.Piece(to) != chess.NoPiece || valid.HasTag(chess.EnPassant),
			Promotion: valid.Promo(),
		}
		if err := game.Move(valid); err != nil {
			return "", MoveRecord{}, fmt.Errorf("%w: %s%s", ErrInvalidMove, from, to)
		}
		return game.Position().String(), record, nil
	}
	return "", MoveRecord{}, fmt.Errorf("%w: %s%s", ErrInvalidMove, from, to)
}

// autoPromotion picks the promotion piece for a drop gesture. A pawn
// reaching the final rank always becomes a queen; the operator is never
// prompted for a choice.
func autoPromotion(fen string, from, to chess.Square) chess.PieceType {
	game, err := GameFromFEN(fen)
	if err != nil {
		return chess.NoPieceType
	}
	for _, valid := range game.ValidMoves() {
		if valid.S1() == from && valid.S2() == to && valid.Promo() != chess.NoPieceType {
			return chess.Queen
		}
	}
	return chess.NoPieceType
}

// outcomeOf reports the result of the game at the given snapshot, derived
// from the rules engine's position status.
func outcomeOf(fen string) chess.Outcome {
	game, err := GameFromFEN(fen)
	if err != nil {
		return chess.NoOutcome
	}
	switch game.Position().Status() {
	case chess.Checkmate:
		if game.Position().Turn() == chess.White {
			return chess.BlackWon
		}
		return chess.WhiteWon
	case chess.Stalemate:
		return chess.Draw
	}
	return chess.NoOutcome
}
