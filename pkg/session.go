package pkg

import (
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/notnil/chess"
)

// DefaultTime is the clock time each side starts with.
const DefaultTime = 10 * time.Minute

// snapshot is one entry on the history and redo stacks: a serialized
// position plus the move that produced it.
type snapshot struct {
	fen  string
	note string
	rec  MoveRecord
}

// Session owns the state of a single game: the history of position
// snapshots, the redo stack, whose turn it is and the two clocks. All
// mutation goes through Apply, Undo, Redo and Reset.
type Session struct {
	name      string
	history   []snapshot // history[0] is the starting position and never leaves
	redo      []snapshot
	turn      chess.Color
	startTurn chess.Color
	white     *Clock
	black     *Clock
}

type sessionConfig struct {
	fen  string
	name string
	time time.Duration
}

// Option configures a new Session.
type Option func(*sessionConfig)

// WithFEN starts the session from the given position instead of the
// standard starting position.
func WithFEN(fen string) Option {
	return func(cfg *sessionConfig) {
		cfg.fen = fen
	}
}

// WithName names the session. Names are generated when this is not set.
func WithName(name string) Option {
	return func(cfg *sessionConfig) {
		cfg.name = name
	}
}

// WithTime sets the clock time per side.
func WithTime(d time.Duration) Option {
	return func(cfg *sessionConfig) {
		cfg.time = d
	}
}

// NewSession builds a session, validating the starting position through
// the rules engine.
func NewSession(opts ...Option) (*Session, error) {
	cfg := sessionConfig{
		fen:  chess.NewGame().Position().String(),
		name: petname.Generate(2, "-"),
		time: DefaultTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	game, err := GameFromFEN(cfg.fen)
	if err != nil {
		return nil, err
	}
	turn := game.Position().Turn()
	s := &Session{
		name:      cfg.name,
		history:   []snapshot{{fen: game.Position().String()}},
		turn:      turn,
		startTurn: turn,
		white:     NewClock(cfg.time, 0),
		black:     NewClock(cfg.time, 0),
	}
	return s, nil
}

// Apply attempts the move described by a drop gesture. Promotions are
// resolved to a queen without prompting. On success the resulting
// position is pushed, a notation entry is appended, the redo stack is
// cleared and the turn passes; on rejection the session is untouched.
func (s *Session) Apply(from, to chess.Square) error {
	cur := s.FEN()
	promo := autoPromotion(cur, from, to)
	next, rec, err := ApplyMove(cur, from, to, promo)
	if err != nil {
		return err
	}
	s.history = append(s.history, snapshot{fen: next, note: FormatMove(rec), rec: rec})
	s.redo = s.redo[:0]
	s.passTurn()
	return nil
}

// Undo steps back one move, parking the undone snapshot on the redo
// stack. It reports false at the starting position.
func (s *Session) Undo() bool {
	if len(s.history) <= 1 {
		return false
	}
	tail := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.redo = append(s.redo, tail)
	s.passTurn()
	return true
}

// Redo replays the most recently undone move. The notation entry is
// re-derived from the stored move record rather than trusted from the
// undo. It reports false when there is nothing to redo.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	tail := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	tail.note = FormatMove(tail.rec)
	s.history = append(s.history, tail)
	s.passTurn()
	return true
}

// Reset rewinds the session to its starting position and winds the
// clocks back up.
func (s *Session) Reset() {
	s.history = s.history[:1]
	s.redo = nil
	s.turn = s.startTurn
	s.white.Reset()
	s.black.Reset()
}

// passTurn toggles the side to move and punches the clocks. Both clocks
// stop once the game is over.
func (s *Session) passTurn() {
	mover := s.turn
	s.turn = s.turn.Other()
	if s.Outcome() != chess.NoOutcome {
		s.white.Pause()
		s.black.Pause()
		return
	}
	s.clock(mover).Punch()
	s.clock(s.turn).Start()
}

func (s *Session) clock(c chess.Color) *Clock {
	if c == chess.Black {
		return s.black
	}
	return s.white
}

// FEN returns the current position snapshot.
func (s *Session) FEN() string {
	return s.history[len(s.history)-1].fen
}

// Turn returns the side to move.
func (s *Session) Turn() chess.Color {
	return s.turn
}

// Name returns the session name.
func (s *Session) Name() string {
	return s.name
}

// Notation lists one entry per move currently reflected in the history.
func (s *Session) Notation() []string {
	notes := make([]string, 0, len(s.history)-1)
	for _, sn := range s.history[1:] {
		notes = append(notes, sn.note)
	}
	return notes
}

// LastMove returns the move that produced the current position, if any.
func (s *Session) LastMove() (MoveRecord, bool) {
	if len(s.history) <= 1 {
		return MoveRecord{}, false
	}
	return s.history[len(s.history)-1].rec, true
}

// CanUndo reports whether there is a move to undo.
func (s *Session) CanUndo() bool {
	return len(s.history) > 1
}

// CanRedo reports whether there is an undone move to replay.
func (s *Session) CanRedo() bool {
	return len(s.redo) > 0
}

// Outcome reports the result of the game at the current position.
func (s *Session) Outcome() chess.Outcome {
	return outcomeOf(s.FEN())
}

// Clocks exposes both clocks for display.
func (s *Session) Clocks() (white, black *Clock) {
	return s.white, s.black
}

// TickClock advances the clock of the side to move by one second.
func (s *Session) TickClock() {
	s.clock(s.turn).Tick()
}
