package pkg

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/rivo/tview"
)

const (
	numrows = 8
	numcols = 8
)

// Client wires the board renderer and keyboard input to a Session. The
// board is a tview table: selecting a square marks the move origin,
// selecting a second square attempts the move through the rules engine.
// Left and right arrows undo and redo.
type Client struct {
	Session *Session
	App     *tview.Application
	Board   *tview.Table
	Moves   *tview.TextView
	Status  *tview.TextView
	Layout  *tview.Grid
	Theme   Theme

	selecting     bool
	lastSelection chess.Square
	done          chan struct{}
}

func NewClient(session *Session) *Client {
	app := tview.NewApplication()

	cl := &Client{
		Session: session,
		App:     app,
		Theme:   ThemeBasic,
		done:    make(chan struct{}),
	}

	undoBtn := tview.NewButton(string(ActionUndo)).SetSelectedFunc(func() {
		if cl.Session.Undo() {
			cl.clearSelection()
			cl.Render()
		}
	})
	redoBtn := tview.NewButton(string(ActionRedo)).SetSelectedFunc(func() {
		if cl.Session.Redo() {
			cl.clearSelection()
			cl.Render()
		}
	})
	newBtn := tview.NewButton(string(ActionNewGame)).SetSelectedFunc(func() {
		cl.Session.Reset()
		cl.clearSelection()
		cl.Render()
	})
	exitBtn := tview.NewButton(string(ActionExit)).SetSelectedFunc(func() {
		app.Stop()
	})

	moves := tview.NewTextView()
	moves.SetBorder(true).SetTitle(fmt.Sprintf(" %s ", session.Name()))

	status := tview.NewTextView()

	board := tview.NewTable()

	panel := tview.NewGrid().
		SetColumns(11, 11).
		SetRows(3, 3, -1, 4).
		AddItem(undoBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(redoBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(newBtn, 1, 0, 1, 1, 0, 0, false).
		AddItem(exitBtn, 1, 1, 1, 1, 0, 0, false).
		AddItem(moves, 2, 0, 1, 2, 0, 0, false).
		AddItem(status, 3, 0, 1, 2, 0, 0, false)

	layout := tview.NewGrid().
		SetRows(-1, 18, -1).
		SetColumns(-1, 28, 24, -1).
		AddItem(board, 1, 1, 1, 1, 0, 0, true).
		AddItem(panel, 1, 2, 1, 1, 0, 0, false)

	cl.Board = board
	cl.Moves = moves
	cl.Status = status
	cl.Layout = layout

	cl.initBoard()
	cl.Render()

	return cl
}

// Run starts the UI event loop and the clock ticker. It blocks until
// the operator exits.
func (cl *Client) Run() error {
	go cl.tickClocks()
	defer close(cl.done)
	return cl.App.SetRoot(cl.Layout, true).EnableMouse(true).Run()
}

func (cl *Client) initBoard() {
	cl.Board.SetSelectable(true, true)
	cl.Board.Select(numrows-1, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			cl.App.Stop()
		}
		if key == tcell.KeyEnter {
			cl.Board.SetSelectable(true, true)
		}
	}).SetSelectedFunc(func(row, col int) {
		cl.handleDrop(row, col)
	})

	// Board navigation is mouse driven; the horizontal arrows step
	// through the game instead.
	cl.Board.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyLeft:
			if cl.Session.Undo() {
				cl.clearSelection()
				cl.Render()
			}
			return nil
		case tcell.KeyRight:
			if cl.Session.Redo() {
				cl.clearSelection()
				cl.Render()
			}
			return nil
		}
		return ev
	})
}

// handleDrop runs the two-step gesture: first selection picks the
// origin, the second picks the destination. Selecting the origin again
// cancels. Rejected moves only log a warning and drop the selection.
func (cl *Client) handleDrop(row, col int) {
	if row >= numrows || col < 1 {
		return
	}
	sq := posToSquare(row, col)

	if !cl.selecting {
		cl.selecting = true
		cl.lastSelection = sq
		cl.Render()
		return
	}
	if sq == cl.lastSelection {
		cl.clearSelection()
		cl.Render()
		return
	}

	from, to := cl.lastSelection, sq
	cl.clearSelection()
	if err := cl.Session.Apply(from, to); err != nil {
		slog.Warn("move rejected", "from", from.String(), "to", to.String(), "err", err)
	}
	cl.Render()
}

func (cl *Client) clearSelection() {
	cl.selecting = false
	cl.lastSelection = 0
}

// Render redraws the board, the moves panel and the status line from
// the current session state.
func (cl *Client) Render() {
	cl.renderBoard()
	cl.renderMoves()
	cl.renderStatus()
}

func (cl *Client) renderBoard() {
	game, err := GameFromFEN(cl.Session.FEN())
	if err != nil {
		slog.Error("render: bad snapshot", "err", err)
		return
	}
	board := game.Position().Board()
	last, hasLast := cl.Session.LastMove()

	// Step through the ranks starting with the top row
	for r := 0; r <= numrows; r++ {
		for f := 0; f <= numcols; f++ {
			if f == 0 && r != numrows { // rank labels on the left
				rank := chess.Rank(numrows - r - 1)
				cell := tview.NewTableCell(rank.String()).
					SetAlign(tview.AlignCenter).
					SetTextColor(cl.Theme.Label).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}
			if r == numrows && f > 0 { // file labels at the bottom
				file := chess.File(f - 1)
				cell := tview.NewTableCell(fmt.Sprintf(" %s", file.String())).
					SetAlign(tview.AlignCenter).
					SetTextColor(cl.Theme.Label).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}
			if r == numrows && f == 0 { // bottom left tile is not used
				cl.Board.SetCell(r, f, tview.NewTableCell(" ").SetSelectable(false))
				continue
			}

			sq := posToSquare(r, f)
			p := board.Piece(sq)
			selected := cl.selecting && sq == cl.lastSelection
			lastSq := hasLast && (sq == last.From || sq == last.To)
			cell := tview.NewTableCell(fmt.Sprintf(" %s", p.String())).
				SetAlign(tview.AlignCenter).
				SetTextColor(cl.Theme.pieceFg(p)).
				SetBackgroundColor(cl.Theme.squareBg(sq, selected, lastSq))
			cl.Board.SetCell(r, f, cell)
		}
	}
}

func (cl *Client) renderMoves() {
	notes := cl.Session.Notation()
	var sb strings.Builder
	for i := 0; i < len(notes); i += 2 {
		fmt.Fprintf(&sb, "%d. %-8s", i/2+1, notes[i])
		if i+1 < len(notes) {
			sb.WriteString(notes[i+1])
		}
		sb.WriteString("\n")
	}
	cl.Moves.SetText(sb.String())
	cl.Moves.ScrollToEnd()
}

func (cl *Client) renderStatus() {
	white, black := cl.Session.Clocks()
	var sb strings.Builder
	fmt.Fprintf(&sb, "White %s  Black %s\n", white, black)
	if out := cl.Session.Outcome(); out == chess.NoOutcome {
		fmt.Fprintf(&sb, "%s to move\n", colorName(cl.Session.Turn()))
	} else {
		fmt.Fprintf(&sb, "Game over %s\n", out)
	}
	sb.WriteString("← undo  → redo")
	cl.Status.SetText(sb.String())
}

// tickClocks drives the active clock and keeps the status line fresh.
func (cl *Client) tickClocks() {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		select {
		case <-cl.done:
			return
		case <-tick.C:
			cl.App.QueueUpdateDraw(func() {
				cl.Session.TickClock()
				cl.renderStatus()
			})
		}
	}
}

func colorName(c chess.Color) string {
	if c == chess.Black {
		return "Black"
	}
	return "White"
}
