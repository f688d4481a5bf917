package pkg

import (
	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for coloring the board and panels
type Theme struct {
	Name        string
	SquareDark  tcell.Color
	SquareLight tcell.Color
	SquareHigh  tcell.Color // selected origin square
	SquareLast  tcell.Color // squares of the last applied move
	White       tcell.Color // white piece glyphs
	Black       tcell.Color // black piece glyphs
	Label       tcell.Color // rank and file labels
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:        "basic",
	SquareDark:  tcell.Color188,
	SquareLight: tcell.Color230,
	SquareHigh:  tcell.Color226,
	SquareLast:  tcell.Color223,
	White:       tcell.Color232,
	Black:       tcell.Color232,
	Label:       tcell.Color247,
}

// squareBg returns the background color for a square, with selection
// taking precedence over the last-move highlight.
func (t Theme) squareBg(sq chess.Square, selected, last bool) tcell.Color {
	switch {
	case selected:
		return t.SquareHigh
	case last:
		return t.SquareLast
	case (int(sq.File())+int(sq.Rank()))%2 == 0:
		return t.SquareDark
	default:
		return t.SquareLight
	}
}

// pieceFg returns the foreground color for a piece glyph.
func (t Theme) pieceFg(p chess.Piece) tcell.Color {
	if p.Color() == chess.Black {
		return t.Black
	}
	return t.White
}
