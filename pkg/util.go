package pkg

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/notnil/chess"
)

// posToSquare maps a board table cell to its square. Row 0 is rank 8;
// column 0 holds the rank labels.
func posToSquare(row, col int) chess.Square {
	return chess.Square((numrows-row-1)*8 + col - 1)
}

// InitLog routes the default slog logger to a file so that diagnostics
// do not fight with the terminal UI over the screen.
func InitLog(dest, app string) error {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)).With("app", app))
	return nil
}
