package main

import (
	"flag"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/notnil/chess"
	"github.com/qhuy/termchess/pkg"
	"golang.org/x/term"
)

func main() {
	logPath := flag.String("log", "./termchess.log", "path to log file")
	fen := flag.String("fen", "", "starting position in FEN, standard when empty")
	name := flag.String("name", "", "session name, generated when empty")
	minutes := flag.Int("minutes", 10, "clock time per side in minutes")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Red("termchess needs an interactive terminal")
		os.Exit(1)
	}
	if err := pkg.InitLog(*logPath, "termchess"); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	opts := []pkg.Option{pkg.WithTime(time.Duration(*minutes) * time.Minute)}
	if *fen != "" {
		opts = append(opts, pkg.WithFEN(*fen))
	}
	if *name != "" {
		opts = append(opts, pkg.WithName(*name))
	}
	session, err := pkg.NewSession(opts...)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	cl := pkg.NewClient(session)
	if err := cl.Run(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	color.New(color.Bold).Printf("%s: %d moves played\n", session.Name(), len(session.Notation()))
	if out := session.Outcome(); out != chess.NoOutcome {
		color.New(color.FgGreen, color.Bold).Printf("Result: %s\n", out)
	}
}
