package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/lava-aqua/internal/game"
	"github.com/amalg/lava-aqua/internal/level"
	"github.com/amalg/lava-aqua/internal/solver"
	"github.com/amalg/lava-aqua/internal/ui"
)

func main() {
	levelsFile := flag.String("levels", "", "Levels JSON file (builtin set when empty)")
	undoLimit := flag.Int("undo-limit", game.DefaultConfig().UndoLimit, "Max undo history entries")
	lookahead := flag.Bool("lookahead", true, "Prune solver moves adjacent to lava")
	maxDepth := flag.Int("max-depth", solver.DefaultOptions().MaxDepth, "Solver depth bound")
	maxNodes := flag.Int("max-nodes", solver.DefaultOptions().MaxNodes, "Solver node expansion bound")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	flag.Parse()

	// Redirect log output before the TUI starts; stray stderr writes
	// corrupt Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	levels, err := loadLevels(*levelsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config := game.DefaultConfig()
	config.UndoLimit = *undoLimit
	config.LavaLookahead = *lookahead

	opts := solver.Options{MaxDepth: *maxDepth, MaxNodes: *maxNodes}

	model := ui.NewModel(levels, config, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadLevels reads the levels file, or falls back to the builtin set.
func loadLevels(path string) ([]game.Level, error) {
	if path == "" {
		return level.ParseAll(level.Builtin())
	}
	return level.LoadFile(path)
}
