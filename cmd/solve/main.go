package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/amalg/lava-aqua/internal/game"
	"github.com/amalg/lava-aqua/internal/level"
	"github.com/amalg/lava-aqua/internal/solver"
)

var (
	headerColor   = color.Style{color.FgCyan, color.OpBold}
	solvedColor   = color.Style{color.FgGreen, color.OpBold}
	unsolvedColor = color.Style{color.FgRed, color.OpBold}
	statColor     = color.Style{color.FgGray}
)

func main() {
	levelsFile := flag.String("levels", "", "Levels JSON file (builtin set when empty)")
	levelIdx := flag.Int("level", -1, "Level index to solve (-1 = all)")
	algo := flag.String("algo", "all", "Solver name or 'all': "+strings.Join(solver.Names(), ", "))
	maxDepth := flag.Int("max-depth", solver.DefaultOptions().MaxDepth, "Depth bound")
	maxNodes := flag.Int("max-nodes", solver.DefaultOptions().MaxNodes, "Node expansion bound")
	lookahead := flag.Bool("lookahead", true, "Prune moves adjacent to lava")
	flag.Parse()

	levels, err := loadLevels(*levelsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	algos := solver.Names()
	if *algo != "all" {
		algos = []string{*algo}
	}

	config := game.DefaultConfig()
	config.LavaLookahead = *lookahead
	opts := solver.Options{MaxDepth: *maxDepth, MaxNodes: *maxNodes}

	exitCode := 0
	for i, lvl := range levels {
		if *levelIdx >= 0 && i != *levelIdx {
			continue
		}

		headerColor.Printf("Level %d: %s\n", i, lvl.Name)
		eng := game.NewEngine(lvl, config)

		for _, name := range algos {
			if !runSolver(eng, name, opts) {
				exitCode = 1
			}
		}
		fmt.Println()
	}

	os.Exit(exitCode)
}

// runSolver solves the engine's current level with the named strategy
// and prints the result. Returns false on an unknown solver or an
// unsolved level.
func runSolver(eng *game.Engine, name string, opts solver.Options) bool {
	sv, err := solver.New(name, eng, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}

	path, ok := sv.Solve(eng.Snapshot())
	stats := sv.Stats()

	if !ok {
		unsolvedColor.Printf("  %-10s no solution\n", name)
		statColor.Printf("             explored %d, generated %d in %s\n",
			stats.NodesExplored, stats.NodesGenerated, stats.Elapsed)
		return false
	}

	solvedColor.Printf("  %-10s %d moves\n", name, len(path))
	statColor.Printf("             explored %d, generated %d in %s\n",
		stats.NodesExplored, stats.NodesGenerated, stats.Elapsed)
	statColor.Printf("             %s\n", formatPath(path))
	return true
}

// formatPath renders the move list as a compact space-joined string.
func formatPath(path []game.Direction) string {
	parts := make([]string, len(path))
	for i, d := range path {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// loadLevels reads the levels file, or falls back to the builtin set.
func loadLevels(path string) ([]game.Level, error) {
	if path == "" {
		return level.ParseAll(level.Builtin())
	}
	return level.LoadFile(path)
}
