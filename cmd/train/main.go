package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/amalg/lava-aqua/internal/agent"
	"github.com/amalg/lava-aqua/internal/game"
	"github.com/amalg/lava-aqua/internal/level"
)

func main() {
	defaults := agent.DefaultConfig()

	levelsFile := flag.String("levels", "", "Levels JSON file (builtin set when empty)")
	levelIdx := flag.Int("level", 0, "Level index to train on")
	episodes := flag.Int("episodes", defaults.Episodes, "Training episodes")
	maxSteps := flag.Int("max-steps", defaults.MaxSteps, "Step cap per episode")
	alpha := flag.Float64("alpha", defaults.Alpha, "Learning rate")
	gamma := flag.Float64("gamma", defaults.Gamma, "Discount factor")
	epsilon := flag.Float64("epsilon", defaults.Epsilon, "Initial exploration rate")
	epsilonMin := flag.Float64("epsilon-min", defaults.EpsilonMin, "Exploration floor")
	epsilonDecay := flag.Float64("epsilon-decay", defaults.EpsilonDecay, "Exploration decay per update")
	seed := flag.Int64("seed", defaults.Seed, "Random seed")
	logEvery := flag.Int("log-every", 100, "Episodes between progress logs")
	flag.Parse()

	levels, err := loadLevels(*levelsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *levelIdx < 0 || *levelIdx >= len(levels) {
		fmt.Fprintf(os.Stderr, "Error: level index %d out of range (0-%d)\n", *levelIdx, len(levels)-1)
		os.Exit(1)
	}
	lvl := levels[*levelIdx]

	config := agent.Config{
		Episodes:     *episodes,
		MaxSteps:     *maxSteps,
		Alpha:        *alpha,
		Gamma:        *gamma,
		Epsilon:      *epsilon,
		EpsilonMin:   *epsilonMin,
		EpsilonDecay: *epsilonDecay,
		Seed:         *seed,
		LogEvery:     *logEvery,
	}

	eng := game.NewEngine(lvl, game.DefaultConfig())

	fmt.Printf("Training on level %d: %s (%d episodes)\n", *levelIdx, lvl.Name, *episodes)
	a := agent.New(config)
	report := a.Train(eng)

	fmt.Printf("\nEpisodes:      %d\n", report.Episodes)
	fmt.Printf("Successes:     %d (%.1f%%)\n", report.Successes,
		100*float64(report.Successes)/float64(report.Episodes))
	fmt.Printf("Total steps:   %d\n", report.TotalSteps)
	fmt.Printf("Unique states: %d\n", report.UniqueStates)
	fmt.Printf("Q-updates:     %d\n", report.QUpdates)
	fmt.Printf("Best episode:  %d steps\n", report.BestSteps)
	fmt.Printf("Final epsilon: %.3f\n", report.FinalEpsilon)

	path, solved := a.Greedy(eng, *maxSteps)
	if solved {
		fmt.Printf("\nGreedy rollout solved the level in %d moves:\n%s\n", len(path), formatPath(path))
	} else {
		fmt.Printf("\nGreedy rollout did not solve the level (%d moves taken)\n", len(path))
	}
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
