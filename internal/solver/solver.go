// Package solver implements six interchangeable search strategies over
// the engine's simulate-one-action contract. Solvers drive the one live
// engine through LoadState/AllowedMoves/SimulateMove and restore its
// pre-solve state before returning, so callers never observe
// intermediate exploration.
package solver

import (
	"fmt"
	"sort"
	"time"

	"github.com/amalg/lava-aqua/internal/game"
)

// Solver is the common contract: an ordered move list to the goal, or
// false when the frontier is exhausted or a bound was hit. Solvers
// never fail with an error; unsolvable is an expected outcome.
type Solver interface {
	Solve(start game.GameState) ([]game.Direction, bool)
	Name() string
	Stats() Stats
}

// Stats carries instrumentation from the most recent Solve call.
type Stats struct {
	NodesExplored  int
	NodesGenerated int
	MaxDepth       int
	Elapsed        time.Duration
	SolutionLength int
}

// Options bound a search run. MaxNodes is the termination guarantee on
// levels with unbounded hazard-free regions; MaxDepth additionally
// limits DFS and caps path length everywhere.
type Options struct {
	MaxDepth int
	MaxNodes int
}

// DefaultOptions returns the standard search bounds.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 50,
		MaxNodes: 200000,
	}
}

// constructors is the immutable strategy lookup table, built once at
// package init and never mutated afterwards.
var constructors = map[string]func(*game.Engine, Options) Solver{
	"bfs":       func(e *game.Engine, o Options) Solver { return NewBFS(e, o) },
	"dfs":       func(e *game.Engine, o Options) Solver { return NewDFS(e, o) },
	"ucs":       func(e *game.Engine, o Options) Solver { return NewUCS(e, o) },
	"dijkstra":  func(e *game.Engine, o Options) Solver { return NewDijkstra(e, o) },
	"astar":     func(e *game.Engine, o Options) Solver { return NewAStar(e, o) },
	"hillclimb": func(e *game.Engine, o Options) Solver { return NewHillClimb(e, o) },
}

// New builds the named strategy bound to the given engine.
func New(name string, eng *game.Engine, opts Options) (Solver, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver %q", name)
	}
	return ctor(eng, opts), nil
}

// Names lists the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
