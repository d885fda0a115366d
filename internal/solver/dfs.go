package solver

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/amalg/lava-aqua/internal/game"
)

// DFS explores the frontier in LIFO order under a depth bound. Not
// optimal and not complete within the bound; it exists as the cheap
// baseline the others are measured against.
type DFS struct {
	eng   *game.Engine
	opts  Options
	stats Stats
}

// NewDFS builds a depth-first solver bound to the engine.
func NewDFS(eng *game.Engine, opts Options) *DFS {
	return &DFS{eng: eng, opts: opts}
}

// Name returns the strategy name.
func (s *DFS) Name() string { return "dfs" }

// Stats returns instrumentation from the last Solve.
func (s *DFS) Stats() Stats { return s.stats }

// Solve runs depth-first search from the given state. Successors are
// pushed in reversed direction order so the stack pops them
// first-direction first, and the goal is checked at generation for an
// early exit.
func (s *DFS) Solve(start game.GameState) ([]game.Direction, bool) {
	began := time.Now()
	s.stats = Stats{}
	saved := s.eng.Snapshot()
	defer s.eng.LoadState(saved)

	s.eng.LoadState(start)
	if s.eng.IsLevelComplete() {
		s.stats.Elapsed = time.Since(began)
		return []game.Direction{}, true
	}

	arena := &pathArena{}
	stack := []frontierEntry{{state: start, node: rootNode}}
	visited := mapset.New[game.StateKey]()
	visited.Put(start.Key())
	s.stats.NodesGenerated = 1

	for len(stack) > 0 && s.stats.NodesExplored < s.opts.MaxNodes {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.stats.NodesExplored++
		if cur.depth > s.stats.MaxDepth {
			s.stats.MaxDepth = cur.depth
		}
		if cur.depth >= s.opts.MaxDepth {
			continue
		}

		s.eng.LoadState(cur.state)
		moves := s.eng.AllowedMoves()
		for i := len(moves) - 1; i >= 0; i-- {
			move := moves[i]
			succ, ok := s.eng.SimulateMove(move)
			if !ok {
				continue
			}
			key := succ.Key()
			if visited.Has(key) {
				continue
			}

			s.eng.LoadState(succ)
			goal := s.eng.IsLevelComplete()
			s.eng.LoadState(cur.state)

			node := arena.add(cur.node, move)
			if goal {
				path := arena.path(node)
				s.stats.SolutionLength = len(path)
				s.stats.Elapsed = time.Since(began)
				return path, true
			}

			visited.Put(key)
			s.stats.NodesGenerated++
			stack = append(stack, frontierEntry{
				state: succ,
				node:  node,
				depth: cur.depth + 1,
			})
		}
	}

	s.stats.Elapsed = time.Since(began)
	return nil, false
}
