package solver

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/amalg/lava-aqua/internal/game"
)

// BFS explores the frontier in FIFO order. Every committed move costs
// one, so the first goal found is move-count-optimal.
type BFS struct {
	eng   *game.Engine
	opts  Options
	stats Stats
}

// NewBFS builds a breadth-first solver bound to the engine.
func NewBFS(eng *game.Engine, opts Options) *BFS {
	return &BFS{eng: eng, opts: opts}
}

// Name returns the strategy name.
func (s *BFS) Name() string { return "bfs" }

// Stats returns instrumentation from the last Solve.
func (s *BFS) Stats() Stats { return s.stats }

// Solve runs breadth-first search from the given state.
func (s *BFS) Solve(start game.GameState) ([]game.Direction, bool) {
	began := time.Now()
	s.stats = Stats{}
	saved := s.eng.Snapshot()
	defer s.eng.LoadState(saved)

	arena := &pathArena{}
	queue := []frontierEntry{{state: start, node: rootNode}}
	visited := mapset.New[game.StateKey]()
	visited.Put(start.Key())
	s.stats.NodesGenerated = 1

	for len(queue) > 0 && s.stats.NodesExplored < s.opts.MaxNodes {
		cur := queue[0]
		queue = queue[1:]
		s.stats.NodesExplored++
		if cur.depth > s.stats.MaxDepth {
			s.stats.MaxDepth = cur.depth
		}

		s.eng.LoadState(cur.state)
		if s.eng.IsLevelComplete() {
			path := arena.path(cur.node)
			s.stats.SolutionLength = len(path)
			s.stats.Elapsed = time.Since(began)
			return path, true
		}
		if cur.depth >= s.opts.MaxDepth {
			continue
		}

		for _, move := range s.eng.AllowedMoves() {
			succ, ok := s.eng.SimulateMove(move)
			if !ok {
				continue
			}
			key := succ.Key()
			if visited.Has(key) {
				continue
			}
			visited.Put(key)
			s.stats.NodesGenerated++
			queue = append(queue, frontierEntry{
				state: succ,
				node:  arena.add(cur.node, move),
				depth: cur.depth + 1,
			})
		}
	}

	s.stats.Elapsed = time.Since(began)
	return nil, false
}
