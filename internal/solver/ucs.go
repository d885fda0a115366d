package solver

import (
	"container/heap"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/amalg/lava-aqua/internal/game"
)

// UCS explores by accumulated cost g. Edge costs come from the move
// counter delta (always one today), so dedup at enqueue time is safe;
// the weighted machinery stays for variable-cost terrain later.
type UCS struct {
	eng   *game.Engine
	opts  Options
	stats Stats
}

// NewUCS builds a uniform-cost solver bound to the engine.
func NewUCS(eng *game.Engine, opts Options) *UCS {
	return &UCS{eng: eng, opts: opts}
}

// Name returns the strategy name.
func (s *UCS) Name() string { return "ucs" }

// Stats returns instrumentation from the last Solve.
func (s *UCS) Stats() Stats { return s.stats }

// Solve runs uniform-cost search from the given state.
func (s *UCS) Solve(start game.GameState) ([]game.Direction, bool) {
	began := time.Now()
	s.stats = Stats{}
	saved := s.eng.Snapshot()
	defer s.eng.LoadState(saved)

	arena := &pathArena{}
	seq := 0
	frontier := &nodeHeap{{state: start, node: rootNode}}
	heap.Init(frontier)
	visited := mapset.New[game.StateKey]()
	visited.Put(start.Key())
	s.stats.NodesGenerated = 1

	for frontier.Len() > 0 && s.stats.NodesExplored < s.opts.MaxNodes {
		cur := heap.Pop(frontier).(heapNode)
		s.stats.NodesExplored++
		if cur.g > s.stats.MaxDepth {
			s.stats.MaxDepth = cur.g
		}

		s.eng.LoadState(cur.state)
		if s.eng.IsLevelComplete() {
			path := arena.path(cur.node)
			s.stats.SolutionLength = len(path)
			s.stats.Elapsed = time.Since(began)
			return path, true
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
			seq++
			g := cur.g + (succ.Moves - cur.state.Moves)
			heap.Push(frontier, heapNode{
				state:    succ,
				node:     arena.add(cur.node, move),
				g:        g,
				priority: g,
				seq:      seq,
			})
		}
	}

	s.stats.Elapsed = time.Since(began)
	return nil, false
}
