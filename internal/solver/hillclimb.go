package solver

import (
	"container/heap"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/amalg/lava-aqua/internal/game"
)

// HillClimb orders the frontier purely by heuristic value: it always
// expands the globally best-looking open node and ignores accumulated
// cost entirely. Fast, intentionally incomplete, and non-optimal: the
// sometimes-wrong baseline.
type HillClimb struct {
	eng   *game.Engine
	opts  Options
	stats Stats
}

// NewHillClimb builds a greedy hill-climbing solver bound to the engine.
func NewHillClimb(eng *game.Engine, opts Options) *HillClimb {
	return &HillClimb{eng: eng, opts: opts}
}

// Name returns the strategy name.
func (s *HillClimb) Name() string { return "hillclimb" }

// Stats returns instrumentation from the last Solve.
func (s *HillClimb) Stats() Stats { return s.stats }

// Solve runs greedy best-first search from the given state. Dedup at
// enqueue keeps it terminating even on levels it cannot solve.
func (s *HillClimb) Solve(start game.GameState) ([]game.Direction, bool) {
	began := time.Now()
	s.stats = Stats{}
	saved := s.eng.Snapshot()
	defer s.eng.LoadState(saved)

	exit := s.eng.ExitPosition()
	keys := s.eng.KeyPositions()

	arena := &pathArena{}
	seq := 0
	frontier := &nodeHeap{{
		state:    start,
		node:     rootNode,
		priority: estimate(start, exit, keys),
	}}
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
			heap.Push(frontier, heapNode{
				state:    succ,
				node:     arena.add(cur.node, move),
				g:        cur.g + 1,
				priority: estimate(succ, exit, keys),
				seq:      seq,
			})
		}
	}

	s.stats.Elapsed = time.Since(began)
	return nil, false
}
