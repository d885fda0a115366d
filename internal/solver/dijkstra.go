package solver

import (
	"container/heap"
	"time"

	"github.com/amalg/lava-aqua/internal/game"
)

// Dijkstra explores by accumulated cost with a best-cost map instead of
// a visited set: a state is re-pushed whenever a strictly cheaper path
// to it is found, and stale heap entries are skipped at pop.
type Dijkstra struct {
	eng   *game.Engine
	opts  Options
	stats Stats
}

// NewDijkstra builds a Dijkstra solver bound to the engine.
func NewDijkstra(eng *game.Engine, opts Options) *Dijkstra {
	return &Dijkstra{eng: eng, opts: opts}
}

// Name returns the strategy name.
func (s *Dijkstra) Name() string { return "dijkstra" }

// Stats returns instrumentation from the last Solve.
func (s *Dijkstra) Stats() Stats { return s.stats }

// Solve runs Dijkstra's algorithm from the given state.
func (s *Dijkstra) Solve(start game.GameState) ([]game.Direction, bool) {
	began := time.Now()
	s.stats = Stats{}
	saved := s.eng.Snapshot()
	defer s.eng.LoadState(saved)

	arena := &pathArena{}
	seq := 0
	frontier := &nodeHeap{{state: start, node: rootNode}}
	heap.Init(frontier)
	bestCost := map[game.StateKey]int{start.Key(): 0}
	s.stats.NodesGenerated = 1

	for frontier.Len() > 0 && s.stats.NodesExplored < s.opts.MaxNodes {
		cur := heap.Pop(frontier).(heapNode)
		s.stats.NodesExplored++
		if cur.g > s.stats.MaxDepth {
			s.stats.MaxDepth = cur.g
		}

		curKey := cur.state.Key()
		if best, ok := bestCost[curKey]; ok && cur.g > best {
			continue // Stale entry, a cheaper path was already popped
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
			s.stats.NodesGenerated++
			g := cur.g + (succ.Moves - cur.state.Moves)
			key := succ.Key()
			if best, seen := bestCost[key]; seen && g >= best {
				continue
			}
			bestCost[key] = g
			seq++
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
