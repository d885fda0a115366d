package solver

import (
	"container/heap"
	"time"

	"github.com/amalg/lava-aqua/internal/game"
)

// AStar orders the frontier by g plus the key-aware admissible
// heuristic, so its first solution matches BFS's length while expanding
// far fewer nodes.
type AStar struct {
	eng   *game.Engine
	opts  Options
	stats Stats
}

// NewAStar builds an A* solver bound to the engine.
func NewAStar(eng *game.Engine, opts Options) *AStar {
	return &AStar{eng: eng, opts: opts}
}

// Name returns the strategy name.
func (s *AStar) Name() string { return "astar" }

// Stats returns instrumentation from the last Solve.
func (s *AStar) Stats() Stats { return s.stats }

// Solve runs A* from the given state.
func (s *AStar) Solve(start game.GameState) ([]game.Direction, bool) {
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
			continue
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
				priority: g + estimate(succ, exit, keys),
				seq:      seq,
			})
		}
	}

	s.stats.Elapsed = time.Since(began)
	return nil, false
}
