package solver

import "github.com/amalg/lava-aqua/internal/game"

// pathArena stores reverse-linked path records for every frontier
// entry. Nodes are addressed by index instead of pointers, so a whole
// search's paths share two flat slices and the final path is a single
// parent walk plus a reverse.
type pathArena struct {
	dirs    []game.Direction
	parents []int32
}

// rootNode marks the search start, which has no incoming direction.
const rootNode int32 = -1

// add records a step and returns its node index.
func (a *pathArena) add(parent int32, dir game.Direction) int32 {
	a.dirs = append(a.dirs, dir)
	a.parents = append(a.parents, parent)
	return int32(len(a.dirs) - 1)
}

// path reconstructs the move sequence from the root to the node.
func (a *pathArena) path(node int32) []game.Direction {
	var out []game.Direction
	for n := node; n != rootNode; n = a.parents[n] {
		out = append(out, a.dirs[n])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
