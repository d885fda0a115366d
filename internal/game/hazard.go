package game

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// HazardSet holds the cells currently occupied by one fluid (lava or
// aqua). Both fluids share the same growth rule; the engine decides
// collision resolution between the two.
type HazardSet struct {
	cells mapset.Set[Position]
}

// NewHazardSet builds a hazard set from seed positions.
func NewHazardSet(seeds []Position) HazardSet {
	s := HazardSet{cells: mapset.New[Position]()}
	for _, pos := range seeds {
		s.cells.Put(pos)
	}
	return s
}

// Contains reports whether the position holds this hazard.
func (h HazardSet) Contains(pos Position) bool {
	return h.cells.Has(pos)
}

// Add places the hazard at the position.
func (h HazardSet) Add(pos Position) {
	h.cells.Put(pos)
}

// Remove extinguishes the hazard at the position, if present.
func (h HazardSet) Remove(pos Position) {
	h.cells.Remove(pos)
}

// Size returns the number of occupied cells.
func (h HazardSet) Size() int {
	return h.cells.Size()
}

// Positions returns the occupied cells sorted by Y then X.
func (h HazardSet) Positions() []Position {
	out := make([]Position, 0, h.cells.Size())
	h.cells.Each(func(pos Position) {
		out = append(out, pos)
	})
	SortPositions(out)
	return out
}

// Tick returns the grown set: the current cells plus every axis
// neighbor that is in bounds, flowable, and not in blocked (the engine
// passes boxes, active temporary walls, and uncollected key cells).
// Growth is monotone; nothing is removed here.
func (h HazardSet) Tick(grid *Grid, blocked mapset.Set[Position]) HazardSet {
	next := mapset.New[Position]()
	h.cells.Each(func(pos Position) {
		next.Put(pos)
		for _, d := range Directions() {
			n := pos.Add(d.Delta())
			if grid.IsFlowable(n) && !blocked.Has(n) {
				next.Put(n)
			}
		}
	})
	return HazardSet{cells: next}
}

// SortPositions orders positions by Y then X, in place.
func SortPositions(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
}
