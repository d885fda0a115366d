package game

import "sort"

// GameState is a value snapshot of everything mutable in a level. It is
// the sole unit exchanged between the engine, the undo history, and the
// solvers, never a deep clone of the engine itself.
type GameState struct {
	Player    Position        `json:"player"`
	Boxes     []Position      `json:"boxes"` // Index-correlated with box identity
	Lava      []Position      `json:"lava"`  // Sorted
	Aqua      []Position      `json:"aqua"`  // Sorted
	Collected []int           `json:"collected"` // Collected key indices, sorted
	TempWalls []TemporaryWall `json:"temp_walls"`
	Altered   []Position      `json:"altered"` // Tiles promoted to wall, in promotion order
	Moves     int             `json:"moves"`
}

// StateKey is an order-independent canonical identifier for a GameState,
// used for visited-set membership and best-cost maps. It is built from
// fixed-width binary records, so there is no separator ambiguity.
type StateKey string

// Key computes the canonical state key. Collections that carry identity
// order (boxes, altered tiles) are sorted into scratch copies first so
// permutations of the same physical state compare equal.
func (s GameState) Key() StateKey {
	b := make([]byte, 0, 8+8*(len(s.Boxes)+len(s.Lava)+len(s.Aqua)+len(s.TempWalls)+len(s.Altered))+2*len(s.Collected))

	b = appendPos(b, s.Player)

	boxes := make([]Position, len(s.Boxes))
	copy(boxes, s.Boxes)
	SortPositions(boxes)
	b = appendPosSection(b, boxes)

	keys := make([]int, len(s.Collected))
	copy(keys, s.Collected)
	sort.Ints(keys)
	b = appendUint16(b, uint16(len(keys)))
	for _, k := range keys {
		b = appendUint16(b, uint16(k))
	}

	b = appendPosSection(b, s.Lava)
	b = appendPosSection(b, s.Aqua)

	walls := make([]TemporaryWall, len(s.TempWalls))
	copy(walls, s.TempWalls)
	sort.Slice(walls, func(i, j int) bool {
		a, c := walls[i], walls[j]
		if a.Pos.Y != c.Pos.Y {
			return a.Pos.Y < c.Pos.Y
		}
		if a.Pos.X != c.Pos.X {
			return a.Pos.X < c.Pos.X
		}
		return a.Duration < c.Duration
	})
	b = appendUint16(b, uint16(len(walls)))
	for _, w := range walls {
		b = appendPos(b, w.Pos)
		b = appendUint16(b, uint16(w.Duration))
	}

	altered := make([]Position, len(s.Altered))
	copy(altered, s.Altered)
	SortPositions(altered)
	b = appendPosSection(b, altered)

	return StateKey(b)
}

func appendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

func appendPos(b []byte, p Position) []byte {
	b = appendUint16(b, uint16(p.X))
	return appendUint16(b, uint16(p.Y))
}

// appendPosSection writes a length-prefixed run of positions. Callers
// pass pre-sorted slices.
func appendPosSection(b []byte, positions []Position) []byte {
	b = appendUint16(b, uint16(len(positions)))
	for _, p := range positions {
		b = appendPos(b, p)
	}
	return b
}
