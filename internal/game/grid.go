package game

// Grid is the static tile layout plus the small set of cell promotions
// (to TileWall) caused by hazard collisions. Out-of-bounds positions are
// always non-walkable and non-flowable.
type Grid struct {
	tiles  [][]TileKind
	width  int
	height int
}

// NewGrid builds a grid from tile rows. Rows must be rectangular; the
// level parser validates that before handing them over.
func NewGrid(rows [][]TileKind) *Grid {
	tiles := make([][]TileKind, len(rows))
	for y := range rows {
		tiles[y] = make([]TileKind, len(rows[y]))
		copy(tiles[y], rows[y])
	}

	width := 0
	if len(tiles) > 0 {
		width = len(tiles[0])
	}
	return &Grid{
		tiles:  tiles,
		width:  width,
		height: len(tiles),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether the position lies on the grid.
func (g *Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// TileAt returns the tile kind at the position. Out-of-bounds reads
// return TileWall so callers never walk or flow off the edge.
func (g *Grid) TileAt(pos Position) TileKind {
	if !g.InBounds(pos) {
		return TileWall
	}
	return g.tiles[pos.Y][pos.X]
}

// IsWalkable reports whether the player may occupy the position.
func (g *Grid) IsWalkable(pos Position) bool {
	switch g.TileAt(pos) {
	case TileEmpty, TileExit, TileDarkWall:
		return true
	default:
		return false
	}
}

// IsFlowable reports whether a hazard may spread into the position.
func (g *Grid) IsFlowable(pos Position) bool {
	switch g.TileAt(pos) {
	case TileEmpty, TileSemiWall:
		return true
	default:
		return false
	}
}

// PromoteToWall turns the cell into a permanent TileWall. Idempotent;
// returns true only if the tile actually changed, so the engine records
// each altered position exactly once.
func (g *Grid) PromoteToWall(pos Position) bool {
	if !g.InBounds(pos) || g.tiles[pos.Y][pos.X] == TileWall {
		return false
	}
	g.tiles[pos.Y][pos.X] = TileWall
	return true
}

// Revert restores a previously promoted cell back to TileEmpty. Only
// undo and snapshot loading call this.
func (g *Grid) Revert(pos Position) {
	if g.InBounds(pos) {
		g.tiles[pos.Y][pos.X] = TileEmpty
	}
}
