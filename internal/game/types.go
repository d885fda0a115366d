package game

// TileKind represents the kind of a cell on the level grid.
type TileKind int

const (
	TileEmpty    TileKind = iota
	TileWall              // Blocks movement and hazard flow
	TileExit              // Level goal; walkable
	TileSemiWall          // Blocks movement, permits hazard flow-through
	TileDarkWall          // Visually distinct but walkable
)

// String returns a short name for the tile kind.
func (t TileKind) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileExit:
		return "exit"
	case TileSemiWall:
		return "semi-wall"
	case TileDarkWall:
		return "dark-wall"
	default:
		return "unknown"
	}
}

// Direction represents a movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions in a fixed order, used for both
// move generation and Q-table action indexing.
func Directions() [4]Direction {
	return [4]Direction{DirUp, DirDown, DirLeft, DirRight}
}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	case DirLeft:
		return Position{X: -1, Y: 0}
	default:
		return Position{X: 1, Y: 0}
	}
}

// String returns the direction name in upper case.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	default:
		return "RIGHT"
	}
}

// Position represents a coordinate on the grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position offset by another position.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// TemporaryWall blocks movement and hazard flow while Duration > 0.
// It is aged by exactly one per committed player action and can be
// revived by undo restoring a positive duration.
type TemporaryWall struct {
	Pos      Position `json:"pos"`
	Duration int      `json:"duration"`
}

// Active reports whether the wall still blocks.
func (w TemporaryWall) Active() bool {
	return w.Duration > 0
}

// ExitKey is a collect-once pickup gating the exit.
type ExitKey struct {
	Pos       Position `json:"pos"`
	Collected bool     `json:"collected"`
}

// Status represents the current level phase.
type Status int

const (
	StatusPlaying  Status = iota
	StatusComplete        // Terminal: exit reached with all keys
	StatusGameOver        // Terminal: player on lava or a promoted wall
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusComplete:
		return "Level Complete"
	default:
		return "Game Over"
	}
}

// Config holds configurable parameters for an engine instance.
type Config struct {
	UndoLimit     int  `json:"undo_limit"`     // Max snapshots kept for undo
	LavaLookahead bool `json:"lava_lookahead"` // Prune moves adjacent to lava in AllowedMoves
}

// DefaultConfig returns a sensible default engine configuration.
func DefaultConfig() Config {
	return Config{
		UndoLimit:     50,
		LavaLookahead: true,
	}
}
