package game

// Level is a parsed, validated level layout: a clean tile grid plus the
// initial entity positions extracted from it. The engine copies it on
// build and again on every Reset, so one Level value can seed any
// number of runs.
type Level struct {
	Name      string
	Tiles     [][]TileKind
	Player    Position
	Exit      Position
	Boxes     []Position
	Lava      []Position
	Aqua      []Position
	Keys      []Position
	TempWalls []TemporaryWall
}
