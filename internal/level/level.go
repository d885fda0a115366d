// Package level loads and validates level definitions: a JSON array of
// named character grids plus optional temporary-wall descriptors.
// Parsing produces a clean tile grid and the initial entity positions
// the engine seeds itself from.
package level

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/amalg/lava-aqua/internal/game"
)

// Definition is the raw JSON shape of one level.
type Definition struct {
	Name      string        `json:"name"`
	Grid      []string      `json:"grid"`
	TempWalls []TempWallDef `json:"temp_walls,omitempty"`
}

// TempWallDef supplies the duration for a temporary-wall marker at the
// given [x, y] position.
type TempWallDef struct {
	Position [2]int `json:"position"`
	Duration int    `json:"duration"`
}

// Character legend for level grids.
const (
	charEmpty    = ' '
	charWall     = '#'
	charSemiWall = '.'
	charDarkWall = ','
	charLava     = 'L'
	charAqua     = 'W'
	charPlayer   = 'P'
	charExit     = 'E'
	charBox      = 'B'
	charKey      = 'K'
	charTempWall = 'T'
)

// LoadFile reads and parses a levels file.
func LoadFile(path string) ([]game.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels file: %w", err)
	}

	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decode levels file: %w", err)
	}
	return ParseAll(defs)
}

// ParseAll parses every definition, failing on the first invalid one.
func ParseAll(defs []Definition) ([]game.Level, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("no levels defined")
	}
	levels := make([]game.Level, len(defs))
	for i, def := range defs {
		lvl, err := Parse(def)
		if err != nil {
			return nil, err
		}
		levels[i] = lvl
	}
	return levels, nil
}

// Parse validates one definition and extracts its entity seeds. Seed
// characters are blanked to empty tiles; the exit stays in the grid as
// its own tile kind. Structural problems (empty or ragged grid,
// zero or multiple player/exit markers) are fatal for the level.
func Parse(def Definition) (game.Level, error) {
	if len(def.Grid) == 0 {
		return game.Level{}, fmt.Errorf("level %q: grid cannot be empty", def.Name)
	}

	width := len(def.Grid[0])
	tiles := make([][]game.TileKind, len(def.Grid))

	var (
		player, exit      *game.Position
		boxes, lava, aqua []game.Position
		keys, wallMarkers []game.Position
	)

	for y, row := range def.Grid {
		if len(row) != width {
			return game.Level{}, fmt.Errorf("level %q: inconsistent row width at row %d", def.Name, y)
		}
		tiles[y] = make([]game.TileKind, width)
		for x, ch := range []byte(row) {
			pos := game.Position{X: x, Y: y}
			switch ch {
			case charEmpty:
				tiles[y][x] = game.TileEmpty
			case charWall:
				tiles[y][x] = game.TileWall
			case charSemiWall:
				tiles[y][x] = game.TileSemiWall
			case charDarkWall:
				tiles[y][x] = game.TileDarkWall
			case charExit:
				if exit != nil {
					return game.Level{}, fmt.Errorf("level %q: multiple exits", def.Name)
				}
				exit = &pos
				tiles[y][x] = game.TileExit
			case charPlayer:
				if player != nil {
					return game.Level{}, fmt.Errorf("level %q: multiple player start positions", def.Name)
				}
				player = &pos
				tiles[y][x] = game.TileEmpty
			case charLava:
				lava = append(lava, pos)
				tiles[y][x] = game.TileEmpty
			case charAqua:
				aqua = append(aqua, pos)
				tiles[y][x] = game.TileEmpty
			case charBox:
				boxes = append(boxes, pos)
				tiles[y][x] = game.TileEmpty
			case charKey:
				keys = append(keys, pos)
				tiles[y][x] = game.TileEmpty
			case charTempWall:
				wallMarkers = append(wallMarkers, pos)
				tiles[y][x] = game.TileEmpty
			default:
				return game.Level{}, fmt.Errorf("level %q: unknown tile %q at (%d,%d)", def.Name, string(ch), x, y)
			}
		}
	}

	if player == nil {
		return game.Level{}, fmt.Errorf("level %q: no player start position", def.Name)
	}
	if exit == nil {
		return game.Level{}, fmt.Errorf("level %q: no exit position", def.Name)
	}

	return game.Level{
		Name:      def.Name,
		Tiles:     tiles,
		Player:    *player,
		Exit:      *exit,
		Boxes:     boxes,
		Lava:      lava,
		Aqua:      aqua,
		Keys:      keys,
		TempWalls: tempWalls(def, wallMarkers),
	}, nil
}

// tempWalls pairs each T marker with its out-of-band duration
// descriptor. A marker without a descriptor gets duration 0 and is
// inert from the first move.
func tempWalls(def Definition, markers []game.Position) []game.TemporaryWall {
	walls := make([]game.TemporaryWall, 0, len(markers))
	for _, pos := range markers {
		duration := 0
		for _, d := range def.TempWalls {
			if d.Position[0] == pos.X && d.Position[1] == pos.Y {
				duration = d.Duration
				break
			}
		}
		walls = append(walls, game.TemporaryWall{Pos: pos, Duration: duration})
	}
	return walls
}
