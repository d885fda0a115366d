package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/lava-aqua/internal/game"
	"github.com/amalg/lava-aqua/internal/solver"
)

// Color palette
var (
	// Tile styles
	wallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a3a")).
			Foreground(lipgloss.Color("#555555"))

	semiWallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#4a4a3a")).
			Foreground(lipgloss.Color("#6a6a55"))

	darkWallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#23232f")).
			Foreground(lipgloss.Color("#44445a"))

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#1a1a2e"))

	exitStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#145214")).
			Foreground(lipgloss.Color("#32cd32")).
			Bold(true)

	// Entity styles
	playerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ffff44")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B6914")).
			Foreground(lipgloss.Color("#d2a337")).
			Bold(true)

	lavaStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff4500")).
			Foreground(lipgloss.Color("#ffcc00")).
			Bold(true)

	aquaStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1e90ff")).
			Foreground(lipgloss.Color("#87cefa")).
			Bold(true)

	tempWallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#777777")).
			Foreground(lipgloss.Color("#eeeeee")).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ffd700")).
			Bold(true)

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	completeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

// HUDInfo carries display fields owned by the model, not the engine.
type HUDInfo struct {
	LevelNumber int
	LevelCount  int
	SolverName  string
	Status      string
	Replaying   bool
	LastSolver  string
	LastStats   *solver.Stats
}

// RenderBoard converts the live engine state into a styled terminal
// string, two characters per cell.
func RenderBoard(eng *game.Engine) string {
	state := eng.Snapshot()
	grid := eng.Grid()

	boxSet := make(map[game.Position]bool, len(state.Boxes))
	for _, pos := range state.Boxes {
		boxSet[pos] = true
	}
	lavaSet := make(map[game.Position]bool, len(state.Lava))
	for _, pos := range state.Lava {
		lavaSet[pos] = true
	}
	aquaSet := make(map[game.Position]bool, len(state.Aqua))
	for _, pos := range state.Aqua {
		aquaSet[pos] = true
	}
	wallSet := make(map[game.Position]int, len(state.TempWalls))
	for _, w := range state.TempWalls {
		if w.Active() {
			wallSet[w.Pos] = w.Duration
		}
	}
	keySet := make(map[game.Position]bool)
	for _, k := range eng.Keys() {
		if !k.Collected {
			keySet[k.Pos] = true
		}
	}

	var rows []string
	for y := 0; y < grid.Height(); y++ {
		var cells []string
		for x := 0; x < grid.Width(); x++ {
			pos := game.Position{X: x, Y: y}

			// Priority: player > box > lava > aqua > temp wall > key > tile
			switch {
			case pos == state.Player:
				cells = append(cells, playerStyle.Render("██"))
			case boxSet[pos]:
				cells = append(cells, boxStyle.Render("[]"))
			case lavaSet[pos]:
				cells = append(cells, lavaStyle.Render("░░"))
			case aquaSet[pos]:
				cells = append(cells, aquaStyle.Render("~~"))
			case wallSet[pos] > 0:
				label := fmt.Sprintf("%2d", wallSet[pos])
				if wallSet[pos] > 99 {
					label = "++"
				}
				cells = append(cells, tempWallStyle.Render(label))
			case keySet[pos]:
				cells = append(cells, keyStyle.Render("♦ "))
			default:
				cells = append(cells, renderTile(grid.TileAt(pos)))
			}
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

// renderTile renders a bare grid cell.
func renderTile(tile game.TileKind) string {
	switch tile {
	case game.TileWall:
		return wallStyle.Render("██")
	case game.TileSemiWall:
		return semiWallStyle.Render("▒▒")
	case game.TileDarkWall:
		return darkWallStyle.Render("▓▓")
	case game.TileExit:
		return exitStyle.Render("EE")
	default:
		return emptyStyle.Render("  ")
	}
}

// RenderHUD renders the side panel: level info, progress, status, last
// solver stats, and the key legend.
func RenderHUD(eng *game.Engine, info HUDInfo) string {
	var parts []string

	parts = append(parts, titleStyle.Render("LAVA & AQUA"))
	parts = append(parts, "")

	parts = append(parts, fmt.Sprintf("Level %d/%d: %s", info.LevelNumber, info.LevelCount, eng.LevelName()))
	parts = append(parts, fmt.Sprintf("Moves: %d", eng.Moves()))

	collected, total := 0, 0
	for _, k := range eng.Keys() {
		total++
		if k.Collected {
			collected++
		}
	}
	if total > 0 {
		parts = append(parts, fmt.Sprintf("Keys: %d/%d", collected, total))
	}
	parts = append(parts, "")

	switch eng.Status() {
	case game.StatusComplete:
		parts = append(parts, completeStyle.Render("LEVEL COMPLETE"))
	case game.StatusGameOver:
		parts = append(parts, gameOverStyle.Render("GAME OVER"))
	default:
		if info.Replaying {
			parts = append(parts, subtleStyle.Render("Replaying solution..."))
		} else {
			parts = append(parts, subtleStyle.Render("Playing"))
		}
	}

	if info.Status != "" {
		parts = append(parts, info.Status)
	}
	parts = append(parts, "")

	parts = append(parts, subtleStyle.Render(fmt.Sprintf("Solver: %s", info.SolverName)))
	if info.LastStats != nil {
		s := info.LastStats
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%s: %d explored, %d generated",
			info.LastSolver, s.NodesExplored, s.NodesGenerated)))
		parts = append(parts, dimStyle.Render(fmt.Sprintf("length %d in %s",
			s.SolutionLength, s.Elapsed.Round(time.Microsecond))))
	}
	parts = append(parts, "")

	parts = append(parts, dimStyle.Render("Arrows/WASD: Move | U: Undo | R: Reset"))
	parts = append(parts, dimStyle.Render("Tab: Solver | Enter: Solve | N: Next | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
