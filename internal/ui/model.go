package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/lava-aqua/internal/game"
	"github.com/amalg/lava-aqua/internal/solver"
)

// replayDelay is the pause between auto-played solution moves.
const replayDelay = 150 * time.Millisecond

// replayMsg advances the pending solution queue by one move.
type replayMsg struct{}

// Model is the Bubbletea model for interactive play.
type Model struct {
	levels    []game.Level
	index     int
	eng       *game.Engine
	config    game.Config
	opts      solver.Options
	solvers   []string
	solverIdx int

	pending   []game.Direction // Solution moves queued for auto-replay
	lastStats *solver.Stats
	lastName  string
	status    string
	quitting  bool
}

// NewModel creates a TUI model over the given level list.
func NewModel(levels []game.Level, config game.Config, opts solver.Options) Model {
	return Model{
		levels:  levels,
		eng:     game.NewEngine(levels[0], config),
		config:  config,
		opts:    opts,
		solvers: solver.Names(),
		status:  "Reach the exit. Collect every key first.",
	}
}

// Init performs no startup I/O; everything is keyboard-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and solution-replay ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case replayMsg:
		return m.replayStep()
	}

	return m, nil
}

// View renders the board and HUD side by side.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	board := RenderBoard(m.eng)
	hud := RenderHUD(m.eng, m.hudInfo())

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey processes keyboard input. Rejected moves and undo underflow
// only flash the status line; they are never errors.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "w":
		m.move(game.DirUp)
	case "down", "s":
		m.move(game.DirDown)
	case "left", "a":
		m.move(game.DirLeft)
	case "right", "d":
		m.move(game.DirRight)

	case "u":
		if len(m.pending) > 0 {
			break
		}
		if m.eng.Undo() {
			m.status = "Undid one move."
		} else {
			m.status = "Nothing to undo."
		}

	case "r":
		m.pending = nil
		m.eng.Reset()
		m.status = "Level reset."

	case "n":
		if m.eng.IsLevelComplete() {
			m.nextLevel()
		} else {
			m.status = "Finish the level first."
		}

	case "tab":
		m.solverIdx = (m.solverIdx + 1) % len(m.solvers)
		m.status = fmt.Sprintf("Solver: %s", m.solvers[m.solverIdx])

	case "enter":
		return m.solve()
	}

	return m, nil
}

// move applies one manual player move, ignoring input while a solution
// replay is running.
func (m *Model) move(dir game.Direction) {
	if len(m.pending) > 0 {
		return
	}
	if !m.eng.MovePlayer(dir) {
		m.status = "Can't move there."
		return
	}
	m.statusAfterMove()
}

// statusAfterMove updates the status line from the engine phase.
func (m *Model) statusAfterMove() {
	switch m.eng.Status() {
	case game.StatusComplete:
		m.status = fmt.Sprintf("Level complete in %d moves! Press n for next level.", m.eng.Moves())
	case game.StatusGameOver:
		m.status = "You died. Press u to undo or r to reset."
	default:
		m.status = ""
	}
}

// solve runs the selected strategy from the current position and queues
// the solution for replay.
func (m Model) solve() (tea.Model, tea.Cmd) {
	if len(m.pending) > 0 || m.eng.Status() != game.StatusPlaying {
		return m, nil
	}

	name := m.solvers[m.solverIdx]
	sv, err := solver.New(name, m.eng, m.opts)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	path, ok := sv.Solve(m.eng.Snapshot())
	stats := sv.Stats()
	m.lastStats = &stats
	m.lastName = name

	if !ok {
		m.status = fmt.Sprintf("%s found no solution.", name)
		return m, nil
	}

	m.pending = path
	m.status = fmt.Sprintf("%s solved in %d moves, replaying...", name, len(path))
	return m, replayTick()
}

// replayStep plays the next queued solution move.
func (m Model) replayStep() (tea.Model, tea.Cmd) {
	if len(m.pending) == 0 {
		return m, nil
	}

	move := m.pending[0]
	m.pending = m.pending[1:]
	m.eng.MovePlayer(move)
	m.statusAfterMove()

	if len(m.pending) > 0 && m.eng.Status() == game.StatusPlaying {
		return m, replayTick()
	}
	m.pending = nil
	return m, nil
}

// nextLevel advances to the next level, wrapping to the first.
func (m *Model) nextLevel() {
	m.index = (m.index + 1) % len(m.levels)
	m.eng = game.NewEngine(m.levels[m.index], m.config)
	m.pending = nil
	m.status = fmt.Sprintf("Level %d: %s", m.index+1, m.levels[m.index].Name)
}

// hudInfo collects the display fields the renderer needs beyond the
// engine itself.
func (m Model) hudInfo() HUDInfo {
	info := HUDInfo{
		LevelNumber: m.index + 1,
		LevelCount:  len(m.levels),
		SolverName:  m.solvers[m.solverIdx],
		Status:      m.status,
		Replaying:   len(m.pending) > 0,
	}
	if m.lastStats != nil {
		info.LastSolver = m.lastName
		info.LastStats = m.lastStats
	}
	return info
}

// replayTick schedules the next replay step.
func replayTick() tea.Cmd {
	return tea.Tick(replayDelay, func(time.Time) tea.Msg {
		return replayMsg{}
	})
}
