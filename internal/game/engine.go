package game

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Engine owns the single live, mutable copy of a level in play. Solvers
// and renderers exchange GameState snapshots with it; nothing else ever
// sees its internals. Everything is single-threaded and turn-based, so
// no locking is needed.
type Engine struct {
	level  Level
	config Config

	grid      *Grid
	player    Position
	boxes     []Position
	lava      HazardSet
	aqua      HazardSet
	keys      []ExitKey
	tempWalls []TemporaryWall
	altered   []Position // Tiles promoted to wall since level start, in order
	moves     int
	status    Status

	history []GameState // Bounded undo stack, most recent last
}

// NewEngine creates an engine for the given level.
func NewEngine(level Level, config Config) *Engine {
	e := &Engine{level: level, config: config}
	e.Reset()
	return e
}

// Reset rebuilds all live entities from the level definition and clears
// the undo history. This is the only way out of a terminal status.
func (e *Engine) Reset() {
	e.grid = NewGrid(e.level.Tiles)
	e.player = e.level.Player

	e.boxes = make([]Position, len(e.level.Boxes))
	copy(e.boxes, e.level.Boxes)

	e.lava = NewHazardSet(e.level.Lava)
	e.aqua = NewHazardSet(e.level.Aqua)

	e.keys = make([]ExitKey, len(e.level.Keys))
	for i, pos := range e.level.Keys {
		e.keys[i] = ExitKey{Pos: pos}
	}

	e.tempWalls = make([]TemporaryWall, len(e.level.TempWalls))
	copy(e.tempWalls, e.level.TempWalls)

	e.altered = nil
	e.moves = 0
	e.status = StatusPlaying
	e.history = nil
}

// MovePlayer attempts one player action in the given direction. It
// returns true iff the move committed: passed all legality checks,
// mutated state, and ran a hazard tick. The result is independent of
// whether the tick then ended the level.
func (e *Engine) MovePlayer(dir Direction) bool {
	if e.status != StatusPlaying || !e.canMove(dir) {
		return false
	}

	e.pushHistory()

	target := e.player.Add(dir.Delta())
	if i := e.boxAt(target); i >= 0 {
		boxTarget := target.Add(dir.Delta())
		e.boxes[i] = boxTarget
		// A box landing on a hazard cell extinguishes it
		e.lava.Remove(boxTarget)
		e.aqua.Remove(boxTarget)
	}
	e.player = target
	e.moves++

	e.tick()
	e.evaluate()
	return true
}

// canMove checks move/push legality without mutating anything.
func (e *Engine) canMove(dir Direction) bool {
	target := e.player.Add(dir.Delta())
	if !e.grid.IsWalkable(target) || e.tempWallAt(target) {
		return false
	}
	if e.boxAt(target) >= 0 {
		boxTarget := target.Add(dir.Delta())
		if !e.grid.IsWalkable(boxTarget) || e.boxAt(boxTarget) >= 0 || e.tempWallAt(boxTarget) {
			return false
		}
	}
	return true
}

// tick runs the hazard phase of one committed action: propagate aqua,
// resolve collisions, propagate lava, resolve again, age temporary
// walls. The second resolve pass is required because new contact can
// appear only after the second fluid has moved.
func (e *Engine) tick() {
	blocked := e.flowBlockers()

	e.aqua = e.aqua.Tick(e.grid, blocked)
	e.resolveCollisions()
	e.lava = e.lava.Tick(e.grid, blocked)
	e.resolveCollisions()

	for i := range e.tempWalls {
		if e.tempWalls[i].Duration > 0 {
			e.tempWalls[i].Duration--
		}
	}
}

// flowBlockers collects every cell hazards may not spread into beyond
// the grid's own flowability: boxes, active temporary walls, and
// uncollected keys.
func (e *Engine) flowBlockers() mapset.Set[Position] {
	blocked := mapset.New[Position]()
	for _, pos := range e.boxes {
		blocked.Put(pos)
	}
	for _, w := range e.tempWalls {
		if w.Active() {
			blocked.Put(w.Pos)
		}
	}
	for _, k := range e.keys {
		if !k.Collected {
			blocked.Put(k.Pos)
		}
	}
	return blocked
}

// resolveCollisions removes both fluids from every cell they share and
// promotes that cell to a permanent wall.
func (e *Engine) resolveCollisions() {
	for _, pos := range e.lava.Positions() {
		if e.aqua.Contains(pos) {
			e.lava.Remove(pos)
			e.aqua.Remove(pos)
			if e.grid.PromoteToWall(pos) {
				e.altered = append(e.altered, pos)
			}
		}
	}
}

// evaluate collects any key under the player and checks the terminal
// conditions.
func (e *Engine) evaluate() {
	for i := range e.keys {
		if !e.keys[i].Collected && e.keys[i].Pos == e.player {
			e.keys[i].Collected = true
		}
	}

	if e.player == e.level.Exit && e.keysRemaining() == 0 {
		e.status = StatusComplete
		return
	}
	if e.lava.Contains(e.player) || e.grid.TileAt(e.player) == TileWall {
		e.status = StatusGameOver
	}
}

// Undo pops the most recent snapshot and restores it, reverting any
// tiles promoted since. Returns false if the history is empty.
func (e *Engine) Undo() bool {
	if len(e.history) == 0 {
		return false
	}
	snap := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.LoadState(snap)
	return true
}

// Snapshot captures the full mutable state as a value.
func (e *Engine) Snapshot() GameState {
	boxes := make([]Position, len(e.boxes))
	copy(boxes, e.boxes)

	var collected []int
	for i, k := range e.keys {
		if k.Collected {
			collected = append(collected, i)
		}
	}
	sort.Ints(collected)

	walls := make([]TemporaryWall, len(e.tempWalls))
	copy(walls, e.tempWalls)

	altered := make([]Position, len(e.altered))
	copy(altered, e.altered)

	return GameState{
		Player:    e.player,
		Boxes:     boxes,
		Lava:      e.lava.Positions(),
		Aqua:      e.aqua.Positions(),
		Collected: collected,
		TempWalls: walls,
		Altered:   altered,
		Moves:     e.moves,
	}
}

// LoadState restores every entity field from the snapshot, reconciling
// the grid's promoted tiles against the snapshot's altered list. The
// undo history is untouched; solvers jump between frontier states with
// this without growing it.
func (e *Engine) LoadState(s GameState) {
	for _, pos := range e.altered {
		e.grid.Revert(pos)
	}
	e.altered = make([]Position, len(s.Altered))
	copy(e.altered, s.Altered)
	for _, pos := range s.Altered {
		e.grid.PromoteToWall(pos)
	}

	e.player = s.Player
	e.boxes = make([]Position, len(s.Boxes))
	copy(e.boxes, s.Boxes)
	e.lava = NewHazardSet(s.Lava)
	e.aqua = NewHazardSet(s.Aqua)

	collected := mapset.New[int]()
	for _, i := range s.Collected {
		collected.Put(i)
	}
	for i := range e.keys {
		e.keys[i].Collected = collected.Has(i)
	}

	e.tempWalls = make([]TemporaryWall, len(s.TempWalls))
	copy(e.tempWalls, s.TempWalls)

	e.moves = s.Moves
	e.status = StatusPlaying
	e.evaluate()
}

// SimulateMove tries the move against live state, captures the
// successor snapshot, and restores the prior state unconditionally.
// It returns false for an illegal move or one that ends in game over.
// This is the sole primitive solvers use to expand a frontier.
func (e *Engine) SimulateMove(dir Direction) (GameState, bool) {
	saved := e.Snapshot()

	// Swap the undo stack aside so the simulated move's history push
	// lands in a scratch slice. Truncating back to the old length is
	// not enough: at UndoLimit, pushHistory would rotate a real entry
	// out and leave the simulation's snapshot on top.
	history := e.history
	e.history = nil

	var succ GameState
	ok := e.MovePlayer(dir) && e.status != StatusGameOver
	if ok {
		succ = e.Snapshot()
	}

	e.LoadState(saved)
	e.history = history
	return succ, ok
}

// AllowedMoves lists the directions that pass move/push legality. With
// LavaLookahead enabled it also drops any destination whose axis
// neighbors currently hold lava: a conservative filter against
// otherwise-unavoidable death on the following tick, not a completeness
// guarantee.
func (e *Engine) AllowedMoves() []Direction {
	if e.status != StatusPlaying {
		return nil
	}
	var moves []Direction
	for _, d := range Directions() {
		if !e.canMove(d) {
			continue
		}
		if e.config.LavaLookahead && e.lavaAdjacent(e.player.Add(d.Delta())) {
			continue
		}
		moves = append(moves, d)
	}
	return moves
}

// lavaAdjacent reports whether any axis neighbor of pos holds lava.
func (e *Engine) lavaAdjacent(pos Position) bool {
	for _, d := range Directions() {
		if e.lava.Contains(pos.Add(d.Delta())) {
			return true
		}
	}
	return false
}

// pushHistory appends the current snapshot to the bounded undo stack.
func (e *Engine) pushHistory() {
	e.history = append(e.history, e.Snapshot())
	if len(e.history) > e.config.UndoLimit {
		e.history = e.history[1:]
	}
}

// boxAt returns the index of the box at pos, or -1.
func (e *Engine) boxAt(pos Position) int {
	for i, b := range e.boxes {
		if b == pos {
			return i
		}
	}
	return -1
}

// tempWallAt reports whether an active temporary wall covers pos.
func (e *Engine) tempWallAt(pos Position) bool {
	for _, w := range e.tempWalls {
		if w.Active() && w.Pos == pos {
			return true
		}
	}
	return false
}

// Status returns the current level phase.
func (e *Engine) Status() Status { return e.status }

// IsLevelComplete reports whether the level has been won.
func (e *Engine) IsLevelComplete() bool { return e.status == StatusComplete }

// IsGameOver reports whether the player has died.
func (e *Engine) IsGameOver() bool { return e.status == StatusGameOver }

// Moves returns the cumulative committed move count.
func (e *Engine) Moves() int { return e.moves }

// UndoDepth returns the number of snapshots available to Undo.
func (e *Engine) UndoDepth() int { return len(e.history) }

// Grid exposes the live grid for rendering and heuristics.
func (e *Engine) Grid() *Grid { return e.grid }

// Player returns the player position.
func (e *Engine) Player() Position { return e.player }

// ExitPosition returns the level's exit cell.
func (e *Engine) ExitPosition() Position { return e.level.Exit }

// KeyPositions returns the positions of all keys, collected or not,
// index-correlated with the collected-key indices in snapshots.
func (e *Engine) KeyPositions() []Position {
	out := make([]Position, len(e.keys))
	for i, k := range e.keys {
		out[i] = k.Pos
	}
	return out
}

// Keys returns a copy of the key entities.
func (e *Engine) Keys() []ExitKey {
	out := make([]ExitKey, len(e.keys))
	copy(out, e.keys)
	return out
}

// keysRemaining counts uncollected keys.
func (e *Engine) keysRemaining() int {
	n := 0
	for _, k := range e.keys {
		if !k.Collected {
			n++
		}
	}
	return n
}

// LevelName returns the loaded level's display name.
func (e *Engine) LevelName() string { return e.level.Name }
