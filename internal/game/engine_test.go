package game

import (
	"testing"
)

// mustLevel builds a Level from rows of the standard legend. It keeps
// the tests readable without pulling the level package in.
func mustLevel(t *testing.T, name string, rows []string, walls ...TemporaryWall) Level {
	t.Helper()

	lvl := Level{Name: name, TempWalls: walls}
	for y, row := range rows {
		tiles := make([]TileKind, len(row))
		for x, ch := range []byte(row) {
			pos := Position{X: x, Y: y}
			switch ch {
			case '#':
				tiles[x] = TileWall
			case '.':
				tiles[x] = TileSemiWall
			case ',':
				tiles[x] = TileDarkWall
			case 'E':
				tiles[x] = TileExit
				lvl.Exit = pos
			case 'P':
				lvl.Player = pos
			case 'L':
				lvl.Lava = append(lvl.Lava, pos)
			case 'W':
				lvl.Aqua = append(lvl.Aqua, pos)
			case 'B':
				lvl.Boxes = append(lvl.Boxes, pos)
			case 'K':
				lvl.Keys = append(lvl.Keys, pos)
			}
		}
		lvl.Tiles = append(lvl.Tiles, tiles)
	}
	return lvl
}

func openRoom(t *testing.T) Level {
	t.Helper()
	return mustLevel(t, "open room", []string{
		"#####",
		"#P  #",
		"#   #",
		"#  E#",
		"#####",
	})
}

func TestMovePlayer(t *testing.T) {
	eng := NewEngine(openRoom(t), DefaultConfig())

	if !eng.MovePlayer(DirRight) {
		t.Fatal("move right from (1,1) should commit")
	}
	if eng.Player() != (Position{X: 2, Y: 1}) {
		t.Errorf("expected player at (2,1), got (%d,%d)", eng.Player().X, eng.Player().Y)
	}
	if eng.Moves() != 1 {
		t.Errorf("expected 1 move, got %d", eng.Moves())
	}

	// Border wall blocks
	if eng.MovePlayer(DirUp) {
		t.Error("move up into the border wall should be rejected")
	}
	if eng.Moves() != 1 {
		t.Errorf("rejected move must not count, got %d moves", eng.Moves())
	}
}

func TestRejectedMoveIsNoOp(t *testing.T) {
	eng := NewEngine(openRoom(t), DefaultConfig())
	before := eng.Snapshot().Key()

	if eng.MovePlayer(DirUp) {
		t.Fatal("move into wall should be rejected")
	}
	if after := eng.Snapshot().Key(); after != before {
		t.Error("rejected move changed the state key")
	}
	if eng.UndoDepth() != 0 {
		t.Errorf("rejected move pushed history, depth %d", eng.UndoDepth())
	}
}

func TestReachExit(t *testing.T) {
	eng := NewEngine(openRoom(t), DefaultConfig())

	for _, d := range []Direction{DirRight, DirRight, DirDown, DirDown} {
		if !eng.MovePlayer(d) {
			t.Fatalf("move %s should commit", d)
		}
	}
	if !eng.IsLevelComplete() {
		t.Fatal("expected level complete at the exit")
	}

	// Terminal states accept no further moves
	if eng.MovePlayer(DirUp) {
		t.Error("moves after completion should be rejected")
	}
}

func TestBoxPush(t *testing.T) {
	lvl := mustLevel(t, "box corridor", []string{
		"#######",
		"#P B  #",
		"#####E#",
		"#######",
	})
	eng := NewEngine(lvl, DefaultConfig())

	eng.MovePlayer(DirRight) // (2,1)
	if !eng.MovePlayer(DirRight) {
		t.Fatal("pushing the box should commit")
	}
	if eng.boxAt(Position{X: 4, Y: 1}) < 0 {
		t.Error("box should have moved to (4,1)")
	}
	if eng.Player() != (Position{X: 3, Y: 1}) {
		t.Errorf("player should be at (3,1), got (%d,%d)", eng.Player().X, eng.Player().Y)
	}

	// Push once more, then against the wall behind (5,1)
	eng.MovePlayer(DirRight)
	if eng.MovePlayer(DirRight) {
		t.Error("pushing a box into a wall should be rejected")
	}
}

func TestBoxCannotPushBox(t *testing.T) {
	lvl := mustLevel(t, "double box", []string{
		"######",
		"#PBBE#",
		"######",
	})
	eng := NewEngine(lvl, DefaultConfig())

	if eng.MovePlayer(DirRight) {
		t.Error("pushing a box into another box should be rejected")
	}
}

func TestBoxExtinguishesHazard(t *testing.T) {
	lvl := mustLevel(t, "box onto lava", []string{
		"#####",
		"#PBL#",
		"#E###",
		"#####",
	})
	eng := NewEngine(lvl, DefaultConfig())

	if !eng.MovePlayer(DirRight) {
		t.Fatal("push onto the lava cell should commit")
	}

	state := eng.Snapshot()
	if len(state.Lava) != 0 {
		t.Errorf("lava cell should be extinguished, still %d lava cells", len(state.Lava))
	}
	if eng.boxAt(Position{X: 3, Y: 1}) < 0 {
		t.Error("box should occupy the former lava cell")
	}
}

func TestHazardCollisionPromotesWall(t *testing.T) {
	lvl := mustLevel(t, "collision", []string{
		"#####",
		"#L W#",
		"#P E#",
		"#####",
	})
	eng := NewEngine(lvl, DefaultConfig())

	if !eng.MovePlayer(DirRight) {
		t.Fatal("move right should commit")
	}

	state := eng.Snapshot()
	for _, l := range state.Lava {
		for _, a := range state.Aqua {
			if l == a {
				t.Fatalf("lava and aqua share cell (%d,%d) after tick", l.X, l.Y)
			}
		}
	}

	collision := Position{X: 2, Y: 1}
	if eng.grid.TileAt(collision) != TileWall {
		t.Errorf("colliding cell should be promoted to wall, got %v", eng.grid.TileAt(collision))
	}
	if len(state.Altered) != 1 || state.Altered[0] != collision {
		t.Errorf("expected altered list [(2,1)], got %v", state.Altered)
	}

	// Undo reverts the promotion and both fluids
	if !eng.Undo() {
		t.Fatal("undo should succeed")
	}
	if eng.grid.TileAt(collision) != TileEmpty {
		t.Error("undo should revert the promoted wall to empty")
	}
	if eng.lava.Size() != 1 || eng.aqua.Size() != 1 {
		t.Errorf("undo should restore 1 lava + 1 aqua cell, got %d + %d", eng.lava.Size(), eng.aqua.Size())
	}
}

func TestLavaKillsPlayer(t *testing.T) {
	lvl := mustLevel(t, "lethal", []string{
		"#####",
		"#PL #",
		"###E#",
		"#####",
	})
	eng := NewEngine(lvl, DefaultConfig())

	// (2,1) holds lava; moving onto it is legal but fatal after the tick
	if !eng.MovePlayer(DirRight) {
		t.Fatal("move onto lava should still commit")
	}
	if !eng.IsGameOver() {
		t.Error("player on lava should be game over")
	}
}

func TestTemporaryWallAgesAndRevives(t *testing.T) {
	lvl := mustLevel(t, "temp wall", []string{
		"#######",
		"#P T E#",
		"#######",
	}, TemporaryWall{Pos: Position{X: 3, Y: 1}, Duration: 2})
	eng := NewEngine(lvl, DefaultConfig())

	eng.MovePlayer(DirRight) // duration 2 -> 1
	if eng.MovePlayer(DirRight) {
		t.Fatal("active temporary wall should block movement")
	}

	eng.MovePlayer(DirLeft) // duration 1 -> 0, wall expires
	eng.MovePlayer(DirRight)
	if !eng.MovePlayer(DirRight) {
		t.Fatal("expired temporary wall should not block")
	}
	if eng.Player() != (Position{X: 3, Y: 1}) {
		t.Errorf("player should stand on the expired wall cell, got (%d,%d)", eng.Player().X, eng.Player().Y)
	}

	// Undo restores a positive duration, reviving the wall
	eng.Undo()
	eng.Undo()
	eng.Undo()
	if !eng.tempWallAt(Position{X: 3, Y: 1}) {
		t.Error("undo should revive the temporary wall")
	}
}

func TestKeyGatesExit(t *testing.T) {
	lvl := mustLevel(t, "key gate", []string{
		"######",
		"#PEK #",
		"######",
	})
	eng := NewEngine(lvl, DefaultConfig())

	eng.MovePlayer(DirRight) // onto the exit, key not collected
	if eng.IsLevelComplete() {
		t.Fatal("exit without the key should not complete the level")
	}

	eng.MovePlayer(DirRight) // (3,1), collects the key
	keys := eng.Keys()
	if len(keys) != 1 || !keys[0].Collected {
		t.Fatal("key should be collected at the player's cell")
	}

	eng.MovePlayer(DirLeft) // back to the exit
	if !eng.IsLevelComplete() {
		t.Error("exit with all keys collected should complete the level")
	}
}

func TestUndoRoundTrip(t *testing.T) {
	lvl := mustLevel(t, "everything", []string{
		"########",
		"#P BKL##",
		"#W    ##",
		"#  E  ##",
		"########",
	}, TemporaryWall{Pos: Position{X: 5, Y: 2}, Duration: 3})
	eng := NewEngine(lvl, DefaultConfig())

	before := eng.Snapshot().Key()
	if !eng.MovePlayer(DirDown) {
		t.Fatal("move down should commit")
	}
	if eng.Snapshot().Key() == before {
		t.Fatal("committed move should change the state key")
	}

	if !eng.Undo() {
		t.Fatal("undo should succeed")
	}
	if after := eng.Snapshot().Key(); after != before {
		t.Error("undo should restore the exact pre-move state key")
	}
}

func TestUndoUnderflowAndBound(t *testing.T) {
	config := DefaultConfig()
	config.UndoLimit = 2
	eng := NewEngine(openRoom(t), config)

	if eng.Undo() {
		t.Error("undo with empty history should return false")
	}

	eng.MovePlayer(DirRight)
	eng.MovePlayer(DirDown)
	eng.MovePlayer(DirRight)
	if eng.UndoDepth() != 2 {
		t.Fatalf("expected history bounded at 2, got %d", eng.UndoDepth())
	}
	eng.Undo()
	eng.Undo()
	if eng.Undo() {
		t.Error("third undo should underflow")
	}
}

func TestDeterministicReplay(t *testing.T) {
	lvl := mustLevel(t, "replay", []string{
		"########",
		"#P  L  #",
		"#  ##  #",
		"#E     #",
		"########",
	})
	seq := []Direction{DirDown, DirDown, DirRight, DirLeft, DirLeft}

	run := func() StateKey {
		eng := NewEngine(lvl, DefaultConfig())
		for _, d := range seq {
			eng.MovePlayer(d)
		}
		return eng.Snapshot().Key()
	}

	if run() != run() {
		t.Error("identical action sequences should produce identical state keys")
	}
}

func TestSimulateMove(t *testing.T) {
	eng := NewEngine(openRoom(t), DefaultConfig())
	before := eng.Snapshot().Key()

	succ, ok := eng.SimulateMove(DirRight)
	if !ok {
		t.Fatal("simulating a legal move should succeed")
	}
	if succ.Moves != 1 {
		t.Errorf("successor should have 1 move, got %d", succ.Moves)
	}
	if succ.Player != (Position{X: 2, Y: 1}) {
		t.Errorf("successor player should be (2,1), got (%d,%d)", succ.Player.X, succ.Player.Y)
	}

	if eng.Snapshot().Key() != before {
		t.Error("simulate should restore the live state")
	}
	if eng.UndoDepth() != 0 {
		t.Errorf("simulate should not grow the undo history, depth %d", eng.UndoDepth())
	}

	// Illegal move
	if _, ok := eng.SimulateMove(DirUp); ok {
		t.Error("simulating an illegal move should fail")
	}
}

func TestSimulateMoveRejectsDeath(t *testing.T) {
	lvl := mustLevel(t, "death sim", []string{
		"#####",
		"#PL #",
		"###E#",
		"#####",
	})
	eng := NewEngine(lvl, DefaultConfig())
	before := eng.Snapshot().Key()

	if _, ok := eng.SimulateMove(DirRight); ok {
		t.Error("simulating a fatal move should return no successor")
	}
	if eng.Snapshot().Key() != before {
		t.Error("fatal simulation should still restore the live state")
	}
	if eng.IsGameOver() {
		t.Error("live engine should not be game over after a simulation")
	}
}

func TestSimulateMoveAtFullHistory(t *testing.T) {
	config := DefaultConfig()
	config.UndoLimit = 2
	eng := NewEngine(openRoom(t), config)

	eng.MovePlayer(DirRight) // (2,1)
	eng.MovePlayer(DirRight) // (3,1), history now at the limit
	if eng.UndoDepth() != 2 {
		t.Fatalf("expected history at the limit of 2, got %d", eng.UndoDepth())
	}

	if _, ok := eng.SimulateMove(DirDown); !ok {
		t.Fatal("simulate should succeed")
	}
	if eng.UndoDepth() != 2 {
		t.Fatalf("simulate changed the history depth to %d", eng.UndoDepth())
	}

	// Both real undo entries must survive the simulation intact
	if !eng.Undo() {
		t.Fatal("first undo should succeed")
	}
	if eng.Player() != (Position{X: 2, Y: 1}) || eng.Moves() != 1 {
		t.Fatalf("first undo should restore player (2,1) moves 1, got (%d,%d) moves %d",
			eng.Player().X, eng.Player().Y, eng.Moves())
	}
	if !eng.Undo() {
		t.Fatal("second undo should succeed")
	}
	if eng.Player() != (Position{X: 1, Y: 1}) || eng.Moves() != 0 {
		t.Fatalf("second undo should restore player (1,1) moves 0, got (%d,%d) moves %d",
			eng.Player().X, eng.Player().Y, eng.Moves())
	}
}

func TestAllowedMovesLavaLookahead(t *testing.T) {
	rows := []string{
		"#####",
		"#P L#",
		"#   #",
		"#E###",
		"#####",
	}

	eng := NewEngine(mustLevel(t, "lookahead", rows), DefaultConfig())
	moves := eng.AllowedMoves()
	if len(moves) != 1 || moves[0] != DirDown {
		t.Errorf("with lookahead expected [DOWN], got %v", moves)
	}

	config := DefaultConfig()
	config.LavaLookahead = false
	eng = NewEngine(mustLevel(t, "no lookahead", rows), config)
	moves = eng.AllowedMoves()
	if len(moves) != 2 || moves[0] != DirDown || moves[1] != DirRight {
		t.Errorf("without lookahead expected [DOWN RIGHT], got %v", moves)
	}
}

func TestLoadStateJump(t *testing.T) {
	eng := NewEngine(openRoom(t), DefaultConfig())

	succ, ok := eng.SimulateMove(DirRight)
	if !ok {
		t.Fatal("simulate should succeed")
	}

	eng.LoadState(succ)
	if eng.Player() != (Position{X: 2, Y: 1}) {
		t.Errorf("load should place player at (2,1), got (%d,%d)", eng.Player().X, eng.Player().Y)
	}
	if eng.Moves() != 1 {
		t.Errorf("load should restore the move counter, got %d", eng.Moves())
	}
	if eng.Snapshot().Key() != succ.Key() {
		t.Error("loaded state should round-trip through Snapshot")
	}
}
