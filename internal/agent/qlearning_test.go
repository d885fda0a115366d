package agent

import (
	"testing"

	"github.com/amalg/lava-aqua/internal/game"
	"github.com/amalg/lava-aqua/internal/level"
)

func corridorEngine(t *testing.T) *game.Engine {
	t.Helper()
	lvl, err := level.Parse(level.Definition{
		Name: "corridor",
		Grid: []string{
			"######",
			"#P  E#",
			"######",
		},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return game.NewEngine(lvl, game.DefaultConfig())
}

func TestTrainSolvesCorridor(t *testing.T) {
	eng := corridorEngine(t)

	config := DefaultConfig()
	config.Episodes = 300
	config.MaxSteps = 50
	config.EpsilonDecay = 0.99
	a := New(config)

	report := a.Train(eng)
	if report.Episodes != config.Episodes {
		t.Fatalf("expected %d episodes, got %d", config.Episodes, report.Episodes)
	}
	if report.Successes == 0 {
		t.Fatal("expected at least one successful episode on a 3-step corridor")
	}
	if report.UniqueStates == 0 || report.QUpdates == 0 {
		t.Fatalf("expected a populated q-table, got states=%d updates=%d",
			report.UniqueStates, report.QUpdates)
	}
	if report.FinalEpsilon > config.Epsilon {
		t.Errorf("epsilon grew from %v to %v", config.Epsilon, report.FinalEpsilon)
	}

	path, ok := a.Greedy(eng, 50)
	if !ok {
		t.Fatal("greedy rollout should reach the exit after training")
	}
	if len(path) != 3 {
		t.Errorf("expected the 3-move optimal rollout, got %v", path)
	}
}

func TestGreedyResetsBeforeRollout(t *testing.T) {
	eng := corridorEngine(t)
	eng.MovePlayer(game.DirRight)
	if eng.Moves() != 1 {
		t.Fatalf("setup move should commit, got %d moves", eng.Moves())
	}

	a := New(DefaultConfig())
	a.Greedy(eng, 0)
	if eng.Moves() != 0 {
		t.Errorf("greedy should reset the level first, got %d moves", eng.Moves())
	}
	if eng.Player() != (game.Position{X: 1, Y: 1}) {
		t.Errorf("expected player back at the start, got %v", eng.Player())
	}
}

func TestUpdateMovesTowardTarget(t *testing.T) {
	a := New(DefaultConfig())
	key := game.StateKey("s0")
	next := game.StateKey("s1")

	a.update(key, 2, 10, next, true)
	q := a.qTable[key]
	want := a.config.Alpha * 10
	if q[2] != want {
		t.Errorf("expected q-value %v after one terminal update, got %v", want, q[2])
	}
	for i, v := range q {
		if i != 2 && v != 0 {
			t.Errorf("action %d should be untouched, got %v", i, v)
		}
	}

	// Non-terminal update bootstraps from the best next-state value.
	a.qTable[next] = [4]float64{0, 5, 0, 0}
	before := a.qTable[key][2]
	a.update(key, 2, 0, next, false)
	after := a.qTable[key][2]
	target := a.config.Gamma * 5
	wantAfter := before + a.config.Alpha*(target-before)
	if after != wantAfter {
		t.Errorf("expected bootstrapped q-value %v, got %v", wantAfter, after)
	}
}

func TestEpsilonDecayFloor(t *testing.T) {
	config := DefaultConfig()
	config.Epsilon = 0.06
	config.EpsilonMin = 0.05
	config.EpsilonDecay = 0.5
	a := New(config)

	for i := 0; i < 10; i++ {
		a.update(game.StateKey("s"), 0, 1, game.StateKey("t"), true)
	}
	if a.epsilon < config.EpsilonMin*config.EpsilonDecay {
		t.Errorf("epsilon %v decayed past the floor %v", a.epsilon, config.EpsilonMin)
	}
}

func TestSelectActionGreedyPicksBest(t *testing.T) {
	a := New(DefaultConfig())
	key := game.StateKey("s")
	a.qTable[key] = [4]float64{-1, 3, 0, 2}

	for i := 0; i < 20; i++ {
		if got := a.selectAction(key, false); got != 1 {
			t.Fatalf("expected action 1, got %d", got)
		}
	}
}

func TestSelectActionBreaksTies(t *testing.T) {
	a := New(DefaultConfig())
	key := game.StateKey("s")
	a.qTable[key] = [4]float64{5, 5, 0, 0}

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		got := a.selectAction(key, false)
		if got != 0 && got != 1 {
			t.Fatalf("expected a tied best action, got %d", got)
		}
		seen[got] = true
	}
	if len(seen) != 2 {
		t.Errorf("expected both tied actions to be chosen, saw %v", seen)
	}
}
