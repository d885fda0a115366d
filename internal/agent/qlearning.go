// Package agent implements a tabular Q-learning agent as a thin caller
// of the engine contract: it sees only state keys, the four directions,
// and rewards derived from committed moves and terminal status.
package agent

import (
	"log"
	"math/rand"

	"github.com/amalg/lava-aqua/internal/game"
)

// Config holds the Q-learning hyperparameters.
type Config struct {
	Episodes     int     `json:"episodes"`
	MaxSteps     int     `json:"max_steps"` // Step cap per episode
	Alpha        float64 `json:"alpha"`     // Learning rate
	Gamma        float64 `json:"gamma"`     // Discount factor
	Epsilon      float64 `json:"epsilon"`   // Initial exploration rate
	EpsilonMin   float64 `json:"epsilon_min"`
	EpsilonDecay float64 `json:"epsilon_decay"` // Applied per Q-update
	Seed         int64   `json:"seed"`
	LogEvery     int     `json:"log_every"` // Episodes between progress logs, 0 = silent
}

// DefaultConfig returns the standard training hyperparameters.
func DefaultConfig() Config {
	return Config{
		Episodes:     2000,
		MaxSteps:     500,
		Alpha:        0.2,
		Gamma:        0.95,
		Epsilon:      1.0,
		EpsilonMin:   0.05,
		EpsilonDecay: 0.998,
		Seed:         1,
		LogEvery:     0,
	}
}

// Reward shaping for one engine step.
const (
	rewardStep     = -0.1
	rewardRejected = -1
	rewardKey      = 10
	rewardComplete = 100
	rewardGameOver = -100
)

// Report summarizes a training run.
type Report struct {
	Episodes     int
	Successes    int
	TotalSteps   int
	UniqueStates int
	QUpdates     int
	BestSteps    int // Fewest steps in any successful episode, 0 if none
	FinalEpsilon float64
}

// QLearning learns a q-table keyed by canonical state keys, one value
// per direction.
type QLearning struct {
	config  Config
	rng     *rand.Rand
	qTable  map[game.StateKey][4]float64
	epsilon float64
	updates int
}

// New creates an agent with an empty q-table.
func New(config Config) *QLearning {
	return &QLearning{
		config:  config,
		rng:     rand.New(rand.NewSource(config.Seed)),
		qTable:  make(map[game.StateKey][4]float64),
		epsilon: config.Epsilon,
	}
}

// Train runs the configured number of episodes against the engine,
// resetting the level before each one.
func (a *QLearning) Train(eng *game.Engine) Report {
	report := Report{Episodes: a.config.Episodes}

	for ep := 0; ep < a.config.Episodes; ep++ {
		steps := a.runEpisode(eng, true)
		report.TotalSteps += steps
		if eng.IsLevelComplete() {
			report.Successes++
			if report.BestSteps == 0 || steps < report.BestSteps {
				report.BestSteps = steps
			}
		}

		if a.config.LogEvery > 0 && (ep+1)%a.config.LogEvery == 0 {
			log.Printf("[train] episode %d/%d: successes=%d states=%d epsilon=%.3f",
				ep+1, a.config.Episodes, report.Successes, len(a.qTable), a.epsilon)
		}
	}

	report.UniqueStates = len(a.qTable)
	report.QUpdates = a.updates
	report.FinalEpsilon = a.epsilon
	return report
}

// Greedy resets the level and follows the learned policy without
// exploration. It returns the move sequence and whether it reached the
// exit within maxSteps.
func (a *QLearning) Greedy(eng *game.Engine, maxSteps int) ([]game.Direction, bool) {
	eng.Reset()
	dirs := game.Directions()

	var path []game.Direction
	for step := 0; step < maxSteps; step++ {
		move := dirs[a.selectAction(eng.Snapshot().Key(), false)]
		if eng.MovePlayer(move) {
			path = append(path, move)
		}
		if eng.IsLevelComplete() {
			return path, true
		}
		if eng.IsGameOver() {
			return path, false
		}
	}
	return path, false
}

// runEpisode plays one episode, learning if training is set, and
// returns the number of steps taken.
func (a *QLearning) runEpisode(eng *game.Engine, training bool) int {
	eng.Reset()
	dirs := game.Directions()

	steps := 0
	for steps < a.config.MaxSteps {
		key := eng.Snapshot().Key()
		action := a.selectAction(key, training)

		keysBefore := collectedKeys(eng)
		committed := eng.MovePlayer(dirs[action])
		steps++

		reward := rewardStep
		if !committed {
			reward = rewardRejected
		}
		if collectedKeys(eng) > keysBefore {
			reward += rewardKey
		}
		if eng.IsLevelComplete() {
			reward += rewardComplete
		}
		if eng.IsGameOver() {
			reward += rewardGameOver
		}

		done := eng.IsLevelComplete() || eng.IsGameOver()
		if training {
			a.update(key, action, reward, eng.Snapshot().Key(), done)
		}
		if done {
			break
		}
	}
	return steps
}

// selectAction is epsilon-greedy over the four directions, breaking
// ties between equal Q-values randomly.
func (a *QLearning) selectAction(key game.StateKey, training bool) int {
	q := a.qTable[key]

	if training && a.rng.Float64() < a.epsilon {
		return a.rng.Intn(len(q))
	}

	best := []int{0}
	for i := 1; i < len(q); i++ {
		switch {
		case q[i] > q[best[0]]:
			best = best[:1]
			best[0] = i
		case q[i] == q[best[0]]:
			best = append(best, i)
		}
	}
	return best[a.rng.Intn(len(best))]
}

// update applies the Q-learning rule and decays epsilon.
func (a *QLearning) update(key game.StateKey, action int, reward float64, nextKey game.StateKey, done bool) {
	q := a.qTable[key]

	target := reward
	if !done {
		next := a.qTable[nextKey]
		best := next[0]
		for _, v := range next[1:] {
			if v > best {
				best = v
			}
		}
		target += a.config.Gamma * best
	}
	q[action] += a.config.Alpha * (target - q[action])
	a.qTable[key] = q
	a.updates++

	if a.epsilon > a.config.EpsilonMin {
		a.epsilon *= a.config.EpsilonDecay
	}
}

// collectedKeys counts the keys the player holds.
func collectedKeys(eng *game.Engine) int {
	n := 0
	for _, k := range eng.Keys() {
		if k.Collected {
			n++
		}
	}
	return n
}
