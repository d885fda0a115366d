package solver

import "github.com/amalg/lava-aqua/internal/game"

// manhattan returns the grid distance between two cells.
func manhattan(a, b game.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// estimate is the key-aware admissible heuristic: while keys remain
// uncollected it is (min player→key) + (min key→exit), a lower bound
// because it ignores inter-key travel; with no keys left it degrades to
// plain player→exit distance.
func estimate(s game.GameState, exit game.Position, keys []game.Position) int {
	collected := make(map[int]bool, len(s.Collected))
	for _, i := range s.Collected {
		collected[i] = true
	}

	toKey, keyToExit := -1, -1
	for i, pos := range keys {
		if collected[i] {
			continue
		}
		if d := manhattan(s.Player, pos); toKey < 0 || d < toKey {
			toKey = d
		}
		if d := manhattan(pos, exit); keyToExit < 0 || d < keyToExit {
			keyToExit = d
		}
	}
	if toKey < 0 {
		return manhattan(s.Player, exit)
	}
	return toKey + keyToExit
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
