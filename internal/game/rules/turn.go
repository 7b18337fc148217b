package rules

import "fmt"

// MatchState represents the lifecycle of a match.
type MatchState int

const (
	MatchStateRunning MatchState = iota
	MatchStateFinished
)

var matchStateNames = map[MatchState]string{
	MatchStateRunning:  "RUNNING",
	MatchStateFinished: "FINISHED",
}

func (s MatchState) String() string {
	if name, ok := matchStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STATE_%d", int(s))
}

// TurnManager tracks turn order and the cursor of the player who moved last.
type TurnManager struct {
	order      []int
	cursor     int
	turnNumber int
}

// NewTurnManager creates a turn manager over a fixed player order. No player
// has moved yet, so the first call to Next returns the first active player.
func NewTurnManager(order []int) *TurnManager {
	if len(order) == 0 {
		panic("rules: turn order must not be empty")
	}
	return &TurnManager{
		order:  append([]int(nil), order...),
		cursor: -1,
	}
}

// Order returns a copy of the turn order.
func (tm *TurnManager) Order() []int {
	return append([]int(nil), tm.order...)
}

// TurnNumber returns how many turns have been handed out.
func (tm *TurnManager) TurnNumber() int {
	return tm.turnNumber
}

// Current returns the player who moved last, or 0 before the first turn.
func (tm *TurnManager) Current() int {
	if tm.cursor < 0 {
		return 0
	}
	return tm.order[tm.cursor]
}

// ActiveCount counts the players for which isActive holds.
func (tm *TurnManager) ActiveCount(isActive func(playerID int) bool) int {
	n := 0
	for _, id := range tm.order {
		if isActive(id) {
			n++
		}
	}
	return n
}

// Next advances the cursor to the next active player and returns it.
// It reports false, without moving the cursor, when fewer than two players
// are still active.
func (tm *TurnManager) Next(isActive func(playerID int) bool) (int, bool) {
	if tm.ActiveCount(isActive) < 2 {
		return 0, false
	}

	idx := tm.cursor
	for range tm.order {
		idx = (idx + 1) % len(tm.order)
		if isActive(tm.order[idx]) {
			tm.cursor = idx
			tm.turnNumber++
			return tm.order[idx], true
		}
	}

	// unreachable: at least two players are active
	panic("rules: no active player found in turn order")
}
