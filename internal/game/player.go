package game

import (
	"github.com/littlemonopoly/simulator-go/internal/game/strategy"
)

// Fixed match parameters.
const (
	PlayerCount     = 4
	StartingBalance = 400
	MaxRounds       = 1000
	DieFaces        = 6
)

// Player is one simulated participant. Its profile is also its purchase
// strategy and never changes during a match.
type Player struct {
	ID      int
	Profile strategy.Kind
	Balance int
	Active  bool
}

// Rand is the random source a match draws from: die rolls, the Random
// profile's coin and the turn order shuffle. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// newPlayers creates the four fixed players; player id N sits at index N-1.
func newPlayers() [PlayerCount]Player {
	var players [PlayerCount]Player
	for i, kind := range strategy.Kinds() {
		players[i] = Player{
			ID:      i + 1,
			Profile: kind,
			Balance: StartingBalance,
			Active:  true,
		}
	}
	return players
}
