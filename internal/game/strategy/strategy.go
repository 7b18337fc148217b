// Package strategy holds the purchase policies used by the simulated players.
package strategy

import (
	"fmt"

	"github.com/littlemonopoly/simulator-go/internal/game/board"
)

// Kind is a player profile. Each profile carries exactly one purchase policy.
type Kind int

const (
	Impulsive Kind = iota
	Demanding
	Cautious
	Random
)

const (
	demandingMinRent = 50
	cautiousReserve  = 80
)

var kindNames = map[Kind]string{
	Impulsive: "IMPULSIVE",
	Demanding: "DEMANDING",
	Cautious:  "CAUTIOUS",
	Random:    "RANDOM",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND_%d", int(k))
}

// Kinds returns every profile in canonical order.
func Kinds() []Kind {
	return []Kind{Impulsive, Demanding, Cautious, Random}
}

// ParseKind maps a profile label back to its kind.
func ParseKind(label string) (Kind, error) {
	for k, name := range kindNames {
		if name == label {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown profile %q", label)
}

// Coin is the random source consulted by the Random profile.
type Coin interface {
	Intn(n int) int
}

// Decide reports whether a player with the given balance buys p.
// Only Random draws from coin; the other profiles never touch it.
func (k Kind) Decide(balance int, p board.Property, coin Coin) bool {
	switch k {
	case Impulsive:
		return balance > p.Price
	case Demanding:
		return p.Rent > demandingMinRent
	case Cautious:
		return balance-p.Rent >= cautiousReserve
	case Random:
		return coin.Intn(2) == 1
	default:
		panic(fmt.Sprintf("strategy: unknown kind %d", int(k)))
	}
}
