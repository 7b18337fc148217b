package watchers

import (
	"github.com/littlemonopoly/simulator-go/internal/game/rules"
)

// PurchaseWatcher tracks properties bought by players.
type PurchaseWatcher struct {
	*rules.BaseWatcher
	bought map[int][]int // playerID -> slot ids
	spent  map[int]int
}

// NewPurchaseWatcher creates a new purchase watcher.
func NewPurchaseWatcher() *PurchaseWatcher {
	return &PurchaseWatcher{
		BaseWatcher: rules.NewBaseWatcher("PurchaseWatcher"),
		bought:      make(map[int][]int),
		spent:       make(map[int]int),
	}
}

// Watch implements the Watcher interface.
func (w *PurchaseWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventPropertyPurchased {
		return
	}
	w.bought[event.PlayerID] = append(w.bought[event.PlayerID], event.SlotID)
	w.spent[event.PlayerID] += event.Amount
}

// GetPurchases returns the slot ids bought by a player, in purchase order.
func (w *PurchaseWatcher) GetPurchases(playerID int) []int {
	return w.bought[playerID]
}

// GetSpent returns how much a player spent on properties.
func (w *PurchaseWatcher) GetSpent(playerID int) int {
	return w.spent[playerID]
}

// Total returns the number of purchases across all players.
func (w *PurchaseWatcher) Total() int {
	n := 0
	for _, ids := range w.bought {
		n += len(ids)
	}
	return n
}

// RentWatcher tracks rent flowing between players.
type RentWatcher struct {
	*rules.BaseWatcher
	paid     map[int]int
	received map[int]int
	payments int
}

// NewRentWatcher creates a new rent watcher.
func NewRentWatcher() *RentWatcher {
	return &RentWatcher{
		BaseWatcher: rules.NewBaseWatcher("RentWatcher"),
		paid:        make(map[int]int),
		received:    make(map[int]int),
	}
}

// Watch implements the Watcher interface.
func (w *RentWatcher) Watch(event rules.Event) {
	switch event.Type {
	case rules.EventRentPaid:
		w.paid[event.PlayerID] += event.Amount
		w.payments++
		case rules.EventRentReceived:
		w.received[event.PlayerID] += event.Amount
	}
}

// GetPaid returns the total rent a player paid.
func (w *RentWatcher) GetPaid(playerID int) int {
	return w.paid[playerID]
}

// GetReceived returns the total rent a player collected.
func (w *RentWatcher) GetReceived(playerID int) int {
	return w.received[playerID]
}

// Payments returns how many rent payments happened.
func (w *RentWatcher) Payments() int {
	return w.payments
}

// Volume returns the total amount of rent paid.
func (w *RentWatcher) Volume() int {
	total := 0
	for _, amount := range w.paid {
		total += amount
	}
	return total
}

// EliminationWatcher records the order in which players went bankrupt.
type EliminationWatcher struct {
	*rules.BaseWatcher
	order  []int
	rounds map[int]int
}

// NewEliminationWatcher creates a new elimination watcher.
func NewEliminationWatcher() *EliminationWatcher {
	return &EliminationWatcher{
		BaseWatcher: rules.NewBaseWatcher("EliminationWatcher"),
		rounds:      make(map[int]int),
	}
}

// Watch implements the Watcher interface.
func (w *EliminationWatcher) Watch(event rules.Event) {
	if event.Type != rules.EventPlayerEliminated {
		return
	}
	if _, seen := w.rounds[event.PlayerID]; seen {
		return
	}
	w.order = append(w.order, event.PlayerID)
	w.rounds[event.PlayerID] = event.Round
}

// Order returns player ids in elimination order.
func (w *EliminationWatcher) Order() []int {
	return append([]int(nil), w.order...)
}

// RoundOf returns the round a player was eliminated in, if any.
func (w *EliminationWatcher) RoundOf(playerID int) (int, bool) {
	round, ok := w.rounds[playerID]
	return round, ok
}
