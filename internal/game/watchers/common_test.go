package watchers

import (
	"testing"

	"github.com/littlemonopoly/simulator-go/internal/game/rules"
	"github.com/stretchr/testify/assert"
)

func purchase(round, playerID, slot, price int) rules.Event {
	evt := rules.NewEventWithAmount(rules.EventPropertyPurchased, "m", round, playerID, price)
	evt.SlotID = slot
	return evt
}

func TestPurchaseWatcher(t *testing.T) {
	w := NewPurchaseWatcher()
	assert.Equal(t, "PurchaseWatcher", w.GetKey())

	w.Watch(purchase(1, 1, 4, 60))
	w.Watch(purchase(2, 2, 9, 110))
	w.Watch(purchase(5, 1, 12, 140))
	w.Watch(rules.NewEventWithAmount(rules.EventPurchaseDeclined, "m", 6, 3, 50))

	assert.Equal(t, []int{4, 12}, w.GetPurchases(1))
	assert.Equal(t, 200, w.GetSpent(1))
	assert.Equal(t, 110, w.GetSpent(2))
	assert.Empty(t, w.GetPurchases(3))
	assert.Equal(t, 3, w.Total())
}

func TestRentWatcher(t *testing.T) {
	w := NewRentWatcher()

	w.Watch(rules.NewEventWithAmount(rules.EventRentPaid, "m", 3, 2, 20))
	w.Watch(rules.NewEventWithAmount(rules.EventRentReceived, "m", 3, 1, 20))
	w.Watch(rules.NewEventWithAmount(rules.EventRentPaid, "m", 4, 3, 66))
	w.Watch(rules.NewEventWithAmount(rules.EventRentReceived, "m", 4, 1, 66))

	assert.Equal(t, 20, w.GetPaid(2))
	assert.Equal(t, 66, w.GetPaid(3))
	assert.Equal(t, 86, w.GetReceived(1))
	assert.Equal(t, 2, w.Payments())
	assert.Equal(t, 86, w.Volume())
}

func TestEliminationWatcher(t *testing.T) {
	w := NewEliminationWatcher()

	w.Watch(rules.NewEvent(rules.EventPlayerEliminated, "m", 40, 3))
	w.Watch(rules.NewEvent(rules.EventPlayerEliminated, "m", 77, 1))
	w.Watch(rules.NewEvent(rules.EventPlayerEliminated, "m", 80, 3))

	assert.Equal(t, []int{3, 1}, w.Order())
	round, ok := w.RoundOf(3)
	assert.True(t, ok)
	assert.Equal(t, 40, round)
	_, ok = w.RoundOf(2)
	assert.False(t, ok)
}
