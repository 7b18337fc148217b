package rules

import "sync"

// EventType indicates the category of a match event.
type EventType string

const (
	// Match lifecycle
	EventMatchStarted  EventType = "MATCH_STARTED"
	EventMatchFinished EventType = "MATCH_FINISHED"

	// Turn events
	EventTurnStarted EventType = "TURN_STARTED"
	EventDieRolled   EventType = "DIE_ROLLED"
	EventPlayerMoved EventType = "PLAYER_MOVED"

	// Property events
	EventPropertyPurchased EventType = "PROPERTY_PURCHASED"
	EventPurchaseDeclined  EventType = "PURCHASE_DECLINED"
	EventPropertyReleased  EventType = "PROPERTY_RELEASED"

	// Money events
	EventRentPaid     EventType = "RENT_PAID"
	EventRentReceived EventType = "RENT_RECEIVED"

	// Player events
	EventPlayerEliminated EventType = "PLAYER_ELIMINATED"
)

// Event represents a state change that other subsystems may react to.
type Event struct {
	Type           EventType
	MatchLabel     string
	Round          int
	PlayerID       int // acting player
	CounterpartyID int // owner receiving rent, payer for RENT_RECEIVED
	SlotID         int
	Amount         int // die value, price or rent
	Balance        int // acting player's balance after the event
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// EventBus provides a synchronous publish/subscribe implementation.
// Listeners are invoked in subscription order.
type EventBus struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a listener for all events. Nil listeners are ignored.
func (bus *EventBus) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.listeners = append(bus.listeners, listener)
}

// Publish delivers the event to all registered listeners synchronously.
func (bus *EventBus) Publish(event Event) {
	// The slice is append-only, so the header read under the lock stays valid.
	bus.mu.RLock()
	listeners := bus.listeners
	bus.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// NewEvent creates a new event with common fields populated.
func NewEvent(eventType EventType, matchLabel string, round, playerID int) Event {
	return Event{
		Type:       eventType,
		MatchLabel: matchLabel,
		Round:      round,
		PlayerID:   playerID,
	}
}

// NewEventWithAmount creates a new event with an amount value.
func NewEventWithAmount(eventType EventType, matchLabel string, round, playerID, amount int) Event {
	evt := NewEvent(eventType, matchLabel, round, playerID)
	evt.Amount = amount
	return evt
}
