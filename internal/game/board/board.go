package board

import (
	"fmt"
	"sort"
)

// SlotCount is the fixed number of positions on the board.
const SlotCount = 20

// StartSlot is where every player begins the match.
const StartSlot = 1

// Price ramp: the running price starts at rampBase, grows by rampStep per
// slot and falls back to rampReset once it passes rampCeiling.
const (
	rampBase    = 20
	rampStep    = 10
	rampCeiling = 200
	rampReset   = 10
	rentDivisor = 3
)

// Property is a purchasable board position.
type Property struct {
	ID        int
	Price     int
	Rent      int
	OwnerID   int // 0 when unowned
	Available bool
}

// HasOwner reports whether someone holds the property.
func (p Property) HasOwner() bool {
	return p.OwnerID != 0
}

// Sell transfers the property to playerID.
func (p *Property) Sell(playerID int) {
	if playerID <= 0 {
		panic(fmt.Sprintf("board: invalid buyer id %d", playerID))
	}
	p.OwnerID = playerID
	p.Available = false
}

// Release returns the property to the bank.
func (p *Property) Release() {
	p.OwnerID = 0
	p.Available = true
}

// Slot is one board position: its property plus whoever stands on it.
type Slot struct {
	Property  Property
	occupants map[int]bool
}

// Board is the fixed ring of slots. Slots and player positions are index
// addressed; slot id N lives at slots[N-1].
type Board struct {
	slots    [SlotCount]Slot
	position map[int]int // playerID -> slot id
}

// Build creates the board and places every player on the start slot.
func Build(playerIDs []int) *Board {
	b := &Board{
		position: make(map[int]int, len(playerIDs)),
	}

	price := rampBase
	for i := range b.slots {
		price += rampStep
		if price > rampCeiling {
			price = rampReset
		}
		b.slots[i] = Slot{
			Property: Property{
				ID:        i + 1,
				Price:     price,
				Rent:      price / rentDivisor,
				Available: true,
			},
			occupants: make(map[int]bool),
		}
	}

	for _, id := range playerIDs {
		b.place(id, StartSlot)
	}

	return b
}

// Slot returns the slot with the given 1-based id.
func (b *Board) Slot(id int) *Slot {
	if id < 1 || id > SlotCount {
		panic(fmt.Sprintf("board: slot %d out of range [1,%d]", id, SlotCount))
	}
	return &b.slots[id-1]
}

// Property returns the property on slot id.
func (b *Board) Property(id int) *Property {
	return &b.Slot(id).Property
}

// Position returns the slot id a player stands on.
func (b *Board) Position(playerID int) (int, bool) {
	slot, ok := b.position[playerID]
	return slot, ok
}

// NextSlot computes the slot reached after moving steps forward from current.
func NextSlot(current, steps int) int {
	if current < 1 || current > SlotCount {
		panic(fmt.Sprintf("board: current slot %d out of range", current))
	}
	if steps < 0 {
		panic(fmt.Sprintf("board: negative step count %d", steps))
	}
	next := (current-1+steps)%SlotCount + 1
	if next < 1 || next > SlotCount {
		panic(fmt.Sprintf("board: wrap produced slot %d", next))
	}
	return next
}

// Move advances a player and returns the slots left and reached.
func (b *Board) Move(playerID, steps int) (from, to int) {
	from, ok := b.position[playerID]
	if !ok {
		panic(fmt.Sprintf("board: player %d is not on the board", playerID))
	}
	to = NextSlot(from, steps)
	delete(b.slots[from-1].occupants, playerID)
	b.place(playerID, to)
	return from, to
}

// Remove takes a player off the board entirely.
func (b *Board) Remove(playerID int) {
	slot, ok := b.position[playerID]
	if !ok {
		return
	}
	delete(b.slots[slot-1].occupants, playerID)
	delete(b.position, playerID)
}

// Occupants lists the players standing on a slot, sorted by id.
func (b *Board) Occupants(slotID int) []int {
	slot := b.Slot(slotID)
	ids := make([]int, 0, len(slot.occupants))
	for id := range slot.occupants {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// OwnedBy lists the ids of the properties held by playerID.
func (b *Board) OwnedBy(playerID int) []int {
	var ids []int
	for i := range b.slots {
		if b.slots[i].Property.OwnerID == playerID {
			ids = append(ids, b.slots[i].Property.ID)
		}
	}
	return ids
}

// ReleaseOwnedBy puts every property held by playerID back on sale and
// returns the released ids.
func (b *Board) ReleaseOwnedBy(playerID int) []int {
	released := b.OwnedBy(playerID)
	for _, id := range released {
		b.slots[id-1].Property.Release()
	}
	return released
}

// Properties returns a copy of every property in slot order.
func (b *Board) Properties() []Property {
	props := make([]Property, SlotCount)
	for i := range b.slots {
		props[i] = b.slots[i].Property
	}
	return props
}

func (b *Board) place(playerID, slotID int) {
	b.Slot(slotID).occupants[playerID] = true
	b.position[playerID] = slotID
}
