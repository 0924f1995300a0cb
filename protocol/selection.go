package protocol

import "fmt"

const (
	// SlotDeckTop selects the concealed top card of the row's deck (reserve only)
	SlotDeckTop = 4
	// SlotReserved selects the player's reserved card with index Row
	SlotReserved = 5
)

// Selection is a (row, slot) pair chosen by a player.
// Slots 0-3 address the face-up grid, SlotDeckTop the deck of tier Row+1
// and SlotReserved the player's own reservation slot Row.
type Selection struct {
	Row  int
	Slot int
}

func (s Selection) IsGrid() bool {
	return s.Slot >= 0 && s.Slot < SlotDeckTop
}

func (s Selection) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Slot)
}
