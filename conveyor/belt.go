package conveyor

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sarchlab/conveyorsim/sim"
)

// A Belt is a line of slots. Items enter at slot 0 and leave after the last
// slot. Workers stay where they are.
type Belt struct {
	name               string
	slots              []*Slot
	possibleComponents []Item
	rand               *rand.Rand
	observer           Observer
}

// NewBelt creates a belt from hand-assembled slots. New items are drawn
// uniformly from possibleComponents, which holds components and may contain
// Empty. A nil r is replaced by a generator seeded from the clock.
func NewBelt(
	slots []*Slot,
	possibleComponents []Item,
	r *rand.Rand,
) *Belt {
	if len(slots) == 0 {
		panic("a belt must have at least one slot")
	}

	if len(possibleComponents) == 0 {
		panic("a belt must have at least one possible component")
	}

	for _, c := range possibleComponents {
		if c.IsProduct() {
			panic("a product cannot enter the belt")
		}
	}

	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &Belt{
		name:               "Belt",
		slots:              make([]*Slot, len(slots)),
		possibleComponents: make([]Item, len(possibleComponents)),
		rand:               r,
	}
	copy(b.slots, slots)
	copy(b.possibleComponents, possibleComponents)
	b.nameSlots()

	return b
}

func (b *Belt) nameSlots() {
	for i, s := range b.slots {
		s.setName(sim.BuildNameWithIndex(b.name, "Slot", i))
	}
}

// Name returns the name of the belt.
func (b *Belt) Name() string {
	return b.name
}

// Slots returns the slots from the entry end to the exit end.
func (b *Belt) Slots() []*Slot {
	slots := make([]*Slot, len(b.slots))
	copy(slots, b.slots)

	return slots
}

// SetObserver attaches an observer. Passing nil detaches it.
func (b *Belt) SetObserver(o Observer) {
	b.observer = o
}

// AdvanceSlotItems moves every item one slot downstream. The item in the last
// slot leaves the belt and a newly generated item enters the first slot.
func (b *Belt) AdvanceSlotItems() {
	last := len(b.slots) - 1

	if b.observer != nil {
		b.observer.NotifyItemExitedBelt(b.slots[last].item)
	}

	// Shift from the exit end so nothing is overwritten before it is read.
	for i := last; i > 0; i-- {
		b.slots[i].item = b.slots[i-1].item
	}

	b.slots[0].item = b.generateNewComponent()

	if b.observer != nil {
		b.observer.NotifyComponentEnteredBelt(b.slots[0].item)
	}
}

func (b *Belt) generateNewComponent() Item {
	return b.possibleComponents[b.rand.Intn(len(b.possibleComponents))]
}

// Tick runs one time unit: the belt advances, then every slot does its work
// from the entry end to the exit end.
func (b *Belt) Tick() error {
	b.AdvanceSlotItems()

	for _, s := range b.slots {
		if err := s.DoWork(); err != nil {
			return err
		}
	}

	return nil
}

// Simulate runs n ticks. It stops at the first error.
func (b *Belt) Simulate(n int) error {
	for i := 0; i < n; i++ {
		if err := b.Tick(); err != nil {
			return fmt.Errorf("tick %d: %w", i+1, err)
		}
	}

	return nil
}
