package conveyor

import "github.com/sarchlab/conveyorsim/sim"

// A Slot is one position on the belt. It holds at most one item and is served
// by a fixed list of workers.
type Slot struct {
	name    string
	workers []*Worker
	item    Item
}

// NewSlot creates a slot that owns the given workers and starts with the given
// item. The worker list is never changed afterwards.
func NewSlot(workers []*Worker, item Item) *Slot {
	s := &Slot{
		workers: make([]*Worker, len(workers)),
		item:    item,
	}
	copy(s.workers, workers)

	return s
}

// Name returns the name of the slot.
func (s *Slot) Name() string {
	return s.name
}

func (s *Slot) setName(name string) {
	s.name = name
	for i, w := range s.workers {
		w.name = sim.BuildNameWithIndex(name, "Worker", i)
	}
}

// Workers returns the workers at the slot in their fixed order.
func (s *Slot) Workers() []*Worker {
	workers := make([]*Worker, len(s.workers))
	copy(workers, s.workers)

	return workers
}

// Item returns the item currently in the slot.
func (s *Slot) Item() Item {
	return s.item
}

// SetItem replaces the item in the slot.
func (s *Slot) SetItem(item Item) {
	s.item = item
}

// IsEmpty returns true if the slot holds nothing.
func (s *Slot) IsEmpty() bool {
	return s.item.IsEmpty()
}

// HasComponent returns true if the slot holds a component.
func (s *Slot) HasComponent() bool {
	return s.item.IsComponent()
}

// DoWork runs one tick of work at the slot. Building workers always make
// progress first. Then at most one idle worker interacts with the slot item.
func (s *Slot) DoWork() error {
	idle := make([]*Worker, 0, len(s.workers))

	for _, w := range s.workers {
		if !w.IsBuilding() {
			idle = append(idle, w)
			continue
		}

		if err := w.ContinueBuilding(); err != nil {
			return err
		}
	}

	switch s.item.Kind() {
	case KindEmpty:
		return s.placeProduct(idle)
	case KindComponent:
		return s.handOutComponent(idle)
	case KindProduct:
		return nil
	default:
		panic("unknown item kind " + s.item.Kind().String())
	}
}

func (s *Slot) placeProduct(idle []*Worker) error {
	for _, w := range idle {
		if w.IsHoldingFinishedProduct() {
			return w.PlaceFinishedProduct(s)
		}
	}

	return nil
}

func (s *Slot) handOutComponent(idle []*Worker) error {
	for _, w := range idle {
		if w.CouldStartBuildingWith(s.item) {
			return w.TakeComponent(s)
		}
	}

	for _, w := range idle {
		if w.CanTake(s.item) {
			return w.TakeComponent(s)
		}
	}

	return nil
}
