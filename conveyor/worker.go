package conveyor

import "fmt"

const maxItemsHeld = 2

// A Worker stands next to a slot, collects components, builds them into a
// product, and puts the product back on the belt.
type Worker struct {
	name          string
	buildDuration int

	// items is in acquisition order. After a build completes it holds a
	// single product.
	items []Item

	// buildRemaining is the number of ticks until the build completes. Zero
	// means the worker is not building.
	buildRemaining int
}

// NewWorker creates a worker that needs buildDuration ticks to assemble a
// product.
func NewWorker(buildDuration int) *Worker {
	if buildDuration < 1 {
		panic(fmt.Sprintf("build duration must be at least 1, got %d",
			buildDuration))
	}

	return &Worker{
		buildDuration: buildDuration,
		items:         make([]Item, 0, maxItemsHeld),
	}
}

// Name returns the name of the worker. It is set when the worker is placed at
// a slot.
func (w *Worker) Name() string {
	return w.name
}

// BuildDuration returns the number of ticks a build takes.
func (w *Worker) BuildDuration() int {
	return w.buildDuration
}

// Items returns a copy of the items the worker holds.
func (w *Worker) Items() []Item {
	items := make([]Item, len(w.items))
	copy(items, w.items)

	return items
}

// BuildRemaining returns the ticks left on the current build. The second
// return value is false if the worker is not building.
func (w *Worker) BuildRemaining() (int, bool) {
	return w.buildRemaining, w.buildRemaining > 0
}

// IsBuilding returns true if a build is in progress.
func (w *Worker) IsBuilding() bool {
	return w.buildRemaining > 0
}

// IsHoldingFinishedProduct returns true if the worker holds a single product
// waiting to go back on the belt.
func (w *Worker) IsHoldingFinishedProduct() bool {
	return len(w.items) == 1 && w.items[0].IsProduct()
}

// IsHoldingComponentType returns true if the worker holds a component of the
// given type.
func (w *Worker) IsHoldingComponentType(componentType string) bool {
	for _, item := range w.items {
		if item.IsComponent() && item.ComponentType() == componentType {
			return true
		}
	}

	return false
}

// CanTake returns true if the worker is free, has room, and does not
// already hold a component of the same type.
func (w *Worker) CanTake(component Item) bool {
	if !component.IsComponent() {
		return false
	}

	return !w.IsBuilding() &&
		!w.IsHoldingFinishedProduct() &&
		len(w.items) < maxItemsHeld &&
		!w.IsHoldingComponentType(component.ComponentType())
}

// CouldStartBuildingWith returns true if taking the component would complete
// a pair and start a build.
func (w *Worker) CouldStartBuildingWith(component Item) bool {
	return w.CanTake(component) && len(w.items) > 0
}

// TakeComponent moves the component in the slot into the worker's hands. If
// that completes a pair, the build starts.
func (w *Worker) TakeComponent(slot *Slot) error {
	if !slot.HasComponent() {
		return fmt.Errorf("%s takes from %s holding %s: %w",
			w.name, slot.Name(), slot.item, ErrNotATakeableComponent)
	}

	if !w.CanTake(slot.item) {
		return fmt.Errorf("%s takes %s from %s: %w",
			w.name, slot.item, slot.Name(), ErrNotEligibleToTake)
	}

	startsBuilding := w.CouldStartBuildingWith(slot.item)

	w.items = append(w.items, slot.item)
	slot.item = Empty

	if startsBuilding {
		w.buildRemaining = w.buildDuration
	}

	return nil
}

// ContinueBuilding advances the build by one tick. When the countdown reaches
// zero the held components become one product.
func (w *Worker) ContinueBuilding() error {
	if !w.IsBuilding() {
		return fmt.Errorf("%s: %w", w.name, ErrNotBuilding)
	}

	w.buildRemaining--

	if w.buildRemaining == 0 {
		w.items = w.items[:0]
		w.items = append(w.items, NewProduct())
	}

	return nil
}

// PlaceFinishedProduct puts the finished product onto an empty slot.
func (w *Worker) PlaceFinishedProduct(slot *Slot) error {
	if !slot.IsEmpty() {
		return fmt.Errorf("%s places onto %s holding %s: %w",
			w.name, slot.Name(), slot.item, ErrInvalidPlacement)
	}

	if !w.IsHoldingFinishedProduct() {
		return fmt.Errorf("%s places onto %s: %w",
			w.name, slot.Name(), ErrNotFinished)
	}

	slot.item = w.items[0]
	w.items = w.items[:0]
	w.buildRemaining = 0

	return nil
}
