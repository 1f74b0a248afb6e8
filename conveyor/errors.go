package conveyor

import "errors"

// Contract violations raised by worker actions. The slot only calls an action
// after checking the matching predicate, so seeing one of these means the
// allocation policy is broken and the run should stop.
var (
	// ErrInvalidPlacement is returned when placing onto a non-empty slot.
	ErrInvalidPlacement = errors.New("conveyor: cannot place item into non-empty slot")

	// ErrNotFinished is returned when a worker without a finished product
	// tries to place one.
	ErrNotFinished = errors.New("conveyor: worker is not holding a finished product")

	// ErrNotATakeableComponent is returned when taking from a slot that does
	// not hold a component.
	ErrNotATakeableComponent = errors.New("conveyor: slot does not hold a component")

	// ErrNotEligibleToTake is returned when a worker takes a component it
	// cannot use.
	ErrNotEligibleToTake = errors.New("conveyor: worker cannot take the component")

	// ErrNotBuilding is returned when continuing a build that is not running.
	ErrNotBuilding = errors.New("conveyor: worker is not building")
)
