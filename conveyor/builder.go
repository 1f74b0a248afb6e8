package conveyor

import (
	"fmt"
	"math/rand"

	"github.com/sarchlab/conveyorsim/sim"
)

// WorkerFactory creates the worker at the given slot and position.
type WorkerFactory func(slotIndex, workerIndex int) *Worker

// Builder can build belts.
type Builder struct {
	numSlots           int
	numWorkersPerSlot  int
	buildDuration      int
	possibleComponents []Item
	initialItems       []Item
	workerFactory      WorkerFactory
	rand               *rand.Rand
	observer           Observer
}

// MakeBuilder creates a builder with the reference line setup: 3 slots, 2
// workers per slot, a build duration of 4, and components A, B or nothing.
func MakeBuilder() Builder {
	return Builder{
		numSlots:          3,
		numWorkersPerSlot: 2,
		buildDuration:     4,
		possibleComponents: []Item{
			NewComponent("A"),
			NewComponent("B"),
			Empty,
		},
	}
}

// WithNumSlots sets the number of slots on the belt.
func (b Builder) WithNumSlots(n int) Builder {
	b.numSlots = n
	return b
}

// WithNumWorkersPerSlot sets how many workers stand at each slot.
func (b Builder) WithNumWorkersPerSlot(n int) Builder {
	b.numWorkersPerSlot = n
	return b
}

// WithBuildDuration sets the build duration of every worker created by the
// default worker factory.
func (b Builder) WithBuildDuration(d int) Builder {
	b.buildDuration = d
	return b
}

// WithPossibleComponents sets the candidates for newly generated items.
func (b Builder) WithPossibleComponents(items ...Item) Builder {
	b.possibleComponents = items
	return b
}

// WithInitialItems sets the items on the belt before the first tick, from the
// entry end onwards. Slots without an initial item start empty.
func (b Builder) WithInitialItems(items ...Item) Builder {
	b.initialItems = items
	return b
}

// WithWorkerFactory replaces the default worker creation, which allows
// workers with different build durations.
func (b Builder) WithWorkerFactory(f WorkerFactory) Builder {
	b.workerFactory = f
	return b
}

// WithRand sets the random source used to generate items.
func (b Builder) WithRand(r *rand.Rand) Builder {
	b.rand = r
	return b
}

// WithObserver sets the observer notified of entering and exiting items.
func (b Builder) WithObserver(o Observer) Builder {
	b.observer = o
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.numSlots < 1 {
		panic(fmt.Sprintf("number of slots must be at least 1, got %d",
			b.numSlots))
	}

	if b.numWorkersPerSlot < 0 {
		panic(fmt.Sprintf("number of workers per slot cannot be negative, got %d",
			b.numWorkersPerSlot))
	}

	if len(b.initialItems) > b.numSlots {
		panic(fmt.Sprintf("%d initial items do not fit on %d slots",
			len(b.initialItems), b.numSlots))
	}
}

// Build creates a new belt. Slots and workers are named after the belt, as
// in "Belt.Slot[1].Worker[0]".
func (b Builder) Build(name string) *Belt {
	b.parametersMustBeValid()
	sim.NameMustBeValid(name)

	factory := b.workerFactory
	if factory == nil {
		factory = func(_, _ int) *Worker {
			return NewWorker(b.buildDuration)
		}
	}

	slots := make([]*Slot, b.numSlots)
	for i := range slots {
		workers := make([]*Worker, b.numWorkersPerSlot)
		for j := range workers {
			workers[j] = factory(i, j)
		}

		item := Empty
		if i < len(b.initialItems) {
			item = b.initialItems[i]
		}

		slots[i] = NewSlot(workers, item)
	}

	belt := NewBelt(slots, b.possibleComponents, b.rand)
	belt.name = name
	belt.nameSlots()
	belt.SetObserver(b.observer)

	return belt
}
