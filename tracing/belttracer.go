// Package tracing records what happens on a belt, tick by tick.
package tracing

import (
	"github.com/sarchlab/conveyorsim/conveyor"
	"github.com/sarchlab/conveyorsim/datarecording"
	"github.com/sarchlab/conveyorsim/sim"
)

// BeltEventTable is the table that holds belt entry and exit events.
const BeltEventTable = "belt_events"

// Values of the Event column.
const (
	EventEntered = "entered"
	EventExited  = "exited"
)

// BeltEvent is one row in the belt event table.
type BeltEvent struct {
	Cycle         uint64
	Event         string
	Kind          string
	ComponentType string
}

// BeltTracer is an observer that stores every entry and exit notification
// along with the cycle in which it happened.
type BeltTracer struct {
	timeTeller sim.TimeTeller
	backend    datarecording.DataRecorder
}

// NewBeltTracer creates a BeltTracer and creates its table in the backend.
func NewBeltTracer(
	timeTeller sim.TimeTeller,
	backend datarecording.DataRecorder,
) *BeltTracer {
	t := &BeltTracer{
		timeTeller: timeTeller,
		backend:    backend,
	}

	backend.CreateTable(BeltEventTable, BeltEvent{})

	return t
}

// NotifyComponentEnteredBelt records an entry.
func (t *BeltTracer) NotifyComponentEnteredBelt(item conveyor.Item) {
	t.record(EventEntered, item)
}

// NotifyItemExitedBelt records an exit.
func (t *BeltTracer) NotifyItemExitedBelt(item conveyor.Item) {
	t.record(EventExited, item)
}

func (t *BeltTracer) record(event string, item conveyor.Item) {
	t.backend.InsertData(BeltEventTable, BeltEvent{
		Cycle:         uint64(t.timeTeller.CurrentTime()),
		Event:         event,
		Kind:          item.Kind().String(),
		ComponentType: item.ComponentType(),
	})
}

var _ conveyor.Observer = (*BeltTracer)(nil)
