package simulation

import (
	"github.com/sarchlab/conveyorsim/sim"
)

// beltTicker is the part of a belt that the component drives.
type beltTicker interface {
	Name() string
	Tick() error
}

// beltComponent ticks a belt once per cycle until it has run the requested
// number of ticks or a tick fails.
type beltComponent struct {
	*sim.TickingComponent

	belt      beltTicker
	remaining int
	ticked    int
}

func newBeltComponent(
	engine sim.Engine,
	belt beltTicker,
	numTicks int,
) *beltComponent {
	c := &beltComponent{
		belt:      belt,
		remaining: numTicks,
	}
	c.TickingComponent = sim.NewTickingComponent(belt.Name(), engine, c)

	return c
}

// start schedules the first tick at cycle 1, so that tick i runs at cycle i.
func (c *beltComponent) start() {
	if c.remaining > 0 {
		c.TickLater()
	}
}

// Tick advances the belt by one time unit. A belt error stops the engine.
func (c *beltComponent) Tick() (bool, error) {
	if c.remaining <= 0 {
		return false, nil
	}

	if err := c.belt.Tick(); err != nil {
		return false, err
	}

	c.remaining--
	c.ticked++

	return c.remaining > 0, nil
}
