// Package simulation assembles a belt, its observers and an engine into a
// run of a fixed number of ticks.
package simulation

import (
	"github.com/sarchlab/conveyorsim/config"
	"github.com/sarchlab/conveyorsim/conveyor"
	"github.com/sarchlab/conveyorsim/datarecording"
	"github.com/sarchlab/conveyorsim/sim"
	"github.com/sarchlab/conveyorsim/stats"
	"github.com/sarchlab/conveyorsim/tracing"
)

// A Simulation is one configured run of a belt.
type Simulation struct {
	id   string
	cfg  config.Config
	seed int64

	engine    *sim.SerialEngine
	belt      *conveyor.Belt
	component *beltComponent
	stats     *stats.Recorder

	dataRecorder datarecording.DataRecorder
	tracer       *tracing.BeltTracer

	started bool
}

// ID returns the unique ID of the run.
func (s *Simulation) ID() string {
	return s.id
}

// Config returns the parameters of the run.
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Seed returns the seed of the item generator. It is 0 if the generator was
// provided by the caller.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Engine returns the engine that drives the run.
func (s *Simulation) Engine() sim.Engine {
	return s.engine
}

// Belt returns the simulated belt.
func (s *Simulation) Belt() *conveyor.Belt {
	return s.belt
}

// Stats returns the statistics recorder attached to the belt.
func (s *Simulation) Stats() *stats.Recorder {
	return s.stats
}

// DataRecorder returns the recording backend, or nil if recording is off.
func (s *Simulation) DataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// TicksRun returns how many ticks completed.
func (s *Simulation) TicksRun() int {
	return s.component.ticked
}

// Run runs the configured number of ticks. It returns the first error a tick
// produces. Calling Run again has no effect.
func (s *Simulation) Run() error {
	if s.started {
		return nil
	}
	s.started = true

	s.component.start()

	err := s.engine.Run()
	s.engine.Finished()

	return err
}

// recordingFlusher writes buffered rows when the run ends.
type recordingFlusher struct {
	recorder datarecording.DataRecorder
}

func (f recordingFlusher) Handle(_ sim.VTimeInCycle) {
	f.recorder.Flush()
}

// Terminate flushes and closes the recording, if any.
func (s *Simulation) Terminate() error {
	if s.dataRecorder == nil {
		return nil
	}

	return s.dataRecorder.Close()
}
