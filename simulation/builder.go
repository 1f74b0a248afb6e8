package simulation

import (
	"log"
	"math/rand"
	"time"

	"github.com/rs/xid"
	"github.com/sarchlab/conveyorsim/config"
	"github.com/sarchlab/conveyorsim/conveyor"
	"github.com/sarchlab/conveyorsim/datarecording"
	"github.com/sarchlab/conveyorsim/sim"
	"github.com/sarchlab/conveyorsim/stats"
	"github.com/sarchlab/conveyorsim/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	cfg            config.Config
	observers      []conveyor.Observer
	recordingOn    bool
	outputFileName string
	logger         *log.Logger
	rand           *rand.Rand
}

// MakeBuilder creates a new builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		cfg: config.Default(),
	}
}

// WithConfig sets the parameters of the run.
func (b Builder) WithConfig(cfg config.Config) Builder {
	b.cfg = cfg
	return b
}

// WithObserver adds an observer that is notified along with the built-in
// statistics recorder.
func (b Builder) WithObserver(o conveyor.Observer) Builder {
	b.observers = append(append([]conveyor.Observer{}, b.observers...), o)
	return b
}

// WithRecording records every entry and exit into a SQLite database named
// after the given path. An empty path picks a unique name.
func (b Builder) WithRecording(path string) Builder {
	b.recordingOn = true
	b.outputFileName = path
	return b
}

// WithEventLogger prints every event the engine dispatches to the logger.
func (b Builder) WithEventLogger(logger *log.Logger) Builder {
	b.logger = logger
	return b
}

// WithRand sets the generator of new items. It takes precedence over the
// seed in the configuration.
func (b Builder) WithRand(r *rand.Rand) Builder {
	b.rand = r
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.cfg.NumSlots < 1 {
		panic("a simulation needs at least one slot")
	}

	if b.cfg.BuildDuration < 1 {
		panic("build duration must be at least 1")
	}

	if b.cfg.NumWorkersPerSlot < 0 {
		panic("number of workers per slot cannot be negative")
	}

	if b.cfg.SimulationLength < 0 {
		panic("simulation length cannot be negative")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:     xid.New().String(),
		cfg:    b.cfg,
		engine: sim.NewSerialEngine(),
		stats:  stats.NewRecorder(),
	}

	r := b.rand
	if r == nil {
		s.seed = b.cfg.Seed
		if s.seed == 0 {
			s.seed = time.Now().UnixNano()
		}
		r = rand.New(rand.NewSource(s.seed))
	}

	observers := conveyor.ObserverList{s.stats}
	observers = append(observers, b.observers...)

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "conveyorsim_" + s.id
		}

		s.dataRecorder = datarecording.New(outputPath)
		s.tracer = tracing.NewBeltTracer(s.engine, s.dataRecorder)
		observers = append(observers, s.tracer)
		s.engine.RegisterSimulationEndHandler(
			recordingFlusher{recorder: s.dataRecorder})
	}

	if b.logger != nil {
		s.engine.AcceptHook(sim.NewEventLogger(b.logger))
	}

	s.belt = conveyor.MakeBuilder().
		WithNumSlots(b.cfg.NumSlots).
		WithNumWorkersPerSlot(b.cfg.NumWorkersPerSlot).
		WithBuildDuration(b.cfg.BuildDuration).
		WithRand(r).
		WithObserver(observers).
		Build("Belt")

	s.component = newBeltComponent(s.engine, s.belt, b.cfg.SimulationLength)

	return s
}
