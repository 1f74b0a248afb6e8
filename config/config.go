// Package config defines the parameters of a conveyor belt run and how they
// are read from flags, the environment, and .env files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvBuildDuration     = "CONVEYOR_BUILD_DURATION"
	EnvNumSlots          = "CONVEYOR_NUM_SLOTS"
	EnvNumWorkersPerSlot = "CONVEYOR_NUM_WORKERS_PER_SLOT"
	EnvSimulationLength  = "CONVEYOR_SIMULATION_LENGTH"
	EnvSeed              = "CONVEYOR_SEED"
)

// Config holds the parameters of one run.
type Config struct {
	BuildDuration     int
	NumSlots          int
	NumWorkersPerSlot int
	SimulationLength  int

	// Seed of the item generator. 0 means seeding from the clock.
	Seed int64
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		BuildDuration:     4,
		NumSlots:          3,
		NumWorkersPerSlot: 2,
		SimulationLength:  100,
	}
}

// Raw holds unparsed values. An empty field means the value is not given.
type Raw struct {
	BuildDuration     string
	NumSlots          string
	NumWorkersPerSlot string
	SimulationLength  string
	Seed              string
}

// Or fills the fields of r that are not given with the fields of other.
func (r Raw) Or(other Raw) Raw {
	return Raw{
		BuildDuration:     firstGiven(r.BuildDuration, other.BuildDuration),
		NumSlots:          firstGiven(r.NumSlots, other.NumSlots),
		NumWorkersPerSlot: firstGiven(r.NumWorkersPerSlot, other.NumWorkersPerSlot),
		SimulationLength:  firstGiven(r.SimulationLength, other.SimulationLength),
		Seed:              firstGiven(r.Seed, other.Seed),
	}
}

func firstGiven(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}

	return b
}

// Parse converts raw values into a Config. A value that is missing, not an
// integer, or below its minimum is replaced by its default. Parse never
// fails.
func Parse(raw Raw) Config {
	d := Default()

	return Config{
		BuildDuration:     intOrDefault(raw.BuildDuration, 1, d.BuildDuration),
		NumSlots:          intOrDefault(raw.NumSlots, 1, d.NumSlots),
		NumWorkersPerSlot: intOrDefault(raw.NumWorkersPerSlot, 0, d.NumWorkersPerSlot),
		SimulationLength:  intOrDefault(raw.SimulationLength, 0, d.SimulationLength),
		Seed:              seedOrDefault(raw.Seed, d.Seed),
	}
}

func intOrDefault(s string, minValue, defaultValue int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < minValue {
		return defaultValue
	}

	return v
}

func seedOrDefault(s string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return defaultValue
	}

	return v
}

// LoadEnv reads raw values from the process environment, falling back to the
// given .env files (".env" if none is given). Missing files are ignored.
func LoadEnv(paths ...string) (Raw, error) {
	fileValues, err := godotenv.Read(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Raw{}, err
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}

		return fileValues[key]
	}

	return Raw{
		BuildDuration:     lookup(EnvBuildDuration),
		NumSlots:          lookup(EnvNumSlots),
		NumWorkersPerSlot: lookup(EnvNumWorkersPerSlot),
		SimulationLength:  lookup(EnvSimulationLength),
		Seed:              lookup(EnvSeed),
	}, nil
}
