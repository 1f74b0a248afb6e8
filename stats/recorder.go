// Package stats counts what enters and leaves a belt and prints a summary.
package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/sarchlab/conveyorsim/config"
	"github.com/sarchlab/conveyorsim/conveyor"
)

// Recorder is an observer that aggregates entry and exit notifications.
type Recorder struct {
	componentTypesEntered map[string]int
	componentTypesExited  map[string]int
	productsExited        int
	emptyEntered          int
	emptyExited           int
}

// NewRecorder creates a Recorder with all counts at zero.
func NewRecorder() *Recorder {
	return &Recorder{
		componentTypesEntered: make(map[string]int),
		componentTypesExited:  make(map[string]int),
	}
}

// NotifyComponentEnteredBelt counts a newly generated item.
func (r *Recorder) NotifyComponentEnteredBelt(item conveyor.Item) {
	switch item.Kind() {
	case conveyor.KindComponent:
		r.componentTypesEntered[item.ComponentType()]++
	case conveyor.KindEmpty:
		r.emptyEntered++
	case conveyor.KindProduct:
		panic("a product cannot enter the belt")
	default:
		panic("unknown item kind")
	}
}

// NotifyItemExitedBelt counts an item leaving the last slot.
func (r *Recorder) NotifyItemExitedBelt(item conveyor.Item) {
	switch item.Kind() {
	case conveyor.KindComponent:
		r.componentTypesExited[item.ComponentType()]++
	case conveyor.KindProduct:
		r.productsExited++
	case conveyor.KindEmpty:
		r.emptyExited++
	default:
		panic("unknown item kind")
	}
}

// ComponentsEntered returns how many components of the given type entered.
func (r *Recorder) ComponentsEntered(componentType string) int {
	return r.componentTypesEntered[componentType]
}

// ComponentsExited returns how many components of the given type exited.
func (r *Recorder) ComponentsExited(componentType string) int {
	return r.componentTypesExited[componentType]
}

// ProductsExited returns the number of finished products that left the belt.
func (r *Recorder) ProductsExited() int {
	return r.productsExited
}

// EmptyEntered returns how many empty slots entered the belt.
func (r *Recorder) EmptyEntered() int {
	return r.emptyEntered
}

// EmptyExited returns how many empty slots left the belt.
func (r *Recorder) EmptyExited() int {
	return r.emptyExited
}

// EnteredTypes returns the component types that entered, sorted.
func (r *Recorder) EnteredTypes() []string {
	return sortedKeys(r.componentTypesEntered)
}

// ExitedTypes returns the component types that exited, sorted.
func (r *Recorder) ExitedTypes() []string {
	return sortedKeys(r.componentTypesExited)
}

// PrintSummary writes the human-readable report of a run.
func (r *Recorder) PrintSummary(w io.Writer, cfg config.Config) error {
	lines := []string{
		fmt.Sprintf("Using a %d slot conveyer belt, %d workers per slot "+
			"and %d time unit build duration.",
			cfg.NumSlots, cfg.NumWorkersPerSlot, cfg.BuildDuration),
		fmt.Sprintf("After %d time units:", cfg.SimulationLength),
	}

	for _, t := range r.EnteredTypes() {
		lines = append(lines, fmt.Sprintf("  %d x Component %s entered the belt",
			r.componentTypesEntered[t], t))
	}

	lines = append(lines, fmt.Sprintf(
		"  %d x finished products exited the belt", r.productsExited))

	for _, t := range r.ExitedTypes() {
		lines = append(lines, fmt.Sprintf("  %d x Component %s exited the belt",
			r.componentTypesExited[t], t))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

var _ conveyor.Observer = (*Recorder)(nil)
