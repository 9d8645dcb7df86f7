// Package metrics collects client-side performance measurements:
// timed interactions, component load durations and element render timings.
package metrics

import (
	"fmt"
	"time"

	"github.com/user/valreport/pkg/ports"
)

// Interaction is a named, timed action bounded by a start and an end call.
type Interaction struct {
	Name      string        `json:"name"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration_ns"`
}

// Report is a point-in-time snapshot of everything a Collector has recorded.
// It shares no state with the Collector that produced it.
type Report struct {
	GeneratedAt    time.Time        `json:"generated_at"`
	Interactions   []Interaction    `json:"interactions"`
	ComponentStats map[string]Stats `json:"component_stats"`
	ElementStats   map[string]Stats `json:"element_stats"`
}

// Collector accumulates performance measurements for one run.
// It is not safe for concurrent use; a single caller drives it.
type Collector struct {
	clock  ports.Clock
	logger ports.Logger

	inflight       *Interaction
	history        []Interaction
	componentLoads map[string][]float64
	elementTimings map[string][]float64
}

// NewCollector creates a Collector using the given clock and logger.
func NewCollector(clock ports.Clock, logger ports.Logger) *Collector {
	return &Collector{
		clock:          clock,
		logger:         logger.WithComponent("metrics"),
		componentLoads: make(map[string][]float64),
		elementTimings: make(map[string][]float64),
	}
}

// StartInteraction begins timing a named interaction and returns a snapshot
// of the in-flight record. If an interaction is already in flight it is
// discarded without entering the history, and a warning is logged.
func (c *Collector) StartInteraction(name string) (Interaction, error) {
	if name == "" {
		return Interaction{}, fmt.Errorf("interaction name is empty")
	}

	if c.inflight != nil {
		c.logger.Warn("Discarding unfinished interaction %q", c.inflight.Name)
	}

	c.inflight = &Interaction{
		Name:      name,
		StartTime: c.clock.Now(),
	}
	return *c.inflight, nil
}

// EndInteraction finalizes the in-flight interaction and appends it to the
// history. It is a no-op when no interaction is in flight.
func (c *Collector) EndInteraction() {
	if c.inflight == nil {
		return
	}

	c.inflight.EndTime = c.clock.Now()
	c.inflight.Duration = c.inflight.EndTime.Sub(c.inflight.StartTime)
	c.history = append(c.history, *c.inflight)
	c.inflight = nil
}

// RecordComponentLoad appends a load duration sample (milliseconds) to the
// named component's series, creating the series on first use.
func (c *Collector) RecordComponentLoad(componentName string, durationMs float64) {
	c.componentLoads[componentName] = append(c.componentLoads[componentName], durationMs)
	c.logger.Debug("Component %q loaded in %.1f ms", componentName, durationMs)
}

// RecordElementTiming appends a render timing sample (milliseconds) to the
// named element's series, creating the series on first use.
func (c *Collector) RecordElementTiming(elementName string, durationMs float64) {
	c.elementTimings[elementName] = append(c.elementTimings[elementName], durationMs)
	c.logger.Debug("Element %q rendered in %.1f ms", elementName, durationMs)
}

// Report returns a snapshot of the interaction history and per-series
// statistics recorded so far. The snapshot is independent of the Collector:
// later recording does not affect a report already taken.
func (c *Collector) Report() *Report {
	report := &Report{
		GeneratedAt:    c.clock.Now(),
		Interactions:   make([]Interaction, len(c.history)),
		ComponentStats: make(map[string]Stats, len(c.componentLoads)),
		ElementStats:   make(map[string]Stats, len(c.elementTimings)),
	}
	copy(report.Interactions, c.history)

	for name, samples := range c.componentLoads {
		if stats, ok := Compute(samples); ok {
			report.ComponentStats[name] = stats
		}
	}
	for name, samples := range c.elementTimings {
		if stats, ok := Compute(samples); ok {
			report.ElementStats[name] = stats
		}
	}

	return report
}
