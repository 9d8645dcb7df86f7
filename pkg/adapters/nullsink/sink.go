// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/valreport/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveSessionJSON does nothing.
func (s *Sink) SaveSessionJSON(data []byte) error {
	return nil
}

// SaveMetricsJSON does nothing.
func (s *Sink) SaveMetricsJSON(data []byte) error {
	return nil
}

// SaveScreenshot does nothing.
func (s *Sink) SaveScreenshot(index int, name string, data []byte) error {
	return nil
}

// SaveBanner does nothing.
func (s *Sink) SaveBanner(img image.Image) error {
	return nil
}

// SaveReportHTML does nothing.
func (s *Sink) SaveReportHTML(data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
