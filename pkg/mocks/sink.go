package mocks

import (
	"image"

	"github.com/user/valreport/pkg/ports"
)

// Sink is a mock implementation of ports.DebugSink that records what was
// saved for test verification.
type Sink struct {
	EnabledValue bool

	SessionJSON []byte
	MetricsJSON []byte
	Screenshots map[string][]byte
	Banner      image.Image
	ReportHTML  []byte
}

// NewSink creates a new enabled mock Sink.
func NewSink() *Sink {
	return &Sink{
		EnabledValue: true,
		Screenshots:  make(map[string][]byte),
	}
}

func (m *Sink) Enabled() bool {
	return m.EnabledValue
}

func (m *Sink) SaveSessionJSON(data []byte) error {
	m.SessionJSON = data
	return nil
}

func (m *Sink) SaveMetricsJSON(data []byte) error {
	m.MetricsJSON = data
	return nil
}

func (m *Sink) SaveScreenshot(index int, name string, data []byte) error {
	m.Screenshots[name] = data
	return nil
}

func (m *Sink) SaveBanner(img image.Image) error {
	m.Banner = img
	return nil
}

func (m *Sink) SaveReportHTML(data []byte) error {
	m.ReportHTML = data
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
