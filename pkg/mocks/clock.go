package mocks

import (
	"time"

	"github.com/user/valreport/pkg/ports"
)

// Clock is a mock implementation of ports.Clock. Each call to Now returns
// the current time and then advances it by Step, so consecutive timestamps
// are strictly increasing and fully deterministic.
type Clock struct {
	Current time.Time
	Step    time.Duration
}

// NewClock creates a mock Clock starting at a fixed instant.
func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{Current: start, Step: step}
}

func (m *Clock) Now() time.Time {
	now := m.Current
	m.Current = m.Current.Add(m.Step)
	return now
}

var _ ports.Clock = (*Clock)(nil)
