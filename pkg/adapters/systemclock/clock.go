// Package systemclock provides the real-time implementation of ports.Clock.
package systemclock

import (
	"time"

	"github.com/user/valreport/pkg/ports"
)

// Clock implements ports.Clock using the system clock.
type Clock struct{}

// New creates a new Clock.
func New() *Clock {
	return &Clock{}
}

// Now returns the current time, including Go's monotonic reading.
func (c *Clock) Now() time.Time {
	return time.Now()
}

// Ensure Clock implements ports.Clock
var _ ports.Clock = (*Clock)(nil)
