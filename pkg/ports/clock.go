package ports

import "time"

// Clock abstracts the current time so interaction timing and report
// timestamps are testable. Values returned by Now carry Go's monotonic
// reading, so subtracting two of them gives a monotonic duration.
type Clock interface {
	Now() time.Time
}
