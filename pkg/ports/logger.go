// Package ports defines the interfaces between the core and its adapters.
package ports

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LevelDebug is for component-level internal processing detail.
	LevelDebug LogLevel = iota
	// LevelInfo is for orchestration-level progress messages.
	LevelInfo
	// LevelWarn is for recoverable problems that do not stop the run.
	LevelWarn
	// LevelError is for problems that abort the run.
	LevelError
	// LevelQuiet suppresses all output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown strings map to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger abstracts logging with multi-language message support.
// The msg parameter is a translatable message key.
type Logger interface {
	// Debug logs internal processing detail.
	Debug(msg string, args ...interface{})

	// Info logs an orchestration-level progress message.
	Info(msg string, args ...interface{})

	// Warn logs a recoverable problem.
	Warn(msg string, args ...interface{})

	// Error logs a problem that aborts the run.
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with a component name.
	WithComponent(component string) Logger
}
