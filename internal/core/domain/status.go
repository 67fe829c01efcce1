package domain

import "strings"

// FileStatus represents the lifecycle state of one input file in a batch run.
type FileStatus string

const (
	// FileStatusPending indicates the file is waiting for a worker.
	FileStatusPending FileStatus = "pending"
	// FileStatusRunning indicates the file is being analyzed.
	FileStatusRunning FileStatus = "running"
	// FileStatusAnalyzed indicates the file was analyzed successfully.
	FileStatusAnalyzed FileStatus = "analyzed"
	// FileStatusCached indicates a stored report with a matching digest was reused.
	FileStatusCached FileStatus = "cached"
	// FileStatusFailed indicates the file could not be read or decoded.
	FileStatusFailed FileStatus = "failed"
)

// IsTerminal reports whether the status is a final state.
func (s FileStatus) IsTerminal() bool {
	switch s {
	case FileStatusAnalyzed, FileStatusCached, FileStatusFailed:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a configuration value to a LogLevel.
// The empty string selects info.
func ParseLogLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug, true
	case "", "info":
		return LogLevelInfo, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "error":
		return LogLevelError, true
	default:
		return LogLevelInfo, false
	}
}
