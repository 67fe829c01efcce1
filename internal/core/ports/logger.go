package ports

import (
	"io"

	"go.trai.ch/jsstring/internal/core/domain"
)

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetOutput redirects log output.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON and text output.
	SetJSON(enable bool)
	// SetLevel sets the minimum level that is written.
	SetLevel(level domain.LogLevel)
}
