package ports

import "go.trai.ch/jsstring/internal/core/domain"

// InputReader defines the interface for reading input files as UTF-16 lines.
//
//go:generate mockgen -destination=mocks/reader_mock.go -package=mocks -source=reader.go
type InputReader interface {
	// ReadLines decodes the file at path and splits it into lines.
	// Line terminators are not part of the returned units.
	ReadLines(path string, enc domain.Encoding) ([]domain.Line, error)
}
