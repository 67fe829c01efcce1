package ports

import "go.trai.ch/jsstring/internal/core/domain"

// ReportStore defines the interface for storing and retrieving file reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the report stored for path under the cache directory dir.
	// Returns nil, nil if not found.
	Get(dir, path string) (*domain.FileReport, error)

	// Put stores the report under the cache directory dir.
	Put(dir string, report domain.FileReport) error
}
