// Package cas implements the report store, one JSON file per input path.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using a file-per-input strategy.
// The cache directory is passed on every call.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the report stored for path. Returns nil, nil if not found.
func (s *Store) Get(dir, path string) (*domain.FileReport, error) {
	filename := s.filename(dir, path)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, storeError(domain.ErrStoreReadFailed, err, filename)
	}

	var report domain.FileReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, storeError(domain.ErrStoreUnmarshalFailed, err, filename)
	}

	return &report, nil
}

// Put stores the report. The file is replaced atomically so concurrent
// readers never observe a partial report.
func (s *Store) Put(dir string, report domain.FileReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return storeError(domain.ErrStoreMarshalFailed, err, report.Path)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return storeError(domain.ErrStoreCreateFailed, err, dir)
	}

	filename := s.filename(dir, report.Path)
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, filename)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return storeError(domain.ErrStoreWriteFailed, err, filename)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return storeError(domain.ErrStoreWriteFailed, err, filename)
	}
	if err := tmp.Close(); err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, filename)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, filename)
	}

	return nil
}

// filename derives the report file from the absolute input path.
func (s *Store) filename(dir, path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.Join(dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(path)))
}

func storeError(sentinel, cause error, path string) error {
	err := zerr.With(zerr.Wrap(sentinel, "report store"), "reason", cause.Error())
	return zerr.With(err, "path", path)
}
