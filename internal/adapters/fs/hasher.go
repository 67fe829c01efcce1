package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes input digests with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	hasher := xxhash.New()
	if err := hashFile(hasher, path); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}

// ComputeInputHash hashes the encoding label followed by the file content,
// so that rereading a file with another encoding invalidates its report.
func (h *Hasher) ComputeInputHash(path string, enc domain.Encoding) (string, error) {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(string(enc))
	_, _ = hasher.Write([]byte{0})

	if err := hashFile(hasher, path); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func hashFile(w io.Writer, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return nil
}
