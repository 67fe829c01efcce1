package ports

import "go.trai.ch/jsstring/internal/core/domain"

// Hasher defines the interface for computing input digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeInputHash computes the digest of an input file read with the given encoding.
	ComputeInputHash(path string, enc domain.Encoding) (string, error)
}
