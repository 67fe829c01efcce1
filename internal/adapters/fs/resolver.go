package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/jsstring/internal/core/domain"
	"go.trai.ch/jsstring/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob and the Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs expands files, directories and glob patterns into a sorted,
// deduplicated list of files. A file named directly is always kept; ignore
// patterns apply to glob matches and to directory contents.
func (r *Resolver) ResolveInputs(inputs, ignore []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoInputs
	}

	uniquePaths := make(map[string]bool)

	for _, input := range inputs {
		if info, err := os.Stat(input); err == nil {
			r.addPath(uniquePaths, input, info.IsDir(), ignore)
			continue
		}

		matches, err := filepath.Glob(input)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "input", input)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "cannot resolve inputs"), "input", input)
		}

		for _, match := range matches {
			if Ignored(filepath.Base(match), ignore) {
				continue
			}
			info, err := os.Stat(match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", match)
			}
			r.addPath(uniquePaths, match, info.IsDir(), ignore)
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

func (r *Resolver) addPath(paths map[string]bool, path string, isDir bool, ignore []string) {
	if !isDir {
		paths[filepath.Clean(path)] = true
		return
	}
	for file := range r.walker.WalkFiles(path, ignore) {
		paths[filepath.Clean(file)] = true
	}
}
