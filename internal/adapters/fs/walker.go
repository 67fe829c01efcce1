// Package fs provides file system adapters for resolving, hashing and reading input files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":      true,
	".jj":       true,
	".jsstring": true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping version control and store
// directories and any entry whose base name matches an ignore pattern.
// Yielded paths start with root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root && d.IsDir() && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}

			if path != root && Ignored(d.Name(), ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// Ignored reports whether name matches one of the ignore patterns.
// Malformed patterns never match.
func Ignored(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, err := filepath.Match(ignore, name); err == nil && matched {
			return true
		}
	}
	return false
}
