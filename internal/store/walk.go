package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	perrors "github.com/pasture-cli/pasture/internal/errors"
)

// Walk enumerates every entry in the store, sorted ascending by path.
func (s *Store) Walk() ([]string, error) {
	return s.walk(s.root)
}

// WalkSubdirectory enumerates the entries under one relative subdirectory
// of the store, sorted ascending by path. The subdirectory is resolved
// through the same containment logic as entry names (no extension marker
// appended); a missing subdirectory is a hard error.
func (s *Store) WalkSubdirectory(subdirectory string) ([]string, error) {
	path, err := s.resolve(subdirectory, false)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", subdirectory, perrors.ErrEntryNotFound)
	}
	return s.walk(path)
}

// WalkSearch enumerates the entries whose symbolic name contains
// searchTerm, sorted ascending by path. Matching is pure substring
// containment: case-sensitive, no glob or regex semantics.
func (s *Store) WalkSearch(searchTerm string) ([]string, error) {
	entries, err := s.walk(s.root)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, entry := range entries {
		if strings.Contains(s.SymbolicNameFor(entry), searchTerm) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// walk gathers the .gpg files under base. Traversal errors on individual
// entries (permission-denied subtrees, broken symlinks) are skipped rather
// than aborting the whole walk.
func (s *Store) walk(base string) ([]string, error) {
	var entries []string

	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(path, gpgExtension) {
			entries = append(entries, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed while walking %s: %w", base, err)
	}

	sort.Strings(entries)
	return entries, nil
}
