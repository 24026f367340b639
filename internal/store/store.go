package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/pasture-cli/pasture/internal/errors"
)

// gpgExtension marks encrypted entries on disk.
const gpgExtension = ".gpg"

// Store interacts with the configured root of the password store.
// The root must exist at time of construction and is immutable thereafter.
type Store struct {
	root     string // canonical absolute path
	colorize bool
}

func defaultStoreRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".password-store"), nil
}

// New validates configuredRoot and returns a Store rooted there. An empty
// configuredRoot defaults to ~/.password-store.
func New(configuredRoot string, colorize bool) (*Store, error) {
	root := configuredRoot
	if root == "" {
		var err error
		root, err = defaultStoreRoot()
		if err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, perrors.ErrStoreNotFound)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store root %s: %w", root, err)
	}
	canonical, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store root %s: %w", root, err)
	}

	return &Store{root: canonical, colorize: colorize}, nil
}

// Root returns the canonical store root.
func (s *Store) Root() string {
	return s.root
}

// PathFor resolves a symbolic entry name to the underlying path in the
// password store. The entry must exist.
//
// The result is canonical: symlinks and ".." segments are resolved before
// the containment check, so a name may transit through ".." as long as it
// lands back inside the root, but any resolution outside the root is
// rejected. The check races against concurrent filesystem mutation (a
// symlink swapped in after resolution); that window is accepted for a
// single-user tool.
func (s *Store) PathFor(name string) (string, error) {
	return s.resolve(name, true)
}

// PathForWrite resolves a symbolic entry name to a path suitable for
// creating or overwriting the entry. Unlike PathFor, the entry itself need
// not exist yet; its parent directory must, and must lie inside the store.
func (s *Store) PathForWrite(name string) (string, error) {
	candidate := s.compose(name, true)

	dir, base := filepath.Split(candidate)
	canonicalDir, err := filepath.EvalSymlinks(filepath.Clean(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", name, perrors.ErrEntryNotFound)
		}
		return "", fmt.Errorf("resolving %s: %w", name, err)
	}
	if !s.contains(canonicalDir) {
		return "", fmt.Errorf("%s: %w", name, perrors.ErrPathEscape)
	}

	return filepath.Join(canonicalDir, base), nil
}

// compose joins a relative name under the root, optionally appending the
// extension marker. The marker is appended as a suffix to the whole file
// name, so dots in entry names survive intact (klaus.txt -> klaus.txt.gpg).
func (s *Store) compose(name string, addExtension bool) string {
	candidate := filepath.Join(s.root, filepath.FromSlash(name))
	if addExtension {
		candidate += gpgExtension
	}
	return candidate
}

func (s *Store) resolve(name string, addExtension bool) (string, error) {
	candidate := s.compose(name, addExtension)

	canonical, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", name, perrors.ErrEntryNotFound)
		}
		return "", fmt.Errorf("resolving %s: %w", name, err)
	}
	if !s.contains(canonical) {
		return "", fmt.Errorf("%s: %w", name, perrors.ErrPathEscape)
	}
	return canonical, nil
}

// contains reports whether path lies at or under the canonical root.
// Comparison is component-wise, not a raw string prefix, so a root /a/b
// never claims an unrelated sibling /a/bc.
func (s *Store) contains(path string) bool {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}

// SymbolicNameFor returns the symbolic name of an entry path. The path must
// be absolute and lie under the store root; every path reaching this
// function was produced by PathFor or by enumeration under the root.
func (s *Store) SymbolicNameFor(entryPath string) string {
	rel, err := filepath.Rel(s.root, entryPath)
	if err != nil || rel == "." {
		// The root itself maps to the empty name.
		return ""
	}
	return filepath.ToSlash(strings.TrimSuffix(rel, gpgExtension))
}
