package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/pasture-cli/pasture/internal/errors"
)

// newTestStore creates a store root populated with the given entry files
// (paths relative to the root, extension included).
func newTestStore(t *testing.T, entries ...string) (*Store, string) {
	t.Helper()
	root := makeStoreDir(t, entries...)

	s, err := New(root, false)
	if err != nil {
		t.Fatalf("Failed to construct store: %v", err)
	}
	return s, s.Root()
}

func makeStoreDir(t *testing.T, entries ...string) string {
	t.Helper()
	root, err := os.MkdirTemp("", "pasture-store-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(root) })

	for _, entry := range entries {
		path := filepath.Join(root, filepath.FromSlash(entry))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create entry dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("ciphertext"), 0644); err != nil {
			t.Fatalf("Failed to create entry file: %v", err)
		}
	}
	return root
}

func TestNewRequiresExistingRoot(t *testing.T) {
	_, err := New(filepath.Join(os.TempDir(), "pasture-no-such-root"), false)
	if !errors.Is(err, perrors.ErrStoreNotFound) {
		t.Errorf("Expected ErrStoreNotFound, got: %v", err)
	}
}

func TestNewRejectsFileRoot(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pasture-store-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	file := filepath.Join(tmpDir, "not-a-dir")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	_, err = New(file, false)
	if !errors.Is(err, perrors.ErrStoreNotFound) {
		t.Errorf("Expected ErrStoreNotFound, got: %v", err)
	}
}

func TestNewDefaultsToHomePasswordStore(t *testing.T) {
	home, err := os.MkdirTemp("", "pasture-home-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(home)
	t.Setenv("HOME", home)

	if _, err := New("", false); !errors.Is(err, perrors.ErrStoreNotFound) {
		t.Errorf("Expected ErrStoreNotFound before the default root exists, got: %v", err)
	}

	if err := os.Mkdir(filepath.Join(home, ".password-store"), 0755); err != nil {
		t.Fatalf("Failed to create default root: %v", err)
	}
	s, err := New("", false)
	if err != nil {
		t.Fatalf("Expected default root to be accepted, got: %v", err)
	}
	if filepath.Base(s.Root()) != ".password-store" {
		t.Errorf("Expected root to end in .password-store, got: %s", s.Root())
	}
}

func TestPathForBasic(t *testing.T) {
	s, root := newTestStore(t, "hello-there.gpg")

	path, err := s.PathFor("hello-there")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if want := filepath.Join(root, "hello-there.gpg"); path != want {
		t.Errorf("Expected %s, got: %s", want, path)
	}
}

func TestPathForRejectsNonexistentName(t *testing.T) {
	s, _ := newTestStore(t, "hello-there.gpg")

	_, err := s.PathFor("general-kenobi")
	if !errors.Is(err, perrors.ErrEntryNotFound) {
		t.Errorf("Expected ErrEntryNotFound, got: %v", err)
	}
}

func TestPathForAllowsDotsInBasename(t *testing.T) {
	s, root := newTestStore(t, "klaus.txt.gpg")

	path, err := s.PathFor("klaus.txt")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if want := filepath.Join(root, "klaus.txt.gpg"); path != want {
		t.Errorf("Expected dots in the name to survive, got: %s", path)
	}
}

func TestPathForAllowsInternalParentSegments(t *testing.T) {
	s, root := newTestStore(t, "hello-there.gpg", "general/kenobi.gpg")

	path, err := s.PathFor("general/kenobi/../../hello-there")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if want := filepath.Join(root, "hello-there.gpg"); path != want {
		t.Errorf("Expected %s, got: %s", want, path)
	}
}

func TestPathForRejectsEscapingParentSegments(t *testing.T) {
	s, root := newTestStore(t, "hello-there.gpg")

	// Put a real entry outside the store so only the containment check can
	// reject the resolution.
	outside := filepath.Join(filepath.Dir(root), "pasture-escape-target")
	if err := os.MkdirAll(outside, 0755); err != nil {
		t.Fatalf("Failed to create outside dir: %v", err)
	}
	defer os.RemoveAll(outside)
	if err := os.WriteFile(filepath.Join(outside, "klaus.gpg"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create outside entry: %v", err)
	}

	_, err := s.PathFor("../pasture-escape-target/klaus")
	if !errors.Is(err, perrors.ErrPathEscape) {
		t.Errorf("Expected ErrPathEscape, got: %v", err)
	}
}

func TestPathForRejectsSymlinkEscape(t *testing.T) {
	s, root := newTestStore(t)

	outside, err := os.MkdirTemp("", "pasture-symlink-target-*")
	if err != nil {
		t.Fatalf("Failed to create outside dir: %v", err)
	}
	defer os.RemoveAll(outside)
	if err := os.WriteFile(filepath.Join(outside, "secret.gpg"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create outside entry: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(root, "sneaky")); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	_, err = s.PathFor("sneaky/secret")
	if !errors.Is(err, perrors.ErrPathEscape) {
		t.Errorf("Expected ErrPathEscape, got: %v", err)
	}
}

func TestSymbolicNameRoundTrip(t *testing.T) {
	names := []string{"a", "a/b", "x/y/z", "klaus.txt"}
	var entries []string
	for _, name := range names {
		entries = append(entries, name+".gpg")
	}
	s, _ := newTestStore(t, entries...)

	for _, name := range names {
		path, err := s.PathFor(name)
		if err != nil {
			t.Fatalf("PathFor(%q) failed: %v", name, err)
		}
		if got := s.SymbolicNameFor(path); got != name {
			t.Errorf("SymbolicNameFor(PathFor(%q)) = %q, want %q", name, got, name)
		}
	}
}

func TestSymbolicNameForRoot(t *testing.T) {
	s, root := newTestStore(t)
	if got := s.SymbolicNameFor(root); got != "" {
		t.Errorf("Expected the root to map to the empty name, got: %q", got)
	}
}

func TestPathForWriteNewEntry(t *testing.T) {
	s, root := newTestStore(t, "b/existing.gpg")

	path, err := s.PathForWrite("b/new")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if want := filepath.Join(root, "b", "new.gpg"); path != want {
		t.Errorf("Expected %s, got: %s", want, path)
	}
}

func TestPathForWriteRequiresParentDirectory(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.PathForWrite("missing/child"); err == nil {
		t.Error("Expected an error when the parent directory does not exist")
	}
}

func TestPathForWriteRejectsEscape(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.PathForWrite("../outside")
	if !errors.Is(err, perrors.ErrPathEscape) {
		t.Errorf("Expected ErrPathEscape, got: %v", err)
	}
}

func TestWalkReturnsSortedEntries(t *testing.T) {
	s, root := newTestStore(t, "e.gpg", "a/d.gpg", "a/b/c.gpg", "ignored.txt")

	entries, err := s.Walk()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	want := []string{
		filepath.Join(root, "a/b/c.gpg"),
		filepath.Join(root, "a/d.gpg"),
		filepath.Join(root, "e.gpg"),
	}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got: %d (%v)", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Entry %d: expected %s, got: %s", i, want[i], entries[i])
		}
	}
}

func TestWalkSubdirectoryMissingIsHardError(t *testing.T) {
	s, _ := newTestStore(t, "a/b.gpg")

	if _, err := s.WalkSubdirectory("nope"); err == nil {
		t.Error("Expected an error for a missing subdirectory")
	}
}

func TestWalkSearchIsPureSubstring(t *testing.T) {
	s, root := newTestStore(t, "a.gpg", "b.gpg", "b/a.gpg", "d/a.gpg")

	entries, err := s.WalkSearch("a")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.gpg"),
		filepath.Join(root, "b/a.gpg"),
		filepath.Join(root, "d/a.gpg"),
	}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got: %d (%v)", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Match %d: expected %s, got: %s", i, want[i], entries[i])
		}
	}
}

func TestWalkSearchIsCaseSensitive(t *testing.T) {
	s, _ := newTestStore(t, "Email/work.gpg")

	entries, err := s.WalkSearch("email")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no matches for a case mismatch, got: %v", entries)
	}
}

func TestWalkSkipsBrokenSymlinks(t *testing.T) {
	s, root := newTestStore(t, "a.gpg")
	dangling := filepath.Join(root, "dangling.gpg")
	if err := os.Symlink(filepath.Join(root, "no-such-target"), dangling); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	entries, err := s.Walk()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(entries) != 1 || entries[0] != filepath.Join(root, "a.gpg") {
		t.Errorf("Expected only the regular entry, got: %v", entries)
	}
}

func TestWalkSkipsUnreadableSubtrees(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not bind root")
	}

	s, root := newTestStore(t, "a.gpg", "blocked/c.gpg")
	blocked := filepath.Join(root, "blocked")
	if err := os.Chmod(blocked, 0o000); err != nil {
		t.Fatalf("Failed to chmod subtree: %v", err)
	}
	t.Cleanup(func() { os.Chmod(blocked, 0o755) }) //nolint:errcheck

	entries, err := s.Walk()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(entries) != 1 || entries[0] != filepath.Join(root, "a.gpg") {
		t.Errorf("Expected the unreadable subtree to be skipped, got: %v", entries)
	}
}
