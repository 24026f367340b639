package staging

import (
	"fmt"
	"os"

	perrors "github.com/pasture-cli/pasture/internal/errors"
)

const (
	// cleartextPrefix makes staging files recognizable among unrelated
	// temp files in the staging directory.
	cleartextPrefix = "pasture-cleartext-"

	// requiredMode is the exact permission mode the staging directory must
	// carry. Looser modes risk exposing cleartext to other local users;
	// tighter ones indicate a misconfigured environment.
	requiredMode os.FileMode = 0o700

	// gpgExtension is where gpg writes ciphertext for a staged file.
	gpgExtension = ".gpg"
)

// Stage manages the quasi-private space that holds cleartext passwords
// while they are edited or decrypted.
//   - Defaults to $XDG_RUNTIME_DIR if no directory is configured.
//   - Requires that the backing directory is only accessible to the
//     calling user.
type Stage struct {
	root string
}

func defaultStagingDir() (string, error) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		return "", perrors.ErrRuntimeDirUnset
	}
	return dir, nil
}

// New validates configuredRoot and returns a Stage backed by it. An empty
// configuredRoot defaults to $XDG_RUNTIME_DIR.
func New(configuredRoot string) (*Stage, error) {
	root := configuredRoot
	if root == "" {
		var err error
		root, err = defaultStagingDir()
		if err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, perrors.ErrStagingNotFound)
	}
	if info.Mode().Perm() != requiredMode {
		return nil, fmt.Errorf("%s has mode %04o: %w",
			root, info.Mode().Perm(), perrors.ErrBadPermissions)
	}

	return &Stage{root: root}, nil
}

// Root returns the staging directory.
func (s *Stage) Root() string {
	return s.root
}

// NewEntry creates a uniquely named staging file and returns the Entry that
// owns it. Callers must arrange for Remove to run on every exit path; the
// file holds cleartext and must never outlive its caller's scope.
func (s *Stage) NewEntry() (*Entry, error) {
	f, err := os.CreateTemp(s.root, cleartextPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging file: %w", err)
	}
	return &Entry{file: f, path: f.Name()}, nil
}

// EncryptedSibling reads the ciphertext that the external encrypt step
// wrote alongside a staging file. It fails when no sibling exists, which
// callers must tolerate for brand-new entries with no prior ciphertext.
func EncryptedSibling(stagingPath string) ([]byte, error) {
	data, err := os.ReadFile(stagingPath + gpgExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to read encrypted output: %w", err)
	}
	return data, nil
}

// RemoveEncryptedSibling deletes the ciphertext sibling of a staging file
// once its bytes have been consumed.
func RemoveEncryptedSibling(stagingPath string) error {
	if err := os.Remove(stagingPath + gpgExtension); err != nil {
		return fmt.Errorf("failed to remove encrypted output: %w", err)
	}
	return nil
}
