package staging

import (
	"fmt"
	"os"
)

// Entry is one staging file holding cleartext bytes. It owns the backing
// file: Remove must run when the entry's scope ends, success or failure.
type Entry struct {
	file    *os.File
	path    string
	removed bool
}

// Path returns the absolute path of the staging file.
func (e *Entry) Path() string {
	return e.path
}

// Write appends cleartext bytes to the staging file.
func (e *Entry) Write(p []byte) (int, error) {
	return e.file.Write(p)
}

// Sync flushes the staging file to disk. Call before handing the path to an
// external process.
func (e *Entry) Sync() error {
	return e.file.Sync()
}

// Remove closes and deletes the backing file. It is idempotent, and a
// deletion failure is returned rather than swallowed: a leaked cleartext
// file is a security-relevant event.
func (e *Entry) Remove() error {
	if e.removed {
		return nil
	}
	e.removed = true

	_ = e.file.Close()
	if err := os.Remove(e.path); err != nil {
		return fmt.Errorf("failed to remove staging file %s: %w", e.path, err)
	}
	return nil
}
