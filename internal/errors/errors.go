package errors

import "errors"

// Store errors indicate problems locating or resolving entries.
var (
	// ErrStoreNotFound indicates the password store root does not exist or is not a directory.
	ErrStoreNotFound = errors.New("password store root not found")

	// ErrEntryNotFound indicates the named entry does not exist in the store.
	ErrEntryNotFound = errors.New("no such entry in the password store")

	// ErrPathEscape indicates a name resolved to a location outside the store root.
	ErrPathEscape = errors.New("path resolves outside the password store")
)

// Staging errors indicate problems with the cleartext staging directory.
var (
	// ErrStagingNotFound indicates the staging directory does not exist or is not a directory.
	ErrStagingNotFound = errors.New("staging directory not found")

	// ErrRuntimeDirUnset indicates XDG_RUNTIME_DIR is unset and no staging directory was configured.
	ErrRuntimeDirUnset = errors.New("XDG_RUNTIME_DIR is not set")

	// ErrBadPermissions indicates the staging directory mode is not exactly 0700.
	ErrBadPermissions = errors.New("staging directory permissions must be exactly 0700")
)

// External tool errors indicate failures of the processes pasture orchestrates.
var (
	// ErrEditorUnset indicates no editor is configured and EDITOR is not set.
	ErrEditorUnset = errors.New("no editor configured and EDITOR is not set")

	// ErrSubprocess indicates an external command exited nonzero or was signaled.
	ErrSubprocess = errors.New("external command failed")
)
