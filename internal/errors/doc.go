// Package errors provides typed error values for the pasture application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Store errors: resolution and lookup failures (ErrStoreNotFound,
//     ErrEntryNotFound, ErrPathEscape)
//   - Staging errors: cleartext staging directory failures
//     (ErrStagingNotFound, ErrBadPermissions)
//   - External tool errors: failures of the processes pasture orchestrates
//     (ErrEditorUnset, ErrSubprocess)
//
// # Usage
//
// Return errors from internal packages:
//
//	if mode != 0o700 {
//	    return nil, errors.ErrBadPermissions
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Show(ctx, opts)
//	if errors.Is(err, perrors.ErrEntryNotFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("resolving %s: %w", name, errors.ErrPathEscape)
//
// Pasture never retries: every failure propagates to the CLI layer, which
// prints it and exits nonzero.
package errors
