// Package workflows provides high-level orchestration for pasture commands.
//
// Workflows coordinate multiple operations across packages (configs, store,
// staging, extcmd, audit) to implement complete user-facing features. Each
// workflow handles a single command's business logic, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading configuration
//   - Resolving and validating paths
//   - Driving the external gpg/editor steps
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Show: renders a subdirectory tree or decrypts one entry
//   - Edit: edits an entry through a self-cleaning staging file
//   - Find: renders the tree of entries matching a substring
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.Show(ctx, opts)
//	if errors.Is(err, perrors.ErrPathEscape) {
//	    // Refuse and explain
//	}
//
// No workflow retries anything; failures propagate to the CLI layer, which
// prints them and exits nonzero.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// The only real suspension points are waits on external process completion.
package workflows
