// Package logger provides leveled logging for pasture CLI commands.
//
// The logger supports verbosity levels controlled by command-line flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages
//
// Warnings and errors are always shown on stderr. Commands create a logger
// in their PersistentPreRun and share it across the command tree.
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("walked %d entries", len(entries))
package logger
