// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (paths,
// errors, tree branches, etc.) that render appropriately based on terminal
// capabilities. When colors are available, content is colorized. When
// NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Code.Sprint("pasture edit email/work")  // Commands
//	ui.Path.Sprint("~/.password-store")        // File paths
//	ui.Success.Sprint("✓")                     // Success indicators
//	ui.Error.Sprint("✗")                       // Error indicators
//	ui.Info.Sprint("→")                        // Informational hints
//	ui.Highlight.Sprint("email/work")          // Entry names
//	ui.Branch.Sprint("*   email")              // Tree ancestor lines
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
package ui
