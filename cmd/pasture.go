package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/pasture-cli/pasture/internal/logging"
)

var (
	verbose   bool
	debug     bool
	storeRoot string
	Logger    logger.Logger
)

// registerCommonFlags wires the flags shared by every pasture command onto
// the given flag set.
func registerCommonFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVar(&debug, "debug", false, "enable debug output")
	flags.StringVar(&storeRoot, "store", "", "override the password store root directory")
}

// initLogger builds the shared logger from the common flags. Installed as
// the PersistentPreRun of every command so flag parsing has happened first.
func initLogger(cmd *cobra.Command, args []string) {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	storeRoot = ""
	resetShowCommandState()
	resetEditCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
