package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"

	"github.com/pasture-cli/pasture/internal/extcmd"
	"github.com/pasture-cli/pasture/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The
// cleanup function automatically calls ui.EnsureNewline() on the final
// message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// waitAndClearClipboard sleeps for the configured number of seconds and then
// empties the clipboard. An interrupt cuts the wait short: the clipboard is
// cleared immediately and the interrupt is surfaced as an error so the
// process still exits nonzero.
func waitAndClearClipboard(seconds int) error {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	select {
	case <-time.After(time.Duration(seconds) * time.Second):
		Logger.Debugf("Clipboard timer expired after %d seconds", seconds)
		return extcmd.ClearClipboard()
	case sig := <-interrupts:
		Logger.Debugf("Clipboard timer interrupted by %v", sig)
		if err := extcmd.ClearClipboard(); err != nil {
			return err
		}
		return fmt.Errorf("interrupted by %v before the clipboard timer expired", sig)
	}
}

// printFailure writes a red-cross failure line, matching the texture of the
// spinner FinalMSG failure messages.
func printFailure(message string) {
	fmt.Println(ui.Error.Sprint("✗") + " " + message)
}
