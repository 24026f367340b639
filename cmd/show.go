package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	perrors "github.com/pasture-cli/pasture/internal/errors"
	"github.com/pasture-cli/pasture/internal/extcmd"
	"github.com/pasture-cli/pasture/internal/ui"
	"github.com/pasture-cli/pasture/internal/workflows"
)

var (
	showClip bool
	showQR   bool
)

var ShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Decrypts an entry, or renders a subdirectory of the store as a tree",
	Long: `Shows a password store entry or a subtree of the store.

When the name resolves to a subdirectory of the store (or is omitted
entirely), the subtree is rendered instead of decrypting anything. A name
that is both a subdirectory and an entry renders the subtree; append a
component to address the entry inside it.

Cleartext goes to stdout by default. With --clip it goes to the clipboard
and is cleared after a configurable delay; with --qr it is rendered as a
terminal QR code.`,
	Args:             cobra.MaximumNArgs(1),
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")

		target := ""
		if len(args) == 1 {
			target = args[0]
		}

		dest := extcmd.DestStdout
		switch {
		case showClip:
			dest = extcmd.DestClip
		case showQR:
			dest = extcmd.DestQRCode
		}
		Logger.Debugf("Showing target=%q destination=%s", target, dest)

		result, err := workflows.Show(cmd.Context(), workflows.ShowOptions{
			Target:    target,
			Dest:      dest,
			StoreRoot: storeRoot,
			Colorize:  !color.NoColor,
		})
		if err != nil {
			if msg, ok := showFailureMessage(target, err); ok {
				printFailure(msg)
				return err
			}
			return Logger.ErrorfAndReturn("failed to show %s: %v", target, err)
		}

		if !result.Delivered {
			if result.Tree == "" {
				fmt.Println(ui.Warning.Sprint("The password store is empty."))
				return nil
			}
			fmt.Println(result.Tree)
			return nil
		}

		if result.ClipTimerSeconds > 0 {
			fmt.Println(ui.Success.Sprint("✓") + " Copied " + ui.Highlight.Sprint(target) +
				" to the clipboard. Clearing in " + strconv.Itoa(result.ClipTimerSeconds) + " seconds.")
			return waitAndClearClipboard(result.ClipTimerSeconds)
		}
		return nil
	},
}

// showFailureMessage maps the expected failure kinds to a user-facing
// message. Unexpected errors report false and go through the logger instead.
func showFailureMessage(target string, err error) (string, bool) {
	switch {
	case errors.Is(err, perrors.ErrStoreNotFound):
		return "The password store does not exist.\n" +
			ui.Info.Sprint("→") + " Create " + ui.Path.Sprint("~/.password-store") +
			" or point " + ui.Code.Sprint("--store") + " at an existing store.", true
	case errors.Is(err, perrors.ErrEntryNotFound):
		return ui.Highlight.Sprint(target) + " is not in the password store.", true
	case errors.Is(err, perrors.ErrPathEscape):
		return ui.Highlight.Sprint(target) + " escapes the password store.", true
	case errors.Is(err, perrors.ErrSubprocess):
		return "Failed to decrypt " + ui.Highlight.Sprint(target) + ".\n" +
			ui.Error.Sprint("Error: ") + err.Error(), true
	}
	return "", false
}

func init() {
	registerCommonFlags(ShowCmd.Flags())
	ShowCmd.Flags().BoolVarP(&showClip, "clip", "c", false, "copy the cleartext to the clipboard instead of printing it")
	ShowCmd.Flags().BoolVarP(&showQR, "qr", "q", false, "render the cleartext as a terminal QR code")
	ShowCmd.MarkFlagsMutuallyExclusive("clip", "qr")
}

// resetShowCommandState resets show command flags for testing.
func resetShowCommandState() {
	showClip = false
	showQR = false
}
