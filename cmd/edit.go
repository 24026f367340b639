package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	perrors "github.com/pasture-cli/pasture/internal/errors"
	"github.com/pasture-cli/pasture/internal/ui"
	"github.com/pasture-cli/pasture/internal/workflows"
)

var (
	editStagingDir string
	editEditor     string
)

var EditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edits an entry through a private cleartext staging file",
	Long: `Edits a password store entry in your editor.

The entry is decrypted into a staging file inside a private directory
($XDG_RUNTIME_DIR unless configured otherwise, required to be mode 0700),
the editor runs on that file, and the result is re-encrypted back into the
store. The staging file is destroyed on every exit path, including editor
failures.

A name whose entry does not exist yet is created, as long as its parent
directory already exists in the store.`,
	Args:             cobra.ExactArgs(1),
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting edit command")
		target := args[0]

		result, err := workflows.Edit(cmd.Context(), workflows.EditOptions{
			Target:     target,
			StoreRoot:  storeRoot,
			StagingDir: editStagingDir,
			Editor:     editEditor,
		})
		if err != nil {
			if msg, ok := editFailureMessage(target, err); ok {
				printFailure(msg)
				return err
			}
			return Logger.ErrorfAndReturn("failed to edit %s: %v", target, err)
		}

		verb := "Updated"
		if result.Created {
			verb = "Created"
		}
		fmt.Println(ui.Success.Sprint("✓") + " " + verb + " " + ui.Highlight.Sprint(target))
		return nil
	},
}

// editFailureMessage maps the expected failure kinds to a user-facing
// message. Unexpected errors report false and go through the logger instead.
func editFailureMessage(target string, err error) (string, bool) {
	switch {
	case errors.Is(err, perrors.ErrStoreNotFound):
		return "The password store does not exist.", true
	case errors.Is(err, perrors.ErrStagingNotFound):
		return "The staging directory does not exist.\n" +
			ui.Info.Sprint("→") + " Create it with mode 0700, or set " +
			ui.Code.Sprint("--staging-dir") + ".", true
	case errors.Is(err, perrors.ErrBadPermissions):
		return "The staging directory must be mode 0700 and nothing else.\n" +
			ui.Info.Sprint("→") + " Fix it with " + ui.Code.Sprint("chmod 700 <dir>") + ".", true
	case errors.Is(err, perrors.ErrRuntimeDirUnset):
		return "No staging directory is configured and " + ui.Code.Sprint("$XDG_RUNTIME_DIR") +
			" is unset.\n" + ui.Info.Sprint("→") + " Set one with " +
			ui.Code.Sprint("--staging-dir") + ".", true
	case errors.Is(err, perrors.ErrEditorUnset):
		return "No editor is configured.\n" +
			ui.Info.Sprint("→") + " Set " + ui.Code.Sprint("$EDITOR") +
			", the config file, or " + ui.Code.Sprint("--editor") + ".", true
	case errors.Is(err, perrors.ErrEntryNotFound):
		return ui.Highlight.Sprint(target) + " has no parent directory in the store.", true
	case errors.Is(err, perrors.ErrPathEscape):
		return ui.Highlight.Sprint(target) + " escapes the password store.", true
	case errors.Is(err, perrors.ErrSubprocess):
		return "Failed to edit " + ui.Highlight.Sprint(target) + ".\n" +
			ui.Error.Sprint("Error: ") + err.Error(), true
	}
	return "", false
}

func init() {
	registerCommonFlags(EditCmd.Flags())
	EditCmd.Flags().StringVar(&editStagingDir, "staging-dir", "", "override the cleartext staging directory")
	EditCmd.Flags().StringVar(&editEditor, "editor", "", "override the editor command")
}

// resetEditCommandState resets edit command flags for testing.
func resetEditCommandState() {
	editStagingDir = ""
	editEditor = ""
}
