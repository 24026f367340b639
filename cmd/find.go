package cmd

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	perrors "github.com/pasture-cli/pasture/internal/errors"
	"github.com/pasture-cli/pasture/internal/ui"
	"github.com/pasture-cli/pasture/internal/workflows"
)

var FindCmd = &cobra.Command{
	Use:   "find <term>",
	Short: "Renders the tree of entries whose name contains the search term",
	Long: `Searches the password store by substring.

Every entry whose full hierarchical name contains the term is rendered as a
tree, folders included. Matching is case-sensitive and purely literal; no
globbing or regular expressions.`,
	Args:             cobra.ExactArgs(1),
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting find command")
		term := args[0]

		spinner, cleanup := startSpinner("Searching the password store...", verbose)
		defer cleanup()

		result, err := workflows.Find(cmd.Context(), workflows.FindOptions{
			Term:      term,
			StoreRoot: storeRoot,
			Colorize:  !color.NoColor,
		})
		if err != nil {
			if errors.Is(err, perrors.ErrStoreNotFound) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " The password store does not exist."
				return err
			}
			return Logger.ErrorfAndReturn("search failed: %v", err)
		}

		if result.Tree == "" {
			spinner.FinalMSG = ui.Warning.Sprint("No entries match ") + ui.Highlight.Sprint(term)
			return nil
		}
		spinner.FinalMSG = result.Tree
		return nil
	},
}

func init() {
	registerCommonFlags(FindCmd.Flags())
}
