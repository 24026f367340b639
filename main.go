package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/pasture-cli/pasture/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "pasture",
	Short: "Pasture - a command-line keeper for your encrypted password store.",
	Long: `Pasture interacts with an encrypted password store: a directory tree of
gpg-encrypted entries addressed by hierarchical names like email/work.

Available Commands:
  show       Decrypts an entry (or renders a subdirectory as a tree)
  edit       Edits an entry through a private staging file
  find       Searches the store by substring

Run 'pasture help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("pasture", "", true).Print()
		fmt.Println("Run 'pasture --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.ShowCmd)
	rootCmd.AddCommand(cmd.EditCmd)
	rootCmd.AddCommand(cmd.FindCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
