package main

import (
	"github.com/spf13/cobra"

	"github.com/42795748/Raindrop-Convert-HTML/internal/commands"
)

var clearDoublesCmd = &cobra.Command{
	Use:   "clear-doubles",
	Short: "Remove duplicate library bookmarks (same URL)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		return commands.NewClearDoublesCommand(repo).Execute()
	},
}

func init() {
	rootCmd.AddCommand(clearDoublesCmd)
}
