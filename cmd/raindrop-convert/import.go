package main

import (
	"github.com/spf13/cobra"

	"github.com/42795748/Raindrop-Convert-HTML/internal/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import bookmarks into the local library",
	Long: `Import loads bookmarks into the local library from a Raindrop CSV
export (.csv) or an existing Netscape bookmark file (anything else).
Folders are matched by name and parent, so repeated imports reuse the
same folder rows.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		return commands.NewImportCommand(repo).Execute(args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
