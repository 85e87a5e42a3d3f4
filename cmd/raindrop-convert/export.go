package main

import (
	"github.com/spf13/cobra"

	"github.com/42795748/Raindrop-Convert-HTML/internal/commands"
)

var exportCmd = &cobra.Command{
	Use:   "export <output.html>",
	Short: "Export the local library to a Netscape bookmark file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		title, _ := cmd.Flags().GetString("title")
		return commands.NewExportCommand(repo, title).Execute(args[0])
	},
}

func init() {
	exportCmd.Flags().String("title", cfg.Title, "document title for the generated file")
	rootCmd.AddCommand(exportCmd)
}
