package main

import (
	"github.com/spf13/cobra"

	"github.com/42795748/Raindrop-Convert-HTML/internal/commands"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.csv> <output.html>",
	Short: "Convert a Raindrop CSV export to a Netscape bookmark file",
	Long: `Convert reads a Raindrop.io CSV export (title, url, folder, created
columns), rebuilds the folder hierarchy from the slash-delimited folder
paths, and writes a Netscape bookmark file browsers can import.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		return commands.NewConvertCommand(title).Execute(args[0], args[1])
	},
}

func init() {
	convertCmd.Flags().String("title", cfg.Title, "document title for the generated file")
	rootCmd.AddCommand(convertCmd)
}
