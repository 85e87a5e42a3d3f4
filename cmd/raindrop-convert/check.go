package main

import (
	"github.com/spf13/cobra"

	"github.com/42795748/Raindrop-Convert-HTML/internal/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.html>",
	Short: "Parse a Netscape bookmark file and report its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.NewCheckCommand().Execute(args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
