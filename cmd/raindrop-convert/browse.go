package main

import (
	"github.com/spf13/cobra"

	"github.com/42795748/Raindrop-Convert-HTML/internal/service"
	"github.com/42795748/Raindrop-Convert-HTML/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the local library in a terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		bookmarkSvc := service.NewBookmarkService(repo)
		folderSvc := service.NewFolderService(repo)
		return ui.NewApp(bookmarkSvc, folderSvc).Run()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
