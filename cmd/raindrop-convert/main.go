// Package main is the entry point for the raindrop-convert CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/42795748/Raindrop-Convert-HTML/internal/config"
	"github.com/42795748/Raindrop-Convert-HTML/internal/repository"
)

var cfg = config.Load()

// rootCmd is the base command for the raindrop-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "raindrop-convert",
	Short: "Convert Raindrop.io exports into browser bookmark files",
	Long: `raindrop-convert turns a Raindrop.io CSV export into a Netscape
bookmark file that browsers can import. It can also keep a local
bookmark library: import from CSV or HTML, export back to HTML,
de-duplicate, and browse in a terminal UI.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "path to the bookmark library database (default: ~/.bookmarks-convert/bookmarks.db)")
}

// openRepository resolves the database path from the flag and config,
// makes sure its directory exists, and opens the library.
func openRepository(cmd *cobra.Command) (*repository.SQLiteRepository, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	cfg.WithDBPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := repository.NewSQLiteRepository(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
