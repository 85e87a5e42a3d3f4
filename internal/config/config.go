package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// DBPath is where the local bookmark library lives.
	DBPath string
	// Title is the document title written into generated bookmark files.
	Title string
}

// Load builds the configuration from defaults and RAINDROP_* environment
// variables (RAINDROP_DB, RAINDROP_TITLE).
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("raindrop")
	v.AutomaticEnv()
	v.SetDefault("db", getDefaultDBPath())
	v.SetDefault("title", "Bookmarks")

	return &Config{
		DBPath: v.GetString("db"),
		Title:  v.GetString("title"),
	}
}

// WithDBPath sets a custom database path; an empty path keeps the
// current one.
func (c *Config) WithDBPath(path string) *Config {
	if path != "" {
		c.DBPath = path
	}
	return c
}

func getDefaultDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "bookmarks.db"
	}
	return filepath.Join(homeDir, ".bookmarks-convert", "bookmarks.db")
}
