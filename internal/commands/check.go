package commands

import (
	"fmt"
	"os"

	"github.com/42795748/Raindrop-Convert-HTML/internal/netscape"
)

// CheckCommand parses a Netscape bookmark file and reports what it
// contains. Useful as a sanity check on converter output.
type CheckCommand struct{}

// NewCheckCommand creates a new check command
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{}
}

// Execute parses the file and prints bookmark and folder counts
func (c *CheckCommand) Execute(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	root, err := netscape.Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}

	fmt.Printf("%s: %d bookmarks in %d folders\n",
		filePath, root.CountBookmarks(), root.CountFolders())
	return nil
}
