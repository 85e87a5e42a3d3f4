package commands

import (
	"fmt"
	"os"

	"github.com/42795748/Raindrop-Convert-HTML/internal/netscape"
	"github.com/42795748/Raindrop-Convert-HTML/internal/raindrop"
	"github.com/42795748/Raindrop-Convert-HTML/internal/tree"
)

// ConvertCommand converts a Raindrop CSV export into a Netscape
// bookmark file a browser can import.
type ConvertCommand struct {
	normalizer *raindrop.Normalizer
	writer     *netscape.Writer
}

// NewConvertCommand creates a new convert command
func NewConvertCommand(title string) *ConvertCommand {
	w := netscape.NewWriter()
	if title != "" {
		w.Title = title
	}
	return &ConvertCommand{
		normalizer: raindrop.NewNormalizer(),
		writer:     w,
	}
}

// Execute runs the conversion: read rows, normalize, build the folder
// tree, render, write. A failed run leaves no usable output behind.
func (c *ConvertCommand) Execute(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer in.Close()

	rows, err := raindrop.ReadRows(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	treeRows := make([]tree.Row, 0, len(rows))
	for _, row := range rows {
		treeRows = append(treeRows, tree.Row{
			FolderPath: row.Folder,
			Bookmark:   c.normalizer.Normalize(row),
		})
	}
	root := tree.Build(treeRows)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer out.Close()

	if err := c.writer.Write(out, root); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("Successfully converted bookmarks to %s\n", outputPath)
	fmt.Printf("Total bookmarks processed: %d\n", len(rows))
	fmt.Printf("Number of folders: %d\n", root.CountFolders())
	return nil
}
