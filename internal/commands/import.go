package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/42795748/Raindrop-Convert-HTML/internal/netscape"
	"github.com/42795748/Raindrop-Convert-HTML/internal/raindrop"
	"github.com/42795748/Raindrop-Convert-HTML/internal/repository"
	"github.com/42795748/Raindrop-Convert-HTML/internal/service"
	"github.com/42795748/Raindrop-Convert-HTML/internal/tree"
)

// ImportCommand loads bookmarks into the local library from either a
// Raindrop CSV export or an existing Netscape bookmark file.
type ImportCommand struct {
	repo        repository.Repository
	bookmarkSvc *service.BookmarkService
	folderSvc   *service.FolderService
	normalizer  *raindrop.Normalizer
}

// NewImportCommand creates a new import command
func NewImportCommand(repo repository.Repository) *ImportCommand {
	return &ImportCommand{
		repo:        repo,
		bookmarkSvc: service.NewBookmarkService(repo),
		folderSvc:   service.NewFolderService(repo),
		normalizer:  raindrop.NewNormalizer(),
	}
}

// Execute imports bookmarks from the given file. CSV inputs go through
// the same normalize-and-build pipeline as convert; anything else is
// treated as a Netscape bookmark file.
func (c *ImportCommand) Execute(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	var root *tree.Node
	if strings.EqualFold(filepath.Ext(filePath), ".csv") {
		rows, err := raindrop.ReadRows(file)
		if err != nil {
			return fmt.Errorf("failed to read CSV: %w", err)
		}
		treeRows := make([]tree.Row, 0, len(rows))
		for _, row := range rows {
			treeRows = append(treeRows, tree.Row{
				FolderPath: row.Folder,
				Bookmark:   c.normalizer.Normalize(row),
			})
		}
		root = tree.Build(treeRows)
	} else {
		root, err = netscape.Parse(file)
		if err != nil {
			return fmt.Errorf("failed to parse HTML: %w", err)
		}
	}

	imported, err := c.storeTree(root, nil)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d bookmarks.\n", imported)
	return nil
}

// storeTree walks the folder tree depth-first, upserting folders and
// inserting bookmarks. A bookmark that fails to insert is reported and
// skipped; a folder that fails aborts the walk.
func (c *ImportCommand) storeTree(n *tree.Node, parentID *int) (int, error) {
	imported := 0
	for i := range n.Bookmarks {
		b := n.Bookmarks[i]
		b.FolderID = parentID
		if err := c.bookmarkSvc.Create(&b); err != nil {
			fmt.Printf("Warning: failed to import bookmark '%s': %v\n", b.Title, err)
			continue
		}
		imported++
	}

	for _, child := range n.SortedChildren() {
		folder, err := c.folderSvc.Upsert(child.Name, parentID)
		if err != nil {
			return imported, fmt.Errorf("failed to create folder '%s': %w", child.Name, err)
		}
		sub, err := c.storeTree(child, &folder.ID)
		imported += sub
		if err != nil {
			return imported, err
		}
	}
	return imported, nil
}
