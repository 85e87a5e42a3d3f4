package commands

import (
	"fmt"
	"os"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"
	"github.com/42795748/Raindrop-Convert-HTML/internal/netscape"
	"github.com/42795748/Raindrop-Convert-HTML/internal/repository"
	"github.com/42795748/Raindrop-Convert-HTML/internal/service"
	"github.com/42795748/Raindrop-Convert-HTML/internal/tree"
)

// ExportCommand renders the local library back into a Netscape
// bookmark file, using the same writer as convert.
type ExportCommand struct {
	repo        repository.Repository
	bookmarkSvc *service.BookmarkService
	folderSvc   *service.FolderService
	writer      *netscape.Writer
}

// NewExportCommand creates a new export command
func NewExportCommand(repo repository.Repository, title string) *ExportCommand {
	w := netscape.NewWriter()
	if title != "" {
		w.Title = title
	}
	return &ExportCommand{
		repo:        repo,
		bookmarkSvc: service.NewBookmarkService(repo),
		folderSvc:   service.NewFolderService(repo),
		writer:      w,
	}
}

// Execute exports the library to a Netscape bookmark file
func (c *ExportCommand) Execute(outputPath string) error {
	folders, err := c.folderSvc.ListAll()
	if err != nil {
		return fmt.Errorf("failed to get folders: %w", err)
	}

	bookmarks, err := c.bookmarkSvc.ListAll()
	if err != nil {
		return fmt.Errorf("failed to get bookmarks: %w", err)
	}

	root := buildTree(folders, bookmarks)

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer file.Close()

	if err := c.writer.Write(file, root); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("Exported %d bookmarks to %s\n", len(bookmarks), outputPath)
	return nil
}

// buildTree reassembles the folder tree from flat library rows. Folders
// whose parent row is missing attach to the root.
func buildTree(folders []models.Folder, bookmarks []models.Bookmark) *tree.Node {
	root := tree.NewRoot()

	folderByID := make(map[int]models.Folder, len(folders))
	for _, f := range folders {
		folderByID[f.ID] = f
	}

	nodeByID := make(map[int]*tree.Node, len(folders))
	var ensure func(id int) *tree.Node
	ensure = func(id int) *tree.Node {
		if n, ok := nodeByID[id]; ok {
			return n
		}
		f, ok := folderByID[id]
		if !ok {
			return root
		}
		parent := root
		if f.ParentID != nil {
			parent = ensure(*f.ParentID)
		}
		n := parent.Child(f.Name)
		nodeByID[id] = n
		return n
	}

	for _, f := range folders {
		ensure(f.ID)
	}

	for _, b := range bookmarks {
		node := root
		if b.FolderID != nil {
			node = ensure(*b.FolderID)
		}
		node.Bookmarks = append(node.Bookmarks, b)
	}
	return root
}
