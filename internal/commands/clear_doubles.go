package commands

import (
	"fmt"

	"github.com/42795748/Raindrop-Convert-HTML/internal/repository"
	"github.com/42795748/Raindrop-Convert-HTML/internal/service"
)

// ClearDoublesCommand handles removal of duplicate bookmarks
type ClearDoublesCommand struct {
	repo        repository.Repository
	bookmarkSvc *service.BookmarkService
}

// NewClearDoublesCommand creates a new clear doubles command
func NewClearDoublesCommand(repo repository.Repository) *ClearDoublesCommand {
	return &ClearDoublesCommand{
		repo:        repo,
		bookmarkSvc: service.NewBookmarkService(repo),
	}
}

// Execute removes duplicate bookmarks sharing a URL, keeping the first
func (c *ClearDoublesCommand) Execute() error {
	allBookmarks, err := c.bookmarkSvc.ListAll()
	if err != nil {
		return fmt.Errorf("failed to get bookmarks: %w", err)
	}

	seenURLs := make(map[string]int) // URL -> ID of bookmark to keep
	var duplicates []int

	for _, bookmark := range allBookmarks {
		if bookmark.URL == "" {
			continue
		}
		if keptID, exists := seenURLs[bookmark.URL]; exists {
			duplicates = append(duplicates, bookmark.ID)
			fmt.Printf("Found duplicate: '%s' (ID: %d, keeping ID: %d)\n", bookmark.Title, bookmark.ID, keptID)
		} else {
			seenURLs[bookmark.URL] = bookmark.ID
		}
	}

	if len(duplicates) == 0 {
		fmt.Println("No duplicate bookmarks found.")
		return nil
	}

	deleted := 0
	for _, id := range duplicates {
		if err := c.bookmarkSvc.Delete(id); err != nil {
			fmt.Printf("Warning: failed to delete bookmark ID %d: %v\n", id, err)
			continue
		}
		deleted++
	}

	fmt.Printf("Deleted %d duplicate bookmark(s).\n", deleted)
	return nil
}
