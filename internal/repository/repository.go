package repository

import "github.com/42795748/Raindrop-Convert-HTML/internal/models"

// BookmarkRepository defines operations for bookmarks
type BookmarkRepository interface {
	List() ([]models.Bookmark, error)
	GetByID(id int) (*models.Bookmark, error)
	GetByURL(url string) (*models.Bookmark, error)
	Create(b *models.Bookmark) error
	Delete(id int) error
}

// FolderRepository defines operations for folders
type FolderRepository interface {
	List() ([]models.Folder, error)
	GetByID(id int) (*models.Folder, error)
	Create(name string, parentID *int) (*models.Folder, error)
	// Upsert returns the existing folder with the same name and parent,
	// or creates it.
	Upsert(name string, parentID *int) (*models.Folder, error)
	Delete(id int) error
	// Content returns the folders and bookmarks directly under the
	// given folder; nil means the root level.
	Content(folderID *int) ([]models.Item, error)
}

// Repository combines all repositories
type Repository interface {
	Bookmarks() BookmarkRepository
	Folders() FolderRepository
	Close() error
}
