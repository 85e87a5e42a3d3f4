package service

import (
	"strings"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"
	"github.com/42795748/Raindrop-Convert-HTML/internal/repository"
)

// BookmarkService provides business logic for bookmarks
type BookmarkService struct {
	repo repository.Repository
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(repo repository.Repository) *BookmarkService {
	return &BookmarkService{repo: repo}
}

// ListAll returns all bookmarks
func (s *BookmarkService) ListAll() ([]models.Bookmark, error) {
	return s.repo.Bookmarks().List()
}

// Search filters bookmarks by query string against title and URL
func (s *BookmarkService) Search(query string) ([]models.Bookmark, error) {
	all, err := s.repo.Bookmarks().List()
	if err != nil {
		return nil, err
	}

	if query == "" {
		return all, nil
	}

	queryLower := strings.ToLower(query)
	var filtered []models.Bookmark
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Title), queryLower) ||
			strings.Contains(strings.ToLower(b.URL), queryLower) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// GetByID returns a bookmark by ID
func (s *BookmarkService) GetByID(id int) (*models.Bookmark, error) {
	return s.repo.Bookmarks().GetByID(id)
}

// GetByURL returns a bookmark by URL
func (s *BookmarkService) GetByURL(url string) (*models.Bookmark, error) {
	return s.repo.Bookmarks().GetByURL(url)
}

// Create creates a new bookmark
func (s *BookmarkService) Create(b *models.Bookmark) error {
	return s.repo.Bookmarks().Create(b)
}

// Delete deletes a bookmark by ID
func (s *BookmarkService) Delete(id int) error {
	return s.repo.Bookmarks().Delete(id)
}

// FolderService provides business logic for folders
type FolderService struct {
	repo repository.Repository
}

// NewFolderService creates a new folder service
func NewFolderService(repo repository.Repository) *FolderService {
	return &FolderService{repo: repo}
}

// ListAll returns all folders
func (s *FolderService) ListAll() ([]models.Folder, error) {
	return s.repo.Folders().List()
}

// GetByID returns a folder by ID
func (s *FolderService) GetByID(id int) (*models.Folder, error) {
	return s.repo.Folders().GetByID(id)
}

// Upsert creates or returns existing folder
func (s *FolderService) Upsert(name string, parentID *int) (*models.Folder, error) {
	return s.repo.Folders().Upsert(name, parentID)
}

// Delete deletes a folder by ID
func (s *FolderService) Delete(id int) error {
	return s.repo.Folders().Delete(id)
}

// Content returns all items (bookmarks and subfolders) in a folder.
// If folderID is nil, returns the root level.
func (s *FolderService) Content(folderID *int) ([]models.Item, error) {
	return s.repo.Folders().Content(folderID)
}
