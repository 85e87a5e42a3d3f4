package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "bookmarks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestFolderUpsertIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	work, err := repo.Folders().Upsert("Work", nil)
	require.NoError(t, err)

	again, err := repo.Folders().Upsert("Work", nil)
	require.NoError(t, err)
	assert.Equal(t, work.ID, again.ID)

	// Same name under a different parent is a different folder.
	nested, err := repo.Folders().Upsert("Work", &work.ID)
	require.NoError(t, err)
	assert.NotEqual(t, work.ID, nested.ID)

	folders, err := repo.Folders().List()
	require.NoError(t, err)
	assert.Len(t, folders, 2)
}

func TestBookmarkCreateAndList(t *testing.T) {
	repo := newTestRepo(t)

	work, err := repo.Folders().Upsert("Work", nil)
	require.NoError(t, err)

	b := &models.Bookmark{Title: "T", URL: "http://x", AddDate: 1704067200, FolderID: &work.ID}
	require.NoError(t, repo.Bookmarks().Create(b))
	assert.NotZero(t, b.ID)

	list, err := repo.Bookmarks().List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "T", list[0].Title)
	assert.Equal(t, int64(1704067200), list[0].AddDate)
	require.NotNil(t, list[0].FolderName)
	assert.Equal(t, "Work", *list[0].FolderName)

	got, err := repo.Bookmarks().GetByURL("http://x")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)

	missing, err := repo.Bookmarks().GetByURL("http://nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Bookmarks().Delete(b.ID))
	list, err = repo.Bookmarks().List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFolderContent(t *testing.T) {
	repo := newTestRepo(t)

	work, err := repo.Folders().Upsert("Work", nil)
	require.NoError(t, err)
	_, err = repo.Folders().Upsert("Go", &work.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Bookmarks().Create(&models.Bookmark{Title: "root bm", URL: "http://r", AddDate: 1}))
	require.NoError(t, repo.Bookmarks().Create(&models.Bookmark{Title: "work bm", URL: "http://w", AddDate: 2, FolderID: &work.ID}))

	rootItems, err := repo.Folders().Content(nil)
	require.NoError(t, err)
	require.Len(t, rootItems, 2)
	assert.Equal(t, models.ItemTypeFolder, rootItems[0].Type)
	assert.Equal(t, "Work", rootItems[0].Name)
	assert.Equal(t, models.ItemTypeBookmark, rootItems[1].Type)
	assert.Equal(t, "root bm", rootItems[1].Name)

	workItems, err := repo.Folders().Content(&work.ID)
	require.NoError(t, err)
	require.Len(t, workItems, 2)
	assert.Equal(t, "Go", workItems[0].Name)
	assert.Equal(t, "work bm", workItems[1].Name)
	require.NotNil(t, workItems[1].AddDate)
	assert.Equal(t, int64(2), *workItems[1].AddDate)
}
