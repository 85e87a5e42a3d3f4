package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"
)

func bm(title string) models.Bookmark {
	return models.Bookmark{Title: title, URL: "http://" + title, AddDate: 1}
}

// Two rows with the identical folder path always land under the same
// node.
func TestInsertSamePathMergesNodes(t *testing.T) {
	root := NewRoot()
	root.Insert("A/B", bm("one"))
	root.Insert("A/B", bm("two"))

	a, ok := root.Lookup("A")
	require.True(t, ok)
	b, ok := a.Lookup("B")
	require.True(t, ok)

	assert.Len(t, b.Bookmarks, 2)
	assert.Equal(t, "one", b.Bookmarks[0].Title)
	assert.Equal(t, "two", b.Bookmarks[1].Title)
	assert.Equal(t, 2, root.CountFolders())
}

// Folder path matching is case-sensitive: "X" and "x" are distinct
// nodes. Only rendering order is case-insensitive.
func TestPathMatchingIsCaseSensitive(t *testing.T) {
	root := NewRoot()
	root.Insert("X", bm("upper"))
	root.Insert("x", bm("lower"))

	upper, ok := root.Lookup("X")
	require.True(t, ok)
	lower, ok := root.Lookup("x")
	require.True(t, ok)

	assert.NotSame(t, upper, lower)
	assert.Equal(t, 2, root.CountFolders())
}

func TestInsertTrimsSegments(t *testing.T) {
	root := NewRoot()
	root.Insert(" A / B ", bm("t"))
	root.Insert("A/B", bm("u"))

	a, ok := root.Lookup("A")
	require.True(t, ok)
	b, ok := a.Lookup("B")
	require.True(t, ok)
	assert.Len(t, b.Bookmarks, 2)
}

// Consecutive separators create a folder with an empty name. The quirk
// is kept, not suppressed.
func TestEmptySegmentCreatesEmptyNamedFolder(t *testing.T) {
	root := NewRoot()
	root.Insert("a//b", bm("t"))

	a, ok := root.Lookup("a")
	require.True(t, ok)
	empty, ok := a.Lookup("")
	require.True(t, ok)
	b, ok := empty.Lookup("b")
	require.True(t, ok)

	assert.Len(t, b.Bookmarks, 1)
	assert.Equal(t, 3, root.CountFolders())
}

func TestBlankPathAttachesToRoot(t *testing.T) {
	root := NewRoot()
	root.Insert("", bm("absent"))
	root.Insert("   ", bm("whitespace"))

	assert.Len(t, root.Bookmarks, 2)
	assert.Equal(t, 0, root.CountFolders())
}

func TestSortedChildrenCaseInsensitive(t *testing.T) {
	root := NewRoot()
	root.Child("banana")
	root.Child("Apple")
	root.Child("cherry")

	var names []string
	for _, c := range root.SortedChildren() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names)
}

// Names that differ only by case keep insertion order.
func TestSortedChildrenTiesKeepInsertionOrder(t *testing.T) {
	root := NewRoot()
	root.Child("x")
	root.Child("X")

	children := root.SortedChildren()
	require.Len(t, children, 2)
	assert.Equal(t, "x", children[0].Name)
	assert.Equal(t, "X", children[1].Name)
}

func TestBuildCounts(t *testing.T) {
	rows := []Row{
		{FolderPath: "Work/Go", Bookmark: bm("a")},
		{FolderPath: "Work", Bookmark: bm("b")},
		{FolderPath: "", Bookmark: bm("c")},
		{FolderPath: "Home", Bookmark: bm("d")},
	}
	root := Build(rows)

	assert.Equal(t, 3, root.CountFolders())
	assert.Equal(t, 4, root.CountBookmarks())
	assert.Len(t, root.Bookmarks, 1)
}
