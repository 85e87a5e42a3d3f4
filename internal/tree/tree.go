// Package tree builds the in-memory folder hierarchy that the Netscape
// writer renders. Folder paths are slash-delimited, root to leaf; path
// matching is case-sensitive exact match on trimmed segments.
package tree

import (
	"sort"
	"strings"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"
)

// Node is one folder in the bookmark tree. Each parent exclusively owns
// its children; bookmarks keep input order within their folder.
type Node struct {
	Name      string
	Bookmarks []models.Bookmark

	root     bool
	children map[string]*Node
	order    []string // child names in insertion order
}

// NewRoot returns the unnamed root node. The root is never rendered as
// a folder header; it only carries top-level bookmarks and folders.
func NewRoot() *Node {
	return &Node{root: true}
}

// IsRoot reports whether this is the distinguished root node.
func (n *Node) IsRoot() bool {
	return n.root
}

// Child returns the child folder with the given name, creating it if it
// does not exist yet. Names match case-sensitively.
func (n *Node) Child(name string) *Node {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &Node{Name: name}
	n.children[name] = c
	n.order = append(n.order, name)
	return c
}

// Lookup returns the child folder with the given name, if present.
func (n *Node) Lookup(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// SortedChildren returns the child folders in case-insensitive ascending
// order by name. Names that differ only by case keep insertion order.
func (n *Node) SortedChildren() []*Node {
	names := make([]string, len(n.order))
	copy(names, n.order)
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	children := make([]*Node, 0, len(names))
	for _, name := range names {
		children = append(children, n.children[name])
	}
	return children
}

// Insert attaches a bookmark under the folder path, creating folders on
// the way. Segments are trimmed of surrounding whitespace; an empty
// segment (as in "a//b") still creates a folder with an empty name. A
// path that trims to empty attaches the bookmark to this node directly.
func (n *Node) Insert(folderPath string, b models.Bookmark) {
	cur := n
	if strings.TrimSpace(folderPath) != "" {
		for _, seg := range strings.Split(folderPath, "/") {
			cur = cur.Child(strings.TrimSpace(seg))
		}
	}
	cur.Bookmarks = append(cur.Bookmarks, b)
}

// CountFolders returns the number of folders below this node, not
// counting the node itself.
func (n *Node) CountFolders() int {
	total := len(n.children)
	for _, name := range n.order {
		total += n.children[name].CountFolders()
	}
	return total
}

// CountBookmarks returns the number of bookmarks in this node and all
// folders below it.
func (n *Node) CountBookmarks() int {
	total := len(n.Bookmarks)
	for _, name := range n.order {
		total += n.children[name].CountBookmarks()
	}
	return total
}

// Row pairs a folder path with the bookmark that belongs under it.
type Row struct {
	FolderPath string
	Bookmark   models.Bookmark
}

// Build populates a fresh tree from the rows. Rows are processed sorted
// by folder path ascending with pathless rows last, so a folder and its
// bookmarks are grouped; the resulting tree shape does not depend on
// input order because each path resolves by exact segment match.
func Build(rows []Row) *Node {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].FolderPath, sorted[j].FolderPath
		bi, bj := strings.TrimSpace(pi) == "", strings.TrimSpace(pj) == ""
		if bi != bj {
			return bj
		}
		return pi < pj
	})

	root := NewRoot()
	for _, r := range sorted {
		root.Insert(r.FolderPath, r.Bookmark)
	}
	return root
}
