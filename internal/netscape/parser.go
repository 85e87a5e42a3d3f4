package netscape

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"
	"github.com/42795748/Raindrop-Convert-HTML/internal/tree"
)

// Parse reads a Netscape bookmark document and rebuilds its folder
// tree. Folder headers (<H3>) open a folder; leaving the matching <DL>
// closes it. <A> elements become bookmarks under the current folder.
func Parse(r io.Reader) (*tree.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := tree.NewRoot()
	stack := []*tree.Node{root}
	top := func() *tree.Node { return stack[len(stack)-1] }

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h3" {
			// An empty <H3></H3> is a folder with an empty name.
			name := ""
			if n.FirstChild != nil {
				name = strings.TrimSpace(n.FirstChild.Data)
			}
			stack = append(stack, top().Child(name))
		}

		if n.Type == html.ElementNode && n.Data == "a" {
			var b models.Bookmark
			for _, attr := range n.Attr {
				switch attr.Key {
				case "href":
					b.URL = attr.Val
				case "add_date":
					if v, err := strconv.ParseInt(attr.Val, 10, 64); err == nil {
						b.AddDate = v
					}
				}
			}
			if n.FirstChild != nil {
				b.Title = strings.TrimSpace(n.FirstChild.Data)
			}
			if b.URL != "" {
				folder := top()
				folder.Bookmarks = append(folder.Bookmarks, b)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		// Leaving a DL container closes the folder it belongs to. The
		// outermost DL belongs to the root, which stays on the stack.
		if n.Type == html.ElementNode && n.Data == "dl" && len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}

	walk(doc)
	return root, nil
}
