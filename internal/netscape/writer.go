// Package netscape writes and reads the NETSCAPE-Bookmark-file-1 format
// that browsers import and export.
package netscape

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/42795748/Raindrop-Convert-HTML/internal/tree"
)

const headerFormat = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>%s</TITLE>
<H1>%s</H1>
<DL><p>
`

const footer = "</DL><p>\n"

// Writer renders a bookmark tree as a Netscape bookmark document.
type Writer struct {
	Title string
}

// NewWriter creates a writer with the conventional document title.
func NewWriter() *Writer {
	return &Writer{Title: "Bookmarks"}
}

// Write renders the whole document: fixed header, the tree body, fixed
// footer. The root's own bookmarks come first, then its folders; the
// root itself produces no folder header.
func (w *Writer) Write(out io.Writer, root *tree.Node) error {
	bw := bufio.NewWriter(out)
	title := html.EscapeString(w.Title)
	fmt.Fprintf(bw, headerFormat, title, title)
	writeFolder(bw, root, 0)
	bw.WriteString(footer)
	return bw.Flush()
}

// writeFolder emits one folder and everything under it. Every line is
// indented four spaces per nesting level. Child folders render in
// case-insensitive ascending order by name. All user-supplied text is
// escaped so reserved markup characters cannot break the document.
func writeFolder(bw *bufio.Writer, n *tree.Node, level int) {
	inner := level
	if !n.IsRoot() {
		indent := pad(level)
		fmt.Fprintf(bw, "%s<DT><H3>%s</H3>\n", indent, html.EscapeString(n.Name))
		fmt.Fprintf(bw, "%s<DL><p>\n", indent)
		inner = level + 1
	}

	indent := pad(inner)
	for _, b := range n.Bookmarks {
		fmt.Fprintf(bw, "%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			indent, html.EscapeString(b.URL), b.AddDate, html.EscapeString(b.Title))
	}

	for _, child := range n.SortedChildren() {
		writeFolder(bw, child, inner)
	}

	if !n.IsRoot() {
		fmt.Fprintf(bw, "%s</DL><p>\n", pad(level))
	}
}

func pad(level int) string {
	return strings.Repeat("    ", level)
}
