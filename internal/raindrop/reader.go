// Package raindrop reads Raindrop.io CSV exports and normalizes their
// rows into bookmark entries.
package raindrop

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one record from a Raindrop CSV export. Only URL is required;
// the other fields may be empty.
type Row struct {
	Title   string
	URL     string
	Folder  string
	Created string
}

// ReadRows reads a Raindrop CSV export. The first record must be a
// header containing at least a "url" column; "title", "folder" and
// "created" columns are picked up by name when present, in any order.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index["url"]; !ok {
		return nil, fmt.Errorf("input has no url column")
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		rows = append(rows, Row{
			Title:   field(record, "title"),
			URL:     field(record, "url"),
			Folder:  field(record, "folder"),
			Created: field(record, "created"),
		})
	}
	return rows, nil
}
