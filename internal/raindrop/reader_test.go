package raindrop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	input := `title,url,folder,created
"Comma, Inc",http://comma,Work/Vendors,2024-01-01T00:00:00Z
,http://no-title,,
Plain,http://plain,Misc,bad-date
`
	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{Title: "Comma, Inc", URL: "http://comma", Folder: "Work/Vendors", Created: "2024-01-01T00:00:00Z"}, rows[0])
	assert.Equal(t, Row{URL: "http://no-title"}, rows[1])
	assert.Equal(t, Row{Title: "Plain", URL: "http://plain", Folder: "Misc", Created: "bad-date"}, rows[2])
}

// Column order does not matter; extra columns are ignored.
func TestReadRowsColumnsByName(t *testing.T) {
	input := `note,created,URL,Folder,Title
ignored,2024-01-01T00:00:00Z,http://x,A,T
`
	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Title: "T", URL: "http://x", Folder: "A", Created: "2024-01-01T00:00:00Z"}, rows[0])
}

func TestReadRowsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"no url column", "title,folder\nT,A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRows(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
