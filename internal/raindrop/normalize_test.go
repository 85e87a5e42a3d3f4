package raindrop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedClock returns a clock pinned to a known instant.
func fixedClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

func TestNormalize(t *testing.T) {
	const nowSec = 1700000000

	tests := []struct {
		name        string
		row         Row
		wantTitle   string
		wantAddDate int64
	}{
		{
			name:        "valid created timestamp",
			row:         Row{Title: "T", URL: "http://x", Created: "2024-01-01T00:00:00Z"},
			wantTitle:   "T",
			wantAddDate: 1704067200,
		},
		{
			name:        "numeric offset timestamp",
			row:         Row{Title: "T", URL: "http://x", Created: "2024-01-01T01:00:00+01:00"},
			wantTitle:   "T",
			wantAddDate: 1704067200,
		},
		{
			name:        "blank title falls back to url",
			row:         Row{Title: "   ", URL: "http://example.com/p", Created: "2024-01-01T00:00:00Z"},
			wantTitle:   "http://example.com/p",
			wantAddDate: 1704067200,
		},
		{
			name:        "missing title falls back to url",
			row:         Row{URL: "http://example.com/p", Created: "2024-01-01T00:00:00Z"},
			wantTitle:   "http://example.com/p",
			wantAddDate: 1704067200,
		},
		{
			name:        "missing created falls back to now",
			row:         Row{Title: "T", URL: "http://x"},
			wantTitle:   "T",
			wantAddDate: nowSec,
		},
		{
			name:        "unparsable created falls back to now",
			row:         Row{Title: "T", URL: "http://x", Created: "yesterday at noon"},
			wantTitle:   "T",
			wantAddDate: nowSec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer().WithClock(fixedClock(nowSec))
			b := n.Normalize(tt.row)
			assert.Equal(t, tt.wantTitle, b.Title)
			assert.Equal(t, tt.row.URL, b.URL)
			assert.Equal(t, tt.wantAddDate, b.AddDate)
		})
	}
}

// A broken timestamp must not fail the run; it yields a plausible
// current epoch, not the zero value.
func TestNormalizeFallbackUsesWallClock(t *testing.T) {
	before := time.Now().Unix()
	b := NewNormalizer().Normalize(Row{URL: "http://x", Created: "not-a-date"})
	after := time.Now().Unix()

	assert.GreaterOrEqual(t, b.AddDate, before)
	assert.LessOrEqual(t, b.AddDate, after)
}
