package raindrop

import (
	"strings"
	"time"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"
)

// Normalizer turns raw export rows into bookmark entries.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a normalizer using the system clock.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// WithClock overrides the clock used for timestamp fallbacks.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Normalize builds a bookmark entry from one export row. A blank title
// falls back to the URL. A missing or unparsable created time falls
// back to the current wall clock; that is the documented policy for
// broken timestamps, not an error.
func (n *Normalizer) Normalize(row Row) models.Bookmark {
	title := row.Title
	if strings.TrimSpace(title) == "" {
		title = row.URL
	}
	return models.Bookmark{
		Title:   title,
		URL:     row.URL,
		AddDate: n.addDate(row.Created),
	}
}

func (n *Normalizer) addDate(created string) int64 {
	created = strings.TrimSpace(created)
	if created == "" {
		return n.now().Unix()
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return n.now().Unix()
	}
	return t.Unix()
}
