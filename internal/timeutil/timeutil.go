// ABOUTME: Date helpers for feed timestamps
// ABOUTME: Parses free-form feed dates and reformats them to one canonical layout in UTC

package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date-bearing record fields.
const (
	FieldLastUpdated = "lastUpdated"
	FieldCreatedAt   = "createdAt"
)

// DefaultTemplate is used when no output layout is configured.
const DefaultTemplate = time.RFC3339

// IsDateField reports whether the named record field holds a timestamp.
func IsDateField(name string) bool {
	return name == FieldLastUpdated || name == FieldCreatedAt
}

// parseFeedDate parses the date formats found in the wild: RFC 822/1123 from
// RSS, RFC 3339 from ATOM, W3C-DTF from Dublin Core, and their sloppier
// variants. Input without a zone is read as UTC.
func parseFeedDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, err)
	}
	return t, nil
}

// Normalize converts value to UTC and formats it with template, a Go time
// layout. An empty template means DefaultTemplate. When value cannot be
// parsed it is returned unchanged along with the parse error.
func Normalize(value, template string) (string, error) {
	t, err := parseFeedDate(value)
	if err != nil {
		return value, err
	}
	if template == "" {
		template = DefaultTemplate
	}
	return t.UTC().Format(template), nil
}
