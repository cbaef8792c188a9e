package certs

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// DateFormat is the wire form for calendar dates.
const DateFormat = "2006-01-02"

// SanitizeString unescapes HTML entities (twice, sources double-escape),
// drops embedded newlines and trims surrounding whitespace. Empty input
// stays empty.
func SanitizeString(s string) string {
	s = html.UnescapeString(html.UnescapeString(s))
	s = strings.ReplaceAll(s, "\n", "")
	return strings.TrimSpace(s)
}

// SanitizeLink gives links a stable form: explicit :443 ports dropped,
// spaces percent-encoded, plain http upgraded.
func SanitizeLink(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ":443", "")
	s = strings.ReplaceAll(s, " ", "%20")
	return strings.Replace(s, "http://", "https://", 1)
}

// SanitizeDate parses an ISO calendar date. Empty input is the zero
// time, not an error.
func SanitizeDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date in wire form, empty for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}
