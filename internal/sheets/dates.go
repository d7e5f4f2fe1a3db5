package sheets

import (
	"strings"
	"time"
)

// Cells hold dates in whatever shape the sheet author typed. Layouts are
// tried in order; day-first for the slash and dash forms, matching the
// existing data.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
}

// ParseDate parses a date cell, tolerating ISO and day-first separator
// styles. The second return is false for blank or unrecognizable values.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
