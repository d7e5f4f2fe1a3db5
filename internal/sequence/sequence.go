// Package sequence derives the next human-readable identifier for a prefix
// namespace (REC-, ENQ-, AAP-, ...). Next is pure so it can be tested without
// a live sheet; callers re-fetch the authoritative identifier list right
// before use to keep the collision window small.
package sequence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// Next scans existing identifiers for the prefix, takes the maximum numeric
// suffix and increments it, left-padded to two digits. No matches start the
// namespace at 01. Prefixes vary in length, so the digits are found by
// pattern, not by fixed offset.
func Next(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		id = strings.TrimSpace(id)
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		m := digitRun.FindString(id[len(prefix):])
		if m == "" {
			continue
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%02d", prefix, max+1)
}
