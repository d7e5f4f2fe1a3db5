// Package stage partitions lifecycle records into pending and history buckets
// using the planned/actual convention: a record is pending when a planned
// date exists and no actual date does, history when both exist, and in
// neither bucket when it has no planned date at all.
package stage

import "strings"

type Partition[T any] struct {
	Pending []T
	History []T
}

// present is deliberately truthiness, not date validation: a garbage string
// in the actual column still moves a record to history, matching how the
// rest of the pipeline treats these cells.
func present(v string) bool {
	return strings.TrimSpace(v) != ""
}

// Classify splits records by their planned/actual pair. Every record lands in
// at most one bucket.
func Classify[T any](items []T, planned, actual func(T) string) Partition[T] {
	var p Partition[T]
	for _, item := range items {
		if !present(planned(item)) {
			continue
		}
		if present(actual(item)) {
			p.History = append(p.History, item)
		} else {
			p.Pending = append(p.Pending, item)
		}
	}
	return p
}
