package sheets

import "strings"

// FindRow locates the row holding a business key. Row position is not an
// identity in the store, so callers re-run this against a fresh snapshot
// immediately before every write instead of caching an index.
//
// The scan covers rows strictly below the header and compares trimmed values,
// case-sensitive. The returned index is 1-based. A missing key column is a
// hard abort; a missing key value returns RowNotFoundError and the intended
// write must not happen.
func FindRow(snapshot Snapshot, table Table, keyLabel, keyValue string) (int, error) {
	cols := Resolve(snapshot, table)
	keyCol, err := cols.Require(keyLabel)
	if err != nil {
		return 0, err
	}

	want := strings.TrimSpace(keyValue)
	for i := table.HeaderRow + 1; i < len(snapshot.Data); i++ {
		row := snapshot.Data[i]
		if keyCol >= len(row) {
			continue
		}
		if strings.TrimSpace(row[keyCol]) == want {
			return i + 1, nil
		}
	}

	return 0, RowNotFoundError(snapshot.Sheet, keyLabel, keyValue)
}
