package sheets

import "strings"

// RowView projects one data row through a resolved column mapping. Missing
// cells and unknown labels read as empty strings so downstream arithmetic
// never sees a nil. Date-like cells stay raw; parsing happens at the point
// of use.
type RowView struct {
	cols Columns
	row  []string
	// Index1 is the 1-based position of this row inside the snapshot, which
	// is what the store's update calls expect.
	Index1 int
}

func (v RowView) Get(label string) string {
	idx := v.cols.Lookup(label)
	return v.cell(idx)
}

// GetAt reads by raw position, for callers that already resolved the column.
func (v RowView) GetAt(idx int) string {
	return v.cell(idx)
}

func (v RowView) cell(idx int) string {
	if idx == ColNotFound || idx >= len(v.row) {
		return ""
	}
	return strings.TrimSpace(v.row[idx])
}

// DataRows returns a view per row strictly below the table's header row.
func DataRows(snapshot Snapshot, table Table) []RowView {
	cols := Resolve(snapshot, table)
	return dataRowsWith(snapshot, table.HeaderRow, cols)
}

func dataRowsWith(snapshot Snapshot, headerRow int, cols Columns) []RowView {
	var views []RowView
	for i := headerRow + 1; i < len(snapshot.Data); i++ {
		views = append(views, RowView{
			cols:   cols,
			row:    snapshot.Data[i],
			Index1: i + 1,
		})
	}
	return views
}
