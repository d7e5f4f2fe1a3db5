package sheets_test

import (
	"testing"

	"go-hrfms/internal/sheets"

	"github.com/stretchr/testify/assert"
)

func snapshotWithHeaderAtSix() sheets.Snapshot {
	return sheets.Snapshot{
		Sheet: "Indent",
		Data: [][]string{
			{"SKA Steels"},
			{},
			{"Recruitment"},
			{},
			{},
			{"Indent No", " Post ", "GENDER", "No Of Post"},
			{"REC-01", "Fitter", "Male", "2"},
			{"REC-02", "Welder", "", "1"},
		},
	}
}

func TestResolve_NormalizesLabels(t *testing.T) {
	cols := sheets.Resolve(snapshotWithHeaderAtSix(), sheets.TableIndent)

	assert.Equal(t, 0, cols.Lookup("indent no"))
	assert.Equal(t, 1, cols.Lookup("Post"))
	assert.Equal(t, 2, cols.Lookup("Gender"))
}

func TestResolve_MissingOptionalLabelReturnsSentinel(t *testing.T) {
	cols := sheets.Resolve(snapshotWithHeaderAtSix(), sheets.TableIndent)

	assert.Equal(t, sheets.ColNotFound, cols.Lookup("Social Site"))
}

func TestResolve_MissingRequiredLabelAborts(t *testing.T) {
	cols := sheets.Resolve(snapshotWithHeaderAtSix(), sheets.TableIndent)

	_, err := cols.Require("Employee ID")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Employee ID")
	assert.Contains(t, err.Error(), "Indent")
}

func TestResolve_HeaderBeyondSnapshot(t *testing.T) {
	short := sheets.Snapshot{Sheet: "Indent", Data: [][]string{{"only row"}}}

	cols := sheets.Resolve(short, sheets.TableIndent)

	assert.Equal(t, sheets.ColNotFound, cols.Lookup("Indent No"))
}

func TestRowView_MissingCellsProjectEmpty(t *testing.T) {
	rows := sheets.DataRows(snapshotWithHeaderAtSix(), sheets.TableIndent)

	assert.Len(t, rows, 2)
	assert.Equal(t, "REC-01", rows[0].Get("Indent No"))
	assert.Equal(t, "Fitter", rows[0].Get("Post"))
	// short row: gender cell blank, unknown label empty
	assert.Equal(t, "", rows[1].Get("Gender"))
	assert.Equal(t, "", rows[1].Get("Completely Unknown"))
	// 1-based index points at the physical sheet row
	assert.Equal(t, 7, rows[0].Index1)
}

func TestLegacyHeaderStrategy_DiscoversFirstNonBlankRow(t *testing.T) {
	snap := sheets.Snapshot{
		Sheet: "Enquiry",
		Data: [][]string{
			{},
			{"", "  ", ""},
			{"Enquiry No", "Indent No"},
			{"ENQ-01", "REC-01"},
		},
	}
	strat := sheets.LegacyHeaderStrategy{Label: "Enquiry No", FallbackColumn: 1}

	headerRow, col := strat.Column(snap, nil)

	assert.Equal(t, 2, headerRow)
	assert.Equal(t, 0, col)
}

func TestLegacyHeaderStrategy_FallsBackToFixedColumn(t *testing.T) {
	snap := sheets.Snapshot{
		Sheet: "Enquiry",
		Data: [][]string{
			{"Something Else", "Another"},
			{"x", "y"},
		},
	}
	strat := sheets.LegacyHeaderStrategy{Label: "Enquiry No", FallbackColumn: 1}

	headerRow, col := strat.Column(snap, nil)

	assert.Equal(t, 0, headerRow)
	assert.Equal(t, 1, col)
}

func TestLegacyHeaderStrategy_AllBlankSnapshot(t *testing.T) {
	snap := sheets.Snapshot{Sheet: "Enquiry", Data: [][]string{{}, {"", ""}}}
	strat := sheets.LegacyHeaderStrategy{Label: "Enquiry No", FallbackColumn: 0}

	assert.Equal(t, -1, strat.HeaderRow(snap))
}
