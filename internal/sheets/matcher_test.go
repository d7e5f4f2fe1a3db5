package sheets_test

import (
	"errors"
	"testing"

	"go-hrfms/internal/sheets"
	"go-hrfms/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func joiningSnapshot() sheets.Snapshot {
	return sheets.Snapshot{
		Sheet: "Joining",
		Data: [][]string{
			{"Employee ID", "Candidate Name", "Status"},
			{"EMP-01", "A Kumar", "Active"},
			{" EMP-02 ", "B Singh", "Active"},
			{"EMP-03", "C Das", "Inactive"},
		},
	}
}

func TestFindRow_LocatesByTrimmedKey(t *testing.T) {
	snap := joiningSnapshot()

	idx, err := sheets.FindRow(snap, sheets.TableJoining, "Employee ID", "EMP-02")

	assert.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestFindRow_Deterministic(t *testing.T) {
	snap := joiningSnapshot()

	first, err1 := sheets.FindRow(snap, sheets.TableJoining, "Employee ID", "EMP-03")
	second, err2 := sheets.FindRow(snap, sheets.TableJoining, "Employee ID", "EMP-03")

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestFindRow_CaseSensitiveIdentifiers(t *testing.T) {
	snap := joiningSnapshot()

	_, err := sheets.FindRow(snap, sheets.TableJoining, "Employee ID", "emp-02")

	assert.Error(t, err)
}

func TestFindRow_AbsentKeyReturnsNamedError(t *testing.T) {
	snap := joiningSnapshot()

	_, err := sheets.FindRow(snap, sheets.TableJoining, "Employee ID", "EMP-99")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EMP-99")
	assert.Contains(t, err.Error(), "Joining")

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestFindRow_NeverMatchesHeaderRow(t *testing.T) {
	snap := joiningSnapshot()

	// "Employee ID" appears in the header itself; the scan must skip it.
	_, err := sheets.FindRow(snap, sheets.TableJoining, "Employee ID", "Employee ID")

	assert.Error(t, err)
}

func TestFindRow_MissingKeyColumnIsSchemaMismatch(t *testing.T) {
	snap := sheets.Snapshot{
		Sheet: "Joining",
		Data: [][]string{
			{"Candidate Name", "Status"},
			{"A Kumar", "Active"},
		},
	}

	_, err := sheets.FindRow(snap, sheets.TableJoining, "Employee ID", "EMP-01")

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeSchemaMismatch, appErr.Code)
}
