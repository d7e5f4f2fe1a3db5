package joining_test

import (
	"context"
	"testing"

	"go-hrfms/internal/joining"
	"go-hrfms/internal/sheets"
	"go-hrfms/internal/sheets/sheetstest"
	"go-hrfms/internal/transition"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func seedJoiningSheet(store *sheetstest.Store) {
	store.Seed(sheets.TableJoining.Name, [][]string{
		{"Employee ID", "Enquiry No", "Candidate Name", "Post", "Department", "Joining Date", "Photo URL", "Resume URL", "Salary Slip", "Offer Letter", "Biometric Access", "Official Email", "Assets Assigned", "PF ESIC", "Directory Listing", "Checklist Planned Date", "Checklist Completed Date", "Status"},
		{"EMP-01", "ENQ-01", "Ravi Kumar", "Fitter", "Works", "2024-05-01", "", "", "No", "No", "No", "No", "No", "No", "No", "2024-05-01 09:00:00", "", "Active"},
		{"EMP-02", "ENQ-03", "Meena Iyer", "Welder", "Works", "2024-05-10", "", "", "Yes", "Yes", "Yes", "Yes", "Yes", "Yes", "Yes", "2024-05-10 09:00:00", "2024-05-12 16:00:00", "Active"},
	})
}

func TestJoiningRepository_UpdateFields(t *testing.T) {
	ctx := context.Background()
	store := sheetstest.New()
	seedJoiningSheet(store)
	repo := joining.NewRepository(store, transition.NewRunner(zap.NewNop()))

	err := repo.UpdateFields(ctx, "EMP-01", map[string]string{
		"Salary Slip":  "Yes",
		"Offer Letter": "Yes",
	})

	assert.NoError(t, err)
	assert.Len(t, store.CellUpdates, 2)
	for _, cu := range store.CellUpdates {
		assert.Equal(t, sheets.TableJoining.Name, cu.Sheet)
		assert.Equal(t, 2, cu.RowIndex)
		assert.Equal(t, "Yes", cu.Value)
	}

	rows := store.Rows(sheets.TableJoining.Name)
	assert.Equal(t, "Yes", rows[1][8])
	assert.Equal(t, "Yes", rows[1][9])
}

func TestJoiningRepository_UpdateFields_UnknownKeyNeverInserts(t *testing.T) {
	ctx := context.Background()
	store := sheetstest.New()
	seedJoiningSheet(store)
	repo := joining.NewRepository(store, transition.NewRunner(zap.NewNop()))

	err := repo.UpdateFields(ctx, "EMP-99", map[string]string{"Salary Slip": "Yes"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EMP-99")
	assert.Empty(t, store.Inserts)
	assert.Empty(t, store.CellUpdates)
}

func TestJoiningRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	store := sheetstest.New()
	seedJoiningSheet(store)
	repo := joining.NewRepository(store, transition.NewRunner(zap.NewNop()))

	err := repo.SetStatus(ctx, "EMP-02", joining.StatusInactive)

	assert.NoError(t, err)
	rows := store.Rows(sheets.TableJoining.Name)
	assert.Equal(t, "Inactive", rows[2][17])
}

func TestJoiningRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	store := sheetstest.New()
	seedJoiningSheet(store)
	repo := joining.NewRepository(store, transition.NewRunner(zap.NewNop()))

	all, err := repo.FindAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.True(t, all[1].Checklist.AllDone())
	assert.False(t, all[0].Checklist.SalarySlip)
}
