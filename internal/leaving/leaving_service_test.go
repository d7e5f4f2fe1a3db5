package leaving_test

import (
	"context"
	"errors"
	"testing"

	"go-hrfms/internal/joining"
	"go-hrfms/internal/leaving"
	leavingerrors "go-hrfms/internal/leaving/errors"
	"go-hrfms/internal/shared/apperror"
	"go-hrfms/internal/transition"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLeavingRepository struct {
	findAllFn          func(ctx context.Context) ([]leaving.Leaving, error)
	findByEmployeeIDFn func(ctx context.Context, employeeID string) (*leaving.Leaving, error)
	insertFn           func(ctx context.Context, l leaving.Leaving) error
	updateFieldsFn     func(ctx context.Context, employeeID string, fields map[string]string) error
	updateFieldsCalls  int
}

func (f *fakeLeavingRepository) FindAll(ctx context.Context) ([]leaving.Leaving, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeavingRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*leaving.Leaving, error) {
	if f.findByEmployeeIDFn != nil {
		return f.findByEmployeeIDFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeavingRepository) Insert(ctx context.Context, l leaving.Leaving) error {
	if f.insertFn != nil {
		return f.insertFn(ctx, l)
	}
	return nil
}

func (f *fakeLeavingRepository) UpdateFields(ctx context.Context, employeeID string, fields map[string]string) error {
	f.updateFieldsCalls++
	if f.updateFieldsFn != nil {
		return f.updateFieldsFn(ctx, employeeID, fields)
	}
	return nil
}

type fakeJoiningDirectory struct {
	findByEmployeeIDFn func(ctx context.Context, employeeID string) (*joining.Joining, error)
	setStatusFn        func(ctx context.Context, employeeID, status string) error
	setStatusCalls     int
}

func (f *fakeJoiningDirectory) FindByEmployeeID(ctx context.Context, employeeID string) (*joining.Joining, error) {
	if f.findByEmployeeIDFn != nil {
		return f.findByEmployeeIDFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeJoiningDirectory) SetStatus(ctx context.Context, employeeID, status string) error {
	f.setStatusCalls++
	if f.setStatusFn != nil {
		return f.setStatusFn(ctx, employeeID, status)
	}
	return nil
}

func activeJoining(employeeID string) *joining.Joining {
	return &joining.Joining{
		EmployeeID:    employeeID,
		CandidateName: "Ravi Kumar",
		Status:        joining.StatusActive,
	}
}

func TestLeavingService_Create(t *testing.T) {
	ctx := context.Background()
	runner := transition.NewRunner(zap.NewNop())

	t.Run("rejects employee without an active joining record", func(t *testing.T) {
		joinings := &fakeJoiningDirectory{
			findByEmployeeIDFn: func(_ context.Context, employeeID string) (*joining.Joining, error) {
				return &joining.Joining{EmployeeID: employeeID, Status: joining.StatusInactive}, nil
			},
		}
		svc := leaving.NewService(&fakeLeavingRepository{}, joinings, runner, zap.NewNop())

		_, err := svc.Create(ctx, leaving.CreateLeavingRequest{EmployeeID: "EMP-07", DateOfLeaving: "2024-06-30"})

		assert.ErrorIs(t, err, leavingerrors.ErrEmployeeNotActive)
	})

	t.Run("rejects a second leaving record for the same employee", func(t *testing.T) {
		joinings := &fakeJoiningDirectory{
			findByEmployeeIDFn: func(_ context.Context, employeeID string) (*joining.Joining, error) {
				return activeJoining(employeeID), nil
			},
		}
		repo := &fakeLeavingRepository{
			findByEmployeeIDFn: func(_ context.Context, employeeID string) (*leaving.Leaving, error) {
				return &leaving.Leaving{EmployeeID: employeeID}, nil
			},
		}
		svc := leaving.NewService(repo, joinings, runner, zap.NewNop())

		_, err := svc.Create(ctx, leaving.CreateLeavingRequest{EmployeeID: "EMP-07", DateOfLeaving: "2024-06-30"})

		assert.ErrorIs(t, err, leavingerrors.ErrLeavingExists)
	})

	t.Run("inserts a pending record carrying the joining name", func(t *testing.T) {
		joinings := &fakeJoiningDirectory{
			findByEmployeeIDFn: func(_ context.Context, employeeID string) (*joining.Joining, error) {
				return activeJoining(employeeID), nil
			},
		}
		var inserted leaving.Leaving
		repo := &fakeLeavingRepository{
			insertFn: func(_ context.Context, l leaving.Leaving) error {
				inserted = l
				return nil
			},
		}
		svc := leaving.NewService(repo, joinings, runner, zap.NewNop())

		resp, err := svc.Create(ctx, leaving.CreateLeavingRequest{EmployeeID: "EMP-07", DateOfLeaving: "2024-06-30"})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-07", inserted.EmployeeID)
		assert.Equal(t, "Ravi Kumar", inserted.EmployeeName)
		assert.Equal(t, "2024-06-30", inserted.DateOfLeaving)
		assert.NotEmpty(t, inserted.PlannedDate)
		assert.Empty(t, inserted.CompletedDate)
		assert.Equal(t, "EMP-07", resp.EmployeeID)
	})
}

func TestLeavingService_Complete(t *testing.T) {
	ctx := context.Background()
	runner := transition.NewRunner(zap.NewNop())

	pendingRecord := func(employeeID string) *leaving.Leaving {
		return &leaving.Leaving{
			EmployeeID:    employeeID,
			EmployeeName:  "Ravi Kumar",
			DateOfLeaving: "2024-06-30",
			PlannedDate:   "2024-06-01 10:00:00",
		}
	}

	t.Run("stamps completion and deactivates the joining record", func(t *testing.T) {
		repo := &fakeLeavingRepository{
			findByEmployeeIDFn: func(_ context.Context, employeeID string) (*leaving.Leaving, error) {
				return pendingRecord(employeeID), nil
			},
		}
		joinings := &fakeJoiningDirectory{}
		var gotStatus string
		joinings.setStatusFn = func(_ context.Context, _, status string) error {
			gotStatus = status
			return nil
		}
		svc := leaving.NewService(repo, joinings, runner, zap.NewNop())

		resp, err := svc.Complete(ctx, "EMP-07", leaving.CompleteLeavingRequest{
			ResignationLetter: true,
			AssetHandover:     true,
			FinalReleaseDate:  "2024-07-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, repo.updateFieldsCalls)
		assert.Equal(t, joining.StatusInactive, gotStatus)
		assert.NotEmpty(t, resp.CompletedDate)
		assert.True(t, resp.Checklist.ResignationLetter)
		assert.False(t, resp.Checklist.IDCardReturn)
	})

	t.Run("checklist write failure aborts before the status flip", func(t *testing.T) {
		forced := errors.New("post failed")
		repo := &fakeLeavingRepository{
			findByEmployeeIDFn: func(_ context.Context, employeeID string) (*leaving.Leaving, error) {
				return pendingRecord(employeeID), nil
			},
			updateFieldsFn: func(context.Context, string, map[string]string) error {
				return forced
			},
		}
		joinings := &fakeJoiningDirectory{}
		svc := leaving.NewService(repo, joinings, runner, zap.NewNop())

		_, err := svc.Complete(ctx, "EMP-07", leaving.CompleteLeavingRequest{})

		assert.ErrorIs(t, err, forced)
		assert.Zero(t, joinings.setStatusCalls)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			assert.NotEqual(t, apperror.CodeConsistency, appErr.Code)
		}
	})

	t.Run("status flip failure after the leaving write names the employee id", func(t *testing.T) {
		repo := &fakeLeavingRepository{
			findByEmployeeIDFn: func(_ context.Context, employeeID string) (*leaving.Leaving, error) {
				return pendingRecord(employeeID), nil
			},
		}
		joinings := &fakeJoiningDirectory{
			setStatusFn: func(context.Context, string, string) error {
				return errors.New("status write failed")
			},
		}
		svc := leaving.NewService(repo, joinings, runner, zap.NewNop())

		_, err := svc.Complete(ctx, "EMP-07", leaving.CompleteLeavingRequest{ResignationLetter: true})

		assert.Error(t, err)
		assert.Equal(t, 1, repo.updateFieldsCalls)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConsistency, appErr.Code)
		assert.Contains(t, appErr.Message, "EMP-07")
		assert.Contains(t, appErr.Message, "deactivate joining")
	})

	t.Run("retry re-runs only the status flip without touching the leaving row", func(t *testing.T) {
		repo := &fakeLeavingRepository{
			findByEmployeeIDFn: func(_ context.Context, employeeID string) (*leaving.Leaving, error) {
				completed := pendingRecord(employeeID)
				completed.CompletedDate = "2024-06-30 17:00:00"
				return completed, nil
			},
		}
		joinings := &fakeJoiningDirectory{}
		svc := leaving.NewService(repo, joinings, runner, zap.NewNop())

		err := svc.RetryDeactivation(ctx, "EMP-07")

		assert.NoError(t, err)
		assert.Equal(t, 1, joinings.setStatusCalls)
		assert.Zero(t, repo.updateFieldsCalls)
	})

	t.Run("returns not found for an unknown employee", func(t *testing.T) {
		svc := leaving.NewService(&fakeLeavingRepository{}, &fakeJoiningDirectory{}, runner, zap.NewNop())

		_, err := svc.Complete(ctx, "EMP-99", leaving.CompleteLeavingRequest{})

		assert.ErrorIs(t, err, leavingerrors.ErrLeavingNotFound)
	})
}

func TestLeavingService_Stages(t *testing.T) {
	ctx := context.Background()
	runner := transition.NewRunner(zap.NewNop())

	repo := &fakeLeavingRepository{
		findAllFn: func(context.Context) ([]leaving.Leaving, error) {
			return []leaving.Leaving{
				{EmployeeID: "EMP-01", PlannedDate: "2024-06-01", CompletedDate: ""},
				{EmployeeID: "EMP-02", PlannedDate: "2024-05-01", CompletedDate: "2024-05-20"},
				{EmployeeID: "EMP-03", PlannedDate: "", CompletedDate: ""},
			}, nil
		},
	}
	svc := leaving.NewService(repo, &fakeJoiningDirectory{}, runner, zap.NewNop())

	pending, err := svc.GetPending(ctx)
	assert.NoError(t, err)
	history, err := svc.GetHistory(ctx)
	assert.NoError(t, err)

	assert.Len(t, pending, 1)
	assert.Equal(t, "EMP-01", pending[0].EmployeeID)
	assert.Len(t, history, 1)
	assert.Equal(t, "EMP-02", history[0].EmployeeID)
}
