package transition_test

import (
	"context"
	"errors"
	"testing"

	"go-hrfms/internal/shared/apperror"
	"go-hrfms/internal/transition"

	"github.com/stretchr/testify/assert"
)

func TestRunner_AllStepsSucceed(t *testing.T) {
	runner := transition.NewRunner()
	var order []string

	result := runner.Run(context.Background(),
		transition.Step{Name: "first", Key: "EMP-01", Run: func(context.Context) error {
			order = append(order, "first")
			return nil
		}},
		transition.Step{Name: "second", Key: "EMP-01", Run: func(context.Context) error {
			order = append(order, "second")
			return nil
		}},
	)

	assert.True(t, result.OK())
	assert.NoError(t, result.Err())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRunner_FirstStepFailureAbortsWholeTransition(t *testing.T) {
	runner := transition.NewRunner()
	boom := errors.New("append failed")
	secondRan := false

	result := runner.Run(context.Background(),
		transition.Step{Name: "append follow-up", Key: "ENQ-03", Run: func(context.Context) error {
			return boom
		}},
		transition.Step{Name: "insert joining", Key: "ENQ-03", Run: func(context.Context) error {
			secondRan = true
			return nil
		}},
	)

	assert.False(t, result.OK())
	assert.False(t, secondRan)
	// nothing was mutated yet, so the raw error comes back unchanged
	assert.Equal(t, boom, result.Err())
}

func TestRunner_LaterStepFailureIsConsistencyError(t *testing.T) {
	runner := transition.NewRunner()

	result := runner.Run(context.Background(),
		transition.Step{Name: "complete leaving", Key: "EMP-07", Run: func(context.Context) error {
			return nil
		}},
		transition.Step{Name: "deactivate joining", Key: "EMP-07", Run: func(context.Context) error {
			return errors.New("store unavailable")
		}},
	)

	err := result.Err()
	assert.Error(t, err)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeConsistency, appErr.Code)
	assert.Contains(t, err.Error(), "deactivate joining")
	assert.Contains(t, err.Error(), "EMP-07")
}

func TestRunConcurrent_PartialBatchFailureIsOverallFailure(t *testing.T) {
	runner := transition.NewRunner()
	boom := errors.New("cell write failed")

	err := runner.RunConcurrent(context.Background(), "EMP-01",
		transition.Step{Name: "offer letter", Run: func(context.Context) error { return nil }},
		transition.Step{Name: "biometric", Run: func(context.Context) error { return boom }},
		transition.Step{Name: "email", Run: func(context.Context) error { return nil }},
	)

	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeConsistency, appErr.Code)
	assert.Contains(t, err.Error(), "biometric")
	assert.Contains(t, err.Error(), "re-fetch")
}

func TestRunConcurrent_AllSucceed(t *testing.T) {
	runner := transition.NewRunner()

	err := runner.RunConcurrent(context.Background(), "EMP-01",
		transition.Step{Name: "a", Run: func(context.Context) error { return nil }},
		transition.Step{Name: "b", Run: func(context.Context) error { return nil }},
	)

	assert.NoError(t, err)
}
