// Package transition runs the multi-table write sequences that fire when a
// record crosses a lifecycle boundary. The remote store has no transactions,
// so a sequence is an ordered list of named steps with explicit
// partial-failure reporting: when a later step fails after an earlier one
// landed, the error names the step and the business key so a human can
// reconcile. No automatic compensation is attempted.
package transition

import (
	"context"
	"fmt"
	"net/http"

	"go-hrfms/internal/shared/apperror"

	"go.uber.org/zap"
)

type Step struct {
	Name string
	// Key is the business key the step mutates (employee id, enquiry no).
	Key string
	Run func(ctx context.Context) error
}

type StepResult struct {
	Name string
	Key  string
	Err  error
}

type Result struct {
	Steps []StepResult
	// FailedAt is the index of the failing step, -1 when all succeeded.
	FailedAt int
}

func (r Result) OK() bool {
	return r.FailedAt == -1
}

// Err maps the outcome to the error taxonomy: nil on success, the step's own
// error when the first step fails (nothing was mutated yet), and a
// consistency error naming step and key when a later step fails after an
// earlier one already landed.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	failed := r.Steps[r.FailedAt]
	if r.FailedAt == 0 {
		return failed.Err
	}
	return apperror.Wrap(
		failed.Err,
		apperror.CodeConsistency,
		fmt.Sprintf("step %q failed for %q after earlier steps succeeded; manual reconciliation may be needed", failed.Name, failed.Key),
		http.StatusBadGateway,
	)
}

type Runner struct {
	logger *zap.Logger
}

func NewRunner(logger ...*zap.Logger) *Runner {
	l := zap.L().Named("transition.runner")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transition.runner")
	}
	return &Runner{logger: l}
}

// Run executes steps in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context, steps ...Step) Result {
	result := Result{FailedAt: -1}
	for i, step := range steps {
		err := step.Run(ctx)
		result.Steps = append(result.Steps, StepResult{Name: step.Name, Key: step.Key, Err: err})
		if err != nil {
			result.FailedAt = i
			r.logger.Error("transition step failed",
				zap.String("step", step.Name),
				zap.String("key", step.Key),
				zap.Int("completed_steps", i),
				zap.Error(err),
			)
			return result
		}
		r.logger.Debug("transition step done",
			zap.String("step", step.Name),
			zap.String("key", step.Key),
		)
	}
	return result
}
