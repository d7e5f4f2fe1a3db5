package transition

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go-hrfms/internal/shared/apperror"

	"go.uber.org/zap"
)

// RunConcurrent issues independent writes together (e.g. the eight checklist
// cells of one row) and awaits them all. The store gives no isolation between
// them, so the outcome is not all-or-nothing: if any write fails the whole
// action reports failure even though some writes landed, and callers must
// re-fetch before retrying.
func (r *Runner) RunConcurrent(ctx context.Context, key string, steps ...Step) error {
	errs := make([]error, len(steps))
	var wg sync.WaitGroup
	for i, step := range steps {
		wg.Add(1)
		go func(i int, step Step) {
			defer wg.Done()
			errs[i] = step.Run(ctx)
		}(i, step)
	}
	wg.Wait()

	var failed []string
	for i, err := range errs {
		if err != nil {
			failed = append(failed, steps[i].Name)
			r.logger.Error("batch write failed",
				zap.String("step", steps[i].Name),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	if len(failed) == len(steps) {
		return apperror.Wrap(
			errs[0],
			apperror.CodeUpstreamError,
			fmt.Sprintf("all %d writes failed for %q", len(steps), key),
			http.StatusBadGateway,
		)
	}
	return apperror.New(
		apperror.CodeConsistency,
		fmt.Sprintf("writes %s failed for %q while others landed; state is partially updated, re-fetch before retrying", strings.Join(failed, ", "), key),
		http.StatusBadGateway,
	)
}
