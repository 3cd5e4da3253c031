// Package saga runs multi-step ledger operations that have no shared
// transaction to lean on. A step's forward action either commits fully or
// fails; on failure the runner undoes the already-committed steps with their
// compensating actions, best effort, in reverse order.
//
// Compensation errors never replace the triggering error: the caller always
// sees the first failure, and a failed compensation is logged and counted so
// the resulting inconsistency is visible to operators.
package saga

import (
	"context"

	"paygate/internal/metrics"

	"go.uber.org/zap"
)

// Step is one unit of a saga. Run performs the forward action. Compensate,
// when non-nil, undoes a completed Run; a nil Compensate marks a step whose
// effect is deliberately left in place on later failure.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Runner executes sagas. The zero value is not usable; construct with New.
type Runner struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Runner {
	return &Runner{log: log}
}

// Execute runs the steps in order. On the first failure it compensates the
// completed steps in reverse order and returns the failing step's error
// unchanged.
func (r *Runner) Execute(ctx context.Context, name string, steps []Step) error {
	for i, step := range steps {
		err := step.Run(ctx)
		if err == nil {
			continue
		}

		r.log.Error("saga step failed, compensating",
			zap.String("saga", name),
			zap.String("step", step.Name),
			zap.Error(err),
		)
		r.compensate(ctx, name, steps[:i])
		return err
	}
	return nil
}

func (r *Runner) compensate(ctx context.Context, name string, completed []Step) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}

		metrics.CompensationsTotal.WithLabelValues(name, step.Name).Inc()
		if err := step.Compensate(ctx); err != nil {
			// The primary error has already won; this one only gets recorded.
			metrics.CompensationFailures.WithLabelValues(name, step.Name).Inc()
			r.log.Error("compensation failed, ledger left inconsistent",
				zap.String("saga", name),
				zap.String("step", step.Name),
				zap.Error(err),
			)
		}
	}
}
