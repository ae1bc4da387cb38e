package escalation

import (
	"context"
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

// RunLock serialises batch runs across processes.  The redis implementation
// lives under infrastructure/database/redis.
type RunLock interface {
	// TryLock attempts to take the lock without blocking; false means
	// another run holds it.
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// Metrics records run-level observability.  The prometheus implementation
// lives under infrastructure/monitoring/prometheus.
type Metrics interface {
	RecordRun(summary *RunSummary, duration time.Duration, err error)
}

// Runner wraps the orchestrator with the operational concerns a triggered
// batch needs: a cross-process run lock, a wall-clock deadline and metrics.
type Runner struct {
	orch     *Orchestrator
	lock     RunLock
	metrics  Metrics
	deadline time.Duration
	log      logging.Logger
}

// NewRunner wires the runner.  lock and metrics may be nil; deadline <= 0
// disables the per-run timeout.
func NewRunner(orch *Orchestrator, lock RunLock, metrics Metrics, deadline time.Duration, log logging.Logger) *Runner {
	return &Runner{orch: orch, lock: lock, metrics: metrics, deadline: deadline, log: log}
}

// Run takes the lock, runs one batch under the deadline and records metrics.
// A run already in progress elsewhere returns ErrCodeRunInProgress without
// touching any finding.
func (r *Runner) Run(ctx context.Context) (*RunSummary, error) {
	if r.lock != nil {
		ok, err := r.lock.TryLock(ctx)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeRunLockFailed, "acquiring run lock")
		}
		if !ok {
			return nil, errors.New(errors.ErrCodeRunInProgress,
				"another escalation run is already in progress")
		}
		defer func() {
			if err := r.lock.Unlock(context.WithoutCancel(ctx)); err != nil {
				r.log.Warn("run lock not released, will expire via TTL", logging.Err(err))
			}
		}()
	}

	runCtx := ctx
	if r.deadline > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.deadline)
		defer cancel()
	}

	start := time.Now()
	summary, err := r.orch.Run(runCtx)
	if r.metrics != nil {
		r.metrics.RecordRun(summary, time.Since(start), err)
	}
	return summary, err
}

//Personal.AI order the ending
