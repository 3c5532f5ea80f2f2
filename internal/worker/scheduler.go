package worker

import (
	"context"
	"log/slog"
	"time"

	"atelier-backend/internal/pkg/config"
)

type Enqueuer interface {
	Enqueue(ctx context.Context, queue, kind string, payload []byte, runAt time.Time) error
}

// Scheduler enqueues a reconciliation sweep on a fixed interval. The sweep
// itself runs on the reconcile queue like any other job, so overlapping or
// delayed sweeps fall under the pool's normal claiming rules.
type Scheduler struct {
	jobs   Enqueuer
	cfg    config.WorkerConfig
	logger *slog.Logger
}

func NewScheduler(jobs Enqueuer, cfg config.WorkerConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{jobs: jobs, cfg: cfg, logger: logger}
}

func (s *Scheduler) Run(ctx context.Context) {
	// First sweep shortly after boot so a restart never extends the
	// exposure window by a full interval.
	if err := s.jobs.Enqueue(ctx, QueueReconcile, "reconcile.sweep", nil, time.Now()); err != nil {
		s.logger.Error("failed to enqueue initial reconcile sweep", "error", err.Error())
	}

	ticker := time.NewTicker(s.cfg.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.jobs.Enqueue(ctx, QueueReconcile, "reconcile.sweep", nil, time.Now()); err != nil {
				s.logger.Error("failed to enqueue reconcile sweep", "error", err.Error())
			}
		}
	}
}
