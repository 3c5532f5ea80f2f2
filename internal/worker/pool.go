package worker

import (
	"context"
	"log/slog"
	"time"

	"atelier-backend/internal/pkg/config"

	"github.com/google/uuid"
)

// Named queues shared by the whole backend. Reconciliation, outbound email
// and file-metadata work all ride the same jobs table.
const (
	QueueReconcile = "reconcile"
	QueueEmail     = "email"
	QueueFileMeta  = "file_meta"
)

const maxAttempts = 5

type Job struct {
	ID       uuid.UUID
	Queue    string
	Kind     string
	Payload  []byte
	Attempts int32
}

type Handler func(ctx context.Context, job *Job) error

type JobStore interface {
	ClaimDue(ctx context.Context, workerID string, queues []string, staleBefore time.Time, limit int32) ([]*Job, error)
	MarkDone(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, retryAt *time.Time) error
}

// Pool is a single polling worker loop dispatching claimed jobs to handlers
// registered per queue. Multiple processes may run the same pool against the
// same table; SKIP LOCKED claiming keeps them from double-working a job.
type Pool struct {
	store    JobStore
	cfg      config.WorkerConfig
	logger   *slog.Logger
	workerID string
	handlers map[string]Handler
	queues   []string
}

func NewPool(store JobStore, cfg config.WorkerConfig, logger *slog.Logger) *Pool {
	return &Pool{
		store:    store,
		cfg:      cfg,
		logger:   logger,
		workerID: "worker-" + uuid.NewString()[:8],
		handlers: make(map[string]Handler),
	}
}

func (p *Pool) Register(queue string, h Handler) {
	p.handlers[queue] = h
	p.queues = append(p.queues, queue)
}

func (p *Pool) Run(ctx context.Context) {
	p.logger.Info("worker pool started", "worker_id", p.workerID, "queues", p.queues)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker pool stopped", "worker_id", p.workerID)
			return
		default:
		}

		p.processOnce(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info("worker pool stopped", "worker_id", p.workerID)
			return
		case <-time.After(p.cfg.PollInterval):
		}
	}
}

func (p *Pool) processOnce(ctx context.Context) {
	staleBefore := time.Now().Add(-p.cfg.LockTTL)

	jobs, err := p.store.ClaimDue(ctx, p.workerID, p.queues, staleBefore, int32(p.cfg.BatchSize))
	if err != nil {
		p.logger.Error("failed to claim jobs", "error", err.Error())
		return
	}

	for _, job := range jobs {
		p.dispatch(ctx, job)
	}
}

// dispatch runs one job in isolation: a failing job is retried with backoff
// and never blocks the rest of the batch.
func (p *Pool) dispatch(ctx context.Context, job *Job) {
	handler, ok := p.handlers[job.Queue]
	if !ok {
		p.logger.Warn("no handler for queue", "queue", job.Queue, "job_id", job.ID)
		if err := p.store.MarkFailed(ctx, job.ID, "no handler registered", nil); err != nil {
			p.logger.Error("failed to park job", "job_id", job.ID, "error", err.Error())
		}
		return
	}

	if err := handler(ctx, job); err != nil {
		p.logger.Warn("job failed",
			"queue", job.Queue, "kind", job.Kind, "job_id", job.ID,
			"attempt", job.Attempts, "error", err.Error())

		var retryAt *time.Time
		if job.Attempts < maxAttempts {
			t := time.Now().Add(retryBackoff(job.Attempts))
			retryAt = &t
		}
		if err := p.store.MarkFailed(ctx, job.ID, err.Error(), retryAt); err != nil {
			p.logger.Error("failed to record job failure", "job_id", job.ID, "error", err.Error())
		}
		return
	}

	if err := p.store.MarkDone(ctx, job.ID); err != nil {
		p.logger.Error("failed to mark job done", "job_id", job.ID, "error", err.Error())
	}
}

func retryBackoff(attempt int32) time.Duration {
	d := time.Minute << uint(attempt-1)
	if d > 30*time.Minute {
		d = 30 * time.Minute
	}
	return d
}
