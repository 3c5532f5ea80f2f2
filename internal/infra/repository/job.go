package repository

import (
	"context"
	"time"

	"atelier-backend/internal/infra"
	"atelier-backend/internal/worker"

	"github.com/google/uuid"
)

type JobRepository struct {
	db DBTX
}

func NewJobRepository(db DBTX) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Enqueue(ctx context.Context, queue, kind string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, queue, kind, payload, status, run_at)
         VALUES ($1, $2, $3, $4, 'queued', $5)`,
		uuid.New(), queue, kind, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue job", err)
	}
	return nil
}

// claimDueSQL claims a batch of runnable jobs for one worker. SKIP LOCKED
// keeps concurrent workers from blocking on each other; the lock TTL lets a
// crashed worker's jobs be stolen after locked_at goes stale.
const claimDueSQL = `
UPDATE jobs SET
    status     = 'running',
    locked_at  = now(),
    locked_by  = $1,
    attempts   = attempts + 1,
    updated_at = now()
WHERE id IN (
    SELECT id FROM jobs
    WHERE queue = ANY($2)
      AND status IN ('queued', 'running')
      AND run_at <= now()
      AND (locked_at IS NULL OR locked_at <= $3)
    ORDER BY run_at
    LIMIT $4
    FOR UPDATE SKIP LOCKED
)
RETURNING id, queue, kind, payload, attempts`

func (r *JobRepository) ClaimDue(ctx context.Context, workerID string, queues []string, staleBefore time.Time, limit int32) ([]*worker.Job, error) {
	rows, err := r.db.Query(ctx, claimDueSQL, workerID, queues, staleBefore, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim jobs", err)
	}
	defer rows.Close()

	var jobs []*worker.Job
	for rows.Next() {
		var j worker.Job
		if err := rows.Scan(&j.ID, &j.Queue, &j.Kind, &j.Payload, &j.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan job", err)
		}
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate jobs", err)
	}
	return jobs, nil
}

func (r *JobRepository) MarkDone(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = 'done', locked_at = NULL, locked_by = NULL, updated_at = now()
         WHERE id = $1`, jobID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark job done", err)
	}
	return nil
}

// MarkFailed releases the job for a later retry, or parks it as dead once the
// attempt budget is spent.
func (r *JobRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string, retryAt *time.Time) error {
	var err error
	if retryAt != nil {
		_, err = r.db.Exec(ctx,
			`UPDATE jobs SET status = 'queued', run_at = $2, last_error = $3,
                 locked_at = NULL, locked_by = NULL, updated_at = now()
             WHERE id = $1`, jobID, *retryAt, lastError)
	} else {
		_, err = r.db.Exec(ctx,
			`UPDATE jobs SET status = 'dead', last_error = $2,
                 locked_at = NULL, locked_by = NULL, updated_at = now()
             WHERE id = $1`, jobID, lastError)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to mark job failed", err)
	}
	return nil
}
