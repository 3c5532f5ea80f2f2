package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"atelier-backend/internal/infra/paygate"
	"atelier-backend/internal/pkg/clock"
	"atelier-backend/internal/pkg/config"
	"atelier-backend/internal/pkg/errs"
)

type ReconcileReport struct {
	WindowFrom time.Time
	WindowTo   time.Time
	Seen       int
	Applied    int
	Failed     int
	Orphaned   int
}

// ReconcileUseCase sweeps the processor's recent intents against the local
// ledger. Webhooks are best-effort delivery; the sweep is the catch-all that
// guarantees convergence even when every webhook in the window was lost.
type ReconcileUseCase interface {
	Sweep(ctx context.Context) (*ReconcileReport, error)
}

type reconcileUseCaseImpl struct {
	bookings BookingRepository
	gateway  PaymentGateway
	applier  IntentApplier
	cfg      config.WorkerConfig
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReconcileUseCase(
	bookings BookingRepository,
	gateway PaymentGateway,
	applier IntentApplier,
	cfg config.WorkerConfig,
	clk clock.Clock,
	logger *slog.Logger,
) ReconcileUseCase {
	return &reconcileUseCaseImpl{
		bookings: bookings,
		gateway:  gateway,
		applier:  applier,
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
	}
}

func (u *reconcileUseCaseImpl) Sweep(ctx context.Context) (*ReconcileReport, error) {
	now := u.clock.Now()
	report := &ReconcileReport{
		WindowFrom: now.Add(-u.cfg.ReconcileWindow),
		WindowTo:   now,
	}

	err := u.gateway.ListIntents(ctx, report.WindowFrom, report.WindowTo, func(intent *paygate.Intent) error {
		report.Seen++
		// The sweep always creates missing rows: any intent the processor
		// knows about belongs in the ledger regardless of its status.
		if applyErr := u.applier.ApplyIntent(ctx, intent, true); applyErr != nil {
			// One bad intent must not abandon the rest of the window.
			report.Failed++
			u.logger.Error("failed to reconcile intent",
				"provider_id", intent.ProviderID, "status", string(intent.Status), "error", applyErr.Error())
			return nil
		}
		report.Applied++
		return nil
	})
	if err != nil {
		if errors.Is(err, paygate.ErrNotConfigured) {
			u.logger.Warn("reconciliation skipped, payment gateway not configured")
			return report, nil
		}
		// Listing failed partway; the run is abandoned and the next sweep
		// re-covers the window.
		return nil, errs.Mark(errs.Wrap(err, "failed to list intents for reconciliation"), ErrGateway)
	}

	u.auditOrphans(ctx, report)

	u.logger.Info("reconciliation sweep finished",
		"from", report.WindowFrom, "to", report.WindowTo,
		"seen", report.Seen, "applied", report.Applied,
		"failed", report.Failed, "orphaned", report.Orphaned)

	return report, nil
}

// auditOrphans flags bookings that promised a deposit but never got a payment
// row, the gap left by a crash between the booking insert and intent creation.
// Report-only: there is nothing remote to converge with.
func (u *reconcileUseCaseImpl) auditOrphans(ctx context.Context, report *ReconcileReport) {
	orphans, err := u.bookings.FindDepositPromisedWithoutPayment(ctx, report.WindowFrom)
	if err != nil {
		u.logger.Error("failed to audit deposit-promised bookings", "error", err.Error())
		return
	}
	report.Orphaned = len(orphans)
	for _, b := range orphans {
		u.logger.Warn("booking promised a deposit but has no payment intent",
			"booking_id", b.ID, "status", b.Status, "created_at", b.CreatedAt)
	}
}
