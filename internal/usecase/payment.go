package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"atelier-backend/internal/domain/payment"
	"atelier-backend/internal/infra"
	"atelier-backend/internal/infra/paygate"
	"atelier-backend/internal/pkg/clock"
	"atelier-backend/internal/pkg/config"
	"atelier-backend/internal/pkg/errs"
	"atelier-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateIntentParams struct {
	BookingID      *uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	IdempotencyKey *string
}

type CreateIntentResult struct {
	Payment      *readmodel.PaymentRM
	ClientSecret string
	Replayed     bool
}

type PaymentUseCase interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*CreateIntentResult, error)
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error
}

// IntentApplier is the single idempotent update rule shared by webhook
// ingestion and the reconciliation sweep. Both converge on the same remote
// source of truth, so last-writer-wins on status is safe.
type IntentApplier interface {
	ApplyIntent(ctx context.Context, intent *paygate.Intent, createIfMissing bool) error
}

type paymentUseCaseImpl struct {
	payments PaymentRepository
	bookings BookingRepository
	jobs     JobEnqueuer
	gateway  PaymentGateway
	cfg      config.PaymentConfig
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPaymentUseCase(
	payments PaymentRepository,
	bookings BookingRepository,
	jobs JobEnqueuer,
	gateway PaymentGateway,
	cfg config.PaymentConfig,
	clk clock.Clock,
	logger *slog.Logger,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		payments: payments,
		bookings: bookings,
		jobs:     jobs,
		gateway:  gateway,
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
	}
}

// NewIntentApplier exposes the shared apply rule to the reconciliation sweep.
func NewIntentApplier(
	payments PaymentRepository,
	bookings BookingRepository,
	jobs JobEnqueuer,
	clk clock.Clock,
	logger *slog.Logger,
) IntentApplier {
	return &paymentUseCaseImpl{
		payments: payments,
		bookings: bookings,
		jobs:     jobs,
		clock:    clk,
		logger:   logger,
	}
}

func (u *paymentUseCaseImpl) CreateIntent(ctx context.Context, params CreateIntentParams) (*CreateIntentResult, error) {
	if !params.Amount.IsPositive() {
		return nil, errs.Mark(errs.New("amount is required"), ErrValidation)
	}

	// A caller-supplied idempotency key short-circuits duplicate submissions
	// (double-click, client retry) before any remote call is made.
	if params.IdempotencyKey != nil && *params.IdempotencyKey != "" {
		existing, err := u.payments.FindByIdempotencyKey(ctx, *params.IdempotencyKey)
		if err == nil {
			return &CreateIntentResult{
				Payment:      existing,
				ClientSecret: clientSecretFromSnapshot(existing.Metadata),
				Replayed:     true,
			}, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	currency := params.Currency
	if currency == "" {
		currency = u.cfg.DefaultCurrency
	}

	metadata := map[string]string{}
	var clientID *uuid.UUID
	if params.BookingID != nil {
		bookingRM, err := u.bookings.FindByID(ctx, *params.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Wrap(err, "failed to find booking")
		}
		metadata["booking_id"] = bookingRM.ID.String()
		clientID = &bookingRM.ClientID
	}

	intent, err := u.gateway.CreateIntent(ctx, params.Amount, currency, metadata)
	if err != nil {
		if errors.Is(err, paygate.ErrNotConfigured) {
			return nil, errs.Mark(err, ErrGatewayNotConfigured)
		}
		return nil, errs.Mark(err, ErrGateway)
	}

	p := &payment.Payment{
		ID:             uuid.New(),
		BookingID:      params.BookingID,
		ClientID:       clientID,
		Amount:         params.Amount,
		Currency:       currency,
		Provider:       paygate.ProviderStripe,
		ProviderID:     intent.ProviderID,
		IdempotencyKey: params.IdempotencyKey,
		Status:         payment.StatusPending,
		Metadata:       intent.Raw,
	}

	rm, err := u.payments.Create(ctx, p)
	if err != nil {
		// Two requests racing on the same idempotency key: one insert wins,
		// the loser returns the winner's payment.
		if infra.IsKind(err, infra.KindDuplicateKey) && params.IdempotencyKey != nil {
			existing, findErr := u.payments.FindByIdempotencyKey(ctx, *params.IdempotencyKey)
			if findErr == nil {
				return &CreateIntentResult{
					Payment:      existing,
					ClientSecret: clientSecretFromSnapshot(existing.Metadata),
					Replayed:     true,
				}, nil
			}
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateIntentResult{Payment: rm, ClientSecret: intent.ClientSecret}, nil
}

func (u *paymentUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := u.gateway.VerifyWebhook(payload, sigHeader)
	if err != nil {
		switch {
		case errors.Is(err, paygate.ErrNotConfigured):
			return errs.Mark(err, ErrGatewayNotConfigured)
		case errors.Is(err, paygate.ErrSignatureInvalid):
			return errs.Mark(err, ErrSignatureInvalid)
		}
		return err
	}

	switch event.Type {
	case paygate.EventIntentSucceeded:
		// Create-if-missing compensates for a lost intent-creation step.
		return u.ApplyIntent(ctx, event.Intent, true)
	case paygate.EventIntentFailed:
		// A failure with no local row has no booking to update; skip creation.
		return u.ApplyIntent(ctx, event.Intent, false)
	default:
		// Received is the contract, business relevance is not.
		u.logger.Debug("ignoring webhook event", "type", string(event.Type))
		return nil
	}
}

// ApplyIntent upserts the local mirror of one remote intent and, when the
// intent has succeeded, advances the linked booking to DEPOSIT_PAID. Safe
// under replays, reordering and concurrent writers: the provider_id unique
// constraint collapses create races and MarkDepositPaid stamps at most once.
func (u *paymentUseCaseImpl) ApplyIntent(ctx context.Context, intent *paygate.Intent, createIfMissing bool) error {
	var (
		rm  *readmodel.PaymentRM
		err error
	)

	if createIfMissing {
		rm, err = u.payments.UpsertByProviderID(ctx, &payment.Payment{
			ID:         uuid.New(),
			BookingID:  bookingIDFromMetadata(intent.Metadata),
			Amount:     intent.Amount,
			Currency:   intent.Currency,
			Provider:   paygate.ProviderStripe,
			ProviderID: intent.ProviderID,
			Status:     intent.Status,
			Metadata:   intent.Raw,
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	} else {
		rm, err = u.payments.UpdateStatusByProviderID(ctx, intent.ProviderID, intent.Status, intent.Raw)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if rm.Status != string(payment.StatusSucceeded) || rm.BookingID == nil {
		return nil
	}

	advanced, err := u.bookings.MarkDepositPaid(ctx, *rm.BookingID, u.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if advanced {
		u.logger.Info("booking deposit confirmed",
			"booking_id", rm.BookingID, "provider_id", rm.ProviderID, "amount", rm.Amount.String())
		u.notifyDepositPaid(ctx, rm)
	}
	return nil
}

func (u *paymentUseCaseImpl) notifyDepositPaid(ctx context.Context, rm *readmodel.PaymentRM) {
	if u.jobs == nil {
		return
	}
	payload, _ := json.Marshal(map[string]any{
		"booking_id":  rm.BookingID,
		"provider_id": rm.ProviderID,
		"amount":      rm.Amount.String(),
		"currency":    rm.Currency,
	})
	if err := u.jobs.Enqueue(ctx, "email", "deposit.paid", payload, u.clock.Now()); err != nil {
		u.logger.Warn("failed to enqueue deposit email", "booking_id", rm.BookingID, "error", err.Error())
	}
}

func bookingIDFromMetadata(metadata map[string]string) *uuid.UUID {
	raw, ok := metadata["booking_id"]
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// clientSecretFromSnapshot recovers the client-facing secret from the stored
// raw intent snapshot when a create request is replayed.
func clientSecretFromSnapshot(snapshot []byte) string {
	var obj struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(snapshot, &obj); err != nil {
		return ""
	}
	return obj.ClientSecret
}
