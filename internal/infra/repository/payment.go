package repository

import (
	"context"

	"atelier-backend/internal/domain/payment"
	"atelier-backend/internal/infra"
	"atelier-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `
    id, booking_id, client_id, amount::text, currency, provider, provider_id,
    idempotency_key, status, metadata, created_at, updated_at`

const insertPaymentSQL = `
INSERT INTO payments (
    id, booking_id, client_id, amount, currency, provider, provider_id,
    idempotency_key, status, metadata
) VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10)
RETURNING` + paymentColumns

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (*readmodel.PaymentRM, error) {
	row := r.db.QueryRow(ctx, insertPaymentSQL,
		p.ID, p.BookingID, p.ClientID, p.Amount.String(), p.Currency,
		p.Provider, p.ProviderID, p.IdempotencyKey, string(p.Status), p.Metadata,
	)
	rm, err := scanPaymentRM(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return rm, nil
}

// upsertPaymentSQL is the single idempotent write rule shared by the webhook
// ingestor and the reconciliation sweeper. The unique constraint on
// provider_id turns a create/create race into one insert and one update;
// status is last-writer-wins because both writers derive it from the same
// remote object.
const upsertPaymentSQL = `
INSERT INTO payments (
    id, booking_id, client_id, amount, currency, provider, provider_id, status, metadata
) VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9)
ON CONFLICT (provider_id) DO UPDATE SET
    status     = EXCLUDED.status,
    metadata   = EXCLUDED.metadata,
    booking_id = COALESCE(payments.booking_id, EXCLUDED.booking_id),
    updated_at = now()
RETURNING` + paymentColumns

func (r *PaymentRepository) UpsertByProviderID(ctx context.Context, p *payment.Payment) (*readmodel.PaymentRM, error) {
	row := r.db.QueryRow(ctx, upsertPaymentSQL,
		p.ID, p.BookingID, p.ClientID, p.Amount.String(), p.Currency,
		p.Provider, p.ProviderID, string(p.Status), p.Metadata,
	)
	rm, err := scanPaymentRM(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert payment", err)
	}
	return rm, nil
}

const updateStatusSQL = `
UPDATE payments SET
    status     = $2,
    metadata   = COALESCE($3, metadata),
    updated_at = now()
WHERE provider_id = $1
RETURNING` + paymentColumns

// UpdateStatusByProviderID updates an existing mirror row only; a missing row
// yields KindNotFound so the caller can decide whether absence matters.
func (r *PaymentRepository) UpdateStatusByProviderID(ctx context.Context, providerID string, status payment.Status, metadata []byte) (*readmodel.PaymentRM, error) {
	row := r.db.QueryRow(ctx, updateStatusSQL, providerID, string(status), metadata)
	rm, err := scanPaymentRM(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update payment status", err)
	}
	return rm, nil
}

func (r *PaymentRepository) FindByProviderID(ctx context.Context, providerID string) (*readmodel.PaymentRM, error) {
	row := r.db.QueryRow(ctx, `SELECT`+paymentColumns+` FROM payments WHERE provider_id = $1`, providerID)
	rm, err := scanPaymentRM(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by provider ID", err)
	}
	return rm, nil
}

func (r *PaymentRepository) FindByIdempotencyKey(ctx context.Context, key string) (*readmodel.PaymentRM, error) {
	row := r.db.QueryRow(ctx, `SELECT`+paymentColumns+` FROM payments WHERE idempotency_key = $1`, key)
	rm, err := scanPaymentRM(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by idempotency key", err)
	}
	return rm, nil
}

func (r *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*readmodel.PaymentRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+paymentColumns+` FROM payments WHERE booking_id = $1 ORDER BY created_at`, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payments by booking ID", err)
	}
	defer rows.Close()

	var result []*readmodel.PaymentRM
	for rows.Next() {
		rm, err := scanPaymentRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return result, nil
}

func scanPaymentRM(row rowScanner) (*readmodel.PaymentRM, error) {
	var (
		rm        readmodel.PaymentRM
		amountStr string
	)
	err := row.Scan(
		&rm.ID, &rm.BookingID, &rm.ClientID, &amountStr, &rm.Currency,
		&rm.Provider, &rm.ProviderID, &rm.IdempotencyKey, &rm.Status,
		&rm.Metadata, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	amount, err := decimalFromString(amountStr)
	if err != nil {
		return nil, err
	}
	rm.Amount = amount
	return &rm, nil
}
