package repository

import (
	"context"
	"strings"
	"time"

	"atelier-backend/internal/domain/booking"
	"atelier-backend/internal/infra"
	"atelier-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `
    b.id, b.client_id, c.email, b.title, b.description, b.project_type,
    b.status, b.price_estimate::text, b.assigned_to_id,
    b.deposit_requested, b.deposit_amount::text, b.deposit_paid_at,
    b.created_at, b.updated_at`

const insertBookingSQL = `
INSERT INTO bookings (
    id, client_id, title, description, project_type, status,
    deposit_requested, deposit_amount
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric)`

// Create persists a new booking. The deposit request is recorded on the row
// itself so the sweeper can later audit bookings whose intent creation never
// completed.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking, depositAmount *decimal.Decimal) (*readmodel.BookingRM, error) {
	var amountArg *string
	if depositAmount != nil {
		s := depositAmount.String()
		amountArg = &s
	}

	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.ClientID(), b.Title(), b.Description(), string(b.ProjectType()),
		string(b.Status()), depositAmount != nil, amountArg,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return r.FindByID(ctx, b.ID())
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+bookingColumns+` FROM bookings b JOIN clients c ON c.id = b.client_id WHERE b.id = $1`, id)

	rm, err := scanBookingRM(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rm, nil
}

const updateReviewSQL = `
UPDATE bookings SET
    status         = $2,
    price_estimate = COALESCE($3::numeric, price_estimate),
    assigned_to_id = COALESCE($4, assigned_to_id),
    updated_at     = now()
WHERE id = $1`

// UpdateReview writes back the result of a staff review decision.
func (r *BookingRepository) UpdateReview(ctx context.Context, b *booking.Booking) error {
	var estimateArg *string
	if b.PriceEstimate() != nil {
		s := b.PriceEstimate().String()
		estimateArg = &s
	}

	tag, err := r.db.Exec(ctx, updateReviewSQL, b.ID(), string(b.Status()), estimateArg, b.AssignedToID())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// The status guard is built from the domain's pre-deposit list so the SQL and
// booking.MarkDepositPaid can never disagree on which statuses may advance.
var markDepositPaidSQL = `
UPDATE bookings SET
    status          = 'DEPOSIT_PAID',
    deposit_paid_at = COALESCE(deposit_paid_at, $2),
    updated_at      = now()
WHERE id = $1
  AND status IN (` + quoteStatuses(booking.PreDepositStatuses()) + `)`

func quoteStatuses(statuses []booking.Status) string {
	quoted := make([]string, len(statuses))
	for i, s := range statuses {
		quoted[i] = "'" + string(s) + "'"
	}
	return strings.Join(quoted, ", ")
}

// MarkDepositPaid advances a booking to DEPOSIT_PAID. The status guard makes
// the write idempotent and monotonic: replays and late webhooks affect zero
// rows, and deposit_paid_at keeps its first value. Returns whether the
// booking actually advanced.
func (r *BookingRepository) MarkDepositPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markDepositPaidSQL, id, paidAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark deposit paid", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) AppendNote(ctx context.Context, bookingID, authorID uuid.UUID, note string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO booking_notes (id, booking_id, author_id, note) VALUES ($1, $2, $3, $4)`,
		uuid.New(), bookingID, authorID, note,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append booking note", err)
	}
	return nil
}

func (r *BookingRepository) AddFile(ctx context.Context, bookingID uuid.UUID, fileName string, sizeBytes int64) (*readmodel.BookingFileRM, error) {
	var rm readmodel.BookingFileRM
	err := r.db.QueryRow(ctx,
		`INSERT INTO booking_files (id, booking_id, file_name, size_bytes)
         VALUES ($1, $2, $3, $4)
         RETURNING id, booking_id, file_name, size_bytes, created_at`,
		uuid.New(), bookingID, fileName, sizeBytes,
	).Scan(&rm.ID, &rm.BookingID, &rm.FileName, &rm.SizeBytes, &rm.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to add booking file", err)
	}
	return &rm, nil
}

func (r *BookingRepository) ListFiles(ctx context.Context, bookingID uuid.UUID) ([]*readmodel.BookingFileRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, booking_id, file_name, size_bytes, created_at
         FROM booking_files WHERE booking_id = $1 ORDER BY created_at`, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking files", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingFileRM
	for rows.Next() {
		var rm readmodel.BookingFileRM
		if err := rows.Scan(&rm.ID, &rm.BookingID, &rm.FileName, &rm.SizeBytes, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking file", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking files", err)
	}
	return result, nil
}

const depositPromisedSQL = `
SELECT` + bookingColumns + `
FROM bookings b
JOIN clients c ON c.id = b.client_id
WHERE b.deposit_requested
  AND b.created_at >= $1
  AND NOT EXISTS (SELECT 1 FROM payments p WHERE p.booking_id = b.id)
ORDER BY b.created_at`

// FindDepositPromisedWithoutPayment returns bookings that asked for a deposit
// but have no payment row, i.e. the intent-creation step never completed.
func (r *BookingRepository) FindDepositPromisedWithoutPayment(ctx context.Context, since time.Time) ([]*readmodel.BookingRM, error) {
	rows, err := r.db.Query(ctx, depositPromisedSQL, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find deposit-promised bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBookingRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRM(row rowScanner) (*readmodel.BookingRM, error) {
	var (
		rm          readmodel.BookingRM
		estimateStr *string
		depositStr  *string
	)
	err := row.Scan(
		&rm.ID, &rm.ClientID, &rm.ClientEmail, &rm.Title, &rm.Description, &rm.ProjectType,
		&rm.Status, &estimateStr, &rm.AssignedToID,
		&rm.DepositRequested, &depositStr, &rm.DepositPaidAt,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rm.PriceEstimate, err = decimalPtrFromString(estimateStr); err != nil {
		return nil, err
	}
	if rm.DepositAmount, err = decimalPtrFromString(depositStr); err != nil {
		return nil, err
	}
	return &rm, nil
}

func decimalPtrFromString(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
