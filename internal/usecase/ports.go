package usecase

import (
	"context"
	"errors"
	"time"

	"atelier-backend/internal/domain/booking"
	"atelier-backend/internal/domain/payment"
	"atelier-backend/internal/infra/paygate"
	"atelier-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrForbidden            = errors.New("access forbidden")
	ErrInvalidTransition    = errors.New("invalid booking transition")
	ErrGatewayNotConfigured = errors.New("payment provider not configured")
	ErrGateway              = errors.New("payment provider error")
	ErrSignatureInvalid     = errors.New("webhook signature invalid")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ClientRepository interface {
	UpsertByEmail(ctx context.Context, name, email string, phone *string) (*readmodel.ClientRM, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking, depositAmount *decimal.Decimal) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	UpdateReview(ctx context.Context, b *booking.Booking) error
	MarkDepositPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error)
	AppendNote(ctx context.Context, bookingID, authorID uuid.UUID, note string) error
	AddFile(ctx context.Context, bookingID uuid.UUID, fileName string, sizeBytes int64) (*readmodel.BookingFileRM, error)
	ListFiles(ctx context.Context, bookingID uuid.UUID) ([]*readmodel.BookingFileRM, error)
	FindDepositPromisedWithoutPayment(ctx context.Context, since time.Time) ([]*readmodel.BookingRM, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (*readmodel.PaymentRM, error)
	UpsertByProviderID(ctx context.Context, p *payment.Payment) (*readmodel.PaymentRM, error)
	UpdateStatusByProviderID(ctx context.Context, providerID string, status payment.Status, metadata []byte) (*readmodel.PaymentRM, error)
	FindByProviderID(ctx context.Context, providerID string) (*readmodel.PaymentRM, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*readmodel.PaymentRM, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*readmodel.PaymentRM, error)
}

type JobEnqueuer interface {
	Enqueue(ctx context.Context, queue, kind string, payload []byte, runAt time.Time) error
}

// PaymentGateway is the port to the external processor. Implementations
// translate remote amounts and statuses into the local vocabulary before
// anything crosses this boundary.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*paygate.Intent, error)
	ListIntents(ctx context.Context, from, to time.Time, fn func(*paygate.Intent) error) error
	VerifyWebhook(payload []byte, sigHeader string) (*paygate.Event, error)
}
