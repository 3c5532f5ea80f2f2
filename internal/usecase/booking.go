package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"atelier-backend/internal/domain/booking"
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

type FileMeta struct {
	Name      string
	SizeBytes int64
}

type CreateBookingParams struct {
	Name            string
	Email           string
	Phone           *string
	Title           string
	Description     string
	ProjectType     string
	DepositRequired bool
	DepositAmount   *decimal.Decimal
	Currency        string
	Files           []FileMeta
}

type CreateBookingResult struct {
	Booking      *readmodel.BookingRM
	ClientSecret *string
}

type BookingDetail struct {
	Booking  *readmodel.BookingRM
	Payments []*readmodel.PaymentRM
	Files    []*readmodel.BookingFileRM
}

type ReviewParams struct {
	Action        string
	PriceEstimate *decimal.Decimal
	AssignedToID  *uuid.UUID
	Note          *string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	GetBooking(ctx context.Context, id uuid.UUID, email string) (*BookingDetail, error)
	Review(ctx context.Context, id, reviewerID uuid.UUID, params ReviewParams) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	clients  ClientRepository
	bookings BookingRepository
	payments PaymentRepository
	jobs     JobEnqueuer
	gateway  PaymentGateway
	cfg      config.PaymentConfig
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingUseCase(
	clients ClientRepository,
	bookings BookingRepository,
	payments PaymentRepository,
	jobs JobEnqueuer,
	gateway PaymentGateway,
	cfg config.PaymentConfig,
	clk clock.Clock,
	logger *slog.Logger,
) BookingUseCase {
	return &bookingUseCaseImpl{
		clients:  clients,
		bookings: bookings,
		payments: payments,
		jobs:     jobs,
		gateway:  gateway,
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	email := strings.TrimSpace(params.Email)
	if email == "" {
		return nil, errs.Mark(errs.New("email is required"), ErrValidation)
	}
	// Validate before touching the client ledger so a rejected submission
	// never creates or refreshes a Client row.
	if strings.TrimSpace(params.Title) == "" {
		return nil, errs.Mark(booking.ErrTitleRequired, ErrValidation)
	}

	clientRM, err := u.clients.UpsertByEmail(ctx, strings.TrimSpace(params.Name), email, params.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := booking.NewBooking(clientRM.ID, params.Title, params.Description, booking.ProjectType(params.ProjectType))
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	depositAmount := u.requestedDeposit(params)

	bookingRM, err := u.bookings.Create(ctx, entity, depositAmount)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.attachFiles(ctx, bookingRM, params.Files)

	var clientSecret *string
	if depositAmount != nil {
		clientSecret, err = u.createDepositIntent(ctx, bookingRM, clientRM, *depositAmount, params.Currency)
		if err != nil {
			return nil, err
		}
	}

	u.enqueueEmail(ctx, "booking.received", bookingRM)

	return &CreateBookingResult{Booking: bookingRM, ClientSecret: clientSecret}, nil
}

func (u *bookingUseCaseImpl) requestedDeposit(params CreateBookingParams) *decimal.Decimal {
	if !params.DepositRequired || params.DepositAmount == nil || !params.DepositAmount.IsPositive() {
		return nil
	}
	return params.DepositAmount
}

// createDepositIntent is the second, non-atomic step after the booking
// insert. A crash in between leaves a deposit-promised booking without a
// payment row; the reconciliation sweep audits exactly that gap.
func (u *bookingUseCaseImpl) createDepositIntent(
	ctx context.Context,
	bookingRM *readmodel.BookingRM,
	clientRM *readmodel.ClientRM,
	amount decimal.Decimal,
	currency string,
) (*string, error) {
	if currency == "" {
		currency = u.cfg.DefaultCurrency
	}

	intentCtx, cancel := context.WithTimeout(ctx, u.cfg.IntentTimeout)
	defer cancel()

	intent, err := u.gateway.CreateIntent(intentCtx, amount, currency, map[string]string{
		"booking_id":   bookingRM.ID.String(),
		"client_email": clientRM.Email,
	})
	if err != nil {
		if errors.Is(err, paygate.ErrNotConfigured) {
			return nil, errs.Mark(err, ErrGatewayNotConfigured)
		}
		return nil, errs.Mark(err, ErrGateway)
	}

	p := &payment.Payment{
		ID:         uuid.New(),
		BookingID:  &bookingRM.ID,
		ClientID:   &clientRM.ID,
		Amount:     amount,
		Currency:   currency,
		Provider:   paygate.ProviderStripe,
		ProviderID: intent.ProviderID,
		Status:     payment.StatusPending,
		Metadata:   intent.Raw,
	}
	if _, err := u.payments.Create(ctx, p); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &intent.ClientSecret, nil
}

func (u *bookingUseCaseImpl) attachFiles(ctx context.Context, bookingRM *readmodel.BookingRM, files []FileMeta) {
	for _, f := range files {
		fileRM, err := u.bookings.AddFile(ctx, bookingRM.ID, f.Name, f.SizeBytes)
		if err != nil {
			u.logger.Warn("failed to record booking file", "booking_id", bookingRM.ID, "file", f.Name, "error", err.Error())
			continue
		}

		payload, _ := json.Marshal(map[string]any{
			"booking_id": bookingRM.ID,
			"file_id":    fileRM.ID,
			"file_name":  fileRM.FileName,
		})
		if err := u.jobs.Enqueue(ctx, "file_meta", "file.scan", payload, u.clock.Now()); err != nil {
			u.logger.Warn("failed to enqueue file job", "booking_id", bookingRM.ID, "error", err.Error())
		}
	}
}

func (u *bookingUseCaseImpl) enqueueEmail(ctx context.Context, kind string, bookingRM *readmodel.BookingRM) {
	payload, _ := json.Marshal(map[string]any{
		"booking_id":   bookingRM.ID,
		"client_email": bookingRM.ClientEmail,
		"title":        bookingRM.Title,
		"status":       bookingRM.Status,
	})
	if err := u.jobs.Enqueue(ctx, "email", kind, payload, u.clock.Now()); err != nil {
		// Email is a best-effort side channel; never fail the booking for it.
		u.logger.Warn("failed to enqueue email job", "kind", kind, "booking_id", bookingRM.ID, "error", err.Error())
	}
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID, email string) (*BookingDetail, error) {
	bookingRM, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if !strings.EqualFold(strings.TrimSpace(email), bookingRM.ClientEmail) {
		return nil, ErrForbidden
	}

	payments, err := u.payments.FindByBookingID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	files, err := u.bookings.ListFiles(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BookingDetail{Booking: bookingRM, Payments: payments, Files: files}, nil
}

func (u *bookingUseCaseImpl) Review(ctx context.Context, id, reviewerID uuid.UUID, params ReviewParams) (*readmodel.BookingRM, error) {
	bookingRM, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	entity, err := toDomain(bookingRM)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := entity.Review(booking.ReviewAction(params.Action), params.PriceEstimate, params.AssignedToID); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidReviewAction):
			return nil, errs.Mark(err, ErrValidation)
		case errors.Is(err, booking.ErrInvalidTransition):
			return nil, errs.Mark(err, ErrInvalidTransition)
		}
		return nil, err
	}

	if err := u.bookings.UpdateReview(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if params.Note != nil && strings.TrimSpace(*params.Note) != "" {
		if err := u.bookings.AppendNote(ctx, id, reviewerID, strings.TrimSpace(*params.Note)); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	updated, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.enqueueEmail(ctx, "booking.reviewed", updated)

	return updated, nil
}

func toDomain(rm *readmodel.BookingRM) (*booking.Booking, error) {
	status, err := booking.NewStatus(rm.Status)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		rm.ID, rm.ClientID, rm.Title, rm.Description,
		booking.ProjectType(rm.ProjectType), status,
		rm.PriceEstimate, rm.AssignedToID, rm.DepositPaidAt,
		rm.CreatedAt, rm.UpdatedAt,
	), nil
}
