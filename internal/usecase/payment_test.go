//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier-backend/internal/domain/payment"
	"atelier-backend/internal/infra"
	"atelier-backend/internal/infra/paygate"
	"atelier-backend/internal/pkg/clock"
	"atelier-backend/internal/pkg/config"
	"atelier-backend/internal/usecase"
	"atelier-backend/internal/usecase/readmodel"
	usecasemock "atelier-backend/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPaymentConfig() config.PaymentConfig {
	return config.PaymentConfig{
		SecretKey:       "sk_test",
		WebhookSecret:   "whsec_test",
		DefaultCurrency: "KES",
		IntentTimeout:   15 * time.Second,
	}
}

type PaymentUseCaseTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	payments *usecasemock.MockPaymentRepository
	bookings *usecasemock.MockBookingRepository
	jobs     *usecasemock.MockJobEnqueuer
	gateway  *usecasemock.MockPaymentGateway
	uc       usecase.PaymentUseCase
}

func (s *PaymentUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.payments = usecasemock.NewMockPaymentRepository(s.ctrl)
	s.bookings = usecasemock.NewMockBookingRepository(s.ctrl)
	s.jobs = usecasemock.NewMockJobEnqueuer(s.ctrl)
	s.gateway = usecasemock.NewMockPaymentGateway(s.ctrl)
	s.uc = usecase.NewPaymentUseCase(
		s.payments, s.bookings, s.jobs, s.gateway,
		testPaymentConfig(), clock.NewMockClock(testNow), testLogger(),
	)
}

func (s *PaymentUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentUseCaseSuite(t *testing.T) {
	suite.Run(t, new(PaymentUseCaseTestSuite))
}

func succeededIntent(bookingID uuid.UUID) *paygate.Intent {
	return &paygate.Intent{
		ProviderID: "pi_123",
		Amount:     decimal.NewFromInt(50),
		Currency:   "KES",
		Status:     payment.StatusSucceeded,
		Metadata:   map[string]string{"booking_id": bookingID.String()},
		Raw:        json.RawMessage(`{"id":"pi_123","status":"succeeded"}`),
	}
}

// ================================================================================
// HandleWebhook
// ================================================================================

func (s *PaymentUseCaseTestSuite) TestHandleWebhookSucceeded() {
	bookingID := uuid.New()
	intent := succeededIntent(bookingID)
	payload := []byte(`{"type":"payment_intent.succeeded"}`)

	s.Run("upserts and marks deposit paid", func() {
		s.gateway.EXPECT().VerifyWebhook(payload, "sig").
			Return(&paygate.Event{Type: paygate.EventIntentSucceeded, Intent: intent}, nil)
		s.payments.EXPECT().UpsertByProviderID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) (*readmodel.PaymentRM, error) {
				s.Equal("pi_123", p.ProviderID)
				s.Require().NotNil(p.BookingID)
				s.Equal(bookingID, *p.BookingID)
				return &readmodel.PaymentRM{
					ID:         p.ID,
					BookingID:  p.BookingID,
					Amount:     p.Amount,
					Currency:   p.Currency,
					ProviderID: p.ProviderID,
					Status:     string(payment.StatusSucceeded),
				}, nil
			})
		s.bookings.EXPECT().MarkDepositPaid(gomock.Any(), bookingID, testNow).Return(true, nil)
		s.jobs.EXPECT().Enqueue(gomock.Any(), "email", "deposit.paid", gomock.Any(), testNow).Return(nil)

		s.NoError(s.uc.HandleWebhook(context.Background(), payload, "sig"))
	})

	s.Run("replay converges without a second notification", func() {
		s.gateway.EXPECT().VerifyWebhook(payload, "sig").
			Return(&paygate.Event{Type: paygate.EventIntentSucceeded, Intent: intent}, nil)
		s.payments.EXPECT().UpsertByProviderID(gomock.Any(), gomock.Any()).
			Return(&readmodel.PaymentRM{
				BookingID:  &bookingID,
				ProviderID: "pi_123",
				Amount:     intent.Amount,
				Status:     string(payment.StatusSucceeded),
			}, nil)
		// Booking already at DEPOSIT_PAID: no stamp, no email.
		s.bookings.EXPECT().MarkDepositPaid(gomock.Any(), bookingID, testNow).Return(false, nil)

		s.NoError(s.uc.HandleWebhook(context.Background(), payload, "sig"))
	})
}

func (s *PaymentUseCaseTestSuite) TestHandleWebhookFailed() {
	payload := []byte(`{"type":"payment_intent.payment_failed"}`)
	intent := &paygate.Intent{
		ProviderID: "pi_void",
		Status:     payment.StatusFailed,
		Raw:        json.RawMessage(`{"id":"pi_void"}`),
	}

	s.Run("updates an existing row", func() {
		s.gateway.EXPECT().VerifyWebhook(payload, "sig").
			Return(&paygate.Event{Type: paygate.EventIntentFailed, Intent: intent}, nil)
		s.payments.EXPECT().UpdateStatusByProviderID(gomock.Any(), "pi_void", payment.StatusFailed, intent.Raw).
			Return(&readmodel.PaymentRM{ProviderID: "pi_void", Status: string(payment.StatusFailed)}, nil)

		s.NoError(s.uc.HandleWebhook(context.Background(), payload, "sig"))
	})

	s.Run("unknown intent creates nothing", func() {
		s.gateway.EXPECT().VerifyWebhook(payload, "sig").
			Return(&paygate.Event{Type: paygate.EventIntentFailed, Intent: intent}, nil)
		s.payments.EXPECT().UpdateStatusByProviderID(gomock.Any(), "pi_void", payment.StatusFailed, intent.Raw).
			Return(nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound))

		s.NoError(s.uc.HandleWebhook(context.Background(), payload, "sig"))
	})
}

func (s *PaymentUseCaseTestSuite) TestHandleWebhookErrors() {
	s.Run("invalid signature", func() {
		s.gateway.EXPECT().VerifyWebhook(gomock.Any(), "bad").
			Return(nil, paygate.ErrSignatureInvalid)

		err := s.uc.HandleWebhook(context.Background(), []byte(`{}`), "bad")
		s.ErrorIs(err, usecase.ErrSignatureInvalid)
	})

	s.Run("not configured", func() {
		s.gateway.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any()).
			Return(nil, paygate.ErrNotConfigured)

		err := s.uc.HandleWebhook(context.Background(), []byte(`{}`), "sig")
		s.ErrorIs(err, usecase.ErrGatewayNotConfigured)
	})

	s.Run("irrelevant event type is acknowledged", func() {
		s.gateway.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any()).
			Return(&paygate.Event{Type: "charge.refunded"}, nil)

		s.NoError(s.uc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
	})
}

// ================================================================================
// CreateIntent
// ================================================================================

func (s *PaymentUseCaseTestSuite) TestCreateIntent() {
	amount := decimal.NewFromInt(200)

	s.Run("creates a pending payment for a booking", func() {
		bookingID := uuid.New()
		clientID := uuid.New()

		s.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(&readmodel.BookingRM{ID: bookingID, ClientID: clientID}, nil)
		s.gateway.EXPECT().CreateIntent(gomock.Any(), amount, "KES", map[string]string{"booking_id": bookingID.String()}).
			Return(&paygate.Intent{
				ProviderID:   "pi_new",
				ClientSecret: "pi_new_secret",
				Amount:       amount,
				Currency:     "KES",
				Status:       payment.StatusPending,
				Raw:          json.RawMessage(`{"id":"pi_new","client_secret":"pi_new_secret"}`),
			}, nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) (*readmodel.PaymentRM, error) {
				s.Equal(payment.StatusPending, p.Status)
				s.Equal("pi_new", p.ProviderID)
				s.Require().NotNil(p.ClientID)
				s.Equal(clientID, *p.ClientID)
				return &readmodel.PaymentRM{ID: p.ID, ProviderID: p.ProviderID, Amount: p.Amount, Status: string(p.Status)}, nil
			})

		result, err := s.uc.CreateIntent(context.Background(), usecase.CreateIntentParams{
			BookingID: &bookingID,
			Amount:    amount,
		})
		s.Require().NoError(err)
		s.Equal("pi_new_secret", result.ClientSecret)
		s.False(result.Replayed)
	})

	s.Run("idempotency key replay returns the stored payment", func() {
		key := "retry-1"
		stored := &readmodel.PaymentRM{
			ProviderID: "pi_old",
			Amount:     amount,
			Status:     string(payment.StatusPending),
			Metadata:   []byte(`{"id":"pi_old","client_secret":"pi_old_secret"}`),
		}
		s.payments.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(stored, nil)

		result, err := s.uc.CreateIntent(context.Background(), usecase.CreateIntentParams{
			Amount:         amount,
			IdempotencyKey: &key,
		})
		s.Require().NoError(err)
		s.True(result.Replayed)
		s.Equal("pi_old_secret", result.ClientSecret)
		s.Equal("pi_old", result.Payment.ProviderID)
	})

	s.Run("losing the insert race replays the winner", func() {
		key := "retry-race"
		winner := &readmodel.PaymentRM{
			ProviderID: "pi_winner",
			Amount:     amount,
			Status:     string(payment.StatusPending),
			Metadata:   []byte(`{"id":"pi_winner","client_secret":"pi_winner_secret"}`),
		}

		// Key unseen at first, so this writer goes all the way to the insert.
		gomock.InOrder(
			s.payments.EXPECT().FindByIdempotencyKey(gomock.Any(), key).
				Return(nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)),
			s.gateway.EXPECT().CreateIntent(gomock.Any(), amount, "KES", gomock.Any()).
				Return(&paygate.Intent{
					ProviderID:   "pi_loser",
					ClientSecret: "pi_loser_secret",
					Amount:       amount,
					Currency:     "KES",
					Status:       payment.StatusPending,
					Raw:          json.RawMessage(`{"id":"pi_loser"}`),
				}, nil),
			s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(nil, infra.WrapRepoErr("failed to create payment", nil, infra.KindDuplicateKey)),
			s.payments.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(winner, nil),
		)

		result, err := s.uc.CreateIntent(context.Background(), usecase.CreateIntentParams{
			Amount:         amount,
			IdempotencyKey: &key,
		})
		s.Require().NoError(err)
		s.True(result.Replayed)
		s.Equal("pi_winner", result.Payment.ProviderID)
		s.Equal("pi_winner_secret", result.ClientSecret)
	})

	s.Run("non-positive amount rejected", func() {
		_, err := s.uc.CreateIntent(context.Background(), usecase.CreateIntentParams{
			Amount: decimal.Zero,
		})
		s.ErrorIs(err, usecase.ErrValidation)
	})

	s.Run("unknown booking", func() {
		bookingID := uuid.New()
		s.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.uc.CreateIntent(context.Background(), usecase.CreateIntentParams{
			BookingID: &bookingID,
			Amount:    amount,
		})
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})

	s.Run("gateway not configured", func() {
		s.payments.EXPECT().FindByIdempotencyKey(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)).AnyTimes()
		s.gateway.EXPECT().CreateIntent(gomock.Any(), amount, "KES", gomock.Any()).
			Return(nil, paygate.ErrNotConfigured)

		_, err := s.uc.CreateIntent(context.Background(), usecase.CreateIntentParams{Amount: amount})
		s.ErrorIs(err, usecase.ErrGatewayNotConfigured)
	})
}

// ================================================================================
// ApplyIntent (shared by webhook and sweep)
// ================================================================================

func (s *PaymentUseCaseTestSuite) TestApplyIntent() {
	applier := usecase.NewIntentApplier(
		s.payments, s.bookings, s.jobs, clock.NewMockClock(testNow), testLogger(),
	)

	s.Run("pending intent never touches the booking", func() {
		intent := &paygate.Intent{
			ProviderID: "pi_pending",
			Amount:     decimal.NewFromInt(50),
			Currency:   "KES",
			Status:     payment.StatusPending,
		}
		bookingID := uuid.New()
		s.payments.EXPECT().UpsertByProviderID(gomock.Any(), gomock.Any()).
			Return(&readmodel.PaymentRM{BookingID: &bookingID, ProviderID: "pi_pending", Status: string(payment.StatusPending)}, nil)

		s.NoError(applier.ApplyIntent(context.Background(), intent, true))
	})

	s.Run("succeeded intent without booking link stops at the ledger", func() {
		intent := &paygate.Intent{
			ProviderID: "pi_orphan",
			Amount:     decimal.NewFromInt(50),
			Currency:   "KES",
			Status:     payment.StatusSucceeded,
		}
		s.payments.EXPECT().UpsertByProviderID(gomock.Any(), gomock.Any()).
			Return(&readmodel.PaymentRM{ProviderID: "pi_orphan", Status: string(payment.StatusSucceeded)}, nil)

		s.NoError(applier.ApplyIntent(context.Background(), intent, true))
	})
}
