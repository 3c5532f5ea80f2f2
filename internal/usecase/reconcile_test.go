//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"atelier-backend/internal/domain/payment"
	"atelier-backend/internal/infra/paygate"
	"atelier-backend/internal/pkg/clock"
	"atelier-backend/internal/pkg/config"
	"atelier-backend/internal/usecase"
	"atelier-backend/internal/usecase/readmodel"
	usecasemock "atelier-backend/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReconcileTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	bookings *usecasemock.MockBookingRepository
	gateway  *usecasemock.MockPaymentGateway
	applier  *usecasemock.MockIntentApplier
	uc       usecase.ReconcileUseCase
}

func (s *ReconcileTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = usecasemock.NewMockBookingRepository(s.ctrl)
	s.gateway = usecasemock.NewMockPaymentGateway(s.ctrl)
	s.applier = usecasemock.NewMockIntentApplier(s.ctrl)
	s.uc = usecase.NewReconcileUseCase(
		s.bookings, s.gateway, s.applier,
		config.WorkerConfig{ReconcileWindow: 24 * time.Hour},
		clock.NewMockClock(testNow), testLogger(),
	)
}

func (s *ReconcileTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconcileSuite(t *testing.T) {
	suite.Run(t, new(ReconcileTestSuite))
}

func (s *ReconcileTestSuite) intents(n int) []*paygate.Intent {
	out := make([]*paygate.Intent, n)
	for i := range out {
		out[i] = &paygate.Intent{
			ProviderID: "pi_" + uuid.NewString()[:8],
			Amount:     decimal.NewFromInt(50),
			Currency:   "KES",
			Status:     payment.StatusSucceeded,
		}
	}
	return out
}

func (s *ReconcileTestSuite) expectList(intents []*paygate.Intent, listErr error) {
	from := testNow.Add(-24 * time.Hour)
	s.gateway.EXPECT().ListIntents(gomock.Any(), from, testNow, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ time.Time, fn func(*paygate.Intent) error) error {
			for _, intent := range intents {
				if err := fn(intent); err != nil {
					return err
				}
			}
			return listErr
		})
}

func (s *ReconcileTestSuite) TestSweep() {
	s.Run("applies every intent in the window with create-if-missing", func() {
		intents := s.intents(3)
		s.expectList(intents, nil)
		for _, intent := range intents {
			s.applier.EXPECT().ApplyIntent(gomock.Any(), intent, true).Return(nil)
		}
		s.bookings.EXPECT().FindDepositPromisedWithoutPayment(gomock.Any(), testNow.Add(-24*time.Hour)).
			Return(nil, nil)

		report, err := s.uc.Sweep(context.Background())
		s.Require().NoError(err)

		want := &usecase.ReconcileReport{
			WindowFrom: testNow.Add(-24 * time.Hour),
			WindowTo:   testNow,
			Seen:       3,
			Applied:    3,
		}
		if diff := cmp.Diff(want, report); diff != "" {
			s.Failf("report mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("one failing intent does not abandon the rest", func() {
		intents := s.intents(3)
		s.expectList(intents, nil)
		s.applier.EXPECT().ApplyIntent(gomock.Any(), intents[0], true).Return(nil)
		s.applier.EXPECT().ApplyIntent(gomock.Any(), intents[1], true).
			Return(usecase.ErrDatabaseOperationFailed)
		s.applier.EXPECT().ApplyIntent(gomock.Any(), intents[2], true).Return(nil)
		s.bookings.EXPECT().FindDepositPromisedWithoutPayment(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		report, err := s.uc.Sweep(context.Background())
		s.Require().NoError(err)
		s.Equal(3, report.Seen)
		s.Equal(2, report.Applied)
		s.Equal(1, report.Failed)
	})

	s.Run("listing failure abandons the run", func() {
		s.expectList(nil, paygate.ErrGateway)

		_, err := s.uc.Sweep(context.Background())
		s.ErrorIs(err, usecase.ErrGateway)
	})

	s.Run("unconfigured gateway skips quietly", func() {
		s.gateway.EXPECT().ListIntents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(paygate.ErrNotConfigured)

		report, err := s.uc.Sweep(context.Background())
		s.Require().NoError(err)
		s.Equal(0, report.Seen)
	})

	s.Run("reports deposit-promised bookings without a payment", func() {
		s.expectList(nil, nil)
		orphans := []*readmodel.BookingRM{
			{ID: uuid.New(), Status: "ACCEPTED", DepositRequested: true},
			{ID: uuid.New(), Status: "SUBMITTED", DepositRequested: true},
		}
		s.bookings.EXPECT().FindDepositPromisedWithoutPayment(gomock.Any(), gomock.Any()).
			Return(orphans, nil)

		report, err := s.uc.Sweep(context.Background())
		s.Require().NoError(err)
		s.Equal(2, report.Orphaned)
	})
}
