//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"atelier-backend/internal/handler/api"
	resdto "atelier-backend/internal/handler/dto/response"
	"atelier-backend/internal/usecase"
	"atelier-backend/internal/usecase/readmodel"
	"atelier-backend/tests/common/httptest"
	usecasemock "atelier-backend/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockPaymentUseCase
	handler     *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockPaymentUseCase(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockUseCase)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", "staff")
		c.Next()
	}

	s.router.POST("/payments/webhook", s.handler.Webhook)
	s.router.POST("/payments/create-intent", authMiddleware, s.handler.CreateIntent)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestWebhook
// ================================================================================

func (s *PaymentHandlerTestSuite) TestWebhook() {
	url := "/payments/webhook"
	payload := []byte(`{"type":"payment_intent.succeeded"}`)

	s.Run("success: raw body and signature reach the use case", func() {
		s.mockUseCase.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=sig").Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=sig"})

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["received"], "acknowledgement must be a JSON boolean")
	})

	s.Run("error: 400 on invalid signature", func() {
		s.mockUseCase.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrSignatureInvalid)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "signature")
	})

	s.Run("error: 500 when ingestion is not configured", func() {
		s.mockUseCase.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrGatewayNotConfigured)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "not configured")
	})

	s.Run("error: 500 triggers provider redelivery", func() {
		s.mockUseCase.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrDatabaseOperationFailed)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// TestCreateIntent
// ================================================================================

func (s *PaymentHandlerTestSuite) TestCreateIntent() {
	url := "/payments/create-intent"
	bookingID := uuid.New()

	s.Run("success: returns 201 with client secret", func() {
		s.mockUseCase.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.CreateIntentParams) (*usecase.CreateIntentResult, error) {
				s.Require().NotNil(params.BookingID)
				s.Equal(bookingID, *params.BookingID)
				s.Equal("200.50", params.Amount.String())
				s.Nil(params.IdempotencyKey)
				return &usecase.CreateIntentResult{
					Payment:      &readmodel.PaymentRM{ID: uuid.New(), ProviderID: "pi_new", Amount: decimal.RequireFromString("200.50"), Status: "PENDING"},
					ClientSecret: "pi_new_secret",
				}, nil
			})

		body := map[string]any{"booking_id": bookingID, "amount": "200.50"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "staff-token")

		var resp resdto.CreateIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("pi_new_secret", resp.ClientSecret)
		s.False(resp.Replayed)
	})

	s.Run("success: idempotent replay returns 200", func() {
		s.mockUseCase.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.CreateIntentParams) (*usecase.CreateIntentResult, error) {
				s.Require().NotNil(params.IdempotencyKey)
				s.Equal("retry-1", *params.IdempotencyKey)
				return &usecase.CreateIntentResult{
					Payment:  &readmodel.PaymentRM{ProviderID: "pi_old", Status: "PENDING"},
					Replayed: true,
				}, nil
			})

		// PerformRequest has no header hook, so go raw here.
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url,
			[]byte(`{"amount":"50"}`), map[string]string{
				"Content-Type":    "application/json",
				"Authorization":   "Bearer staff-token",
				"Idempotency-Key": "retry-1",
			})

		var resp resdto.CreateIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Replayed)
	})

	s.Run("success: body idempotency_key is honored without the header", func() {
		s.mockUseCase.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.CreateIntentParams) (*usecase.CreateIntentResult, error) {
				s.Require().NotNil(params.IdempotencyKey)
				s.Equal("retry-2", *params.IdempotencyKey)
				return &usecase.CreateIntentResult{
					Payment: &readmodel.PaymentRM{ProviderID: "pi_body_key", Status: "PENDING"},
				}, nil
			})

		body := map[string]any{"amount": "50", "idempotency_key": "retry-2"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "staff-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: header takes precedence over body idempotency_key", func() {
		s.mockUseCase.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.CreateIntentParams) (*usecase.CreateIntentResult, error) {
				s.Require().NotNil(params.IdempotencyKey)
				s.Equal("from-header", *params.IdempotencyKey)
				return &usecase.CreateIntentResult{
					Payment: &readmodel.PaymentRM{ProviderID: "pi_hdr", Status: "PENDING"},
				}, nil
			})

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url,
			[]byte(`{"amount":"50","idempotency_key":"from-body"}`), map[string]string{
				"Content-Type":    "application/json",
				"Authorization":   "Bearer staff-token",
				"Idempotency-Key": "from-header",
			})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on malformed amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount": "two hundred"}, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "amount")
	})

	s.Run("error: 404 on unknown booking", func() {
		s.mockUseCase.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"booking_id": bookingID, "amount": "50"}, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 500 on provider failure", func() {
		s.mockUseCase.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrGateway)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount": "50"}, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "provider error")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount": "50"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
