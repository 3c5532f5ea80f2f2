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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", "staff")
		c.Next()
	}

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.POST("/bookings/:id/review", authMiddleware, s.handler.ReviewBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	fields := map[string]string{
		"name":  "Asha",
		"email": "asha@example.com",
		"title": "Portfolio site",
	}

	s.Run("success: returns 201 Created", func() {
		bookingID := uuid.New()
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(&usecase.CreateBookingResult{
				Booking: &readmodel.BookingRM{ID: bookingID, Title: "Portfolio site", Status: "SUBMITTED"},
			}, nil)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, fields, nil)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID, body.Booking.ID)
		s.Nil(body.ClientSecret)
	})

	s.Run("success: deposit booking returns a client secret", func() {
		secret := "pi_secret"
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.CreateBookingParams) (*usecase.CreateBookingResult, error) {
				s.True(params.DepositRequired)
				s.Require().NotNil(params.DepositAmount)
				s.Equal("50", params.DepositAmount.String())
				return &usecase.CreateBookingResult{
					Booking:      &readmodel.BookingRM{ID: uuid.New(), Status: "SUBMITTED", DepositRequested: true},
					ClientSecret: &secret,
				}, nil
			})

		depositFields := map[string]string{
			"email":            "asha@example.com",
			"title":            "Portfolio site",
			"deposit_required": "true",
			"deposit_amount":   "50",
		}
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, depositFields, nil)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.ClientSecret)
		s.Equal(secret, *body.ClientSecret)
	})

	s.Run("success: files are forwarded", func() {
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.CreateBookingParams) (*usecase.CreateBookingResult, error) {
				s.Require().Len(params.Files, 1)
				s.Equal("brief.pdf", params.Files[0].Name)
				return &usecase.CreateBookingResult{Booking: &readmodel.BookingRM{ID: uuid.New()}}, nil
			})

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, fields,
			map[string][]byte{"brief.pdf": []byte("pdf bytes")})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 when required fields are missing", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"email": "asha@example.com"}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on invalid deposit amount", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, map[string]string{
			"email":          "asha@example.com",
			"title":          "Portfolio site",
			"deposit_amount": "fifty",
		}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "deposit")
	})

	s.Run("error: 400 on too many files", func() {
		files := map[string][]byte{}
		for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
			files[name+".png"] = []byte("x")
		}
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, fields, files)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "too many files")
	})

	s.Run("error: 500 when deposits are not configured", func() {
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrGatewayNotConfigured)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, fields, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "not configured")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "?email=asha@example.com"

	s.Run("success: returns detail", func() {
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), bookingID, "asha@example.com").
			Return(&usecase.BookingDetail{
				Booking:  &readmodel.BookingRM{ID: bookingID, Status: "DEPOSIT_PAID"},
				Payments: []*readmodel.PaymentRM{{ProviderID: "pi_dep", Status: "SUCCEEDED"}},
				Files:    []*readmodel.BookingFileRM{{FileName: "brief.pdf"}},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("DEPOSIT_PAID", body.Booking.Status)
		s.Len(body.Payments, 1)
		s.Len(body.Files, 1)
	})

	s.Run("error: 400 without email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email")
	})

	s.Run("error: 403 on mismatched email", func() {
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), bookingID, "other@example.com").
			Return(nil, usecase.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+bookingID.String()+"?email=other@example.com", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 404 on unknown booking", func() {
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), bookingID, "asha@example.com").
			Return(nil, usecase.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid?email=x@y.z", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestReviewBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestReviewBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/review"

	s.Run("success: accept returns updated booking", func() {
		s.mockUseCase.EXPECT().Review(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ uuid.UUID, params usecase.ReviewParams) (*readmodel.BookingRM, error) {
				s.Equal("accept", params.Action)
				s.Require().NotNil(params.PriceEstimate)
				s.Equal("1500", params.PriceEstimate.String())
				return &readmodel.BookingRM{ID: bookingID, Status: "ACCEPTED"}, nil
			})

		body := map[string]any{"action": "accept", "price_estimate": "1500"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "staff-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("ACCEPTED", resp.Status)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"action": "accept"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 409 on already decided booking", func() {
		s.mockUseCase.EXPECT().Review(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"action": "accept"}, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 400 on invalid action", func() {
		s.mockUseCase.EXPECT().Review(gomock.Any(), bookingID, gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"action": "approve"}, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
