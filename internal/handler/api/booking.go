package api

import (
	"errors"
	"net/http"

	reqdto "atelier-backend/internal/handler/dto/request"
	resdto "atelier-backend/internal/handler/dto/response"
	"atelier-backend/internal/handler/middleware"
	"atelier-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxBookingFiles = 5

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Submit a public booking inquiry, optionally with reference files and a deposit request
// @Tags bookings
// @Accept multipart/form-data
// @Produce json
// @Param email formData string true "Client email"
// @Param title formData string true "Project title"
// @Param files formData file false "Reference files (max 5)"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	depositAmount, err := req.GetDepositAmount()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid deposit amount",
		})
		return
	}

	files, err := h.collectFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	params := usecase.CreateBookingParams{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Title:           req.Title,
		Description:     req.Description,
		ProjectType:     req.ProjectType,
		DepositRequired: req.DepositRequired,
		DepositAmount:   depositAmount,
		Currency:        req.Currency,
		Files:           files,
	}

	result, err := h.bookingUseCase.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking request",
			})
		case errors.Is(err, usecase.ErrGatewayNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Payment provider not configured",
			})
		case errors.Is(err, usecase.ErrGateway):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Payment provider error",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Booking:      resdto.FromBookingRM(result.Booking),
		ClientSecret: result.ClientSecret,
	})
}

// @Summary Get booking
// @Description Get booking details; the email query must match the booking's client
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Param email query string true "Client email"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email query parameter required",
		})
		return
	}

	detail, err := h.bookingUseCase.GetBooking(c.Request.Context(), id, email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Email does not match booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	payments := make([]*resdto.PaymentResponse, len(detail.Payments))
	for i, p := range detail.Payments {
		payments[i] = resdto.FromPaymentRM(p)
	}
	files := make([]*resdto.BookingFileResponse, len(detail.Files))
	for i, f := range detail.Files {
		files[i] = resdto.FromBookingFileRM(f)
	}

	c.JSON(http.StatusOK, resdto.BookingDetailResponse{
		Booking:  resdto.FromBookingRM(detail.Booking),
		Payments: payments,
		Files:    files,
	})
}

// @Summary Review booking
// @Description Accept or reject a submitted booking (staff only)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReviewBookingRequest true "Review action"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/review [post]
func (h *BookingHandler) ReviewBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ReviewBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	priceEstimate, err := req.GetPriceEstimate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price estimate",
		})
		return
	}

	assignedToID, err := req.GetAssignedToID()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid assignee ID format",
		})
		return
	}

	params := usecase.ReviewParams{
		Action:        req.Action,
		PriceEstimate: priceEstimate,
		AssignedToID:  assignedToID,
		Note:          req.Note,
	}

	updated, err := h.bookingUseCase.Review(c.Request.Context(), id, reviewerID, params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid review action",
			})
		case errors.Is(err, usecase.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking cannot be reviewed in its current status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(updated))
}

func (h *BookingHandler) collectFiles(c *gin.Context) ([]usecase.FileMeta, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain form posts without any file part are fine.
		return nil, nil
	}

	headers := form.File["files"]
	if len(headers) > maxBookingFiles {
		return nil, errors.New("too many files attached")
	}

	files := make([]usecase.FileMeta, 0, len(headers))
	for _, fh := range headers {
		files = append(files, usecase.FileMeta{
			Name:      fh.Filename,
			SizeBytes: fh.Size,
		})
	}
	return files, nil
}
