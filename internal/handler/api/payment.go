package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	reqdto "atelier-backend/internal/handler/dto/request"
	resdto "atelier-backend/internal/handler/dto/response"
	"atelier-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Stripe caps event payloads well under this; anything larger is not a webhook.
const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Payment webhook
// @Description Ingest a signed payment provider event
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	// Signature verification needs the exact raw bytes, so no binding here.
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")

	if err := h.paymentUseCase.HandleWebhook(c.Request.Context(), payload, sigHeader); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSignatureInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid webhook signature",
			})
		case errors.Is(err, usecase.ErrGatewayNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Webhook ingestion is not configured",
			})
		default:
			// Non-2xx makes the provider redeliver; ingestion is idempotent
			// so redelivery is safe.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// @Summary Create payment intent
// @Description Create a payment intent, optionally linked to a booking (staff only)
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateIntentRequest true "Intent request"
// @Success 201 {object} resdto.CreateIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req reqdto.CreateIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	amount, err := req.GetAmount()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amount",
		})
		return
	}

	params := usecase.CreateIntentParams{
		BookingID: req.BookingID,
		Amount:    amount,
		Currency:  req.Currency,
	}
	// The header wins; the body field is kept for clients that cannot set
	// custom headers.
	key := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	if key == "" && req.IdempotencyKey != nil {
		key = strings.TrimSpace(*req.IdempotencyKey)
	}
	if key != "" {
		params.IdempotencyKey = &key
	}

	result, err := h.paymentUseCase.CreateIntent(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid intent request",
			})
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
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

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.CreateIntentResponse{
		Payment:      resdto.FromPaymentRM(result.Payment),
		ClientSecret: result.ClientSecret,
		Replayed:     result.Replayed,
	})
}
