package response

import (
	"time"

	"atelier-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID         uuid.UUID  `json:"id"`
	BookingID  *uuid.UUID `json:"bookingId,omitempty"`
	Amount     string     `json:"amount"`
	Currency   string     `json:"currency"`
	Provider   string     `json:"provider"`
	ProviderID string     `json:"providerId"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type CreateIntentResponse struct {
	Payment      *PaymentResponse `json:"payment"`
	ClientSecret string           `json:"clientSecret,omitempty"`
	Replayed     bool             `json:"replayed"`
}

func FromPaymentRM(rm *readmodel.PaymentRM) *PaymentResponse {
	return &PaymentResponse{
		ID:         rm.ID,
		BookingID:  rm.BookingID,
		Amount:     rm.Amount.String(),
		Currency:   rm.Currency,
		Provider:   rm.Provider,
		ProviderID: rm.ProviderID,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}
