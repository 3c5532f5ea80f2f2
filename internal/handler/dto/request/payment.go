package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateIntentRequest struct {
	BookingID      *uuid.UUID `json:"booking_id,omitempty"`
	Amount         string     `json:"amount" binding:"required"`
	Currency       string     `json:"currency,omitempty"`
	IdempotencyKey *string    `json:"idempotency_key,omitempty"`
}

func (r CreateIntentRequest) GetAmount() (decimal.Decimal, error) {
	return decimal.NewFromString(r.Amount)
}
