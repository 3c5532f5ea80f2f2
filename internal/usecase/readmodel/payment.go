package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRM struct {
	ID             uuid.UUID
	BookingID      *uuid.UUID
	ClientID       *uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Provider       string
	ProviderID     string
	IdempotencyKey *string
	Status         string
	Metadata       []byte
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
