package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClientRM struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

type BookingRM struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	ClientEmail      string
	Title            string
	Description      string
	ProjectType      string
	Status           string
	PriceEstimate    *decimal.Decimal
	AssignedToID     *uuid.UUID
	DepositRequested bool
	DepositAmount    *decimal.Decimal
	DepositPaidAt    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BookingFileRM struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	FileName  string
	SizeBytes int64
	CreatedAt time.Time
}
