package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidStatus = errors.New("invalid payment status")

// Status is the local status vocabulary. Remote processor statuses are
// translated into it exactly once, at the gateway boundary.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusSucceeded, StatusFailed:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

var minorUnitFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount (e.g. 50.00) to the smallest
// currency unit the processor expects (e.g. 5000 cents). Rounds to the
// nearest minor unit so 0.005 drift cannot accumulate.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}

// FromMinorUnits is the inverse conversion applied wherever a remote amount
// is read back into the ledger.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(minorUnitFactor)
}

type Payment struct {
	ID             uuid.UUID
	BookingID      *uuid.UUID
	ClientID       *uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Provider       string
	ProviderID     string
	IdempotencyKey *string
	Status         Status
	Metadata       []byte
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
