package request

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest binds the public multipart inquiry form. Files are
// pulled off the multipart reader separately by the handler.
type CreateBookingRequest struct {
	Name            string  `form:"name"`
	Email           string  `form:"email" binding:"required"`
	Phone           *string `form:"phone"`
	Title           string  `form:"title" binding:"required"`
	Description     string  `form:"description"`
	ProjectType     string  `form:"project_type"`
	DepositRequired bool    `form:"deposit_required"`
	DepositAmount   *string `form:"deposit_amount"`
	Currency        string  `form:"currency"`
}

func (r CreateBookingRequest) GetDepositAmount() (*decimal.Decimal, error) {
	if r.DepositAmount == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*r.DepositAmount)
	if trimmed == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type ReviewBookingRequest struct {
	Action        string  `json:"action" binding:"required"`
	PriceEstimate *string `json:"price_estimate,omitempty"`
	AssignedToID  *string `json:"assigned_to_id,omitempty"`
	Note          *string `json:"note,omitempty"`
}

func (r ReviewBookingRequest) GetPriceEstimate() (*decimal.Decimal, error) {
	if r.PriceEstimate == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*r.PriceEstimate)
	if trimmed == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r ReviewBookingRequest) GetAssignedToID() (*uuid.UUID, error) {
	if r.AssignedToID == nil || strings.TrimSpace(*r.AssignedToID) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*r.AssignedToID))
	if err != nil {
		return nil, err
	}
	return &id, nil
}
