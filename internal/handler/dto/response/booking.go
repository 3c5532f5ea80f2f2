package response

import (
	"time"

	"atelier-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	ProjectType      string     `json:"projectType"`
	Status           string     `json:"status"`
	PriceEstimate    *string    `json:"priceEstimate,omitempty"`
	AssignedToID     *uuid.UUID `json:"assignedToId,omitempty"`
	DepositRequested bool       `json:"depositRequested"`
	DepositAmount    *string    `json:"depositAmount,omitempty"`
	DepositPaidAt    *time.Time `json:"depositPaidAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type CreateBookingResponse struct {
	Booking      *BookingResponse `json:"booking"`
	ClientSecret *string          `json:"clientSecret,omitempty"`
}

type BookingDetailResponse struct {
	Booking  *BookingResponse       `json:"booking"`
	Payments []*PaymentResponse     `json:"payments"`
	Files    []*BookingFileResponse `json:"files"`
}

type BookingFileResponse struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"fileName"`
	SizeBytes int64     `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	resp := &BookingResponse{
		ID:               rm.ID,
		Title:            rm.Title,
		Description:      rm.Description,
		ProjectType:      rm.ProjectType,
		Status:           rm.Status,
		AssignedToID:     rm.AssignedToID,
		DepositRequested: rm.DepositRequested,
		DepositPaidAt:    rm.DepositPaidAt,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
	if rm.PriceEstimate != nil {
		s := rm.PriceEstimate.String()
		resp.PriceEstimate = &s
	}
	if rm.DepositAmount != nil {
		s := rm.DepositAmount.String()
		resp.DepositAmount = &s
	}
	return resp
}

func FromBookingFileRM(rm *readmodel.BookingFileRM) *BookingFileResponse {
	return &BookingFileResponse{
		ID:        rm.ID,
		FileName:  rm.FileName,
		SizeBytes: rm.SizeBytes,
		CreatedAt: rm.CreatedAt,
	}
}
