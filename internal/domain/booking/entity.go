package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidReviewAction = errors.New("invalid review action")
)

type ProjectType string

const (
	ProjectWebsite  ProjectType = "WEBSITE"
	ProjectBranding ProjectType = "BRANDING"
	ProjectMobile   ProjectType = "MOBILE_APP"
	ProjectOther    ProjectType = "OTHER"
)

type ReviewAction string

const (
	ReviewAccept ReviewAction = "accept"
	ReviewReject ReviewAction = "reject"
)

type Booking struct {
	id            uuid.UUID
	clientID      uuid.UUID
	title         string
	description   string
	projectType   ProjectType
	status        Status
	priceEstimate *decimal.Decimal
	assignedToID  *uuid.UUID
	depositPaidAt *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(clientID uuid.UUID, title, description string, projectType ProjectType) (*Booking, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if projectType == "" {
		projectType = ProjectOther
	}

	return &Booking{
		id:          uuid.New(),
		clientID:    clientID,
		title:       title,
		description: strings.TrimSpace(description),
		projectType: projectType,
		status:      StatusSubmitted,
	}, nil
}

func Reconstruct(
	id, clientID uuid.UUID,
	title, description string,
	projectType ProjectType,
	status Status,
	priceEstimate *decimal.Decimal,
	assignedToID *uuid.UUID,
	depositPaidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		clientID:      clientID,
		title:         title,
		description:   description,
		projectType:   projectType,
		status:        status,
		priceEstimate: priceEstimate,
		assignedToID:  assignedToID,
		depositPaidAt: depositPaidAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Review applies a staff accept/reject decision. Only pre-review statuses may
// be decided; anything already past ACCEPTED is left untouched.
func (b *Booking) Review(action ReviewAction, priceEstimate *decimal.Decimal, assignedToID *uuid.UUID) error {
	var next Status
	switch action {
	case ReviewAccept:
		next = StatusAccepted
	case ReviewReject:
		next = StatusRejected
	default:
		return ErrInvalidReviewAction
	}

	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	b.status = next
	if priceEstimate != nil {
		b.priceEstimate = priceEstimate
	}
	if assignedToID != nil {
		b.assignedToID = assignedToID
	}
	return nil
}

// MarkDepositPaid advances the booking to DEPOSIT_PAID and stamps the paid-at
// timestamp exactly once. Replays are no-ops: the timestamp never changes and
// an already-advanced status is never regressed.
func (b *Booking) MarkDepositPaid(now time.Time) bool {
	if !b.status.awaitingDeposit() {
		return false
	}
	b.status = StatusDepositPaid
	if b.depositPaidAt == nil {
		t := now
		b.depositPaidAt = &t
	}
	return true
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) ClientID() uuid.UUID             { return b.clientID }
func (b *Booking) Title() string                   { return b.title }
func (b *Booking) Description() string             { return b.description }
func (b *Booking) ProjectType() ProjectType        { return b.projectType }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) PriceEstimate() *decimal.Decimal { return b.priceEstimate }
func (b *Booking) AssignedToID() *uuid.UUID        { return b.assignedToID }
func (b *Booking) DepositPaidAt() *time.Time       { return b.depositPaidAt }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }
