package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

type Status string

const (
	StatusSubmitted     Status = "SUBMITTED"
	StatusUnderReview   Status = "UNDER_REVIEW"
	StatusAccepted      Status = "ACCEPTED"
	StatusRejected      Status = "REJECTED"
	StatusTermsAccepted Status = "TERMS_ACCEPTED"
	StatusDepositPaid   Status = "DEPOSIT_PAID"
	StatusInProgress    Status = "IN_PROGRESS"
	StatusDelivered     Status = "DELIVERED"
	StatusCompleted     Status = "COMPLETED"
	StatusCancelled     Status = "CANCELLED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusSubmitted, StatusUnderReview, StatusAccepted, StatusRejected,
		StatusTermsAccepted, StatusDepositPaid, StatusInProgress,
		StatusDelivered, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

// preDepositStatuses is the authoritative list of statuses the
// payment-confirmation path may still advance to DEPOSIT_PAID. The SQL guard
// in the booking repository is built from this same list.
var preDepositStatuses = []Status{
	StatusSubmitted,
	StatusUnderReview,
	StatusAccepted,
	StatusTermsAccepted,
}

func PreDepositStatuses() []Status {
	out := make([]Status, len(preDepositStatuses))
	copy(out, preDepositStatuses)
	return out
}

var transitions = map[Status][]Status{
	StatusSubmitted:     {StatusUnderReview, StatusAccepted, StatusRejected, StatusCancelled},
	StatusUnderReview:   {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted:      {StatusTermsAccepted, StatusDepositPaid, StatusCancelled},
	StatusTermsAccepted: {StatusDepositPaid, StatusCancelled},
	StatusDepositPaid:   {StatusInProgress, StatusCancelled},
	StatusInProgress:    {StatusDelivered, StatusCancelled},
	StatusDelivered:     {StatusCompleted, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// awaitingDeposit reports whether the payment-confirmation path may still
// advance this status to DEPOSIT_PAID. Anything at or past DEPOSIT_PAID (or
// terminal) must never be touched by that path.
func (s Status) awaitingDeposit() bool {
	for _, p := range preDepositStatuses {
		if s == p {
			return true
		}
	}
	return false
}
