//go:build unit

package repository

import (
	"strings"
	"testing"
	"time"

	"atelier-backend/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The SQL guard on the deposit-paid update and booking.MarkDepositPaid encode
// the same rule. Check that for every status the two agree on whether the
// payment-confirmation path may advance it.
func TestMarkDepositPaidSQLGuardMatchesDomain(t *testing.T) {
	allStatuses := []booking.Status{
		booking.StatusSubmitted, booking.StatusUnderReview,
		booking.StatusAccepted, booking.StatusRejected,
		booking.StatusTermsAccepted, booking.StatusDepositPaid,
		booking.StatusInProgress, booking.StatusDelivered,
		booking.StatusCompleted, booking.StatusCancelled,
	}

	_, guard, found := strings.Cut(markDepositPaidSQL, "status IN (")
	assert.True(t, found, "deposit-paid update lost its status guard")

	now := time.Now()
	for _, status := range allStatuses {
		b := booking.Reconstruct(
			uuid.New(), uuid.New(), "Portfolio site", "", booking.ProjectWebsite,
			status, nil, nil, nil, now, now,
		)
		inGuard := strings.Contains(guard, "'"+string(status)+"'")
		assert.Equal(t, b.MarkDepositPaid(now), inGuard,
			"SQL guard and domain disagree for status %s", status)
	}
}

func TestQuoteStatuses(t *testing.T) {
	got := quoteStatuses([]booking.Status{booking.StatusSubmitted, booking.StatusAccepted})
	assert.Equal(t, "'SUBMITTED', 'ACCEPTED'", got)
}
