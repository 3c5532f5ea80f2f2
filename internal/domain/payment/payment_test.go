//go:build unit

package payment_test

import (
	"testing"

	"atelier-backend/internal/domain/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnitConversion(t *testing.T) {
	cases := []struct {
		name  string
		major string
		minor int64
	}{
		{"whole deposit", "50", 5000},
		{"with cents", "49.99", 4999},
		{"single cent", "0.01", 1},
		{"zero", "0", 0},
		{"large amount", "125000.50", 12500050},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			major, err := decimal.NewFromString(tc.major)
			require.NoError(t, err)

			assert.Equal(t, tc.minor, payment.ToMinorUnits(major))
			assert.True(t, major.Equal(payment.FromMinorUnits(tc.minor)),
				"round trip mismatch: %s vs %s", major, payment.FromMinorUnits(tc.minor))
		})
	}

	t.Run("sub-cent input rounds to nearest", func(t *testing.T) {
		d := decimal.RequireFromString("10.005")
		assert.Equal(t, int64(1001), payment.ToMinorUnits(d))
	})
}

func TestStatus(t *testing.T) {
	t.Run("parses known statuses", func(t *testing.T) {
		for _, s := range []string{"PENDING", "SUCCEEDED", "FAILED"} {
			parsed, err := payment.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, string(parsed))
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := payment.NewStatus("succeeded")
		assert.ErrorIs(t, err, payment.ErrInvalidStatus)
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, payment.StatusPending.IsTerminal())
		assert.True(t, payment.StatusSucceeded.IsTerminal())
		assert.True(t, payment.StatusFailed.IsTerminal())
	})
}
