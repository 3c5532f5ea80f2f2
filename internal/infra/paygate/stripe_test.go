//go:build unit

package paygate_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier-backend/internal/domain/payment"
	"atelier-backend/internal/infra/paygate"
	"atelier-backend/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v74"
)

func TestMapRemoteStatus(t *testing.T) {
	cases := []struct {
		remote stripe.PaymentIntentStatus
		local  payment.Status
	}{
		{stripe.PaymentIntentStatusSucceeded, payment.StatusSucceeded},
		{stripe.PaymentIntentStatusRequiresPaymentMethod, payment.StatusFailed},
		{stripe.PaymentIntentStatusCanceled, payment.StatusFailed},
		{stripe.PaymentIntentStatusProcessing, payment.StatusPending},
		{stripe.PaymentIntentStatusRequiresAction, payment.StatusPending},
		{stripe.PaymentIntentStatusRequiresConfirmation, payment.StatusPending},
		{stripe.PaymentIntentStatusRequiresCapture, payment.StatusPending},
	}

	for _, tc := range cases {
		t.Run(string(tc.remote), func(t *testing.T) {
			assert.Equal(t, tc.local, paygate.MapRemoteStatus(tc.remote))
		})
	}
}

func TestGatewayNotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	g := paygate.NewStripeGateway(config.PaymentConfig{}, logger)

	t.Run("create intent", func(t *testing.T) {
		_, err := g.CreateIntent(context.Background(), decimal.NewFromInt(50), "KES", nil)
		assert.ErrorIs(t, err, paygate.ErrNotConfigured)
	})

	t.Run("list intents", func(t *testing.T) {
		err := g.ListIntents(context.Background(), time.Time{}, time.Time{}, func(*paygate.Intent) error { return nil })
		assert.ErrorIs(t, err, paygate.ErrNotConfigured)
	})

	t.Run("webhook verification", func(t *testing.T) {
		_, err := g.VerifyWebhook([]byte(`{}`), "t=1,v1=abc")
		assert.ErrorIs(t, err, paygate.ErrNotConfigured)
	})
}
