package paygate

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"atelier-backend/internal/domain/payment"
	"atelier-backend/internal/pkg/config"
	"atelier-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"
)

const listPageLimit = 100

// StripeGateway isolates every outbound processor call and the vocabulary
// translation between Stripe and the local ledger.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

func NewStripeGateway(cfg config.PaymentConfig, logger *slog.Logger) *StripeGateway {
	g := &StripeGateway{
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}
	if cfg.SecretKey != "" {
		g.api = &client.API{}
		g.api.Init(cfg.SecretKey, nil)
	}
	return g
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*Intent, error) {
	if g.api == nil {
		return nil, ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(payment.ToMinorUnits(amount)),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create payment intent"), ErrGateway)
	}

	return g.toIntent(pi), nil
}

// ListIntents streams every remote intent created inside [from, to) through
// fn, paginating internally so the caller holds one page at most.
func (g *StripeGateway) ListIntents(ctx context.Context, from, to time.Time, fn func(*Intent) error) error {
	if g.api == nil {
		return ErrNotConfigured
	}

	params := &stripe.PaymentIntentListParams{
		CreatedRange: &stripe.RangeQueryParams{
			GreaterThanOrEqual: from.Unix(),
			LesserThan:         to.Unix(),
		},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(listPageLimit)

	iter := g.api.PaymentIntents.List(params)
	for iter.Next() {
		if err := fn(g.toIntent(iter.PaymentIntent())); err != nil {
			return err
		}
	}
	if err := iter.Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to list payment intents"), ErrGateway)
	}
	return nil
}

// VerifyWebhook authenticates the raw payload against the shared signing
// secret and translates the event. Unknown event types come back with a nil
// Intent so the ingestor can acknowledge and ignore them.
func (g *StripeGateway) VerifyWebhook(payload []byte, sigHeader string) (*Event, error) {
	if g.webhookSecret == "" {
		return nil, ErrNotConfigured
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "webhook verification failed"), ErrSignatureInvalid)
	}

	out := &Event{Type: EventType(event.Type)}

	switch out.Type {
	case EventIntentSucceeded, EventIntentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.Wrap(err, "failed to decode payment intent from event")
		}
		out.Intent = g.toIntent(&pi)
	}

	return out, nil
}

func (g *StripeGateway) toIntent(pi *stripe.PaymentIntent) *Intent {
	raw, err := json.Marshal(pi)
	if err != nil {
		g.logger.Warn("failed to snapshot payment intent", "provider_id", pi.ID, "error", err.Error())
		raw = nil
	}

	return &Intent{
		ProviderID:   pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       payment.FromMinorUnits(pi.Amount),
		Currency:     strings.ToUpper(string(pi.Currency)),
		Status:       MapRemoteStatus(pi.Status),
		Metadata:     pi.Metadata,
		Raw:          raw,
	}
}

// MapRemoteStatus is the single remote→local status translation, applied
// identically by the webhook path and the reconciliation sweep. succeeded is
// terminal success; requires_payment_method (consumer-side failure) and
// canceled (intent can never collect) are terminal failures; every other
// remote state is still in flight.
func MapRemoteStatus(s stripe.PaymentIntentStatus) payment.Status {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return payment.StatusSucceeded
	case stripe.PaymentIntentStatusRequiresPaymentMethod, stripe.PaymentIntentStatusCanceled:
		return payment.StatusFailed
	default:
		return payment.StatusPending
	}
}
