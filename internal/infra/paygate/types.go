package paygate

import (
	"encoding/json"

	"atelier-backend/internal/domain/payment"
	"atelier-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const ProviderStripe = "stripe"

var (
	// ErrNotConfigured means the processor keys are absent; the affected
	// endpoint degrades to a configuration error instead of crashing.
	ErrNotConfigured = errs.New("payment gateway not configured")
	// ErrGateway covers network, auth and API failures talking to the processor.
	ErrGateway = errs.New("payment gateway error")
	// ErrSignatureInvalid means the webhook payload failed authenticity checks.
	ErrSignatureInvalid = errs.New("webhook signature invalid")
)

// Intent is the local view of one remote payment intent, translated into the
// ledger vocabulary: major-unit amount, local status, raw snapshot.
type Intent struct {
	ProviderID   string
	ClientSecret string
	Amount       decimal.Decimal
	Currency     string
	Status       payment.Status
	Metadata     map[string]string
	Raw          json.RawMessage
}

// Event is a verified webhook notification. Intent is nil for event types
// that do not carry a payment intent.
type Event struct {
	Type   EventType
	Intent *Intent
}

type EventType string

const (
	EventIntentSucceeded EventType = "payment_intent.succeeded"
	EventIntentFailed    EventType = "payment_intent.payment_failed"
)
