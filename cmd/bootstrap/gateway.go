package bootstrap

import (
	"log/slog"

	"atelier-backend/internal/infra/paygate"
	"atelier-backend/internal/pkg/config"
	"atelier-backend/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(usecase.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *paygate.StripeGateway {
	return paygate.NewStripeGateway(cfg.Payment, logger)
}
