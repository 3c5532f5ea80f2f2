package components

import (
	"log/slog"

	"atelier-backend/internal/pkg/clock"
	"atelier-backend/internal/pkg/config"
	"atelier-backend/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewBookingUseCase,
		NewPaymentUseCase,
		NewIntentApplier,
		NewReconcileUseCase,
	),
)

func NewBookingUseCase(
	clients usecase.ClientRepository,
	bookings usecase.BookingRepository,
	payments usecase.PaymentRepository,
	jobs usecase.JobEnqueuer,
	gateway usecase.PaymentGateway,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(clients, bookings, payments, jobs, gateway, cfg.Payment, clk, logger)
}

func NewPaymentUseCase(
	payments usecase.PaymentRepository,
	bookings usecase.BookingRepository,
	jobs usecase.JobEnqueuer,
	gateway usecase.PaymentGateway,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(payments, bookings, jobs, gateway, cfg.Payment, clk, logger)
}

func NewIntentApplier(
	payments usecase.PaymentRepository,
	bookings usecase.BookingRepository,
	jobs usecase.JobEnqueuer,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.IntentApplier {
	return usecase.NewIntentApplier(payments, bookings, jobs, clk, logger)
}

func NewReconcileUseCase(
	bookings usecase.BookingRepository,
	gateway usecase.PaymentGateway,
	applier usecase.IntentApplier,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.ReconcileUseCase {
	return usecase.NewReconcileUseCase(bookings, gateway, applier, cfg.Worker, clk, logger)
}
