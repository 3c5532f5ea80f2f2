package components

import (
	"atelier-backend/internal/infra/repository"
	"atelier-backend/internal/usecase"
	"atelier-backend/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewClientRepository,
			fx.As(new(usecase.ClientRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(usecase.PaymentRepository)),
		),
		repository.NewJobRepository,
		fx.Annotate(
			func(r *repository.JobRepository) *repository.JobRepository { return r },
			fx.As(new(usecase.JobEnqueuer)),
		),
		fx.Annotate(
			func(r *repository.JobRepository) *repository.JobRepository { return r },
			fx.As(new(worker.JobStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
