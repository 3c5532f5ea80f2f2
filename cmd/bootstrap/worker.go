package bootstrap

import (
	"context"
	"log/slog"

	"atelier-backend/internal/infra/repository"
	"atelier-backend/internal/pkg/config"
	"atelier-backend/internal/usecase"
	"atelier-backend/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewPool,
		NewScheduler,
	),
	fx.Invoke(startWorkers),
)

func NewPool(jobs *repository.JobRepository, cfg config.Config, logger *slog.Logger) *worker.Pool {
	return worker.NewPool(jobs, cfg.Worker, logger)
}

func NewScheduler(jobs *repository.JobRepository, cfg config.Config, logger *slog.Logger) *worker.Scheduler {
	return worker.NewScheduler(jobs, cfg.Worker, logger)
}

func startWorkers(
	lc fx.Lifecycle,
	pool *worker.Pool,
	scheduler *worker.Scheduler,
	reconcileUC usecase.ReconcileUseCase,
	logger *slog.Logger,
) {
	pool.Register(worker.QueueReconcile, worker.NewReconcileHandler(reconcileUC))
	pool.Register(worker.QueueEmail, worker.NewEmailHandler(logger))
	pool.Register(worker.QueueFileMeta, worker.NewFileMetaHandler(logger))

	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go pool.Run(runCtx)
			go scheduler.Run(runCtx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
