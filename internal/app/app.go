package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/shopmart/internal/config"
	"github.com/polkiloo/shopmart/internal/server/http/handlers"
	"github.com/polkiloo/shopmart/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStoreFacade,
		func(f *StoreFacade) handlers.StoreFacade { return f },
		func(f *StoreFacade) worker.SettlementFacade { return f },
		newHTTPServer,
		newEarningsSettler,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade worker.SettlementFacade
	Config *config.Config
	Logger *slog.Logger
}

func newEarningsSettler(p workerParams) *worker.EarningsSettler {
	return worker.NewEarningsSettler(
		p.Facade,
		p.Config.SettleInterval,
		p.Config.SettleBatchSize,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Facade     *StoreFacade
	Server     *http.Server
	Worker     *worker.EarningsSettler
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Startup invariants: default tier and admin account must exist
			// before any traffic is served.
			if err := p.Facade.EnsureReady(ctx, p.Config.AdminLogin, p.Config.AdminPassword); err != nil {
				p.Logger.Error("startup invariants violated", slog.String("error", err.Error()))
				return err
			}

			p.Logger.Info("starting shopmart", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("shopmart stopped")
			return nil
		},
	})
}
