package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	"github.com/polkiloo/foodfront/internal/config"
	"github.com/polkiloo/foodfront/internal/usecase"
	"github.com/polkiloo/foodfront/internal/worker"
)

const (
	reapBatchSize = 100
	reapWorkers   = 2
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newWorkspaces,
		NewStorefrontFacade,
		newHTTPServer,
		newSessionReaper,
	),
	fx.Invoke(registerLifecycle),
)

type workspaceParams struct {
	fx.In

	Client  backend.Client
	Sources *usecase.OrderSourceFactory
	Config  *config.Config
	Logger  *slog.Logger
}

func newWorkspaces(p workspaceParams) *Workspaces {
	return NewWorkspaces(p.Client, p.Sources, p.Config.NotificationLimit, p.Logger)
}

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

	Facade *StorefrontFacade
	Config *config.Config
	Logger *slog.Logger
}

func newSessionReaper(p workerParams) *worker.SessionReaper {
	return worker.NewSessionReaper(
		p.Facade,
		p.Config.ReapInterval,
		reapBatchSize,
		reapWorkers,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.SessionReaper
	Facade     *StorefrontFacade
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting foodfront", slog.String("addr", p.Server.Addr), slog.String("env", p.Config.AppEnv))
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
			p.Facade.Shutdown(shutdownCtx)
			p.Logger.Info("foodfront stopped")
			return nil
		},
	})
}
