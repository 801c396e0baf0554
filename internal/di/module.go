package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	"github.com/polkiloo/foodfront/internal/app"
	"github.com/polkiloo/foodfront/internal/config"
	"github.com/polkiloo/foodfront/internal/logger"
	"github.com/polkiloo/foodfront/internal/pkg/auth"
	"github.com/polkiloo/foodfront/internal/server/http/handlers"
	"github.com/polkiloo/foodfront/internal/server/http/router"
	"github.com/polkiloo/foodfront/internal/storage/postgres"
	"github.com/polkiloo/foodfront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		backend.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
