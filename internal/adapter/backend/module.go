package backend

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/foodfront/internal/config"
)

// Module exposes the backend client to fx graph.
var Module = fx.Provide(
	newClient,
	func(c Client) AuthAPI { return c },
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	base, err := ResolveBaseURL(p.Config.AppEnv, p.Config.APIURL, p.Config.DevAPIOrigin)
	if err != nil {
		return nil, err
	}
	return NewHTTPClient(base, p.Logger,
		WithTimeout(p.Config.RequestTimeout),
		WithTokenSource(ContextTokenSource()),
	)
}
