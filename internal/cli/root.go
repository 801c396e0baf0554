// Package cli implements foodctl, a terminal client for the food ordering backend that
// drives the same cart and order stores as the web facade.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/logger"
	"github.com/polkiloo/foodfront/internal/store"
	"github.com/polkiloo/foodfront/internal/usecase"
)

// ClientFactory builds the backend client for the loaded settings.
type ClientFactory func(s *Settings, logger *slog.Logger) (backend.Client, error)

// Option customizes the root command.
type Option func(*runtime)

// WithClientFactory replaces the HTTP backend client.
func WithClientFactory(f ClientFactory) Option {
	return func(rt *runtime) { rt.newClient = f }
}

// WithOutput redirects command output.
func WithOutput(out, errOut io.Writer) Option {
	return func(rt *runtime) {
		rt.out = out
		rt.errOut = errOut
	}
}

type runtime struct {
	v         *viper.Viper
	cfgFile   string
	verbose   bool
	out       io.Writer
	errOut    io.Writer
	newClient ClientFactory

	settings *Settings
	logger   *slog.Logger
	client   backend.Client
	notices  *store.Notifications
}

func httpClient(s *Settings, logger *slog.Logger) (backend.Client, error) {
	base, err := backend.ResolveBaseURL(s.Env, s.APIURL, s.DevOrigin)
	if err != nil {
		return nil, err
	}
	return backend.NewHTTPClient(base, logger,
		backend.WithTimeout(s.RequestTimeout),
		backend.WithTokenSource(backend.StaticToken(s.Token)),
	)
}

// NewRootCommand assembles foodctl and its subcommands.
func NewRootCommand(opts ...Option) *cobra.Command {
	rt := &runtime{
		v:         newViper(),
		out:       os.Stdout,
		errOut:    os.Stderr,
		newClient: httpClient,
		notices:   store.NewNotifications(0),
	}
	for _, opt := range opts {
		opt(rt)
	}

	root := &cobra.Command{
		Use:           "foodctl",
		Short:         "Terminal client for the food ordering platform",
		Long:          `foodctl browses restaurants, manages the cart and follows orders from the terminal using the same backend API as the web storefront.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			rt.flushNotices()
		},
	}
	root.SetOut(rt.out)
	root.SetErr(rt.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&rt.cfgFile, "config", "", "config file (default is $HOME/.foodctl.yaml)")
	flags.BoolVarP(&rt.verbose, "verbose", "v", false, "Log backend calls to stderr")
	flags.String("api-url", "", "Absolute backend API URL")
	flags.String("env", "", "Runtime environment (development or production)")
	flags.String("request-timeout", "", "Backend request timeout")
	_ = rt.v.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = rt.v.BindPFlag("env", flags.Lookup("env"))
	_ = rt.v.BindPFlag("request_timeout", flags.Lookup("request-timeout"))

	root.AddCommand(
		newLoginCommand(rt),
		newLogoutCommand(rt),
		newCartCommand(rt),
		newOrdersCommand(rt),
		newRestaurantsCommand(rt),
		newMenuCommand(rt),
	)
	return root
}

// Execute runs foodctl and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", store.Describe(err))
		return 1
	}
	return 0
}

func (rt *runtime) init() error {
	if err := readConfig(rt.v, rt.cfgFile); err != nil {
		return err
	}
	settings, err := loadSettings(rt.v)
	if err != nil {
		return err
	}
	rt.settings = settings

	rt.logger = logger.Discard()
	if rt.verbose {
		rt.logger = logger.New(rt.errOut, slog.LevelDebug, logger.Text)
	}

	client, err := rt.newClient(settings, rt.logger)
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}
	rt.client = client
	return nil
}

func (rt *runtime) role() model.Role {
	if rt.settings.Role == "" {
		return model.RoleCustomer
	}
	return rt.settings.Role
}

func (rt *runtime) requireSession() error {
	if rt.settings.Token == "" {
		return fmt.Errorf("run foodctl login first: %w", domainErrors.ErrNotAuthenticated)
	}
	return nil
}

// cart opens a cart store for the saved principal and loads it.
func (rt *runtime) cart(ctx context.Context) (*store.CartStore, error) {
	if err := rt.requireSession(); err != nil {
		return nil, err
	}
	cart := store.NewCartStore(rt.client, rt.notices, rt.logger)
	if err := cart.AuthChanged(ctx, true); err != nil {
		return nil, err
	}
	return cart, nil
}

// board opens the order board of the saved role and loads it.
func (rt *runtime) board(ctx context.Context) (*store.OrderBoard, error) {
	if err := rt.requireSession(); err != nil {
		return nil, err
	}
	role := rt.role()
	source := usecase.NewOrderSourceFactory(rt.client).For(role)
	board := store.NewOrderBoard(role, source, rt.notices, rt.logger)
	if err := board.Refresh(ctx); err != nil {
		return nil, err
	}
	return board, nil
}

// flushNotices prints success and info toasts. Errors are reported by Execute.
func (rt *runtime) flushNotices() {
	for _, n := range rt.notices.Drain() {
		if n.Level == store.LevelError {
			continue
		}
		fmt.Fprintln(rt.errOut, n.Message)
	}
}
