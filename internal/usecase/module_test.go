package usecase

import (
	"log/slog"
	"testing"

	"go.uber.org/fx"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	"github.com/polkiloo/foodfront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/foodfront/internal/pkg/auth"
	testhelpers "github.com/polkiloo/foodfront/internal/test"
)

func TestModuleProvidesUseCases(t *testing.T) {
	var (
		auth      *AuthUseCase
		sources   *OrderSourceFactory
		catalog   *CatalogUseCase
		dashboard *DashboardUseCase
		account   *AccountUseCase
		checkout  *CheckoutUseCase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() backend.Client { return &testhelpers.BackendStub{} },
			func() backend.AuthAPI { return &testhelpers.BackendStub{} },
			func() repository.SessionRepository { return testhelpers.NewSessionRepositoryStub() },
			func() pkgAuth.Strategy { return testhelpers.StrategyStub{} },
			func() *slog.Logger { return nil },
		),
		Module,
		fx.Populate(&auth, &sources, &catalog, &dashboard, &account, &checkout),
	)
	if err := app.Err(); err != nil {
		t.Fatalf("fx graph failed: %v", err)
	}
	if auth == nil || sources == nil || catalog == nil || dashboard == nil || account == nil || checkout == nil {
		t.Fatal("expected every use case to be provided")
	}
}
