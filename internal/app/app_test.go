package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/foodfront/internal/config"
	"github.com/polkiloo/foodfront/internal/domain/model"
	testhelpers "github.com/polkiloo/foodfront/internal/test"
	"github.com/polkiloo/foodfront/internal/usecase"
	"github.com/polkiloo/foodfront/internal/worker"
)

func newTestReaper(t *testing.T) (*worker.SessionReaper, *StorefrontFacade) {
	t.Helper()
	facade, _ := newTestFacade(t, &testhelpers.BackendStub{})
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return worker.NewSessionReaper(facade, 10*time.Millisecond, 1, 1, logger), facade
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewSessionReaperUsesConfig(t *testing.T) {
	facade, _ := newTestFacade(t, &testhelpers.BackendStub{})
	reaper := newSessionReaper(workerParams{
		Facade: facade,
		Config: &config.Config{ReapInterval: 15 * time.Second},
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	if reaper == nil {
		t.Fatal("expected session reaper instance")
	}
}

func TestNewWorkspacesUsesConfig(t *testing.T) {
	api := &testhelpers.BackendStub{}
	ws := newWorkspaces(workspaceParams{
		Client:  api,
		Sources: usecase.NewOrderSourceFactory(api),
		Config:  &config.Config{NotificationLimit: 3},
		Logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	if ws.limit != 3 {
		t.Fatalf("expected notification limit 3, got %d", ws.limit)
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	api := &testhelpers.BackendStub{}
	facade, _ := newTestFacade(t, api)
	reaper := worker.NewSessionReaper(facade, 10*time.Millisecond, 1, 1, logger)

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Worker:     reaper,
		Facade:     facade,
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	loginAs(t, facade, api, model.RoleCustomer)
	if facade.workspaces.Len() != 1 {
		t.Fatalf("expected a workspace after login, got %d", facade.workspaces.Len())
	}

	done := make(chan error, 1)
	go func() { done <- recorder.Stop(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("stop failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected stop to finish")
	}
	if facade.workspaces.Len() != 0 {
		t.Fatalf("expected workspaces to be dropped on stop, got %d", facade.workspaces.Len())
	}
	if shutdowner.Calls() != 0 {
		t.Fatal("clean stop must not request shutdown")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	reaper, facade := newTestReaper(t)

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     &http.Server{Addr: "bad addr"},
		Worker:     reaper,
		Facade:     facade,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := recorder.Start(context.Background()); err != nil {
		t.Fatalf("start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = recorder.Stop(context.Background())
}

func TestLifecycleRecorderRunsHooksInFxOrder(t *testing.T) {
	var order []string
	recorder := &testhelpers.LifecycleRecorder{}
	for _, name := range []string{"storage", "server"} {
		recorder.Append(fx.Hook{
			OnStart: func(context.Context) error { order = append(order, "start "+name); return nil },
			OnStop:  func(context.Context) error { order = append(order, "stop "+name); return nil },
		})
	}
	recorder.Append(fx.Hook{})

	_ = recorder.Start(context.Background())
	_ = recorder.Stop(context.Background())

	want := []string{"start storage", "start server", "stop server", "stop storage"}
	if len(order) != len(want) {
		t.Fatalf("unexpected hook order %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected hook order %v", order)
		}
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	_ = shutdowner.Shutdown()
	_ = shutdowner.Shutdown()
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
	if shutdowner.Calls() != 2 {
		t.Fatalf("expected 2 calls, got %d", shutdowner.Calls())
	}
}
