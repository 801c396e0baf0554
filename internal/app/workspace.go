package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/store"
	"github.com/polkiloo/foodfront/internal/usecase"
)

// Workspace is the client state owned by one session: its cart, its order board and the
// toast queue both of them report into.
type Workspace struct {
	SessionID     uuid.UUID
	Role          model.Role
	Cart          *store.CartStore
	Orders        *store.OrderBoard
	Notifications *store.Notifications

	badge atomic.Int64
}

// CartBadge is the item count last published by the cart store.
func (ws *Workspace) CartBadge() int {
	return int(ws.badge.Load())
}

// Workspaces keeps one Workspace per live session.
type Workspaces struct {
	client  backend.CartAPI
	sources *usecase.OrderSourceFactory
	limit   int
	logger  *slog.Logger

	mu      sync.Mutex
	items   map[uuid.UUID]*Workspace
	revoked map[uuid.UUID]time.Time
	now     func() time.Time
}

// NewWorkspaces constructs an empty registry. limit bounds every toast queue.
func NewWorkspaces(client backend.CartAPI, sources *usecase.OrderSourceFactory, limit int, logger *slog.Logger) *Workspaces {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Workspaces{
		client:  client,
		sources: sources,
		limit:   limit,
		logger:  logger,
		items:   make(map[uuid.UUID]*Workspace),
		revoked: make(map[uuid.UUID]time.Time),
		now:     time.Now,
	}
}

// Acquire returns the workspace of the session, creating it on first use. A fresh workspace
// is told that its principal is authenticated, which loads the cart. A revoked session gets a
// detached, closed workspace so a request racing its logout can not bring the state back.
func (w *Workspaces) Acquire(ctx context.Context, session *model.Session) *Workspace {
	w.mu.Lock()
	if _, gone := w.revoked[session.ID]; gone {
		w.mu.Unlock()
		return w.detached(session)
	}
	ws, ok := w.items[session.ID]
	if !ok {
		ws = w.build(session)
		w.items[session.ID] = ws
	}
	w.mu.Unlock()

	if !ok {
		if err := ws.Cart.AuthChanged(ctx, true); err != nil {
			w.logger.Warn("initial cart load failed", slog.String("session", session.ID.String()), slog.String("error", err.Error()))
		}
	}
	return ws
}

func (w *Workspaces) build(session *model.Session) *Workspace {
	notifications := store.NewNotifications(w.limit)
	logger := w.logger.With(slog.String("session", session.ID.String()))
	ws := &Workspace{
		SessionID:     session.ID,
		Role:          session.Role,
		Cart:          store.NewCartStore(w.client, notifications, logger),
		Orders:        store.NewOrderBoard(session.Role, w.sources.For(session.Role), notifications, logger),
		Notifications: notifications,
	}
	ws.Cart.Subscribe(func(snap store.CartSnapshot) {
		ws.badge.Store(int64(snap.ItemCount))
	})
	return ws
}

func (w *Workspaces) detached(session *model.Session) *Workspace {
	notifications := store.NewNotifications(w.limit)
	cart := store.NewCartStore(w.client, notifications, w.logger)
	cart.Close()
	return &Workspace{
		SessionID:     session.ID,
		Role:          session.Role,
		Cart:          cart,
		Orders:        store.NewOrderBoard(session.Role, revokedSource{}, notifications, w.logger),
		Notifications: notifications,
	}
}

// Revoke drops the workspace of a logged out session and refuses to rebuild it until the
// session would have expired anyway.
func (w *Workspaces) Revoke(ctx context.Context, session *model.Session) {
	now := w.now()
	w.mu.Lock()
	for id, until := range w.revoked {
		if !now.Before(until) {
			delete(w.revoked, id)
		}
	}
	if now.Before(session.ExpiresAt) {
		w.revoked[session.ID] = session.ExpiresAt
	}
	w.mu.Unlock()

	w.Drop(ctx, session.ID)
}

type revokedSource struct{}

func (revokedSource) Orders(context.Context) ([]model.Order, error) {
	return nil, domainErrors.ErrNotAuthenticated
}

func (revokedSource) UpdateStatus(context.Context, int64, model.OrderStatus) error {
	return domainErrors.ErrNotAuthenticated
}

// Lookup returns an existing workspace without creating one.
func (w *Workspaces) Lookup(id uuid.UUID) (*Workspace, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ws, ok := w.items[id]
	return ws, ok
}

// Drop logs the workspace out and forgets it. Late backend responses are discarded.
func (w *Workspaces) Drop(ctx context.Context, id uuid.UUID) {
	w.mu.Lock()
	ws, ok := w.items[id]
	delete(w.items, id)
	w.mu.Unlock()
	if !ok {
		return
	}

	_ = ws.Cart.AuthChanged(ctx, false)
	ws.Cart.Close()
	ws.Orders.Reset()
}

// Len reports the number of live workspaces.
func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// CloseAll drops every workspace.
func (w *Workspaces) CloseAll(ctx context.Context) {
	w.mu.Lock()
	ids := make([]uuid.UUID, 0, len(w.items))
	for id := range w.items {
		ids = append(ids, id)
	}
	w.mu.Unlock()

	for _, id := range ids {
		w.Drop(ctx, id)
	}
}
