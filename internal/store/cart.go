package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	domainerrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("store closed")

// CartState tracks the cart synchronization lifecycle.
type CartState string

const (
	CartUninitialized CartState = "UNINITIALIZED"
	CartLoading       CartState = "LOADING"
	CartReady         CartState = "READY"
	CartEmpty         CartState = "EMPTY"
)

// CartSnapshot is an immutable view handed to consumers.
type CartSnapshot struct {
	State         CartState
	Cart          *model.Cart
	ItemCount     int
	Authenticated bool
}

// CartStore keeps one principal's cart in sync with the backend.
//
// Every refresh takes a sequence number when issued. A response is applied only when it is
// newer than the last applied one and was issued after the last logout, so a slow response
// can not overwrite fresher state. The mutex is never held during a backend call.
type CartStore struct {
	api      backend.CartAPI
	notifier Notifier
	logger   *slog.Logger

	mu            sync.Mutex
	state         CartState
	cart          *model.Cart
	authenticated bool
	closed        bool
	issued        uint64
	applied       uint64
	resetAt       uint64
	inflight      int
	subs          map[uint64]func(CartSnapshot)
	nextSub       uint64
}

func NewCartStore(api backend.CartAPI, notifier Notifier, logger *slog.Logger) *CartStore {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &CartStore{
		api:      api,
		notifier: notifier,
		logger:   logger,
		state:    CartUninitialized,
		subs:     make(map[uint64]func(CartSnapshot)),
	}
}

// AuthChanged records the principal state and resynchronizes. Logging out empties the
// cart without touching the network.
func (s *CartStore) AuthChanged(ctx context.Context, authenticated bool) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.authenticated = authenticated
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// Refresh fetches the cart for the authenticated principal. Without one the cart becomes nil
// and no request is issued. On failure the previous cart stays in place.
func (s *CartStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if !s.authenticated {
		s.resetLocked()
		snap, subs := s.publishLocked()
		s.mu.Unlock()
		deliver(subs, snap)
		return nil
	}
	s.issued++
	seq := s.issued
	s.inflight++
	s.state = CartLoading
	snap, subs := s.publishLocked()
	s.mu.Unlock()
	deliver(subs, snap)

	cart, err := s.api.GetCart(ctx)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		if s.state == CartLoading && s.inflight == 0 {
			s.state = s.settledLocked()
		}
		snap, subs = s.publishLocked()
		s.mu.Unlock()
		deliver(subs, snap)
		s.logger.Warn("cart refresh failed", slog.Uint64("seq", seq), slog.String("error", err.Error()))
		notifyError(s.notifier, err)
		return fmt.Errorf("refresh cart: %w", err)
	}

	if seq <= s.applied || seq <= s.resetAt || s.closed {
		settled := s.state == CartLoading && s.inflight == 0 && !s.closed
		if settled {
			s.state = s.settledLocked()
			snap, subs = s.publishLocked()
		}
		s.mu.Unlock()
		if settled {
			deliver(subs, snap)
		}
		s.logger.Debug("stale cart response discarded", slog.Uint64("seq", seq))
		return nil
	}
	s.applied = seq
	s.cart = cart
	s.state = CartReady
	snap, subs = s.publishLocked()
	s.mu.Unlock()
	deliver(subs, snap)
	s.logger.Debug("cart refresh applied", slog.Uint64("seq", seq), slog.Int("items", snap.ItemCount))
	return nil
}

// Add puts quantity units of a menu item into the cart.
func (s *CartStore) Add(ctx context.Context, menuItemID int64, quantity int) error {
	if quantity < 1 {
		err := fmt.Errorf("add %d of item %d: %w", quantity, menuItemID, domainerrors.ErrInvalidQuantity)
		notifyError(s.notifier, err)
		return err
	}
	return s.mutate(ctx, "add to cart", "Item added to cart", func(ctx context.Context) error {
		_, err := s.api.AddToCart(ctx, menuItemID, quantity)
		return err
	})
}

// UpdateQuantity sets a line's quantity. Anything below one removes the line.
func (s *CartStore) UpdateQuantity(ctx context.Context, lineID int64, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, lineID)
	}
	return s.mutate(ctx, "update cart item", "", func(ctx context.Context) error {
		_, err := s.api.UpdateCartItem(ctx, lineID, quantity)
		return err
	})
}

func (s *CartStore) Remove(ctx context.Context, lineID int64) error {
	return s.mutate(ctx, "remove cart item", "Item removed from cart", func(ctx context.Context) error {
		_, err := s.api.RemoveCartItem(ctx, lineID)
		return err
	})
}

func (s *CartStore) Clear(ctx context.Context) error {
	return s.mutate(ctx, "clear cart", "Cart cleared", s.api.ClearCart)
}

// mutate issues one request and resynchronizes on success. A failed refresh after a
// successful mutation is reported through the notifier only.
func (s *CartStore) mutate(ctx context.Context, op, success string, call func(context.Context) error) error {
	s.mu.Lock()
	closed, authenticated := s.closed, s.authenticated
	s.mu.Unlock()

	switch {
	case closed:
		return ErrClosed
	case !authenticated:
		err := fmt.Errorf("%s: %w", op, domainerrors.ErrNotAuthenticated)
		notifyError(s.notifier, err)
		return err
	}

	if err := call(ctx); err != nil {
		s.logger.Warn("cart mutation failed", slog.String("op", op), slog.String("error", err.Error()))
		notifyError(s.notifier, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if success != "" {
		notifySuccess(s.notifier, success)
	}
	_ = s.Refresh(ctx)
	return nil
}

func (s *CartStore) Snapshot() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ItemCount is the sum of line quantities of the last applied cart.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

func (s *CartStore) State() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every change. The returned func unregisters it.
func (s *CartStore) Subscribe(fn func(CartSnapshot)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close ends the store lifecycle. In-flight responses are discarded.
func (s *CartStore) Close() {
	s.mu.Lock()
	s.resetLocked()
	s.authenticated = false
	s.closed = true
	subs := s.subs
	s.subs = make(map[uint64]func(CartSnapshot))
	snap := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *CartStore) resetLocked() {
	s.cart = nil
	s.state = CartEmpty
	s.resetAt = s.issued
}

func (s *CartStore) settledLocked() CartState {
	switch {
	case !s.authenticated:
		return CartEmpty
	case s.cart != nil:
		return CartReady
	default:
		return CartUninitialized
	}
}

func (s *CartStore) snapshotLocked() CartSnapshot {
	return CartSnapshot{
		State:         s.state,
		Cart:          s.cart,
		ItemCount:     s.cart.ItemCount(),
		Authenticated: s.authenticated,
	}
}

func (s *CartStore) publishLocked() (CartSnapshot, []func(CartSnapshot)) {
	subs := make([]func(CartSnapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return s.snapshotLocked(), subs
}

func deliver(subs []func(CartSnapshot), snap CartSnapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
