package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	domainerrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/lifecycle"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

// OrderSource fetches the orders visible to one viewer and updates their status.
type OrderSource interface {
	Orders(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

// OrderView is an order decorated with its tracker and the actions open to the viewer.
type OrderView struct {
	Order      model.Order
	Tracker    lifecycle.Tracker
	NextAction *lifecycle.Action
	CanCancel  bool
	Actions    []lifecycle.Action
}

// OrderBoard holds the order collection of one viewer. Status changes are never applied
// locally: after every successful update the whole collection is fetched again.
type OrderBoard struct {
	role     model.Role
	source   OrderSource
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	orders    []model.Order
	loaded    bool
	fetchedAt time.Time
	issued    uint64
	applied   uint64
	resetAt   uint64
}

func NewOrderBoard(role model.Role, source OrderSource, notifier Notifier, logger *slog.Logger) *OrderBoard {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &OrderBoard{role: role, source: source, notifier: notifier, logger: logger, now: time.Now}
}

func (b *OrderBoard) Role() model.Role { return b.role }

// Refresh replaces the collection with the latest server state. Failure keeps the last
// good list.
func (b *OrderBoard) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.issued++
	seq := b.issued
	b.mu.Unlock()

	orders, err := b.source.Orders(ctx)
	if err != nil {
		b.logger.Warn("order refresh failed", slog.String("role", string(b.role)), slog.String("error", err.Error()))
		notifyError(b.notifier, err)
		return fmt.Errorf("refresh orders: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq <= b.applied || seq <= b.resetAt {
		b.logger.Debug("stale order response discarded", slog.Uint64("seq", seq))
		return nil
	}
	b.applied = seq
	b.orders = orders
	b.loaded = true
	b.fetchedAt = b.now()
	return nil
}

// Advance moves the order to the next status permitted for the viewer role.
func (b *OrderBoard) Advance(ctx context.Context, orderID int64) error {
	return b.transition(ctx, orderID, func(status model.OrderStatus) model.OrderStatus {
		next, _ := lifecycle.NextAction(b.role, status)
		return next.Target
	})
}

// Cancel cancels the order when the viewer role may do so.
func (b *OrderBoard) Cancel(ctx context.Context, orderID int64) error {
	return b.transition(ctx, orderID, func(model.OrderStatus) model.OrderStatus {
		return model.OrderStatusCancelled
	})
}

func (b *OrderBoard) transition(ctx context.Context, orderID int64, targetFor func(model.OrderStatus) model.OrderStatus) error {
	order, ok := b.Order(orderID)
	if !ok {
		err := fmt.Errorf("order %d: %w", orderID, domainerrors.ErrNotFound)
		notifyError(b.notifier, err)
		return err
	}

	target := targetFor(order.Status)
	if !lifecycle.Permits(b.role, order.Status, target) {
		err := fmt.Errorf("order %d as %s from %s: %w", orderID, b.role, order.Status, domainerrors.ErrTransitionNotAllowed)
		notifyError(b.notifier, err)
		return err
	}

	if err := b.source.UpdateStatus(ctx, orderID, target); err != nil {
		b.logger.Warn("order status update failed",
			slog.Int64("order", orderID),
			slog.String("target", string(target)),
			slog.String("error", err.Error()),
		)
		notifyError(b.notifier, err)
		return fmt.Errorf("update order %d to %s: %w", orderID, target, err)
	}

	notifySuccess(b.notifier, fmt.Sprintf("Order #%d: %s", orderID, lifecycle.Label(target)))
	_ = b.Refresh(ctx)
	return nil
}

// Order returns a copy of one order from the last fetched collection.
func (b *OrderBoard) Order(id int64) (model.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

func (b *OrderBoard) Orders() []model.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Order(nil), b.orders...)
}

// Loaded reports whether at least one refresh succeeded and when.
func (b *OrderBoard) Loaded() (bool, time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded, b.fetchedAt
}

func (b *OrderBoard) Views() []OrderView {
	orders := b.Orders()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, b.view(o))
	}
	return views
}

// View builds the view of a single order.
func (b *OrderBoard) View(id int64) (OrderView, bool) {
	o, ok := b.Order(id)
	if !ok {
		return OrderView{}, false
	}
	return b.view(o), true
}

func (b *OrderBoard) view(o model.Order) OrderView {
	v := OrderView{
		Order:     o,
		Tracker:   lifecycle.Track(o.Status),
		CanCancel: lifecycle.CanCancel(b.role, o.Status),
		Actions:   lifecycle.Actions(b.role, o.Status),
	}
	if next, ok := lifecycle.NextAction(b.role, o.Status); ok {
		v.NextAction = &next
	}
	return v
}

// Reset drops the collection at session end. In-flight refreshes are discarded.
func (b *OrderBoard) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = nil
	b.loaded = false
	b.fetchedAt = time.Time{}
	b.resetAt = b.issued
}
