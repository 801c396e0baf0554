package store

import (
	"errors"
	"sync"
	"time"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	domainerrors "github.com/polkiloo/foodfront/internal/domain/errors"
)

// Level classifies a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notification is one transient message for the viewer.
type Notification struct {
	ID        uint64
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Notifier receives user-visible messages from stores.
type Notifier interface {
	Push(level Level, message string)
}

// Notifications is a bounded queue. The oldest entry is dropped once the limit is reached.
type Notifications struct {
	mu     sync.Mutex
	items  []Notification
	limit  int
	nextID uint64
	now    func() time.Time
}

const defaultNotificationLimit = 50

func NewNotifications(limit int) *Notifications {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return &Notifications{limit: limit, now: time.Now}
}

func (n *Notifications) Push(level Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	n.items = append(n.items, Notification{ID: n.nextID, Level: level, Message: message, CreatedAt: n.now()})
	if over := len(n.items) - n.limit; over > 0 {
		n.items = append([]Notification(nil), n.items[over:]...)
	}
}

// Drain returns queued notifications in push order and empties the queue.
func (n *Notifications) Drain() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.items
	n.items = nil
	if out == nil {
		return []Notification{}
	}
	return out
}

func (n *Notifications) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.items)
}

// Describe turns an error into the text shown to the viewer.
func Describe(err error) string {
	var apiErr *backend.APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, domainerrors.ErrTransport):
		return "Unable to reach the server, please try again"
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrNotAuthenticated):
		return "Please log in to continue"
	case errors.Is(err, domainerrors.ErrTransitionNotAllowed):
		return "This action is not available for the order"
	case errors.Is(err, domainerrors.ErrInvalidQuantity):
		return "Quantity must be at least 1"
	case errors.Is(err, domainerrors.ErrNotFound):
		return "Not found"
	default:
		return err.Error()
	}
}

func notifyError(n Notifier, err error) {
	if n != nil && err != nil {
		n.Push(LevelError, Describe(err))
	}
}

func notifySuccess(n Notifier, message string) {
	if n != nil {
		n.Push(LevelSuccess, message)
	}
}
