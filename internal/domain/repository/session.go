package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

// SessionRepository persists browser sessions and the backend tokens bound to them.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id uuid.UUID) (*model.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes up to limit sessions that expired at or before now and returns their ids.
	DeleteExpired(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}
