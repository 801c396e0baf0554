package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

const uniqueViolation = "23505"

const (
	insertSession = `INSERT INTO sessions (id, token, role, email, name, created_at, expires_at)
                     VALUES ($1, $2, $3, $4, $5, $6, $7)`
	selectSession = `SELECT id, token, role, email, name, created_at, expires_at
                     FROM sessions WHERE id = $1`
	deleteSession = `DELETE FROM sessions WHERE id = $1`
	// Concurrent reapers skip each other's rows instead of waiting on them.
	deleteExpiredSessions = `DELETE FROM sessions WHERE id IN (
                                 SELECT id FROM sessions
                                 WHERE expires_at <= $1
                                 ORDER BY expires_at
                                 LIMIT $2
                                 FOR UPDATE SKIP LOCKED)
                             RETURNING id`
)

type sessionRepository struct {
	pool pgxPool
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	_, err := r.pool.Exec(ctx, insertSession,
		session.ID.String(), session.Token, string(session.Role), session.Email, session.Name,
		session.CreatedAt, session.ExpiresAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	var (
		rawID, role string
		s           model.Session
	)
	err := r.pool.QueryRow(ctx, selectSession, id.String()).
		Scan(&rawID, &s.Token, &role, &s.Email, &s.Name, &s.CreatedAt, &s.ExpiresAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, domainErrors.ErrNotFound
	case err != nil:
		return nil, err
	}
	if s.ID, err = uuid.Parse(rawID); err != nil {
		return nil, fmt.Errorf("session id %q: %w", rawID, err)
	}
	s.Role = model.Role(role)
	return &s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, deleteSession, id.String())
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, deleteExpiredSessions, now, limit)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("session id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
