package model

import (
	"time"

	"github.com/google/uuid"
)

// Session binds a browser session to a backend bearer token.
type Session struct {
	ID        uuid.UUID
	Token     string
	Role      Role
	Email     string
	Name      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
