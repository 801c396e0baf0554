package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/server/http/dto"
)

const (
	// SessionContextKey is a gin context key for the resolved session.
	SessionContextKey = "session"
	// SessionCookieName carries the signed session identifier.
	SessionCookieName = "foodfront_session"
)

// SessionResolver maps a session cookie to a live session.
type SessionResolver interface {
	Resolve(ctx context.Context, cookie string) (*model.Session, error)
}

// SessionRequired rejects requests without a live session.
func SessionRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolve(c, resolver)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotAuthenticated) {
				ClearSessionCookie(c)
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Please log in to continue"})
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// SessionOptional attaches the session when one is present and never rejects.
func SessionOptional(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, err := resolve(c, resolver); err == nil {
			c.Set(SessionContextKey, session)
		}
		c.Next()
	}
}

// RoleRequired lets only the listed roles through. It must follow SessionRequired.
func RoleRequired(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Please log in to continue"})
			return
		}
		for _, role := range roles {
			if session.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Access denied"})
	}
}

// CurrentSession returns the session attached by SessionRequired or SessionOptional.
func CurrentSession(c *gin.Context) (*model.Session, bool) {
	val, ok := c.Get(SessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := val.(*model.Session)
	return session, ok && session != nil
}

func resolve(c *gin.Context, resolver SessionResolver) (*model.Session, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return nil, domainErrors.ErrNotAuthenticated
	}
	return resolver.Resolve(c.Request.Context(), cookie)
}

// SetSessionCookie writes the session cookie to the response.
func SetSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, value, maxAge, "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
