package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/server/http/dto"
	"github.com/polkiloo/foodfront/internal/server/http/middleware"
)

// SessionHandler processes login, registration and logout.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Login handles POST /api/session/login.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	session, cookie, err := h.facade.Login(c.Request.Context(), model.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetSessionCookie(c, cookie, h.facade.CookieTTL())
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// Register handles POST /api/session/register.
func (h *SessionHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	session, cookie, err := h.facade.Register(c.Request.Context(), model.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetSessionCookie(c, cookie, h.facade.CookieTTL())
	c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Logout handles POST /api/session/logout.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.facade.Logout(c.Request.Context(), CurrentSession(c)); err != nil {
		writeError(c, err)
		return
	}
	middleware.ClearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

// Current handles GET /api/session.
func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, toSessionResponse(CurrentSession(c)))
}

// Notifications handles GET /api/notifications.
func (h *SessionHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, toNotificationResponses(h.facade.Notifications(c.Request.Context(), CurrentSession(c))))
}
