package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/server/http/dto"
	"github.com/polkiloo/foodfront/internal/server/http/middleware"
	"github.com/polkiloo/foodfront/internal/store"
)

// CurrentSession extracts the resolved session from context.
func CurrentSession(c *gin.Context) *model.Session {
	session, _ := middleware.CurrentSession(c)
	return session
}

// pathID parses a positive numeric path parameter. On failure it writes 400 and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid " + name})
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "malformed request body"})
}

// statusFor maps the error taxonomy to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrNotAuthenticated),
		errors.Is(err, domainErrors.ErrUnauthorized),
		errors.Is(err, store.ErrClosed):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrTransitionNotAllowed), errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrTransport), errors.Is(err, domainErrors.ErrRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError records err on the context and writes the mapped status with a viewer message.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := statusFor(err)
	message := store.Describe(err)
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	c.JSON(status, dto.ErrorResponse{Message: message})
}
