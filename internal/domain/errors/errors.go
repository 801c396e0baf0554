package errors

import "errors"

// Failure taxonomy shared by the backend client, stores and HTTP handlers.
var (
	ErrTransport            = errors.New("backend unreachable")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrValidation           = errors.New("validation failed")
	ErrRejected             = errors.New("request rejected")
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrInvalidQuantity      = errors.New("invalid quantity")
)
