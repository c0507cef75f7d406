// Package server provides the HTTP REST API for the career-compass service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pruthviraj/career-compass/internal/recommend"
	"github.com/pruthviraj/career-compass/internal/startup"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrNotFound indicates a requested catalog or plan record does not exist
type ErrNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps service errors to HTTP status codes
func HTTPStatus(err error) int {
	var (
		careerNotFound *recommend.ErrCareerNotFound
		ideaNotFound   *startup.ErrIdeaNotFound
	)
	switch {
	case errors.As(err, new(*ErrEmailAlreadyExists)):
		return http.StatusConflict
	case errors.As(err, new(*ErrInvalidCredentials)), errors.As(err, new(*ErrPasswordMismatch)):
		return http.StatusUnauthorized
	case errors.As(err, new(*ErrUserNotFound)), errors.As(err, new(*ErrNotFound)),
		errors.As(err, &careerNotFound), errors.As(err, &ideaNotFound):
		return http.StatusNotFound
	case errors.As(err, new(*ErrValidation)):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
