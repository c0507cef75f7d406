package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pruthviraj/career-compass/internal/recommend"
	"github.com/pruthviraj/career-compass/internal/startup"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.com"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"record not found", &ErrNotFound{Resource: "plan", ID: uuid.New()}, http.StatusNotFound},
		{"career not found", &recommend.ErrCareerNotFound{CareerID: uuid.New()}, http.StatusNotFound},
		{"idea not found", &startup.ErrIdeaNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_Wrapped(t *testing.T) {
	err := fmt.Errorf("handling request: %w", &ErrUserNotFound{UserID: uuid.New()})
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}
