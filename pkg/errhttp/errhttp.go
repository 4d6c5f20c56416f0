// Package errhttp classifies backend responses into typed outcomes, runs the
// side effects each outcome demands, and maps sentinel errors to HTTP status
// codes for the view-facing API.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/httpx"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors answer 500 without their text.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeMessage(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthExpired), errors.Is(err, auth.ErrWorkspaceNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, ErrValidationFailed):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, entity.ErrInvalidID):
		return http.StatusBadRequest // 400
	case errors.Is(err, ErrServerError):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
