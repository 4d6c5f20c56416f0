package errhttp

import (
	"errors"
	"fmt"
	"net/http"
)

// Outcome is the typed result of a backend round trip.
type Outcome int

const (
	Success Outcome = iota
	AuthExpired
	ValidationFailed
	ServerError
)

// StatusNotSent marks a classification produced before any request left the
// process. No HTTP status can be 0, so it never collides with a backend reply.
const StatusNotSent = 0

// Sentinel errors, one per failing outcome. Use errors.Is() to check these.
var (
	ErrAuthExpired      = errors.New("authentication expired")
	ErrValidationFailed = errors.New("validation failed")
	ErrServerError      = errors.New("server error")
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case AuthExpired:
		return "auth_expired"
	case ValidationFailed:
		return "validation_failed"
	default:
		return "server_error"
	}
}

// MarshalText renders the outcome by name in JSON bodies.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	for _, c := range []Outcome{Success, AuthExpired, ValidationFailed, ServerError} {
		if c.String() == string(b) {
			*o = c
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", b)
}

// Classification is an Outcome plus the status and text it was derived from.
type Classification struct {
	Outcome Outcome `json:"outcome"`
	Status  int     `json:"status"`
	Message string  `json:"message,omitempty"`
}

// Classify maps a backend status/text pair to an Outcome. It never fails:
// anything other than 200, 400, 401, 403 or 422 is a ServerError.
func Classify(status int, statusText string) Classification {
	c := Classification{Status: status, Message: statusText}
	switch status {
	case http.StatusOK:
		c.Outcome = Success
	case http.StatusUnauthorized, http.StatusForbidden:
		c.Outcome = AuthExpired
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		c.Outcome = ValidationFailed
	default:
		c.Outcome = ServerError
	}
	return c
}

// ClassifyError maps a transport failure (no usable response) to ServerError.
func ClassifyError(err error) Classification {
	msg := "network error"
	if err != nil {
		msg = err.Error()
	}
	return Classification{Outcome: ServerError, Status: StatusNotSent, Message: msg}
}

// NotSent builds a classification for a request that was never dispatched,
// such as a draft rejected by local validation or a call without a token.
func NotSent(o Outcome, message string) Classification {
	return Classification{Outcome: o, Status: StatusNotSent, Message: message}
}

// OK reports whether the round trip succeeded.
func (c Classification) OK() bool { return c.Outcome == Success }

// Sent reports whether the classification came from a backend reply.
func (c Classification) Sent() bool { return c.Status != StatusNotSent }

// Err returns nil on success, otherwise the outcome's sentinel wrapped with
// the status text.
func (c Classification) Err() error {
	var sentinel error
	switch c.Outcome {
	case Success:
		return nil
	case AuthExpired:
		sentinel = ErrAuthExpired
	case ValidationFailed:
		sentinel = ErrValidationFailed
	default:
		sentinel = ErrServerError
	}
	if c.Message == "" {
		return fmt.Errorf("%w (status %d)", sentinel, c.Status)
	}
	return fmt.Errorf("%w (status %d): %s", sentinel, c.Status, c.Message)
}

// StatusFor is the HTTP status the view-facing API answers with for o.
func StatusFor(o Outcome) int {
	switch o {
	case Success:
		return http.StatusOK
	case AuthExpired:
		return http.StatusUnauthorized
	case ValidationFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
