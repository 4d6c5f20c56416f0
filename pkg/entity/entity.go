// Package entity defines the identity shared by every record the backend
// persists: products, suppliers, employees, customers and orders.
package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidID is returned when an ID cannot be decoded from its wire form.
var ErrInvalidID = errors.New("invalid entity id")

// ID is the backend-assigned identifier of a persisted record. The backend
// emits numeric ids for some resources and string ids for others, so both
// JSON forms decode into the same value. An empty ID marks a draft.
type ID string

// Entity is anything an entity store can hold.
type Entity interface {
	EntityID() ID
}

// String returns the raw identifier.
func (id ID) String() string { return string(id) }

// IsZero reports whether the record has not been persisted yet.
func (id ID) IsZero() bool { return id == "" }

// ParseID validates a path or query parameter as an ID.
func ParseID(s string) (ID, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidID)
	}
	return ID(s), nil
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidID, err)
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidID, b)
		}
		*id = ID(n.String())
		return nil
	}
}

// MarshalJSON writes ids in canonical integer form as JSON numbers so they
// round-trip to backends that persist numeric keys. Anything else, "007" or
// "+5" included, stays a JSON string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Find returns the first item whose id matches.
func Find[T Entity](items []T, id ID) (T, bool) {
	for _, it := range items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
