package domain

import "errors"

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrInvalidOrder wraps the field errors of an order that cannot be submitted.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrNotComposing is returned when a draft operation runs after submission.
	ErrNotComposing = errors.New("order is not being composed")
)
