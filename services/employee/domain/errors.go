package domain

import "errors"

// Sentinel errors for the employee domain.
var (
	ErrInvalidEmployee = errors.New("invalid employee")
)
