package domain

import "errors"

// Sentinel errors for the product domain. Use errors.Is() to check these.
var (
	// ErrInvalidProduct wraps the field errors of a draft that cannot be committed.
	ErrInvalidProduct = errors.New("invalid product")
)
