package domain

import "errors"

// Sentinel errors for the supplier domain. Use errors.Is() to check these.
var (
	// ErrInvalidSupplier indicates a draft without a name or without a way to contact the supplier.
	ErrInvalidSupplier = errors.New("invalid supplier")
)
