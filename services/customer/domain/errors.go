package domain

import "errors"

// Sentinel errors for the customer domain. Use errors.Is() to check these.
var (
	// ErrInvalidCustomer indicates a draft without a name or contact channel.
	ErrInvalidCustomer = errors.New("invalid customer")

	// ErrInvalidBill wraps the field errors of a bill the backend would refuse.
	ErrInvalidBill = errors.New("invalid bill")

	// ErrBillPaid is returned when a paid bill is changed or cashed out again.
	ErrBillPaid = errors.New("this bill has already been cashed out")

	// ErrEmptyBill is returned when a bill without items is cashed out.
	ErrEmptyBill = errors.New("bill has no items")
)
