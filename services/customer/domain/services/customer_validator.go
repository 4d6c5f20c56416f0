package services

import (
	"fmt"

	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	"github.com/ghuser/backoffice/services/customer/domain"
	"github.com/ghuser/backoffice/services/customer/domain/models"
)

// ValidateCustomer applies the same name-and-contact rule as suppliers.
func ValidateCustomer(c models.Customer) error {
	if err := pkgvalidator.Validate(&c); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCustomer, err)
	}
	return nil
}
