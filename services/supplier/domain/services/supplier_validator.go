package services

import (
	"fmt"

	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	"github.com/ghuser/backoffice/services/supplier/domain"
	"github.com/ghuser/backoffice/services/supplier/domain/models"
)

// ValidateSupplier requires a name part and a contact channel.
func ValidateSupplier(s models.Supplier) error {
	if err := pkgvalidator.Validate(&s); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidSupplier, err)
	}
	return nil
}
