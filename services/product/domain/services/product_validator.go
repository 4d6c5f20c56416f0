// Package services holds the product commit rules.
package services

import (
	"fmt"

	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	"github.com/ghuser/backoffice/services/product/domain"
	"github.com/ghuser/backoffice/services/product/domain/models"
)

// ValidateProduct gates create and edit: name, at least one supplier, a
// positive purchase price and a unit size must be present.
func ValidateProduct(p models.Product) error {
	if err := pkgvalidator.Validate(&p); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidProduct, err)
	}
	return nil
}
