package services

import (
	"fmt"

	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	"github.com/ghuser/backoffice/services/employee/domain"
	"github.com/ghuser/backoffice/services/employee/domain/models"
)

// ValidateEmployee requires the login name and full name.
func ValidateEmployee(e models.Employee) error {
	if err := pkgvalidator.Validate(&e); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidEmployee, err)
	}
	return nil
}

// ValidateNewEmployee additionally requires an initial password.
func ValidateNewEmployee(e models.Employee) error {
	if err := ValidateEmployee(e); err != nil {
		return err
	}
	if e.Password == "" {
		return fmt.Errorf("%w: password is required for a new employee", domain.ErrInvalidEmployee)
	}
	return nil
}
