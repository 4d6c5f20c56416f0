package models

import (
	"strings"

	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/viewmodel"
)

// Employee is a back-office user. Password is sent on create and edit; the
// backend does not return it.
type Employee struct {
	ID        entity.ID `json:"id,omitempty"`
	Username  string    `json:"username" validate:"required"`
	FirstName string    `json:"firstName" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string    `json:"phone,omitempty"`
	Picture   string    `json:"picture,omitempty"`
	Password  string    `json:"password,omitempty" validate:"omitempty,min=8"`
}

func (e Employee) EntityID() entity.ID { return e.ID }

func (e Employee) Thumbnail() viewmodel.Thumbnail {
	return viewmodel.Thumbnail{
		Kind:     viewmodel.KindEmployee,
		ID:       e.ID,
		Title:    strings.TrimSpace(e.FirstName + " " + e.LastName),
		Subtitle: e.Username,
		Picture:  e.Picture,
	}
}
