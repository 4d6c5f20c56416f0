package models

import (
	"strings"

	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/viewmodel"
)

// Supplier is a contact products are ordered from. A supplier needs a first
// or last name, and an email or phone number.
type Supplier struct {
	ID        entity.ID `json:"id,omitempty"`
	FirstName string    `json:"firstName,omitempty" validate:"required_without=LastName"`
	LastName  string    `json:"lastName,omitempty" validate:"required_without=FirstName"`
	Email     string    `json:"email,omitempty" validate:"required_without=Phone"`
	Phone     string    `json:"phone,omitempty" validate:"required_without=Email"`
	Picture   string    `json:"picture,omitempty"`
	OrderDay  string    `json:"orderDay,omitempty"`
}

func (s Supplier) EntityID() entity.ID { return s.ID }

// DisplayName joins the name parts that are set.
func (s Supplier) DisplayName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func (s Supplier) Thumbnail() viewmodel.Thumbnail {
	return viewmodel.Thumbnail{
		Kind:     viewmodel.KindSupplier,
		ID:       s.ID,
		Title:    s.DisplayName(),
		Subtitle: s.OrderDay,
		Picture:  s.Picture,
	}
}
