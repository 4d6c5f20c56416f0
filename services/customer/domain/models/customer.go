package models

import (
	"strings"

	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/viewmodel"
)

// Customer is a buyer contact.
type Customer struct {
	ID        entity.ID `json:"id,omitempty"`
	FirstName string    `json:"firstName,omitempty" validate:"required_without=LastName"`
	LastName  string    `json:"lastName,omitempty" validate:"required_without=FirstName"`
	Email     string    `json:"email,omitempty" validate:"required_without=Phone"`
	Phone     string    `json:"phone,omitempty" validate:"required_without=Email"`
	Picture   string    `json:"picture,omitempty"`
	Address   string    `json:"address,omitempty"`
}

func (c Customer) EntityID() entity.ID { return c.ID }

func (c Customer) Thumbnail() viewmodel.Thumbnail {
	return viewmodel.Thumbnail{
		Kind:     viewmodel.KindCustomer,
		ID:       c.ID,
		Title:    strings.TrimSpace(c.FirstName + " " + c.LastName),
		Subtitle: c.Address,
		Picture:  c.Picture,
	}
}
