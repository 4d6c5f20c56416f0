// Package viewmodel holds the shapes the view renders: list thumbnails and
// the open details panel. A thumbnail is a tagged union keyed by Kind, so one
// list component can render every domain.
package viewmodel

import (
	"sync"

	"github.com/ghuser/backoffice/pkg/entity"
)

// Kind discriminates what a thumbnail or details panel shows.
type Kind string

const (
	KindNew      Kind = "new"
	KindLogin    Kind = "login"
	KindEmployee Kind = "employee"
	KindProduct  Kind = "product"
	KindCustomer Kind = "customer"
	KindSupplier Kind = "supplier"
	KindOrder    Kind = "order"
	KindError    Kind = "error"
	KindSales    Kind = "sales"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindNew, KindLogin, KindEmployee, KindProduct, KindCustomer,
		KindSupplier, KindOrder, KindError, KindSales:
		return true
	}
	return false
}

// Thumbnail is the list-row projection of an entity.
type Thumbnail struct {
	Kind     Kind      `json:"kind"`
	ID       entity.ID `json:"id,omitempty"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Picture  string    `json:"picture,omitempty"`
	Alt      string    `json:"alt,omitempty"`
	Status   string    `json:"status,omitempty"`
}

var defaultPictures = map[Kind]string{
	KindNew:      "images/add.svg",
	KindLogin:    "/images/profile.svg",
	KindEmployee: "/images/profile.svg",
	KindError:    "/images/error.svg",
}

// WithDefaults fills Picture from the kind's placeholder and Alt from Title
// when they are empty.
func (t Thumbnail) WithDefaults() Thumbnail {
	if t.Picture == "" {
		t.Picture = defaultPictures[t.Kind]
	}
	if t.Alt == "" {
		t.Alt = t.Title
	}
	return t
}

// Thumbnailer is implemented by every domain entity.
type Thumbnailer interface {
	Thumbnail() Thumbnail
}

// FromEntities projects items in order. The result is never nil.
func FromEntities[T Thumbnailer](items []T) []Thumbnail {
	out := make([]Thumbnail, 0, len(items))
	for _, it := range items {
		out = append(out, it.Thumbnail().WithDefaults())
	}
	return out
}

// New is the placeholder tile that opens an empty draft of kind k.
func New(k Kind) Thumbnail {
	return Thumbnail{Kind: KindNew, Title: string(k)}.WithDefaults()
}

// Panel is what the details pane currently shows.
type Panel struct {
	Open bool      `json:"open"`
	Kind Kind      `json:"kind,omitempty"`
	ID   entity.ID `json:"id,omitempty"`
}

// Details tracks the details pane of one workspace. The zero value is closed.
type Details struct {
	mu    sync.Mutex
	panel Panel
}

// Show opens the pane on the record id of kind k. An empty id shows a new draft.
func (d *Details) Show(k Kind, id entity.ID) {
	d.mu.Lock()
	d.panel = Panel{Open: true, Kind: k, ID: id}
	d.mu.Unlock()
}

// Hide closes the pane.
func (d *Details) Hide() {
	d.mu.Lock()
	d.panel = Panel{}
	d.mu.Unlock()
}

// Current returns the pane state.
func (d *Details) Current() Panel {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.panel
}
