package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ghuser/backoffice/pkg/entity"
)

// Resource is the CRUD surface of one backend route.
//
//	GET    /{route}        GetAll
//	GET    /{route}/{id}   GetOne
//	POST   /{route}        Create
//	PUT    /{route}        Edit
//	DELETE /{route}/{id}   Delete
type Resource[T any] struct {
	client *Client
	route  string
}

// NewResource binds a Client to route (e.g. "products").
func NewResource[T any](c *Client, route string) *Resource[T] {
	return &Resource[T]{client: c, route: route}
}

// Route returns the backend route this resource talks to.
func (r *Resource[T]) Route() string { return r.route }

func (r *Resource[T]) GetAll(ctx context.Context, token string) (Response[[]T], error) {
	var out []T
	status, text, err := r.client.do(ctx, http.MethodGet, r.route, token, nil, &out)
	return Response[[]T]{Data: out, Status: status, StatusText: text}, err
}

func (r *Resource[T]) GetOne(ctx context.Context, token string, id entity.ID) (Response[T], error) {
	var out T
	status, text, err := r.client.do(ctx, http.MethodGet, r.itemPath(id), token, nil, &out)
	return Response[T]{Data: out, Status: status, StatusText: text}, err
}

func (r *Resource[T]) Create(ctx context.Context, token string, v T) (Response[T], error) {
	var out T
	status, text, err := r.client.do(ctx, http.MethodPost, r.route, token, v, &out)
	return Response[T]{Data: out, Status: status, StatusText: text}, err
}

func (r *Resource[T]) Edit(ctx context.Context, token string, v T) (Response[T], error) {
	var out T
	status, text, err := r.client.do(ctx, http.MethodPut, r.route, token, v, &out)
	return Response[T]{Data: out, Status: status, StatusText: text}, err
}

func (r *Resource[T]) Delete(ctx context.Context, token string, id entity.ID) (Response[T], error) {
	var out T
	status, text, err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), token, nil, &out)
	return Response[T]{Data: out, Status: status, StatusText: text}, err
}

func (r *Resource[T]) itemPath(id entity.ID) string {
	return r.route + "/" + url.PathEscape(id.String())
}
