// Package entityhttp mounts the view-facing endpoints of one entity store on
// a chi router. Every domain exposes the same surface:
//
//	GET    /state            current collection, selection, draft and pending flag
//	POST   /fetch            reload the collection
//	POST   /fetch/{id}       load one record (?select=true to select it)
//	POST   /select/{id}      select a record from the collection
//	PUT    /draft            replace the draft
//	POST   /create           commit the draft
//	PUT    /edit             commit an edited record
//	DELETE /{id}             delete a record
//	GET    /thumbnails       list tiles for the grid view
package entityhttp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	"github.com/ghuser/backoffice/pkg/viewmodel"
)

// Record is what a mounted store must hold.
type Record interface {
	entity.Entity
	viewmodel.Thumbnailer
}

// Target is the per-request store plus the details pane it may close.
type Target[T Record] struct {
	Store   *entitystore.Store[T]
	Details *viewmodel.Details
}

// Resolver finds the caller's store, usually through the session workspace.
type Resolver[T Record] func(r *http.Request) (Target[T], error)

// Options tune a mount.
type Options struct {
	// Kind labels the "new" tile returned by /thumbnails.
	Kind viewmodel.Kind
	// KeepDetailsOnCreate leaves the details pane open after a create.
	KeepDetailsOnCreate bool
}

// SelectResponse is returned by POST /select/{id}.
type SelectResponse[T any] struct {
	Found    bool `json:"found"`
	Selected *T   `json:"selected"`
} // @name SelectResponse

// ErrorResponse is returned on request errors that never reach a store.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid entity id"`
} // @name ErrorResponse

// Mount registers the store endpoints under pattern.
func Mount[T Record](r chi.Router, pattern string, resolve Resolver[T], opts Options) {
	h := &handlers[T]{resolve: resolve, opts: opts}
	r.Route(pattern, func(r chi.Router) {
		r.Get("/state", h.state)
		r.Post("/fetch", h.fetchAll)
		r.Post("/fetch/{id}", h.fetchOne)
		r.Post("/select/{id}", h.selectOne)
		r.Put("/draft", h.setDraft)
		r.Post("/create", h.create)
		r.Put("/edit", h.edit)
		r.Delete("/{id}", h.remove)
		r.Get("/thumbnails", h.thumbnails)
	})
}

type handlers[T Record] struct {
	resolve Resolver[T]
	opts    Options
}

// WriteResult answers with the classified outcome of a store operation.
func WriteResult[R any](w http.ResponseWriter, res entitystore.Result[R]) {
	httpx.JSON(w, errhttp.StatusFor(res.Outcome), res)
}

func (h *handlers[T]) target(w http.ResponseWriter, r *http.Request) (Target[T], bool) {
	t, err := h.resolve(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return Target[T]{}, false
	}
	return t, true
}

func pathID(w http.ResponseWriter, r *http.Request) (entity.ID, bool) {
	id, err := entity.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return "", false
	}
	return id, true
}

// state returns the store snapshot.
//
//	@Summary	Domain state
//	@Tags		entities
//	@Produce	json
//	@Param		domain	path		string	true	"products, suppliers, employees, customers or orders"
//	@Success	200		{object}	map[string]any
//	@Failure	401		{object}	ErrorResponse
//	@Router		/{domain}/state [get]
func (h *handlers[T]) state(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, t.Store.Snapshot())
}

// fetchAll reloads the collection from the backend.
//
//	@Summary	Fetch collection
//	@Tags		entities
//	@Produce	json
//	@Param		domain	path		string	true	"products, suppliers, employees, customers or orders"
//	@Success	200		{object}	map[string]any
//	@Failure	401		{object}	map[string]any
//	@Failure	502		{object}	map[string]any
//	@Router		/{domain}/fetch [post]
func (h *handlers[T]) fetchAll(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	WriteResult(w, t.Store.FetchAll(r.Context()))
}

// fetchOne loads one record.
//
//	@Summary	Fetch one record
//	@Tags		entities
//	@Produce	json
//	@Param		domain	path		string	true	"products, suppliers, employees, customers or orders"
//	@Param		id		path		string	true	"Record id"
//	@Param		select	query		bool	false	"Store the record as the selection"
//	@Success	200		{object}	map[string]any
//	@Failure	400		{object}	ErrorResponse
//	@Router		/{domain}/fetch/{id} [post]
func (h *handlers[T]) fetchOne(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var opts []entitystore.Option[T]
	if sel, _ := strconv.ParseBool(r.URL.Query().Get("select")); sel {
		opts = append(opts, entitystore.WithSelect[T]())
	}
	WriteResult(w, t.Store.FetchOne(r.Context(), id, opts...))
}

// selectOne selects a record from the fetched collection. A miss clears the
// selection and still answers 200.
//
//	@Summary	Select record
//	@Tags		entities
//	@Produce	json
//	@Param		domain	path		string	true	"products, suppliers, employees, customers or orders"
//	@Param		id		path		string	true	"Record id"
//	@Success	200		{object}	map[string]any
//	@Router		/{domain}/select/{id} [post]
func (h *handlers[T]) selectOne(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	v, found := t.Store.Select(id)
	resp := SelectResponse[T]{Found: found}
	if found {
		resp.Selected = &v
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// setDraft replaces the draft. Incomplete drafts are accepted.
//
//	@Summary	Replace draft
//	@Tags		entities
//	@Accept		json
//	@Produce	json
//	@Param		domain	path		string	true	"products, suppliers, employees, customers or orders"
//	@Success	200		{object}	map[string]any
//	@Failure	400		{object}	ErrorResponse
//	@Router		/{domain}/draft [put]
func (h *handlers[T]) setDraft(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	draft, ok := pkgvalidator.DecodeRequest[T](w, r)
	if !ok {
		return
	}
	t.Store.SetDraft(*draft)
	httpx.JSON(w, http.StatusOK, t.Store.Draft())
}

// create commits the draft and closes the details pane on success.
//
//	@Summary	Create from draft
//	@Tags		entities
//	@Produce	json
//	@Param		domain	path		string	true	"products, suppliers, employees, customers or orders"
//	@Success	200		{object}	map[string]any
//	@Failure	401		{object}	map[string]any
//	@Failure	422		{object}	map[string]any
//	@Failure	502		{object}	map[string]any
//	@Router		/{domain}/create [post]
func (h *handlers[T]) create(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	var opts []entitystore.Option[T]
	if t.Details != nil && !h.opts.KeepDetailsOnCreate {
		opts = append(opts, entitystore.OnSuccess(func(context.Context, T) { t.Details.Hide() }))
	}
	WriteResult(w, t.Store.Create(r.Context(), opts...))
}

// edit commits the record in the body.
//
//	@Summary	Edit record
//	@Tags		entities
//	@Accept		json
//	@Produce	json
//	@Param		domain	path		string	true	"products, suppliers, employees, customers or orders"
//	@Success	200		{object}	map[string]any
//	@Failure	422		{object}	map[string]any
//	@Router		/{domain}/edit [put]
func (h *handlers[T]) edit(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	v, ok := pkgvalidator.DecodeRequest[T](w, r)
	if !ok {
		return
	}
	WriteResult(w, t.Store.Edit(r.Context(), *v))
}

// remove deletes a record on the backend.
//
//	@Summary	Delete record
//	@Tags		entities
//	@Produce	json
//	@Param		domain	path		string	true	"products, suppliers, employees, customers or orders"
//	@Param		id		path		string	true	"Record id"
//	@Success	200		{object}	map[string]any
//	@Router		/{domain}/{id} [delete]
func (h *handlers[T]) remove(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	WriteResult(w, t.Store.Delete(r.Context(), id))
}

// thumbnails projects the collection into grid tiles, led by the "new" tile.
//
//	@Summary	Grid tiles
//	@Tags		entities
//	@Produce	json
//	@Param		domain	path	string	true	"products, suppliers, employees, customers or orders"
//	@Success	200		{array}	viewmodel.Thumbnail
//	@Router		/{domain}/thumbnails [get]
func (h *handlers[T]) thumbnails(w http.ResponseWriter, r *http.Request) {
	t, ok := h.target(w, r)
	if !ok {
		return
	}
	tiles := viewmodel.FromEntities(t.Store.Snapshot().Collection)
	if h.opts.Kind != "" {
		tiles = append([]viewmodel.Thumbnail{viewmodel.New(h.opts.Kind)}, tiles...)
	}
	httpx.JSON(w, http.StatusOK, tiles)
}
