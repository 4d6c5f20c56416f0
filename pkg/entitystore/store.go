// Package entitystore implements the per-domain synchronization state shared
// by products, suppliers, employees, customers and orders: the fetched
// collection, the selected record, the draft awaiting commit, and a pending
// flag around every backend round trip.
//
// Operations never return raw transport errors. Each one classifies its
// outcome, runs the classifier's side effects (forced logout, surfaced
// notice) and hands the classification back in a Result.
//
// Concurrency: a mutex guards the fields, not the operations. Two writes
// dispatched to the same store both run to completion; the first to resolve
// clears pending while the second is still in flight, and the last to
// resolve wins on the collection. Stores of different domains never block
// each other.
package entitystore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/gateway"
	"github.com/ghuser/backoffice/pkg/logger"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
)

// Backend is the gateway surface a store needs for one route.
type Backend[T any] interface {
	GetAll(ctx context.Context, token string) (gateway.Response[[]T], error)
	GetOne(ctx context.Context, token string, id entity.ID) (gateway.Response[T], error)
	Create(ctx context.Context, token string, v T) (gateway.Response[T], error)
	Edit(ctx context.Context, token string, v T) (gateway.Response[T], error)
	Delete(ctx context.Context, token string, id entity.ID) (gateway.Response[T], error)
}

// Effects runs the classifier's side effects for a failed outcome.
type Effects interface {
	Apply(ctx context.Context, domain string, c errhttp.Classification)
}

// Emitter publishes change events.
type Emitter interface {
	Emit(ctx context.Context, topic string, payload any) error
}

// Deps are the collaborators shared by every store of a workspace.
type Deps struct {
	Tokens  auth.TokenSource
	Effects Effects
	Events  Emitter
	Log     logger.Logger
}

// Config describes one domain.
type Config[T entity.Entity] struct {
	Domain  string
	Backend Backend[T]
	// Validate gates Create (on the draft) and Edit (on the argument).
	// Nil accepts everything.
	Validate func(T) error
	// SkipEditValidation lets Edit through without the Validate gate.
	SkipEditValidation bool
	Deps
}

// State is a point-in-time copy of a store.
type State[T any] struct {
	Collection []T  `json:"collection"`
	Selected   *T   `json:"selected"`
	Draft      T    `json:"draft"`
	Pending    bool `json:"pending"`
}

// Store holds one domain's state. Create with New.
type Store[T entity.Entity] struct {
	cfg Config[T]

	mu         sync.Mutex
	collection []T
	selected   *T
	draft      T
	pending    bool
}

// New returns an empty store for cfg.
func New[T entity.Entity](cfg Config[T]) *Store[T] {
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	return &Store[T]{cfg: cfg, collection: []T{}}
}

// Domain returns the configured domain name.
func (s *Store[T]) Domain() string { return s.cfg.Domain }

// Snapshot copies the current state.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State[T]{
		Collection: slices.Clone(s.collection),
		Draft:      s.draft,
		Pending:    s.pending,
	}
	if s.selected != nil {
		sel := *s.selected
		st.Selected = &sel
	}
	return st
}

// Pending reports whether a round trip is in flight.
func (s *Store[T]) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Find looks id up in the fetched collection.
func (s *Store[T]) Find(id entity.ID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.Find(s.collection, id)
}

// Select sets selected to the collection member with id, or clears it when
// there is none. It never fails.
func (s *Store[T]) Select(id entity.ID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := entity.Find(s.collection, id)
	if !ok {
		s.selected = nil
		return v, false
	}
	s.selected = &v
	return v, true
}

// SetDraft replaces the draft wholesale.
func (s *Store[T]) SetDraft(v T) {
	s.mu.Lock()
	s.draft = v
	s.mu.Unlock()
}

// Draft returns the current draft.
func (s *Store[T]) Draft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// FetchAll replaces the collection with the backend's list, in backend order.
// On failure the collection is left untouched.
func (s *Store[T]) FetchAll(ctx context.Context) Result[[]T] {
	return roundTrip(ctx, s, opFetchAll, "", func(ctx context.Context, token string) (gateway.Response[[]T], error) {
		return s.cfg.Backend.GetAll(ctx, token)
	}, func(items []T) {
		if items == nil {
			items = []T{}
		}
		s.collection = items
	})
}

// FetchOne loads a single record without touching the collection. The record
// becomes the selection only with WithSelect.
func (s *Store[T]) FetchOne(ctx context.Context, id entity.ID, opts ...Option[T]) Result[T] {
	o := collect(opts)
	res := roundTrip(ctx, s, opFetchOne, id, func(ctx context.Context, token string) (gateway.Response[T], error) {
		return s.cfg.Backend.GetOne(ctx, token, id)
	}, func(v T) {
		if o.selectResult {
			s.selected = &v
		}
	})
	o.after(ctx, res)
	return res
}

// Create validates the draft and posts it. The collection is not updated;
// callers re-fetch to observe the new record. OnSuccess callbacks run after
// a successful reply.
func (s *Store[T]) Create(ctx context.Context, opts ...Option[T]) Result[T] {
	draft := s.Draft()
	if res, ok := s.preflight(ctx, opCreate, draft); !ok {
		return res
	}
	res := roundTrip(ctx, s, opCreate, draft.EntityID(), func(ctx context.Context, token string) (gateway.Response[T], error) {
		return s.cfg.Backend.Create(ctx, token, draft)
	}, nil)
	s.emitChange(ctx, opCreate, res)
	collect(opts).after(ctx, res)
	return res
}

// Edit validates v (not the draft) and puts it.
func (s *Store[T]) Edit(ctx context.Context, v T, opts ...Option[T]) Result[T] {
	if !s.cfg.SkipEditValidation {
		if res, ok := s.preflight(ctx, opEdit, v); !ok {
			return res
		}
	}
	res := roundTrip(ctx, s, opEdit, v.EntityID(), func(ctx context.Context, token string) (gateway.Response[T], error) {
		return s.cfg.Backend.Edit(ctx, token, v)
	}, nil)
	s.emitChange(ctx, opEdit, res)
	collect(opts).after(ctx, res)
	return res
}

// Delete removes id on the backend. The record stays in the local collection
// until the next FetchAll.
func (s *Store[T]) Delete(ctx context.Context, id entity.ID, opts ...Option[T]) Result[T] {
	res := roundTrip(ctx, s, opDelete, id, func(ctx context.Context, token string) (gateway.Response[T], error) {
		return s.cfg.Backend.Delete(ctx, token, id)
	}, nil)
	if res.OK() && res.ID.IsZero() {
		res.ID = id
	}
	s.emitChange(ctx, opDelete, res)
	collect(opts).after(ctx, res)
	return res
}

// preflight runs the domain predicate; on failure it classifies without
// dispatching anything.
func (s *Store[T]) preflight(ctx context.Context, op string, v T) (Result[T], bool) {
	if s.cfg.Validate == nil {
		return Result[T]{}, true
	}
	err := s.cfg.Validate(v)
	if err == nil {
		return Result[T]{}, true
	}
	c := errhttp.NotSent(errhttp.ValidationFailed, err.Error())
	s.finish(ctx, op, v.EntityID(), c, 0)
	return Result[T]{
		Classification: c,
		ID:             v.EntityID(),
		Fields:         pkgvalidator.FormatValidationErrors(err),
	}, false
}

// roundTrip wraps one gateway call in the pending discipline. apply runs
// under the lock, only on success, before pending is cleared.
func roundTrip[T entity.Entity, R any](
	ctx context.Context,
	s *Store[T],
	op string,
	id entity.ID,
	call func(ctx context.Context, token string) (gateway.Response[R], error),
	apply func(R),
) Result[R] {
	token, ok := "", false
	if s.cfg.Tokens != nil {
		token, ok = s.cfg.Tokens.Token(ctx)
	}
	if !ok {
		c := errhttp.NotSent(errhttp.AuthExpired, "not logged in")
		s.finish(ctx, op, id, c, 0)
		return Result[R]{Classification: c, ID: id}
	}

	s.setPending(true)
	start := time.Now()
	resp, err := call(ctx, token)
	elapsed := time.Since(start)

	var c errhttp.Classification
	if err != nil {
		c = errhttp.ClassifyError(err)
	} else {
		c = errhttp.Classify(resp.Status, resp.StatusText)
	}

	s.mu.Lock()
	if c.OK() && apply != nil {
		apply(resp.Data)
	}
	s.pending = false
	s.mu.Unlock()

	s.finish(ctx, op, id, c, elapsed)

	res := Result[R]{Classification: c, ID: id}
	if c.OK() {
		res.Data = resp.Data
		if e, ok := any(resp.Data).(entity.Entity); ok && !e.EntityID().IsZero() {
			res.ID = e.EntityID()
		}
	}
	return res
}

func (s *Store[T]) setPending(v bool) {
	s.mu.Lock()
	s.pending = v
	s.mu.Unlock()
}

// finish records, logs and runs side effects for a classified outcome.
func (s *Store[T]) finish(ctx context.Context, op string, id entity.ID, c errhttp.Classification, elapsed time.Duration) {
	recordOutcome(ctx, s.cfg.Domain, op, c, elapsed)
	if c.OK() {
		s.cfg.Log.DebugContext(ctx, "entity store call succeeded",
			"domain", s.cfg.Domain, "op", op, "id", id, "latency_ms", elapsed.Milliseconds())
		return
	}
	s.cfg.Log.WarnContext(ctx, "entity store call failed",
		"domain", s.cfg.Domain,
		"op", op,
		"id", id,
		"status", c.Status,
		"outcome", c.Outcome.String(),
		"message", c.Message,
	)
	if s.cfg.Effects != nil {
		s.cfg.Effects.Apply(ctx, s.cfg.Domain, c)
	}
}
