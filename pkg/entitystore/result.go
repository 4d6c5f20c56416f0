package entitystore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/entity"
	"github.com/ghuser/backoffice/pkg/errhttp"
)

const (
	opFetchAll = "fetch_all"
	opFetchOne = "fetch_one"
	opCreate   = "create"
	opEdit     = "edit"
	opDelete   = "delete"
)

// TopicEntityChanged is published after every successful create, edit or delete.
const TopicEntityChanged = "entity.changed"

// Result is the classified outcome of a store operation. Data is set only on
// success; Fields carries per-field messages for local validation failures.
type Result[T any] struct {
	errhttp.Classification
	ID     entity.ID         `json:"id,omitempty"`
	Data   T                 `json:"data"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Option tunes a single operation.
type Option[T any] func(*options[T])

type options[T any] struct {
	selectResult bool
	onSuccess    []func(context.Context, T)
}

// WithSelect makes FetchOne store its record as the selection.
func WithSelect[T any]() Option[T] {
	return func(o *options[T]) { o.selectResult = true }
}

// OnSuccess registers a callback run after a successful reply, with the
// record the backend returned.
func OnSuccess[T any](fn func(ctx context.Context, v T)) Option[T] {
	return func(o *options[T]) { o.onSuccess = append(o.onSuccess, fn) }
}

func collect[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options[T]) after(ctx context.Context, res Result[T]) {
	if !res.OK() {
		return
	}
	for _, fn := range o.onSuccess {
		fn(ctx, res.Data)
	}
}

// EntityChanged is the payload of TopicEntityChanged.
type EntityChanged struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	Domain      string    `json:"domain"`
	Op          string    `json:"op"`
	EntityID    entity.ID `json:"entity_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (s *Store[T]) emitChange(ctx context.Context, op string, res Result[T]) {
	if s.cfg.Events == nil || !res.OK() {
		return
	}
	ws, _ := auth.WorkspaceIDFromCtx(ctx)
	ev := EntityChanged{
		EventID:     uuid.New(),
		Version:     1,
		WorkspaceID: ws,
		Domain:      s.cfg.Domain,
		Op:          op,
		EntityID:    res.ID,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.cfg.Events.Emit(ctx, TopicEntityChanged, ev); err != nil {
		s.cfg.Log.WarnContext(ctx, "failed to publish entity change", "domain", s.cfg.Domain, "op", op, "error", err)
	}
}
