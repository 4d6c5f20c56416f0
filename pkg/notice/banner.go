// Package notice holds the single user-facing message a workspace surfaces
// after a failed operation. Views poll it alongside the pending flags.
package notice

import (
	"context"
	"sync"
	"time"
)

// TopicNoticeSurfaced is published every time a Banner receives a notice.
const TopicNoticeSurfaced = "notice.surfaced"

// Notice is one surfaced message.
type Notice struct {
	Domain  string    `json:"domain"`
	Outcome string    `json:"outcome"`
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Reauth  bool      `json:"reauth"`
	At      time.Time `json:"at"`
}

// Emitter publishes a JSON payload on a topic.
type Emitter interface {
	Emit(ctx context.Context, topic string, payload any) error
}

// Banner keeps the most recent notice. The zero value is usable.
type Banner struct {
	mu      sync.RWMutex
	current *Notice
	events  Emitter
	now     func() time.Time
}

// NewBanner returns a Banner that also publishes to events when non-nil.
func NewBanner(events Emitter) *Banner {
	return &Banner{events: events}
}

// Notify replaces the current notice.
func (b *Banner) Notify(ctx context.Context, n Notice) {
	if n.At.IsZero() {
		n.At = b.clock()
	}
	b.mu.Lock()
	b.current = &n
	b.mu.Unlock()

	if b.events != nil {
		_ = b.events.Emit(ctx, TopicNoticeSurfaced, n)
	}
}

// Current returns the last notice, if any.
func (b *Banner) Current() (Notice, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.current == nil {
		return Notice{}, false
	}
	return *b.current, true
}

// Clear dismisses the current notice.
func (b *Banner) Clear() {
	b.mu.Lock()
	b.current = nil
	b.mu.Unlock()
}

func (b *Banner) clock() time.Time {
	if b.now != nil {
		return b.now()
	}
	return time.Now().UTC()
}
