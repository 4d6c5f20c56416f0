package app

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/backoffice/pkg/entitystore"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/notice"
)

// Subscriber is the part of the event bus RegisterSubscribers needs.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// RegisterSubscribers wires the audit handlers. Add new topics here as more
// packages publish events.
func RegisterSubscribers(ctx context.Context, bus Subscriber, log logger.Logger) error {
	handlers := map[string]func(context.Context, *message.Message) error{
		entitystore.TopicEntityChanged: handleEntityChanged(log),
		notice.TopicNoticeSurfaced:     handleNoticeSurfaced(log),
	}

	topics := make([]string, 0, len(handlers))
	for topic, h := range handlers {
		errCh, err := bus.Subscribe(ctx, topic, h)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, topic)
	}

	log.Info("event subscribers registered", "topics", topics)
	return nil
}

func handleEntityChanged(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt entitystore.EntityChanged
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		log.InfoContext(ctx, "entity changed",
			"workspace_id", evt.WorkspaceID,
			"domain", evt.Domain,
			"op", evt.Op,
			"entity_id", evt.EntityID,
			"event_id", evt.EventID,
		)
		return nil
	}
}

func handleNoticeSurfaced(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var n notice.Notice
		if err := json.Unmarshal(msg.Payload, &n); err != nil {
			return err
		}
		log.WarnContext(ctx, "notice surfaced",
			"domain", n.Domain,
			"outcome", n.Outcome,
			"status", n.Status,
			"reauth", n.Reauth,
		)
		return nil
	}
}
