package telemetry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/errhttp"
)

func TestSentryReporter_TagsDomainAndOutcome(t *testing.T) {
	var (
		mu     sync.Mutex
		events []*sentry.Event
	)
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(e *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
			return nil
		},
	})
	if err != nil {
		t.Fatalf("sentry client: %v", err)
	}
	hub := sentry.NewHub(client, sentry.NewScope())

	NewSentryReporter(hub).Report(context.Background(), "products", errhttp.Classify(503, "Service Unavailable"))

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Tags["domain"] != "products" {
		t.Errorf("domain tag: got %q", events[0].Tags["domain"])
	}
	if events[0].Tags["outcome"] != errhttp.ServerError.String() {
		t.Errorf("outcome tag: got %q", events[0].Tags["outcome"])
	}
}

func TestSentryReporter_MarksTransportFailuresUnsent(t *testing.T) {
	var got *sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(e *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			got = e
			return nil
		},
	})
	if err != nil {
		t.Fatalf("sentry client: %v", err)
	}
	hub := sentry.NewHub(client, sentry.NewScope())

	NewSentryReporter(hub).Report(context.Background(), "orders", errhttp.ClassifyError(errors.New("dial tcp: connection refused")))

	if got == nil {
		t.Fatal("expected an event")
	}
	if got.Tags["sent"] != "false" {
		t.Errorf("sent tag: got %q", got.Tags["sent"])
	}
	if status := got.Contexts["backend"]["status"]; status != errhttp.StatusNotSent {
		t.Errorf("backend status: got %v", status)
	}
}

func TestSetupSentry_NoDSNIsNoop(t *testing.T) {
	if err := SetupSentry(&config.Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
