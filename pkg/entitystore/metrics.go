package entitystore

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/backoffice/pkg/errhttp"
)

const meterName = "github.com/ghuser/backoffice/pkg/entitystore"

var (
	instrumentsOnce sync.Once
	callCounter     metric.Int64Counter
	callDuration    metric.Float64Histogram
)

// instruments are created lazily so they bind to the meter provider
// telemetry.Setup installs at startup.
func initInstruments() {
	m := otel.Meter(meterName)
	callCounter, _ = m.Int64Counter("entitystore.calls",
		metric.WithDescription("Entity store operations by domain, operation and outcome"))
	callDuration, _ = m.Float64Histogram("entitystore.call.duration",
		metric.WithDescription("Backend round-trip latency of entity store operations"),
		metric.WithUnit("s"))
}

func recordOutcome(ctx context.Context, domain, op string, c errhttp.Classification, elapsed time.Duration) {
	instrumentsOnce.Do(initInstruments)
	attrs := metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("op", op),
		attribute.String("outcome", c.Outcome.String()),
		attribute.Bool("sent", c.Sent()),
	)
	if callCounter != nil {
		callCounter.Add(ctx, 1, attrs)
	}
	if callDuration != nil && elapsed > 0 {
		callDuration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
