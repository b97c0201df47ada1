// Package storage holds what the relational quote stores share: statement
// instrumentation and id parsing. Each driver lives in its own subpackage.
package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotestagram/internal/domain"
)

const instrumentationName = "github.com/jsamuelsen/quotestagram/internal/adapters/storage"

// Statement outcomes used as the "outcome" metric label.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeConstraint = "constraint"
	OutcomeError      = "error"
)

var (
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quotestagram",
		Subsystem: "db",
		Name:      "queries_total",
		Help:      "Quote store statements by driver, operation and outcome.",
	}, []string{"driver", "operation", "outcome"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quotestagram",
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "Quote store statement latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"driver", "operation"})
)

// Instrument starts a client span for one statement and returns a function
// that ends it and records the statement metrics. The returned context
// carries the span.
//
//	ctx, done := storage.Instrument(ctx, "postgresql", "find_all")
//	quotes, err := r.findAll(ctx)
//	done(err)
func Instrument(ctx context.Context, driver, operation string) (context.Context, func(error)) {
	start := time.Now()

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "quotes."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", driver),
			attribute.String("db.operation", operation),
			attribute.String("db.sql.table", "quotes"),
		),
	)

	return ctx, func(err error) {
		outcome := Outcome(err)

		if err != nil && outcome == OutcomeError {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.SetAttributes(attribute.String("db.outcome", outcome))
		span.End()

		queryTotal.WithLabelValues(driver, operation, outcome).Inc()
		queryDuration.WithLabelValues(driver, operation).Observe(time.Since(start).Seconds())
	}
}

// Outcome classifies a statement error into a metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case domain.IsNotFound(err):
		return OutcomeNotFound
	case domain.IsConstraint(err):
		return OutcomeConstraint
	default:
		return OutcomeError
	}
}

// ParseID converts a quote id taken from a URL into an integer.
// A malformed id cannot match any row, so it is reported as not found.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.NewNotFoundError("quote", raw)
	}

	return id, nil
}
