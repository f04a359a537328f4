// Package metrics records the count and latency of operation calls. Calls
// are exported to a Prometheus registry, an OpenTelemetry meter, or both.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	otelattribute "go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
)

// ScopeName is the instrumentation scope of the client's meter.
const ScopeName = "github.com/aws-amplify/aws-sdk-connect-go"

// ResultSuccess labels calls that returned no error.
const ResultSuccess = "success"

// Recorder receives one observation per operation call.
type Recorder interface {
	RecordCall(ctx context.Context, service, operation string, dur time.Duration, err error)
}

// Result returns the label recorded for err: ResultSuccess, the code of an
// API error, or the kind of client side failure.
func Result(err error) string {
	if err == nil {
		return ResultSuccess
	}

	var apiErr core.APIError
	var invalid *core.InvalidParamsError
	var canceled *core.CanceledError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.ErrorCode()
	case errors.As(err, &invalid):
		return "InvalidParameter"
	case errors.As(err, &canceled):
		return "Canceled"
	default:
		return "ClientError"
	}
}

// PrometheusRecorder exports calls as a counter and a latency histogram.
type PrometheusRecorder struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the client collectors with reg. Collectors
// already registered by another client are shared.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	calls, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "connect",
		Subsystem: "client",
		Name:      "calls_total",
		Help:      "Number of operation calls made by the client.",
	}, []string{"service", "operation", "result"}))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "connect",
		Subsystem: "client",
		Name:      "call_duration_seconds",
		Help:      "Latency of operation calls made by the client.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "operation"}))
	if err != nil {
		return nil, err
	}

	return &PrometheusRecorder{calls: calls, duration: duration}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordCall implements Recorder.
func (r *PrometheusRecorder) RecordCall(_ context.Context, service, operation string, dur time.Duration, err error) {
	r.calls.WithLabelValues(service, operation, Result(err)).Inc()
	r.duration.WithLabelValues(service, operation).Observe(dur.Seconds())
}

// OTelRecorder exports calls through an OpenTelemetry meter.
type OTelRecorder struct {
	calls    otelmetric.Int64Counter
	duration otelmetric.Float64Histogram
}

// NewOTelRecorder creates the client instruments on a meter from mp.
func NewOTelRecorder(mp otelmetric.MeterProvider) (*OTelRecorder, error) {
	meter := mp.Meter(ScopeName)

	calls, err := meter.Int64Counter("client.call.count",
		otelmetric.WithDescription("Number of operation calls made by the client."),
		otelmetric.WithUnit("{call}"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("client.call.duration",
		otelmetric.WithDescription("Latency of operation calls made by the client."),
		otelmetric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &OTelRecorder{calls: calls, duration: duration}, nil
}

// RecordCall implements Recorder.
func (r *OTelRecorder) RecordCall(ctx context.Context, service, operation string, dur time.Duration, err error) {
	attrs := otelmetric.WithAttributes(
		otelattribute.String("rpc.system", "aws-api"),
		otelattribute.String("rpc.service", service),
		otelattribute.String("rpc.method", operation),
		otelattribute.String("result", Result(err)),
	)
	r.calls.Add(ctx, 1, attrs)
	r.duration.Record(ctx, dur.Seconds(), attrs)
}

// AddMetricsMiddleware adds the call recording middleware to the Initialize
// step. Without recorders the stack is left untouched.
func AddMetricsMiddleware(stack *middleware.Stack, recorders ...Recorder) error {
	if len(recorders) == 0 {
		return nil
	}
	return stack.Initialize.Add(&callMetrics{
		recorders: recorders,
		now:       time.Now,
	}, middleware.After)
}

type callMetrics struct {
	recorders []Recorder
	now       func() time.Time
}

func (*callMetrics) ID() string {
	return id.Metrics
}

func (m *callMetrics) HandleInitialize(ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler) (
	out middleware.InitializeOutput, metadata middleware.Metadata, err error,
) {
	start := m.now()
	out, metadata, err = next.HandleInitialize(ctx, in)
	dur := m.now().Sub(start)

	service, operation := middleware.GetServiceID(ctx), middleware.GetOperationName(ctx)
	for _, r := range m.recorders {
		r.RecordCall(ctx, service, operation, dur, err)
	}

	return out, metadata, err
}
