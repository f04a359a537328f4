package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

func TestResult(t *testing.T) {
	cases := map[string]struct {
		err    error
		expect string
	}{
		"nil": {
			expect: ResultSuccess,
		},
		"api error": {
			err:    &core.GenericAPIError{Code: "ThrottlingException"},
			expect: "ThrottlingException",
		},
		"wrapped api error": {
			err: &core.OperationError{
				ServiceID:     "Connect",
				OperationName: "ListQueues",
				Err:           &core.GenericAPIError{Code: "AccessDeniedException"},
			},
			expect: "AccessDeniedException",
		},
		"invalid params": {
			err:    fmt.Errorf("validate, %w", &core.InvalidParamsError{Context: "ListQueuesInput"}),
			expect: "InvalidParameter",
		},
		"canceled": {
			err:    &core.CanceledError{Err: context.Canceled},
			expect: "Canceled",
		},
		"other": {
			err:    errors.New("dial tcp: connection refused"),
			expect: "ClientError",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.expect, Result(c.err); e != a {
				t.Errorf("expected %q, got %q", e, a)
			}
		})
	}
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()

	r, err := NewPrometheusRecorder(reg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	r.RecordCall(context.Background(), "Connect", "ListQueues", time.Second, nil)
	r.RecordCall(context.Background(), "Connect", "ListQueues", time.Second, nil)
	r.RecordCall(context.Background(), "Connect", "ListQueues", time.Second,
		&core.GenericAPIError{Code: "ThrottlingException"})

	if e, a := 2.0, testutil.ToFloat64(r.calls.WithLabelValues("Connect", "ListQueues", ResultSuccess)); e != a {
		t.Errorf("expected %v successful calls, got %v", e, a)
	}
	if e, a := 1.0, testutil.ToFloat64(r.calls.WithLabelValues("Connect", "ListQueues", "ThrottlingException")); e != a {
		t.Errorf("expected %v throttled calls, got %v", e, a)
	}
	if e, a := 1, testutil.CollectAndCount(r.duration); e != a {
		t.Errorf("expected %v duration series, got %v", e, a)
	}

	// A second client on the same registry shares the collectors.
	r2, err := NewPrometheusRecorder(reg)
	if err != nil {
		t.Fatalf("expected no error re-registering, got %v", err)
	}
	r2.RecordCall(context.Background(), "Connect", "ListQueues", time.Second, nil)
	if e, a := 3.0, testutil.ToFloat64(r.calls.WithLabelValues("Connect", "ListQueues", ResultSuccess)); e != a {
		t.Errorf("expected %v successful calls, got %v", e, a)
	}
}

func TestOTelRecorder(t *testing.T) {
	r, err := NewOTelRecorder(noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	r.RecordCall(context.Background(), "Connect", "DescribeQueue", time.Millisecond, nil)
}

type callRecord struct {
	service, operation string
	dur                time.Duration
	err                error
}

type recorderFunc func(callRecord)

func (f recorderFunc) RecordCall(_ context.Context, service, operation string, dur time.Duration, err error) {
	f(callRecord{service: service, operation: operation, dur: dur, err: err})
}

func TestMetricsMiddleware(t *testing.T) {
	var records []callRecord
	rec := recorderFunc(func(r callRecord) { records = append(records, r) })

	stack := middleware.NewStack("DescribeQueue", smithyhttp.NewStackRequest)
	if err := AddMetricsMiddleware(stack, rec, rec); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	m, ok := stack.Initialize.Get("Metrics")
	if !ok {
		t.Fatalf("expected metrics middleware on stack")
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{start, start.Add(250 * time.Millisecond)}
	m.(*callMetrics).now = func() time.Time {
		v := ticks[0]
		ticks = ticks[1:]
		return v
	}

	expectErr := errors.New("boom")
	ctx := middleware.WithServiceID(context.Background(), "Connect")
	ctx = middleware.WithOperationName(ctx, "DescribeQueue")
	_, _, err := m.HandleInitialize(ctx, middleware.InitializeInput{},
		middleware.InitializeHandlerFunc(func(context.Context, middleware.InitializeInput) (
			middleware.InitializeOutput, middleware.Metadata, error,
		) {
			return middleware.InitializeOutput{}, middleware.Metadata{}, expectErr
		}))
	if err != expectErr {
		t.Fatalf("expected error %v, got %v", expectErr, err)
	}

	if e, a := 2, len(records); e != a {
		t.Fatalf("expected %d records, got %d", e, a)
	}
	for _, r := range records {
		if r.service != "Connect" || r.operation != "DescribeQueue" {
			t.Errorf("unexpected call identity %q.%q", r.service, r.operation)
		}
		if e, a := 250*time.Millisecond, r.dur; e != a {
			t.Errorf("expected duration %v, got %v", e, a)
		}
		if r.err != expectErr {
			t.Errorf("expected recorded error %v, got %v", expectErr, r.err)
		}
	}
}

func TestAddMetricsMiddlewareNoRecorders(t *testing.T) {
	stack := middleware.NewStack("DescribeQueue", smithyhttp.NewStackRequest)
	if err := AddMetricsMiddleware(stack); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := stack.Initialize.Get("Metrics"); ok {
		t.Errorf("expected no metrics middleware without recorders")
	}
}
