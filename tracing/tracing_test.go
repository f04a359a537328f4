package tracing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	otelattribute "go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

func TestToOTELSpanKind(t *testing.T) {
	for _, tt := range []struct {
		In     SpanKind
		Expect oteltrace.SpanKind
	}{
		{SpanKindClient, oteltrace.SpanKindClient},
		{SpanKindServer, oteltrace.SpanKindServer},
		{SpanKindProducer, oteltrace.SpanKindProducer},
		{SpanKindConsumer, oteltrace.SpanKindConsumer},
		{SpanKindInternal, oteltrace.SpanKindInternal},
		{SpanKind(-1), oteltrace.SpanKindInternal},
	} {
		name := fmt.Sprintf("%v -> %v", tt.In, tt.Expect)
		t.Run(name, func(t *testing.T) {
			actual := toOTELSpanKind(tt.In)
			if tt.Expect != actual {
				t.Errorf("%v != %v", tt.Expect, actual)
			}
		})
	}
}

func TestToOTELSpanStatus(t *testing.T) {
	for _, tt := range []struct {
		In     SpanStatus
		Expect otelcodes.Code
	}{
		{SpanStatusOK, otelcodes.Ok},
		{SpanStatusError, otelcodes.Error},
		{SpanStatusUnset, otelcodes.Unset},
		{SpanStatus(-1), otelcodes.Unset},
	} {
		name := fmt.Sprintf("%v -> %v", tt.In, tt.Expect)
		t.Run(name, func(t *testing.T) {
			actual := toOTELSpanStatus(tt.In)
			if tt.Expect != actual {
				t.Errorf("%v != %v", tt.Expect, actual)
			}
		})
	}
}

type stringer struct{}

func (s stringer) String() string {
	return "stringer"
}

type notstringer struct{}

func TestToOTELKeyValue(t *testing.T) {
	for _, tt := range []struct {
		K, V   any
		Expect otelattribute.KeyValue
	}{
		{1, "asdf", otelattribute.String("1", "asdf")},
		{"key", stringer{}, otelattribute.String("key", "stringer")},
		{"key", notstringer{}, otelattribute.String("key", "tracing.notstringer{}")},
		{"key", true, otelattribute.Bool("key", true)},
		{"key", []bool{true, false}, otelattribute.BoolSlice("key", []bool{true, false})},
		{"key", int(1), otelattribute.Int("key", 1)},
		{"key", []int{1, 2}, otelattribute.IntSlice("key", []int{1, 2})},
		{"key", int64(1), otelattribute.Int64("key", 1)},
		{"key", []int64{1, 2}, otelattribute.Int64Slice("key", []int64{1, 2})},
		{"key", float64(1), otelattribute.Float64("key", 1)},
		{"key", []float64{1, 2}, otelattribute.Float64Slice("key", []float64{1, 2})},
		{"key", "value", otelattribute.String("key", "value")},
		{"key", []string{"v1", "v2"}, otelattribute.StringSlice("key", []string{"v1", "v2"})},
	} {
		name := fmt.Sprintf("(%v, %v) -> %v", tt.K, tt.V, tt.Expect)
		t.Run(name, func(t *testing.T) {
			actual := toOTELKeyValue(tt.K, tt.V)
			if tt.Expect != actual {
				t.Errorf("%v != %v", tt.Expect, actual)
			}
		})
	}
}

type recordingProvider struct {
	noop.TracerProvider
	spans []*recordingSpan
}

func (p *recordingProvider) Tracer(string, ...oteltrace.TracerOption) oteltrace.Tracer {
	return &recordingTracer{provider: p}
}

type recordingTracer struct {
	noop.Tracer
	provider *recordingProvider
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...oteltrace.SpanStartOption) (
	context.Context, oteltrace.Span,
) {
	cfg := oteltrace.NewSpanStartConfig(opts...)
	span := &recordingSpan{
		name:  name,
		kind:  cfg.SpanKind(),
		attrs: cfg.Attributes(),
	}
	t.provider.spans = append(t.provider.spans, span)
	return oteltrace.ContextWithSpan(ctx, span), span
}

type recordingSpan struct {
	noop.Span
	name  string
	kind  oteltrace.SpanKind
	attrs []otelattribute.KeyValue
	code  otelcodes.Code
	desc  string
	errs  []error
	ended bool
}

func (s *recordingSpan) SetAttributes(kv ...otelattribute.KeyValue) { s.attrs = append(s.attrs, kv...) }
func (s *recordingSpan) SetStatus(code otelcodes.Code, desc string) { s.code, s.desc = code, desc }
func (s *recordingSpan) RecordError(err error, _ ...oteltrace.EventOption) {
	s.errs = append(s.errs, err)
}
func (s *recordingSpan) End(...oteltrace.SpanEndOption) { s.ended = true }

func TestSpanMiddleware(t *testing.T) {
	cases := map[string]struct {
		err        error
		expectCode otelcodes.Code
		expectDesc string
	}{
		"success": {
			expectCode: otelcodes.Ok,
		},
		"failure": {
			err:        errors.New("ResourceNotFoundException"),
			expectCode: otelcodes.Error,
			expectDesc: "ResourceNotFoundException",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			tp := &recordingProvider{}
			stack := middleware.NewStack("DescribeQueue", smithyhttp.NewStackRequest)
			if err := AddSpanMiddleware(stack, tp); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			m, ok := stack.Initialize.Get("Tracing")
			if !ok {
				t.Fatalf("expected tracing middleware on stack")
			}

			ctx := middleware.WithServiceID(context.Background(), "Connect")
			ctx = middleware.WithOperationName(ctx, "DescribeQueue")
			_, _, err := m.HandleInitialize(ctx, middleware.InitializeInput{},
				middleware.InitializeHandlerFunc(func(ctx context.Context, in middleware.InitializeInput) (
					middleware.InitializeOutput, middleware.Metadata, error,
				) {
					var md middleware.Metadata
					smithyhttp.SetRequestIDMetadata(&md, "req-1")
					if oteltrace.SpanFromContext(ctx) == nil {
						t.Errorf("expected span on context")
					}
					return middleware.InitializeOutput{}, md, c.err
				}))
			if err != c.err {
				t.Fatalf("expected error %v, got %v", c.err, err)
			}

			if len(tp.spans) != 1 {
				t.Fatalf("expected 1 span, got %d", len(tp.spans))
			}
			span := tp.spans[0]
			if e, a := "Connect.DescribeQueue", span.name; e != a {
				t.Errorf("expected span name %q, got %q", e, a)
			}
			if e, a := oteltrace.SpanKindClient, span.kind; e != a {
				t.Errorf("expected kind %v, got %v", e, a)
			}
			if !span.ended {
				t.Errorf("expected span to be ended")
			}
			if e, a := c.expectCode, span.code; e != a {
				t.Errorf("expected status %v, got %v", e, a)
			}
			if e, a := c.expectDesc, span.desc; e != a {
				t.Errorf("expected status description %q, got %q", e, a)
			}
			if c.err != nil && len(span.errs) != 1 {
				t.Errorf("expected recorded error, got %v", span.errs)
			}

			expectAttrs := []otelattribute.KeyValue{
				otelattribute.String("rpc.system", "aws-api"),
				otelattribute.String("rpc.service", "Connect"),
				otelattribute.String("rpc.method", "DescribeQueue"),
				otelattribute.String("aws.request_id", "req-1"),
			}
			if diff := cmp.Diff(expectAttrs, span.attrs, cmp.Comparer(func(a, b otelattribute.KeyValue) bool {
				return a == b
			})); diff != "" {
				t.Errorf("attributes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddSpanMiddlewareNilProvider(t *testing.T) {
	stack := middleware.NewStack("DescribeQueue", smithyhttp.NewStackRequest)
	if err := AddSpanMiddleware(stack, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := stack.Initialize.Get("Tracing"); ok {
		t.Errorf("expected no tracing middleware without a provider")
	}
}
