// Package tracing opens an OpenTelemetry span around every operation call.
//
// Callers set connect.Options.TracerProvider to a concrete OTEL SDK
// TracerProvider:
//
//	provider := trace.NewTracerProvider(trace.WithBatcher(exporter))
//	client := connect.New(connect.Options{
//		Region:         "us-west-2",
//		TracerProvider: provider,
//	})
//
// Each span is named "<service>.<operation>" and carries the rpc.system,
// rpc.service and rpc.method attributes. The request ID and the HTTP status
// code of the final response are added once the call returns.
package tracing

import (
	"context"
	"fmt"

	otelattribute "go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

// ScopeName is the instrumentation scope of the client's tracer.
const ScopeName = "github.com/aws-amplify/aws-sdk-connect-go"

// SpanKind indicates the nature of the work being performed.
type SpanKind int

// Enumeration of SpanKind.
const (
	SpanKindInternal SpanKind = iota
	SpanKindClient
	SpanKindServer
	SpanKindProducer
	SpanKindConsumer
)

// SpanStatus records the "success" state of an observed span.
type SpanStatus int

// Enumeration of SpanStatus.
const (
	SpanStatusUnset SpanStatus = iota
	SpanStatusOK
	SpanStatusError
)

// AddSpanMiddleware adds the operation span to the Initialize step. A nil
// provider leaves the stack untouched.
func AddSpanMiddleware(stack *middleware.Stack, tp oteltrace.TracerProvider) error {
	if tp == nil {
		return nil
	}
	return stack.Initialize.Add(&spanMiddleware{
		tracer: tp.Tracer(ScopeName),
	}, middleware.After)
}

type spanMiddleware struct {
	tracer oteltrace.Tracer
}

func (*spanMiddleware) ID() string {
	return id.Tracing
}

func (m *spanMiddleware) HandleInitialize(ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler) (
	out middleware.InitializeOutput, metadata middleware.Metadata, err error,
) {
	service, operation := middleware.GetServiceID(ctx), middleware.GetOperationName(ctx)

	ctx, span := m.tracer.Start(ctx, service+"."+operation,
		oteltrace.WithSpanKind(toOTELSpanKind(SpanKindClient)),
		oteltrace.WithAttributes(
			toOTELKeyValue("rpc.system", "aws-api"),
			toOTELKeyValue("rpc.service", service),
			toOTELKeyValue("rpc.method", operation),
		),
	)
	defer span.End()

	out, metadata, err = next.HandleInitialize(ctx, in)

	if reqID, ok := smithyhttp.GetRequestIDMetadata(metadata); ok {
		span.SetAttributes(toOTELKeyValue("aws.request_id", reqID))
	}
	if resp := smithyhttp.GetRawResponse(metadata); resp != nil {
		span.SetAttributes(toOTELKeyValue("http.response.status_code", resp.StatusCode))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(toOTELSpanStatus(SpanStatusError), err.Error())
	} else {
		span.SetStatus(toOTELSpanStatus(SpanStatusOK), "")
	}

	return out, metadata, err
}

func toOTELSpanKind(v SpanKind) oteltrace.SpanKind {
	switch v {
	case SpanKindClient:
		return oteltrace.SpanKindClient
	case SpanKindServer:
		return oteltrace.SpanKindServer
	case SpanKindProducer:
		return oteltrace.SpanKindProducer
	case SpanKindConsumer:
		return oteltrace.SpanKindConsumer
	default:
		return oteltrace.SpanKindInternal
	}
}

func toOTELSpanStatus(v SpanStatus) otelcodes.Code {
	switch v {
	case SpanStatusOK:
		return otelcodes.Ok
	case SpanStatusError:
		return otelcodes.Error
	default:
		return otelcodes.Unset
	}
}

// toOTELKeyValue converts a property pair. Non-string keys are formatted;
// values of an unsupported type are stringified.
func toOTELKeyValue(k, v any) otelattribute.KeyValue {
	kk, ok := k.(string)
	if !ok {
		kk = fmt.Sprintf("%v", k)
	}

	switch vv := v.(type) {
	case bool:
		return otelattribute.Bool(kk, vv)
	case []bool:
		return otelattribute.BoolSlice(kk, vv)
	case int:
		return otelattribute.Int(kk, vv)
	case []int:
		return otelattribute.IntSlice(kk, vv)
	case int64:
		return otelattribute.Int64(kk, vv)
	case []int64:
		return otelattribute.Int64Slice(kk, vv)
	case float64:
		return otelattribute.Float64(kk, vv)
	case []float64:
		return otelattribute.Float64Slice(kk, vv)
	case string:
		return otelattribute.String(kk, vv)
	case []string:
		return otelattribute.StringSlice(kk, vv)
	case fmt.Stringer:
		return otelattribute.String(kk, vv.String())
	default:
		return otelattribute.String(kk, fmt.Sprintf("%#v", v))
	}
}
