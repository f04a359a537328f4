package connect

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/prometheus/client_golang/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/aws-amplify/aws-sdk-connect-go/logging"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

// HTTPClient sends a single request. *http.Client satisfies it.
type HTTPClient = smithyhttp.ClientDo

// ClientLogMode selects the request and response diagnostics written to
// Options.Logger at the DEBUG classification.
type ClientLogMode uint64

// Supported ClientLogMode bits.
const (
	LogRequest ClientLogMode = 1 << iota
	LogResponse
)

// IsRequest reports whether request logging is enabled.
func (m ClientLogMode) IsRequest() bool {
	return m&LogRequest != 0
}

// IsResponse reports whether response logging is enabled.
func (m ClientLogMode) IsResponse() bool {
	return m&LogResponse != 0
}

// Options configures a Client.
type Options struct {
	// Set of options to modify how an operation is invoked. These apply to all
	// operations invoked for this client. Use functional options on operation
	// call to modify this list for per operation behavior.
	APIOptions []func(*middleware.Stack) error

	// The optional application specific identifier appended to the User-Agent
	// header.
	AppID string

	// This endpoint will be given as input to the endpoint resolution instead of
	// the regional default, for example "http://localhost:8080".
	BaseEndpoint *string

	// Selects the request and response summaries written to Logger.
	ClientLogMode ClientLogMode

	// The credentials object to use when signing requests. A nil provider
	// leaves requests unsigned.
	Credentials aws.CredentialsProvider

	// The HTTP client to invoke API calls with. Defaults to a client with
	// default transport settings.
	HTTPClient HTTPClient

	// Provides idempotency tokens for members that are auto-filled when left
	// unset. Defaults to random UUIDs.
	IdempotencyTokenProvider IdempotencyTokenProvider

	// The logger writer interface to write logging messages to.
	Logger logging.Logger

	// The meter provider operation metrics are recorded with.
	MeterProvider otelmetric.MeterProvider

	// The Prometheus registerer the client's call collectors are added to.
	MetricsRegisterer prometheus.Registerer

	// The region to send requests to. Required unless BaseEndpoint is set.
	Region string

	// The tracer provider operation spans are started with.
	TracerProvider oteltrace.TracerProvider

	// Resolve the dual-stack (IPv4 and IPv6) endpoint of the region.
	UseDualStackEndpoint bool

	// Resolve the FIPS compliant endpoint of the region.
	UseFIPSEndpoint bool
}

// Copy creates a clone where the APIOptions list is deep copied.
func (o Options) Copy() Options {
	to := o
	to.APIOptions = make([]func(*middleware.Stack) error, len(o.APIOptions))
	copy(to.APIOptions, o.APIOptions)

	return to
}

// WithAPIOptions returns a functional option for setting the Client's
// APIOptions option.
func WithAPIOptions(optFns ...func(*middleware.Stack) error) func(*Options) {
	return func(o *Options) {
		o.APIOptions = append(o.APIOptions, optFns...)
	}
}

// WithBaseEndpoint returns a functional option for setting the Client's
// BaseEndpoint option.
func WithBaseEndpoint(v string) func(*Options) {
	return func(o *Options) {
		o.BaseEndpoint = &v
	}
}
