package connect

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	smithylogging "github.com/aws/smithy-go/logging"
	"github.com/google/uuid"

	"github.com/aws-amplify/aws-sdk-connect-go/auth/sigv4"
	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/internal/protocol/restjson"
	"github.com/aws-amplify/aws-sdk-connect-go/logging"
	"github.com/aws-amplify/aws-sdk-connect-go/metrics"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/tracing"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

const (
	// ServiceID identifies the service in errors, metrics and spans.
	ServiceID = "Connect"

	// ServiceAPIVersion is the API version the client is generated from.
	ServiceAPIVersion = "2017-08-08"

	sdkName         = "aws-sdk-connect-go"
	goModuleVersion = "0.4.0"
)

// Client provides the API client to make operations call for Amazon Connect
// Service.
type Client struct {
	options   Options
	protocol  *restjson.Protocol
	recorders []metrics.Recorder
}

// New returns an initialized Client based on the functional options. Provide
// additional functional options to further configure the behavior of the
// client, such as changing the client's endpoint or adding custom middleware
// behavior.
func New(options Options, optFns ...func(*Options)) *Client {
	options = options.Copy()

	resolveDefaultLogger(&options)
	resolveHTTPClient(&options)
	resolveIdempotencyTokenProvider(&options)

	for _, fn := range optFns {
		fn(&options)
	}

	client := &Client{
		options:  options,
		protocol: restjson.New(),
	}
	client.recorders = resolveRecorders(options)

	return client
}

// NewFromConfig returns a new client from the provided config.
func NewFromConfig(cfg aws.Config, optFns ...func(*Options)) *Client {
	opts := Options{
		Region:        cfg.Region,
		Credentials:   cfg.Credentials,
		BaseEndpoint:  cfg.BaseEndpoint,
		AppID:         cfg.AppID,
		ClientLogMode: resolveClientLogMode(cfg.ClientLogMode),
	}
	if cfg.HTTPClient != nil {
		opts.HTTPClient = cfg.HTTPClient
	}
	if cfg.Logger != nil {
		opts.Logger = adaptLogger(cfg.Logger)
	}

	return New(opts, optFns...)
}

// Options returns a copy of the client configuration.
func (c *Client) Options() Options {
	return c.options.Copy()
}

func (c *Client) invokeOperation(
	ctx context.Context, opID string, params interface{}, optFns []func(*Options),
	stackFns ...func(*middleware.Stack, Options) error,
) (
	result interface{}, metadata middleware.Metadata, err error,
) {
	ctx = middleware.ClearStackValues(ctx)
	stack := middleware.NewStack(opID, smithyhttp.NewStackRequest)
	options := c.options.Copy()

	for _, fn := range optFns {
		fn(&options)
	}

	for _, fn := range stackFns {
		if err := fn(stack, options); err != nil {
			return nil, metadata, err
		}
	}

	for _, fn := range options.APIOptions {
		if err := fn(stack); err != nil {
			return nil, metadata, err
		}
	}

	handler := middleware.DecorateHandler(smithyhttp.NewClientHandler(options.HTTPClient), stack)
	result, metadata, err = handler.Handle(ctx, params)
	if err != nil {
		err = &core.OperationError{
			ServiceID:     ServiceID,
			OperationName: opID,
			Err:           err,
		}
	}

	return result, metadata, err
}

// addOperationMiddlewares builds the stack shared by every operation. op
// carries the HTTP binding of the operation and newOutput allocates its
// result.
func (c *Client) addOperationMiddlewares(
	stack *middleware.Stack, options Options, op *core.Schema, newOutput func() core.Deserializable,
) error {
	if err := stack.Initialize.Add(&middleware.RegisterServiceMetadata{
		ServiceID:     ServiceID,
		OperationName: op.ID().Name,
	}, middleware.Before); err != nil {
		return err
	}
	if err := middleware.AddSetLoggerMiddleware(stack, options.Logger); err != nil {
		return err
	}
	if err := tracing.AddSpanMiddleware(stack, options.TracerProvider); err != nil {
		return err
	}
	if err := metrics.AddMetricsMiddleware(stack, c.recorders...); err != nil {
		return err
	}
	if err := addIdempotencyTokenMiddleware(stack, options, op); err != nil {
		return err
	}
	if err := addValidateInputMiddleware(stack); err != nil {
		return err
	}
	if err := addResolveEndpointMiddleware(stack, options); err != nil {
		return err
	}
	if err := stack.Serialize.Add(&operationSerializer{op: op, protocol: c.protocol}, middleware.After); err != nil {
		return err
	}
	if err := smithyhttp.AddComputeContentLengthMiddleware(stack); err != nil {
		return err
	}
	if err := smithyhttp.AddUserAgentMiddleware(stack, sdkName, goModuleVersion, options.AppID); err != nil {
		return err
	}
	if err := sigv4.AddSignHTTPRequestMiddleware(stack, sigv4.Options{
		Credentials: options.Credentials,
		Region:      options.Region,
	}); err != nil {
		return err
	}
	if err := stack.Deserialize.Add(&operationDeserializer{
		protocol:  c.protocol,
		newOutput: newOutput,
	}, middleware.After); err != nil {
		return err
	}
	if err := addRequestResponseLogging(stack, options); err != nil {
		return err
	}
	if err := smithyhttp.AddRequestIDRetrieverMiddleware(stack); err != nil {
		return err
	}
	if err := smithyhttp.AddCloseResponseBodyMiddleware(stack); err != nil {
		return err
	}
	if err := smithyhttp.AddErrorCloseResponseBodyMiddleware(stack); err != nil {
		return err
	}
	return nil
}

func nilInputError(op string) error {
	invalid := &core.InvalidParamsError{Context: op + "Input"}
	invalid.Add(core.NewErrParamRequired("input"))
	return &core.OperationError{
		ServiceID:     ServiceID,
		OperationName: op,
		Err:           invalid,
	}
}

func resolveDefaultLogger(o *Options) {
	if o.Logger != nil {
		return
	}
	o.Logger = logging.Nop{}
}

func resolveHTTPClient(o *Options) {
	if o.HTTPClient != nil {
		return
	}
	o.HTTPClient = &http.Client{}
}

func resolveIdempotencyTokenProvider(o *Options) {
	if o.IdempotencyTokenProvider != nil {
		return
	}
	o.IdempotencyTokenProvider = uuidTokenProvider{}
}

func resolveRecorders(o Options) []metrics.Recorder {
	var recorders []metrics.Recorder
	if o.MetricsRegisterer != nil {
		r, err := metrics.NewPrometheusRecorder(o.MetricsRegisterer)
		if err != nil {
			o.Logger.Logf(logging.Warn, "prometheus metrics disabled, %v", err)
		} else {
			recorders = append(recorders, r)
		}
	}
	if o.MeterProvider != nil {
		r, err := metrics.NewOTelRecorder(o.MeterProvider)
		if err != nil {
			o.Logger.Logf(logging.Warn, "otel metrics disabled, %v", err)
		} else {
			recorders = append(recorders, r)
		}
	}
	return recorders
}

func resolveClientLogMode(mode aws.ClientLogMode) ClientLogMode {
	var m ClientLogMode
	if mode.IsRequest() || mode.IsRequestWithBody() {
		m |= LogRequest
	}
	if mode.IsResponse() || mode.IsResponseWithBody() {
		m |= LogResponse
	}
	return m
}

// adaptLogger forwards entries to the logger of an aws.Config.
func adaptLogger(l smithylogging.Logger) logging.Logger {
	return logging.LoggerFunc(func(c logging.Classification, format string, v ...interface{}) {
		l.Logf(smithylogging.Classification(c), format, v...)
	})
}

// IdempotencyTokenProvider interface for providing idempotency token
type IdempotencyTokenProvider interface {
	GetIdempotencyToken() (string, error)
}

type uuidTokenProvider struct{}

func (uuidTokenProvider) GetIdempotencyToken() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
