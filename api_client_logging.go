package connect

import (
	"context"
	"net/http/httputil"

	"github.com/aws-amplify/aws-sdk-connect-go/logging"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

// requestResponseLogger writes the outgoing request and the raw response to
// the operation logger. Bodies are never written.
type requestResponseLogger struct {
	LogRequest  bool
	LogResponse bool
}

func addRequestResponseLogging(stack *middleware.Stack, o Options) error {
	if !o.ClientLogMode.IsRequest() && !o.ClientLogMode.IsResponse() {
		return nil
	}
	return stack.Deserialize.Add(&requestResponseLogger{
		LogRequest:  o.ClientLogMode.IsRequest(),
		LogResponse: o.ClientLogMode.IsResponse(),
	}, middleware.Before)
}

func (*requestResponseLogger) ID() string {
	return "RequestResponseLogger"
}

func (r *requestResponseLogger) HandleDeserialize(ctx context.Context, in middleware.DeserializeInput, next middleware.DeserializeHandler) (
	out middleware.DeserializeOutput, metadata middleware.Metadata, err error,
) {
	logger := middleware.GetLogger(ctx)

	if r.LogRequest {
		if req, ok := in.Request.(*smithyhttp.Request); ok {
			dump, err := httputil.DumpRequestOut(req.Build(ctx), false)
			if err != nil {
				logger.Logf(logging.Debug, "failed to dump request %v", err)
			} else {
				logger.Logf(logging.Debug, "Request\n%v", string(dump))
			}
		}
	}

	out, metadata, err = next.HandleDeserialize(ctx, in)
	if err != nil && out.RawResponse == nil {
		return out, metadata, err
	}

	if r.LogResponse {
		if resp, ok := out.RawResponse.(*smithyhttp.Response); ok {
			logger.Logf(logging.Debug, "Response\n%v", smithyhttp.ResponseSummary(resp))
		}
	}

	return out, metadata, err
}
