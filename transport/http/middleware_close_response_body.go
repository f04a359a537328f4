package http

import (
	"context"
	"io"

	"github.com/aws-amplify/aws-sdk-connect-go/logging"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
)

// AddErrorCloseResponseBodyMiddleware adds a deserialize middleware that
// drains and closes the response body when the operation fails.
func AddErrorCloseResponseBodyMiddleware(stack *middleware.Stack) error {
	return stack.Deserialize.Add(&responseBodyCloser{onError: true}, middleware.Before)
}

// AddCloseResponseBodyMiddleware adds a deserialize middleware that drains
// and closes the response body once the output has been deserialized.
func AddCloseResponseBodyMiddleware(stack *middleware.Stack) error {
	return stack.Deserialize.Add(&responseBodyCloser{}, middleware.Before)
}

type responseBodyCloser struct {
	onError bool
}

func (m *responseBodyCloser) ID() string {
	if m.onError {
		return id.ErrorCloseResponseBody
	}
	return id.CloseResponseBody
}

func (m *responseBodyCloser) HandleDeserialize(
	ctx context.Context, input middleware.DeserializeInput, next middleware.DeserializeHandler,
) (
	out middleware.DeserializeOutput, metadata middleware.Metadata, err error,
) {
	out, metadata, err = next.HandleDeserialize(ctx, input)
	if (err != nil) != m.onError {
		return out, metadata, err
	}

	resp, ok := out.RawResponse.(*Response)
	if !ok || resp == nil || resp.Body == nil {
		return out, metadata, err
	}

	// Draining lets the transport reuse the connection.
	if _, copyErr := io.Copy(io.Discard, resp.Body); copyErr != nil && !m.onError {
		middleware.GetLogger(ctx).Logf(logging.Warn, "failed to discard response body of %s, %v",
			middleware.GetOperationName(ctx), copyErr)
	}
	if closeErr := resp.Body.Close(); closeErr != nil && !m.onError {
		middleware.GetLogger(ctx).Logf(logging.Warn, "failed to close response body of %s, %v",
			middleware.GetOperationName(ctx), closeErr)
	}

	return out, metadata, err
}
