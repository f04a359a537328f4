package http

import (
	"context"
	"fmt"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
)

// RequestIDHeader is the response header the service echoes its request
// identifier in.
const RequestIDHeader = "X-Amzn-Requestid"

type (
	requestIDKey   struct{}
	rawResponseKey struct{}
)

// GetRequestIDMetadata retrieves the request ID recorded in the metadata.
func GetRequestIDMetadata(metadata middleware.Metadata) (string, bool) {
	v, ok := metadata.Get(requestIDKey{}).(string)
	return v, ok
}

// SetRequestIDMetadata records the request ID in the metadata.
func SetRequestIDMetadata(metadata *middleware.Metadata, id string) {
	metadata.Set(requestIDKey{}, id)
}

// GetRawResponse returns the raw HTTP response recorded in the metadata.
func GetRawResponse(metadata middleware.Metadata) *Response {
	v, _ := metadata.Get(rawResponseKey{}).(*Response)
	return v
}

// AddRequestIDRetrieverMiddleware adds a deserialize middleware that records
// the service's request ID and raw response in the operation metadata.
func AddRequestIDRetrieverMiddleware(stack *middleware.Stack) error {
	return stack.Deserialize.Add(&requestIDRetriever{}, middleware.Before)
}

type requestIDRetriever struct{}

func (*requestIDRetriever) ID() string {
	return "RequestIDRetriever"
}

func (m *requestIDRetriever) HandleDeserialize(
	ctx context.Context, in middleware.DeserializeInput, next middleware.DeserializeHandler,
) (
	out middleware.DeserializeOutput, metadata middleware.Metadata, err error,
) {
	out, metadata, err = next.HandleDeserialize(ctx, in)

	resp, ok := out.RawResponse.(*Response)
	if !ok {
		return out, metadata, err
	}

	metadata.Set(rawResponseKey{}, resp)
	if v := resp.Header.Get(RequestIDHeader); len(v) != 0 {
		SetRequestIDMetadata(&metadata, v)
	}

	return out, metadata, err
}

// ResponseSummary renders a short description of the raw response for debug
// logging.
func ResponseSummary(resp *Response) string {
	if resp == nil || resp.Response == nil {
		return "<nil response>"
	}
	return fmt.Sprintf("%s %d request-id=%s", resp.Proto, resp.StatusCode, resp.Header.Get(RequestIDHeader))
}
