package http

import (
	"context"
	"fmt"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
)

// ComputeContentLength sets the request's Content-Length from its body when
// the serializer left it unknown.
type ComputeContentLength struct{}

// AddComputeContentLengthMiddleware adds ComputeContentLength to the end of
// the Build step.
func AddComputeContentLengthMiddleware(stack *middleware.Stack) error {
	return stack.Build.Add(&ComputeContentLength{}, middleware.After)
}

// ID returns the identifier for the ComputeContentLength.
func (m *ComputeContentLength) ID() string { return id.ComputeContentLength }

// HandleBuild measures seekable bodies. Unseekable bodies stay at -1 and are
// sent chunked.
func (m *ComputeContentLength) HandleBuild(
	ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler,
) (
	out middleware.BuildOutput, metadata middleware.Metadata, err error,
) {
	req, ok := in.Request.(*Request)
	if !ok {
		return out, metadata, fmt.Errorf("unknown request type %T", in.Request)
	}
	if req.ContentLength >= 0 {
		return next.HandleBuild(ctx, in)
	}

	n, known, err := req.StreamLength()
	if err != nil {
		return out, metadata, fmt.Errorf("measure %s request body, %w",
			middleware.GetOperationName(ctx), err)
	}
	if known {
		req.ContentLength = n
	}
	return next.HandleBuild(ctx, in)
}
