package connect

import (
	"context"
	"fmt"

	"github.com/aws-amplify/aws-sdk-connect-go/internal/endpoints"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

// ResolveEndpoint returns the URL requests are sent to for the given options:
// BaseEndpoint when set, otherwise the regional Connect endpoint such as
// https://connect.us-west-2.amazonaws.com.
func ResolveEndpoint(o Options) (string, error) {
	u, err := endpoints.Resolve(endpointParameters(o))
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func endpointParameters(o Options) endpoints.Parameters {
	return endpoints.Parameters{
		Region:       o.Region,
		UseFIPS:      o.UseFIPSEndpoint,
		UseDualStack: o.UseDualStackEndpoint,
		Endpoint:     o.BaseEndpoint,
	}
}

type resolveEndpointMiddleware struct {
	params endpoints.Parameters
}

func addResolveEndpointMiddleware(stack *middleware.Stack, o Options) error {
	return stack.Serialize.Add(&resolveEndpointMiddleware{
		params: endpointParameters(o),
	}, middleware.Before)
}

func (*resolveEndpointMiddleware) ID() string {
	return "ResolveEndpoint"
}

func (m *resolveEndpointMiddleware) HandleSerialize(ctx context.Context, in middleware.SerializeInput, next middleware.SerializeHandler) (
	out middleware.SerializeOutput, metadata middleware.Metadata, err error,
) {
	req, ok := in.Request.(*smithyhttp.Request)
	if !ok {
		return out, metadata, fmt.Errorf("unknown transport type %T", in.Request)
	}

	u, err := endpoints.Resolve(m.params)
	if err != nil {
		return out, metadata, fmt.Errorf("failed to resolve service endpoint, %w", err)
	}

	req.URL.Scheme = u.Scheme
	req.URL.Host = u.Host
	req.URL.Path = u.Path

	return next.HandleSerialize(ctx, in)
}
