package connect

import (
	"context"
	"fmt"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/internal/protocol/restjson"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

// operationDeserializer decodes the raw response into the operation output,
// or into the modeled error for non-2xx responses.
type operationDeserializer struct {
	protocol  *restjson.Protocol
	newOutput func() core.Deserializable
}

func (*operationDeserializer) ID() string {
	return id.OperationDeserializer
}

func (m *operationDeserializer) HandleDeserialize(ctx context.Context, in middleware.DeserializeInput, next middleware.DeserializeHandler) (
	out middleware.DeserializeOutput, metadata middleware.Metadata, err error,
) {
	out, metadata, err = next.HandleDeserialize(ctx, in)
	if err != nil {
		return out, metadata, err
	}

	response, ok := out.RawResponse.(*smithyhttp.Response)
	if !ok {
		return out, metadata, &core.DeserializationError{Err: fmt.Errorf("unknown transport type %T", out.RawResponse)}
	}

	output := m.newOutput()
	if err := m.protocol.DeserializeResponse(ctx, types.Errors, response, output); err != nil {
		if response.StatusCode < 200 || response.StatusCode >= 300 {
			err = &smithyhttp.ResponseError{Response: response, Err: err}
		}
		return out, metadata, err
	}
	out.Result = output

	return out, metadata, nil
}
