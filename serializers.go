package connect

import (
	"context"
	"fmt"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/internal/protocol/restjson"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

// operationSerializer binds the operation input onto the HTTP request. op
// supplies the method, URI template and member bindings.
type operationSerializer struct {
	op       *core.Schema
	protocol *restjson.Protocol
}

func (*operationSerializer) ID() string {
	return id.OperationSerializer
}

func (m *operationSerializer) HandleSerialize(ctx context.Context, in middleware.SerializeInput, next middleware.SerializeHandler) (
	out middleware.SerializeOutput, metadata middleware.Metadata, err error,
) {
	request, ok := in.Request.(*smithyhttp.Request)
	if !ok {
		return out, metadata, &core.SerializationError{Err: fmt.Errorf("unknown transport type %T", in.Request)}
	}

	input, ok := in.Parameters.(core.Serializable)
	if !ok {
		return out, metadata, &core.SerializationError{Err: fmt.Errorf("unknown input parameters type %T", in.Parameters)}
	}

	if err := m.protocol.SerializeRequest(ctx, m.op, input, request); err != nil {
		return out, metadata, &core.SerializationError{Err: err}
	}
	in.Request = request

	return next.HandleSerialize(ctx, in)
}
