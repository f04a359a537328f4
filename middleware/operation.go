package middleware

import "context"

type (
	serviceIDKey     struct{}
	operationNameKey struct{}
)

// WithServiceID adds a service ID to the context, scoped to middleware stack
// values.
func WithServiceID(ctx context.Context, id string) context.Context {
	return WithStackValue(ctx, serviceIDKey{}, id)
}

// GetServiceID retrieves the service ID from the context. This is scoped to
// middleware stack values.
func GetServiceID(ctx context.Context) (v string) {
	v, _ = GetStackValue(ctx, serviceIDKey{}).(string)
	return v
}

// WithOperationName adds the operation name to the context, scoped to
// middleware stack values.
func WithOperationName(ctx context.Context, name string) context.Context {
	return WithStackValue(ctx, operationNameKey{}, name)
}

// GetOperationName retrieves the operation name from the context. This is
// scoped to middleware stack values.
func GetOperationName(ctx context.Context) (v string) {
	v, _ = GetStackValue(ctx, operationNameKey{}).(string)
	return v
}

// RegisterServiceMetadata is an initialize middleware that sets the service
// ID and operation name on the context.
type RegisterServiceMetadata struct {
	ServiceID     string
	OperationName string
}

// ID returns the middleware identifier.
func (*RegisterServiceMetadata) ID() string {
	return "RegisterServiceMetadata"
}

// HandleInitialize sets the service metadata on the context before handing
// off to the next handler.
func (s *RegisterServiceMetadata) HandleInitialize(ctx context.Context, in InitializeInput, next InitializeHandler) (
	out InitializeOutput, metadata Metadata, err error,
) {
	if len(s.ServiceID) > 0 {
		ctx = WithServiceID(ctx, s.ServiceID)
	}
	if len(s.OperationName) > 0 {
		ctx = WithOperationName(ctx, s.OperationName)
	}
	return next.HandleInitialize(ctx, in)
}
