package middleware

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockRequest struct {
	Path    string
	Headers []string
}

func TestStackHandleMiddleware(t *testing.T) {
	stack := NewStack("DescribeQueue stack", func() interface{} {
		return &mockRequest{}
	})

	noError(t, stack.Initialize.Add(&RegisterServiceMetadata{
		ServiceID:     "Connect",
		OperationName: "DescribeQueue",
	}, Before))
	noError(t, stack.Serialize.Add(SerializeMiddlewareFunc("serialize", func(
		ctx context.Context, in SerializeInput, next SerializeHandler,
	) (SerializeOutput, Metadata, error) {
		req := in.Request.(*mockRequest)
		req.Path = "/queues/" + in.Parameters.(string)
		return next.HandleSerialize(ctx, in)
	}), After))
	noError(t, stack.Build.Add(BuildMiddlewareFunc("user-agent", func(
		ctx context.Context, in BuildInput, next BuildHandler,
	) (BuildOutput, Metadata, error) {
		req := in.Request.(*mockRequest)
		req.Headers = append(req.Headers, "User-Agent")
		return next.HandleBuild(ctx, in)
	}), After))
	noError(t, stack.Finalize.Add(FinalizeMiddlewareFunc("signing", func(
		ctx context.Context, in FinalizeInput, next FinalizeHandler,
	) (FinalizeOutput, Metadata, error) {
		req := in.Request.(*mockRequest)
		req.Headers = append(req.Headers, "Authorization")
		return next.HandleFinalize(ctx, in)
	}), After))
	noError(t, stack.Deserialize.Add(DeserializeMiddlewareFunc("deserialize", func(
		ctx context.Context, in DeserializeInput, next DeserializeHandler,
	) (DeserializeOutput, Metadata, error) {
		out, md, err := next.HandleDeserialize(ctx, in)
		if err != nil {
			return out, md, err
		}
		out.Result = "decoded " + out.RawResponse.(string)
		md.Set("operation", GetOperationName(ctx))
		return out, md, nil
	}), After))

	var sent *mockRequest
	h := HandlerFunc(func(ctx context.Context, input interface{}) (interface{}, Metadata, error) {
		sent = input.(*mockRequest)
		if e, a := "Connect", GetServiceID(ctx); e != a {
			t.Errorf("expect %v service ID, got %v", e, a)
		}
		return "response", Metadata{}, nil
	})

	out, md, err := stack.HandleMiddleware(context.Background(), "inst-1/q-1", h)
	noError(t, err)

	if e, a := "decoded response", out; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "DescribeQueue", md.Get("operation"); e != a {
		t.Errorf("expect %v operation metadata, got %v", e, a)
	}
	if e, a := "/queues/inst-1/q-1", sent.Path; e != a {
		t.Errorf("expect %v path, got %v", e, a)
	}
	expectIDList(t, []string{"User-Agent", "Authorization"}, sent.Headers)
}

func TestStackHandlerError(t *testing.T) {
	stack := NewStack("error stack", func() interface{} { return &mockRequest{} })

	expectErr := errors.New("connection reset")
	h := HandlerFunc(func(ctx context.Context, input interface{}) (interface{}, Metadata, error) {
		return nil, Metadata{}, expectErr
	})

	_, _, err := stack.HandleMiddleware(context.Background(), struct{}{}, h)
	if !errors.Is(err, expectErr) {
		t.Errorf("expect %v error, got %v", expectErr, err)
	}
}

func TestStackList(t *testing.T) {
	stack := NewStack("list stack", func() interface{} { return &mockRequest{} })
	noError(t, stack.Initialize.Add(mockInitializeMiddleware("validate"), After))
	noError(t, stack.Build.Add(BuildMiddlewareFunc("content-length", func(
		ctx context.Context, in BuildInput, next BuildHandler,
	) (BuildOutput, Metadata, error) {
		return next.HandleBuild(ctx, in)
	}), After))

	expectIDList(t, []string{
		"list stack",
		"Initialize stack step", "validate",
		"Serialize stack step",
		"Build stack step", "content-length",
		"Finalize stack step",
		"Deserialize stack step",
	}, stack.List())

	str := stack.String()
	if !strings.HasPrefix(str, "list stack\n\tInitialize stack step\n\t\tvalidate\n") {
		t.Errorf("unexpected stack string\n%s", str)
	}
}

func TestMetadata(t *testing.T) {
	var md Metadata
	if md.Has("key") {
		t.Errorf("expect zero metadata to have no keys")
	}
	md.Set("key", "value")

	clone := md.Clone()
	clone.Set("key", "other")

	if e, a := "value", md.Get("key"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "other", clone.Get("key"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestStackValues(t *testing.T) {
	ctx := WithOperationName(context.Background(), "ListQueues")
	ctx = WithServiceID(ctx, "Connect")

	if e, a := "ListQueues", GetOperationName(ctx); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	ctx = ClearStackValues(ctx)
	if v := GetOperationName(ctx); len(v) != 0 {
		t.Errorf("expect cleared operation name, got %v", v)
	}
}
