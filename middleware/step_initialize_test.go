package middleware

import (
	"context"
	"testing"
)

type mockInitializeMiddleware string

func (m mockInitializeMiddleware) ID() string { return string(m) }

func (m mockInitializeMiddleware) HandleInitialize(ctx context.Context, in InitializeInput, next InitializeHandler) (
	out InitializeOutput, metadata Metadata, err error,
) {
	return next.HandleInitialize(recordID(ctx, string(m)), in)
}

func TestInitializeStepOrder(t *testing.T) {
	step := NewInitializeStep()

	noError(t, step.Add(mockInitializeMiddleware("second"), After))
	noError(t, step.Add(mockInitializeMiddleware("first"), Before))
	noError(t, step.Insert(mockInitializeMiddleware("third"), "second", After))

	if err := step.Add(mockInitializeMiddleware("second"), After); err == nil {
		t.Errorf("expect error adding duplicate middleware")
	}

	expectIDList(t, []string{"first", "second", "third"}, step.List())

	var invoked []string
	h := HandlerFunc(func(ctx context.Context, input interface{}) (interface{}, Metadata, error) {
		invoked = recordedIDs(ctx)
		return input.(string) + " result", Metadata{}, nil
	})

	out, _, err := step.HandleMiddleware(context.Background(), "queue", h)
	noError(t, err)

	if e, a := "queue result", out; e != a {
		t.Errorf("expect %v output, got %v", e, a)
	}
	expectIDList(t, []string{"first", "second", "third"}, invoked)
}

func TestInitializeStepGetSwapRemove(t *testing.T) {
	step := NewInitializeStep()

	noError(t, step.Add(mockInitializeMiddleware("validate"), After))
	noError(t, step.Add(mockInitializeMiddleware("idempotency"), Before))

	m, ok := step.Get("validate")
	if !ok {
		t.Fatalf("expect middleware to be found")
	}
	if e, a := "validate", m.ID(); e != a {
		t.Errorf("expect %v middleware, got %v", e, a)
	}

	removed, err := step.Swap("validate", mockInitializeMiddleware("strict-validate"))
	noError(t, err)
	if e, a := "validate", removed.ID(); e != a {
		t.Errorf("expect %v swapped out, got %v", e, a)
	}
	expectIDList(t, []string{"idempotency", "strict-validate"}, step.List())

	noError(t, step.Remove("idempotency"))
	if err := step.Remove("idempotency"); err == nil {
		t.Errorf("expect error removing missing middleware")
	}
	expectIDList(t, []string{"strict-validate"}, step.List())

	step.Clear()
	if e, a := 0, len(step.List()); e != a {
		t.Errorf("expect %v middleware, got %v", e, a)
	}
}

func TestInitializeMiddlewareFunc(t *testing.T) {
	step := NewInitializeStep()

	noError(t, step.Add(InitializeMiddlewareFunc("defaults", func(
		ctx context.Context, in InitializeInput, next InitializeHandler,
	) (InitializeOutput, Metadata, error) {
		in.Parameters = "defaulted"
		out, md, err := next.HandleInitialize(ctx, in)
		md.Set("seen", true)
		return out, md, err
	}), After))

	h := HandlerFunc(func(ctx context.Context, input interface{}) (interface{}, Metadata, error) {
		return input, Metadata{}, nil
	})

	out, md, err := step.HandleMiddleware(context.Background(), "raw", h)
	noError(t, err)
	if e, a := "defaulted", out; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if !md.Has("seen") {
		t.Errorf("expect metadata to carry value set by middleware")
	}
}
