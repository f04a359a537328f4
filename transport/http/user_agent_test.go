package http

import (
	"context"
	"testing"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
)

func TestUserAgentMiddleware(t *testing.T) {
	cases := map[string]struct {
		AppID    string
		Existing string
		Expect   string
	}{
		"sdk only": {
			Expect: "aws-sdk-connect-go/0.4.0 api/connect#0.4.0",
		},
		"app id": {
			AppID:  "connectctl",
			Expect: "aws-sdk-connect-go/0.4.0 api/connect#0.4.0 app#connectctl",
		},
		"app id sanitized": {
			AppID:  "contact center (eu)",
			Expect: "aws-sdk-connect-go/0.4.0 api/connect#0.4.0 app#contact-center--eu-",
		},
		"caller agent kept first": {
			Existing: "my-agent/1.0",
			AppID:    "ops+tools",
			Expect:   "my-agent/1.0 aws-sdk-connect-go/0.4.0 api/connect#0.4.0 app#ops+tools",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			stack := middleware.NewStack("DescribeInstance", NewStackRequest)
			if err := AddUserAgentMiddleware(stack, "aws-sdk-connect-go", "0.4.0", c.AppID); err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			req := NewStackRequest().(*Request)
			if len(c.Existing) != 0 {
				req.Header.Set("User-Agent", c.Existing)
			}

			var actual string
			err := stack.Build.Add(middleware.BuildMiddlewareFunc("capture", func(
				ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler,
			) (middleware.BuildOutput, middleware.Metadata, error) {
				actual = in.Request.(*Request).Header.Get("User-Agent")
				return middleware.BuildOutput{}, middleware.Metadata{}, nil
			}), middleware.After)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			_, _, err = stack.Build.HandleMiddleware(context.Background(), req, nopHandler{})
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Expect, actual; e != a {
				t.Errorf("expect %q, got %q", e, a)
			}
		})
	}
}

type nopHandler struct{}

func (nopHandler) Handle(ctx context.Context, in interface{}) (interface{}, middleware.Metadata, error) {
	return nil, middleware.Metadata{}, nil
}
