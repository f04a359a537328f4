package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
)

func newConnectRequest(t *testing.T, host string) *Request {
	t.Helper()
	req := NewStackRequest().(*Request)
	req.Method = http.MethodGet
	req.URL.Scheme = "https"
	req.URL.Host = host
	req.URL.Path = "/instance/inst-1"
	return req
}

func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestClientHandler(t *testing.T) {
	cases := map[string]struct {
		ctx        context.Context
		host       string
		client     ClientDo
		expectSent bool
		expectErr  func(*testing.T, error)
	}{
		"describe instance": {
			host:       "connect.us-west-2.amazonaws.com",
			client:     NopClient{},
			expectSent: true,
		},
		"transport failure": {
			host: "connect.us-west-2.amazonaws.com",
			client: ClientDoFunc(func(*http.Request) (*http.Response, error) {
				return nil, fmt.Errorf("connection reset by peer")
			}),
			expectSent: true,
			expectErr: func(t *testing.T, err error) {
				var sendErr *RequestSendError
				if !errors.As(err, &sendErr) {
					t.Fatalf("expect %T, got %v", sendErr, err)
				}
				if !sendErr.ConnectionError() {
					t.Errorf("expect connection error")
				}
				var canceled *core.CanceledError
				if errors.As(err, &canceled) {
					t.Errorf("expect no %T, got %v", canceled, err)
				}
			},
		},
		"caller canceled": {
			ctx:  canceledContext(),
			host: "connect.us-west-2.amazonaws.com",
			client: ClientDoFunc(func(r *http.Request) (*http.Response, error) {
				return nil, r.Context().Err()
			}),
			expectSent: true,
			expectErr: func(t *testing.T, err error) {
				var canceled *core.CanceledError
				if !errors.As(err, &canceled) {
					t.Fatalf("expect %T, got %v", canceled, err)
				}
				if !errors.Is(canceled.Err, context.Canceled) {
					t.Errorf("expect context.Canceled, got %v", canceled.Err)
				}
			},
		},
		"deadline passed while waiting": {
			ctx: func() context.Context {
				ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
				t.Cleanup(cancel)
				return ctx
			}(),
			host: "connect.us-west-2.amazonaws.com",
			client: ClientDoFunc(func(r *http.Request) (*http.Response, error) {
				<-r.Context().Done()
				return nil, r.Context().Err()
			}),
			expectSent: true,
			expectErr: func(t *testing.T, err error) {
				var canceled *core.CanceledError
				if !errors.As(err, &canceled) {
					t.Fatalf("expect %T, got %v", canceled, err)
				}
				if !errors.Is(canceled.Err, context.DeadlineExceeded) {
					t.Errorf("expect context.DeadlineExceeded, got %v", canceled.Err)
				}
			},
		},
		"invalid endpoint host": {
			host:   "connect_us-west-2.amazonaws.com",
			client: NopClient{},
			expectErr: func(t *testing.T, err error) {
				var sendErr *RequestSendError
				if errors.As(err, &sendErr) {
					t.Errorf("expect host validation error, got %v", err)
				}
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := c.ctx
			if ctx == nil {
				ctx = context.Background()
			}

			var sent bool
			client := ClientDoFunc(func(r *http.Request) (*http.Response, error) {
				sent = true
				return c.client.Do(r)
			})

			out, _, err := NewClientHandler(client).Handle(ctx, newConnectRequest(t, c.host))
			if e, a := c.expectSent, sent; e != a {
				t.Errorf("expect sent %v, got %v", e, a)
			}
			if c.expectErr != nil {
				if err == nil {
					t.Fatalf("expect error, got none")
				}
				c.expectErr(t, err)
				return
			}
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			resp, ok := out.(*Response)
			if !ok {
				t.Fatalf("expect *Response, got %T", out)
			}
			if e, a := 200, resp.StatusCode; e != a {
				t.Errorf("expect status %v, got %v", e, a)
			}
		})
	}
}

func TestClientHandlerRejectsInput(t *testing.T) {
	_, _, err := NewClientHandler(NopClient{}).Handle(context.Background(), &http.Request{})
	if err == nil {
		t.Fatalf("expect error for non stack request input")
	}
}
