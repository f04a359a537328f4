package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
)

type trackedBody struct {
	io.Reader
	closed bool
}

func (b *trackedBody) Close() error {
	b.closed = true
	return nil
}

func newTrackedResponse(status int, body string) (*Response, *trackedBody) {
	tb := &trackedBody{Reader: strings.NewReader(body)}
	return &Response{Response: &http.Response{
		StatusCode: status,
		Header:     http.Header{RequestIDHeader: []string{"a1b2c3"}},
		Body:       tb,
	}}, tb
}

func TestCloseResponseBody(t *testing.T) {
	resp, body := newTrackedResponse(200, `{"Queue":{}}`)

	m := responseBodyCloser{}
	_, _, err := m.HandleDeserialize(context.Background(), middleware.DeserializeInput{},
		middleware.DeserializeHandlerFunc(func(ctx context.Context, in middleware.DeserializeInput) (
			middleware.DeserializeOutput, middleware.Metadata, error,
		) {
			return middleware.DeserializeOutput{RawResponse: resp}, middleware.Metadata{}, nil
		}))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if !body.closed {
		t.Errorf("expect response body to be closed")
	}
}

func TestErrorCloseResponseBody(t *testing.T) {
	resp, body := newTrackedResponse(404, `{"Message":"not found"}`)
	expectErr := errors.New("ResourceNotFoundException")

	m := responseBodyCloser{onError: true}
	_, _, err := m.HandleDeserialize(context.Background(), middleware.DeserializeInput{},
		middleware.DeserializeHandlerFunc(func(ctx context.Context, in middleware.DeserializeInput) (
			middleware.DeserializeOutput, middleware.Metadata, error,
		) {
			return middleware.DeserializeOutput{RawResponse: resp}, middleware.Metadata{}, expectErr
		}))
	if !errors.Is(err, expectErr) {
		t.Fatalf("expect %v, got %v", expectErr, err)
	}
	if !body.closed {
		t.Errorf("expect response body to be closed on error")
	}
}

func TestRequestIDRetriever(t *testing.T) {
	resp, _ := newTrackedResponse(200, `{}`)

	var m requestIDRetriever
	_, md, err := m.HandleDeserialize(context.Background(), middleware.DeserializeInput{},
		middleware.DeserializeHandlerFunc(func(ctx context.Context, in middleware.DeserializeInput) (
			middleware.DeserializeOutput, middleware.Metadata, error,
		) {
			return middleware.DeserializeOutput{RawResponse: resp}, middleware.Metadata{}, nil
		}))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	id, ok := GetRequestIDMetadata(md)
	if !ok {
		t.Fatalf("expect request ID to be recorded")
	}
	if e, a := "a1b2c3", id; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if GetRawResponse(md) != resp {
		t.Errorf("expect raw response to be recorded")
	}
	if e, a := "request-id=a1b2c3", ResponseSummary(resp); !strings.Contains(a, e) {
		t.Errorf("expect %q in %q", e, a)
	}
}
