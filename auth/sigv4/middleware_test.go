package sigv4

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

func newRequest(t *testing.T, body io.Reader) *smithyhttp.Request {
	t.Helper()
	r := smithyhttp.NewStackRequest().(*smithyhttp.Request)
	r.Method = http.MethodPut
	r.URL, _ = url.Parse("https://connect.us-west-2.amazonaws.com/queues/inst-1")
	if body != nil {
		var err error
		if r, err = r.SetStream(body); err != nil {
			t.Fatalf("expect no error, got %v", err)
		}
	}
	return r
}

var nopFinalize = middleware.FinalizeHandlerFunc(func(ctx context.Context, in middleware.FinalizeInput) (
	middleware.FinalizeOutput, middleware.Metadata, error,
) {
	return middleware.FinalizeOutput{Result: in.Request}, middleware.Metadata{}, nil
})

func TestSignHTTPRequestMiddleware(t *testing.T) {
	signingTime := time.Date(2024, 3, 7, 10, 15, 0, 0, time.UTC)

	cases := map[string]struct {
		Credentials   aws.CredentialsProvider
		Body          io.Reader
		ExpectSigned  bool
		ExpectPayload string
	}{
		"no credentials": {},
		"anonymous": {
			Credentials: aws.AnonymousCredentials{},
		},
		"empty body": {
			Credentials:   credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
			ExpectSigned:  true,
			ExpectPayload: emptyPayloadHash,
		},
		"seekable body": {
			Credentials:   credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
			Body:          bytes.NewReader([]byte(`{}`)),
			ExpectSigned:  true,
			ExpectPayload: "44136fa355b3678a1146ad16f7e8649e94fb4fc21fe77e8310c060f61caaff8a",
		},
		"unseekable body": {
			Credentials:   credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
			Body:          io.MultiReader(strings.NewReader(`{}`)),
			ExpectSigned:  true,
			ExpectPayload: unsignedPayload,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			m := NewSignHTTPRequestMiddleware(Options{
				Credentials: c.Credentials,
				Region:      "us-west-2",
				Now:         func() time.Time { return signingTime },
			})

			req := newRequest(t, c.Body)
			_, _, err := m.HandleFinalize(context.Background(),
				middleware.FinalizeInput{Request: req}, nopFinalize)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			auth := req.Header.Get("Authorization")
			if !c.ExpectSigned {
				if len(auth) != 0 {
					t.Errorf("expect unsigned request, got %v", auth)
				}
				return
			}

			expectPrefix := "AWS4-HMAC-SHA256 Credential=AKID/20240307/us-west-2/connect/aws4_request"
			if !strings.HasPrefix(auth, expectPrefix) {
				t.Errorf("expect %q prefix, got %q", expectPrefix, auth)
			}
			if e, a := "20240307T101500Z", req.Header.Get("X-Amz-Date"); e != a {
				t.Errorf("expect %v date, got %v", e, a)
			}
			if e, a := c.ExpectPayload, req.Header.Get("X-Amz-Content-Sha256"); e != a {
				t.Errorf("expect %v payload hash, got %v", e, a)
			}
		})
	}
}

func TestSignHTTPRequestMiddlewareRewindsBody(t *testing.T) {
	m := NewSignHTTPRequestMiddleware(Options{
		Credentials: credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		Region:      "eu-west-2",
	})

	req := newRequest(t, strings.NewReader(`{"Name":"BasicQueue"}`))
	_, _, err := m.HandleFinalize(context.Background(),
		middleware.FinalizeInput{Request: req}, nopFinalize)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	b, _ := io.ReadAll(req.GetStream())
	if e, a := `{"Name":"BasicQueue"}`, string(b); e != a {
		t.Errorf("expect body %v after signing, got %v", e, a)
	}
}
