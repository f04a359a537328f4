// Package sigv4 signs outgoing requests with AWS Signature Version 4.
package sigv4

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/aws-amplify/aws-sdk-connect-go/logging"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
	"github.com/aws-amplify/aws-sdk-connect-go/middleware/id"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

// SigningName is the service name requests are scoped to.
const SigningName = "connect"

// emptyPayloadHash is the hex SHA-256 of an empty body.
const emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// unsignedPayload is sent when the body cannot be read twice.
const unsignedPayload = "UNSIGNED-PAYLOAD"

// HTTPSigner signs a standard library request in place.
type HTTPSigner interface {
	SignHTTP(ctx context.Context, credentials aws.Credentials, r *http.Request, payloadHash string,
		service string, region string, signingTime time.Time, optFns ...func(*v4.SignerOptions)) error
}

// Options configures the signing middleware.
type Options struct {
	// Credentials are retrieved on every attempt. A nil provider, or
	// anonymous credentials, leave the request unsigned.
	Credentials aws.CredentialsProvider

	// Region the request is scoped to.
	Region string

	// Signer defaults to the aws-sdk-go-v2 v4 signer.
	Signer HTTPSigner

	// Now defaults to time.Now.
	Now func() time.Time
}

// SignHTTPRequestMiddleware provides the Finalize middleware step for signing
// a request message with SigV4.
type SignHTTPRequestMiddleware struct {
	options Options
}

// AddSignHTTPRequestMiddleware helper adds the SignHTTPRequestMiddleware to
// the middleware Stack in the Finalize step with the options provided.
func AddSignHTTPRequestMiddleware(s *middleware.Stack, o Options) error {
	return s.Finalize.Add(NewSignHTTPRequestMiddleware(o), middleware.After)
}

// NewSignHTTPRequestMiddleware returns an initialized
// SignHTTPRequestMiddleware.
func NewSignHTTPRequestMiddleware(o Options) *SignHTTPRequestMiddleware {
	if o.Signer == nil {
		o.Signer = v4.NewSigner()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return &SignHTTPRequestMiddleware{options: o}
}

// ID returns the middleware identifier
func (m *SignHTTPRequestMiddleware) ID() string {
	return id.Signing
}

// HandleFinalize retrieves credentials and signs the request before handing
// off to the next handler.
func (m *SignHTTPRequestMiddleware) HandleFinalize(
	ctx context.Context, in middleware.FinalizeInput, next middleware.FinalizeHandler,
) (
	out middleware.FinalizeOutput, metadata middleware.Metadata, err error,
) {
	if isAnonymous(m.options.Credentials) {
		middleware.GetLogger(ctx).Logf(logging.Debug, "anonymous credentials, request not signed")
		return next.HandleFinalize(ctx, in)
	}

	req, ok := in.Request.(*smithyhttp.Request)
	if !ok {
		return out, metadata, fmt.Errorf("unexpected request middleware type %T", in.Request)
	}

	creds, err := m.options.Credentials.Retrieve(ctx)
	if err != nil {
		return out, metadata, fmt.Errorf("failed to retrieve credentials: %w", err)
	}
	if !creds.HasKeys() {
		return out, metadata, fmt.Errorf("credentials have no access key or secret")
	}

	payloadHash, err := computePayloadHash(req)
	if err != nil {
		return out, metadata, err
	}
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)

	err = m.options.Signer.SignHTTP(ctx, creds, req.Request, payloadHash,
		SigningName, m.options.Region, m.options.Now().UTC())
	if err != nil {
		return out, metadata, fmt.Errorf("failed to sign http request, %w", err)
	}

	return next.HandleFinalize(ctx, in)
}

func isAnonymous(p aws.CredentialsProvider) bool {
	if p == nil {
		return true
	}
	switch v := p.(type) {
	case aws.AnonymousCredentials:
		return true
	case *aws.CredentialsCache:
		return v.IsCredentialsProvider(aws.AnonymousCredentials{})
	}
	return false
}

func computePayloadHash(req *smithyhttp.Request) (string, error) {
	stream := req.GetStream()
	if stream == nil {
		return emptyPayloadHash, nil
	}
	if !req.IsStreamSeekable() {
		return unsignedPayload, nil
	}

	h := sha256.New()
	if _, err := io.Copy(h, stream); err != nil {
		return "", fmt.Errorf("failed to compute payload sha256 checksum, %w", err)
	}
	if err := req.RewindStream(); err != nil {
		return "", fmt.Errorf("failed to rewind request stream, %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
