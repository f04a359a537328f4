package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws-amplify/aws-sdk-connect-go/middleware"
)

const userAgentHeader = "User-Agent"

// UserAgent is a build middleware that sets the User-Agent header. Any agent
// the caller already set on the request is kept in front.
type UserAgent struct {
	value string
}

// AddUserAgentMiddleware adds the user agent middleware to the Build step.
// The agent names the SDK and its version, the Connect API version, and the
// application ID when one is configured.
func AddUserAgentMiddleware(stack *middleware.Stack, sdkName, version, appID string) error {
	parts := []string{
		sdkName + "/" + version,
		"api/connect#" + sanitizeAgentValue(version),
	}
	if len(appID) != 0 {
		parts = append(parts, "app#"+sanitizeAgentValue(appID))
	}
	return stack.Build.Add(&UserAgent{value: strings.Join(parts, " ")}, middleware.After)
}

// sanitizeAgentValue replaces runes that are not RFC 7230 token characters.
func sanitizeAgentValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			return r
		case strings.ContainsRune("!#$%&'*+-.^_`|~", r):
			return r
		}
		return '-'
	}, v)
}

// ID returns the middleware identifier.
func (*UserAgent) ID() string { return "UserAgent" }

// HandleBuild sets the User-Agent header.
func (u *UserAgent) HandleBuild(ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler) (
	out middleware.BuildOutput, metadata middleware.Metadata, err error,
) {
	req, ok := in.Request.(*Request)
	if !ok {
		return out, metadata, fmt.Errorf("unknown transport type %T", in.Request)
	}

	ua := u.value
	if existing := req.Header.Get(userAgentHeader); len(existing) != 0 {
		ua = existing + " " + ua
	}
	req.Header.Set(userAgentHeader, ua)

	return next.HandleBuild(ctx, in)
}
