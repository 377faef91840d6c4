package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/utils/clock"
)

// JWTAuthenticator verifies HS256 tokens issued with a shared secret. The
// identity is taken from the "sub" and "name" claims.
type JWTAuthenticator struct {
	secret   []byte
	audience string
}

var _ interfaces.Authenticator = &JWTAuthenticator{}

type JWTOption func(*JWTAuthenticator)

// WithAudience requires the "aud" claim to contain audience.
func WithAudience(audience string) JWTOption {
	return func(x *JWTAuthenticator) {
		x.audience = audience
	}
}

func NewJWTAuthenticator(secret []byte, opts ...JWTOption) (*JWTAuthenticator, error) {
	if len(secret) == 0 {
		return nil, goerr.New("JWT secret is empty")
	}
	x := &JWTAuthenticator{secret: secret}
	for _, opt := range opts {
		opt(x)
	}
	return x, nil
}

func (x *JWTAuthenticator) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return nil, goerr.New("token is empty", goerr.T(errs.TagUnauthorized))
	}

	parseOpts := []jwt.ParseOption{
		jwt.WithKey(jwa.HS256, x.secret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(func() time.Time { return clock.Now(ctx) })),
	}
	if x.audience != "" {
		parseOpts = append(parseOpts, jwt.WithAudience(x.audience))
	}

	parsed, err := jwt.Parse([]byte(token), parseOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify token", goerr.T(errs.TagUnauthorized))
	}

	identity := &auth.Identity{ID: parsed.Subject()}
	if name, ok := parsed.Get("name"); ok {
		if s, ok := name.(string); ok {
			identity.Name = s
		}
	}
	if err := identity.Validate(); err != nil {
		return nil, goerr.Wrap(err, "sub claim not found in token", goerr.T(errs.TagUnauthorized))
	}

	return identity, nil
}

// NoAuthenticator accepts any token as the anonymous user. It is meant for
// local development only.
type NoAuthenticator struct{}

var _ interfaces.Authenticator = NoAuthenticator{}

func (NoAuthenticator) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	identity := auth.Anonymous
	return &identity, nil
}
