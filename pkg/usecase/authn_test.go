package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/rollcall/pkg/domain/model/auth"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
	"github.com/secmon-lab/rollcall/pkg/usecase"
	"github.com/secmon-lab/rollcall/pkg/utils/test"
)

var testSecret = []byte("test-secret-with-enough-length")

func signToken(t *testing.T, secret []byte, build func(b *jwt.Builder) *jwt.Builder) string {
	t.Helper()
	b := jwt.NewBuilder().
		IssuedAt(testNow).
		Expiration(testNow.Add(time.Hour))
	tok, err := build(b).Build()
	gt.NoError(t, err).Required()

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, secret))
	gt.NoError(t, err).Required()
	return string(signed)
}

func TestJWTAuthenticator(t *testing.T) {
	ctx := test.Context(t, testNow)
	authn, err := usecase.NewJWTAuthenticator(testSecret)
	gt.NoError(t, err).Required()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, func(b *jwt.Builder) *jwt.Builder {
			return b.Subject("u-1").Claim("name", "Frau Berg")
		})
		identity, err := authn.Verify(ctx, token)
		gt.NoError(t, err).Required()
		gt.Equal(t, identity.ID, "u-1")
		gt.Equal(t, identity.Name, "Frau Berg")
	})

	t.Run("bearer prefix", func(t *testing.T) {
		token := signToken(t, testSecret, func(b *jwt.Builder) *jwt.Builder {
			return b.Subject("u-2")
		})
		identity, err := authn.Verify(ctx, "Bearer "+token)
		gt.NoError(t, err).Required()
		gt.Equal(t, identity.ID, "u-2")
		gt.Equal(t, identity.DisplayName(), "u-2")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, []byte("another-secret-value"), func(b *jwt.Builder) *jwt.Builder {
			return b.Subject("u-1")
		})
		_, err := authn.Verify(ctx, token)
		gt.Equal(t, errs.ReasonOf(err), types.ReasonUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		token := signToken(t, testSecret, func(b *jwt.Builder) *jwt.Builder {
			return b.Subject("u-1").Expiration(testNow.Add(-time.Minute))
		})
		_, err := authn.Verify(ctx, token)
		gt.Equal(t, errs.ReasonOf(err), types.ReasonUnauthorized)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := signToken(t, testSecret, func(b *jwt.Builder) *jwt.Builder {
			return b.Claim("name", "Frau Berg")
		})
		_, err := authn.Verify(ctx, token)
		gt.Equal(t, errs.ReasonOf(err), types.ReasonUnauthorized)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := authn.Verify(ctx, "")
		gt.Equal(t, errs.ReasonOf(err), types.ReasonUnauthorized)
	})
}

func TestJWTAuthenticatorAudience(t *testing.T) {
	ctx := test.Context(t, testNow)
	authn, err := usecase.NewJWTAuthenticator(testSecret, usecase.WithAudience("rollcall"))
	gt.NoError(t, err).Required()

	ok := signToken(t, testSecret, func(b *jwt.Builder) *jwt.Builder {
		return b.Subject("u-1").Audience([]string{"rollcall"})
	})
	_, err = authn.Verify(ctx, ok)
	gt.NoError(t, err)

	other := signToken(t, testSecret, func(b *jwt.Builder) *jwt.Builder {
		return b.Subject("u-1").Audience([]string{"other"})
	})
	_, err = authn.Verify(ctx, other)
	gt.Error(t, err)
}

func TestNewJWTAuthenticatorEmptySecret(t *testing.T) {
	_, err := usecase.NewJWTAuthenticator(nil)
	gt.Error(t, err)
}

func TestNoAuthenticator(t *testing.T) {
	identity, err := usecase.NoAuthenticator{}.Verify(context.Background(), "anything")
	gt.NoError(t, err).Required()
	gt.Equal(t, *identity, auth.Anonymous)

	// callers get their own copy
	identity.Name = "changed"
	gt.Equal(t, auth.Anonymous.Name, "Anonymous")
}
