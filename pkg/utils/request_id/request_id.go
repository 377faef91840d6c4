package request_id

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is honored when a proxy in front of the server already assigned an ID.
const Header = "X-Request-ID"

type ctxRequestIDKey struct{}

func With(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, requestID)
}

func FromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ctxRequestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// FromRequest reuses the inbound header or generates a new ID.
func FromRequest(r *http.Request) string {
	if id := r.Header.Get(Header); id != "" {
		return id
	}
	return uuid.New().String()
}
