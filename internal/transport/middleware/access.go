package middleware

import (
	"context"

	"github.com/google/uuid"
)

// accessEntry collects what inner middleware learn about a request so the
// outer Logger can report it after the handler returns. Context values set
// further down the chain are not visible to Logger otherwise.
type accessEntry struct {
	userID uuid.UUID
	role   string
	authed bool
}

type accessEntryKey struct{}

func withAccessEntry(ctx context.Context) (context.Context, *accessEntry) {
	e := &accessEntry{}
	return context.WithValue(ctx, accessEntryKey{}, e), e
}

// noteCaller records the authenticated caller on the request's access entry,
// if Logger installed one.
func noteCaller(ctx context.Context, userID uuid.UUID, role string) {
	if e, ok := ctx.Value(accessEntryKey{}).(*accessEntry); ok {
		e.userID, e.role, e.authed = userID, role, true
	}
}
