package door

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/doorkit/pkg/logger"
)

type idKey struct{}

// ContextWithID returns a copy of ctx carrying a door ID.
func ContextWithID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// IDFromContext returns the door ID stored in ctx, if any.
func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	id, ok := ctx.Value(idKey{}).(uuid.UUID)
	return id, ok
}

// LogExtractor returns a logger.ContextExtractor adding the door_id attribute.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return logger.DoorID(id), true
		}
		return slog.Attr{}, false
	}
}
