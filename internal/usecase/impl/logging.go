package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

// log returns a request-scoped logger if available, otherwise falls back to fallback.
func log(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// degradeRead decides how a failed read reaches the caller. An expired
// session is returned so the client is sent to sign in; anything else is
// logged and swallowed, and the caller serves what it already has.
func degradeRead(ctx context.Context, fallback *slog.Logger, what string, err error) error {
	if errors.Is(err, domainerrors.ErrSessionExpired) {
		return err
	}
	log(ctx, fallback).Warn("Read failed, serving cached state",
		slog.String("read", what),
		slog.Any("error", err),
	)

	return nil
}
