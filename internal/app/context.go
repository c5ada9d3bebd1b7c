package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	userIDContextKey = contextKey("userID")
	loggerContextKey = contextKey("logger")
)

func contextSetUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func (app *Application) contextGetUserID(r *http.Request) uuid.UUID {
	userID, ok := r.Context().Value(userIDContextKey).(uuid.UUID)
	if !ok {
		panic("missing user id from context")
	}

	return userID
}

func contextSetLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	return app.loggerFrom(r.Context())
}

func (app *Application) loggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}

	return app.logger
}
