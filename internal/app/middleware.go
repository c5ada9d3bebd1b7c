package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ecopoints/movie-booking/api"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// logRequest attaches a request scoped logger to the context.
func (app *Application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.URL.RequestURI(),
		)

		if spanCtx := trace.SpanContextFromContext(r.Context()); spanCtx.IsValid() {
			logger = logger.With("trace_id", spanCtx.TraceID().String())
		}

		next.ServeHTTP(w, r.WithContext(contextSetLogger(r.Context(), logger)))
	})
}

// requireBearerAuth authenticates the operations that declare the BearerAuth
// security scheme and passes the public ones through.
func (app *Application) requireBearerAuth(next http.Handler) http.Handler {
	authenticated := app.requireAuthentication(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, secured := r.Context().Value(api.BearerAuthScopes).([]string); !secured {
			next.ServeHTTP(w, r)
			return
		}

		authenticated.ServeHTTP(w, r)
	})
}

// requireAuthentication accepts HS256 bearer tokens whose subject is the user id.
func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		userID, err := app.authenticate(r.Header.Get("Authorization"))
		if err != nil {
			app.contextGetLogger(r).Warn("rejected unauthenticated request", "error", err)
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := contextSetUserID(r.Context(), userID)
		ctx = contextSetLogger(ctx, app.contextGetLogger(r).With("user_id", userID.String()))

		app.bindSessionToUser(ctx, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *Application) authenticate(header string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing bearer token")
	}

	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(app.config.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	return userID, nil
}
