// Package context carries request-scoped values between the echo pipeline
// and the use cases.
package context

import (
	"context"
	"log/slog"

	"nutriledger/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeySession   ContextKey = "session"
	KeyRoles     ContextKey = "roles"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on c, or a fresh UUID when the
// request-id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx
// has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetSession stores the authenticated session and its token roles on c.
func SetSession(c echo.Context, session *entity.Session, roles entity.Roles) {
	c.Set(string(KeySession), session)
	c.Set(string(KeyRoles), roles)
}

// GetSession returns the session placed by the auth middleware.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}

// GetRoles returns the roles carried by the caller's access token.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(string(KeyRoles)).(entity.Roles)

	return roles
}
