package middleware

import (
	"log/slog"
	"strings"

	"nutriledger/internal/delivery/api/response"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware turns a bearer access token into a per-request session.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	users    usecase.UserUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, users usecase.UserUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, users: users, logger: logger}
}

// Authenticate validates the JWT and loads the caller's user row into a fresh
// session. Accounts that lost approval after the token was issued are refused.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		session, err := m.users.OpenSession(c.Request().Context(), claims.UserID)
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, session, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.GetRoles(c).Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
