package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "vendorhub/internal/delivery/context"
	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	principalKey = "principal"
	bearerScheme = "Bearer "
)

// AuthMiddleware provides middleware for bearer authentication and authorization.
type AuthMiddleware struct {
	sessions usecase.SessionIssuer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionIssuer) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate validates the bearer access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrMissingCredentials
		}

		req := c.Request()
		principal, err := m.sessions.Authenticate(req.Context(), token)
		if err != nil {
			return err
		}

		c.Set(principalKey, *principal)

		// Enrich the request logger so downstream log lines name the caller.
		ctx := req.Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			logger = logger.With(
				slog.String("account_type", string(principal.AccountType)),
				slog.String("account_id", principal.AccountID.String()),
			)
			c.SetRequest(req.WithContext(deliverycontext.WithLogger(ctx, logger)))
		}

		return next(c)
	}
}

// RequireAccountType rejects principals of any other account type.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAccountType(accountType entity.AccountType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return domainerrors.ErrMissingCredentials
			}
			if principal.AccountType != accountType {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the caller set by Authenticate.
func GetPrincipal(c echo.Context) (usecase.Principal, bool) {
	principal, ok := c.Get(principalKey).(usecase.Principal)

	return principal, ok
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerScheme) || !strings.EqualFold(header[:len(bearerScheme)], bearerScheme) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerScheme):])

	return token, token != ""
}
