package middleware

import (
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthMiddleware resolves the session cookie (or bearer token) to a session.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     params.AuthUC,
		cookieName: params.Config.Session.CookieName,
	}
}

// Token returns the session token of the request: the session cookie first,
// then an `Authorization: Bearer` header.
func (m *AuthMiddleware) Token(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// Authenticate rejects requests without a live session and stores the
// session on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.authUC.Authenticate(c.Request().Context(), m.Token(c))
		if err != nil {
			return response.HandleAppError(c, err)
		}
		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return response.AppError(c, domainerrors.ErrUnauthorized)
			}
			if session.User.Role != role {
				return response.AppError(c, domainerrors.ErrForbidden.WithDetails("requires the "+role.String()+" role"))
			}

			return next(c)
		}
	}
}

// MustSession returns the session stored by Authenticate. Handlers behind
// Authenticate can rely on it being present.
func MustSession(c echo.Context) (*entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return session, nil
}
