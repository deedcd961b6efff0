// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthHandler signs shoppers and admins in and out and edits the account.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		cookieName:   params.Config.Session.CookieName,
		cookieSecure: params.Config.Session.CookieSecure,
	}
}

// signInResponse is what a successful sign-in returns. The token is also set
// as the session cookie; it is returned for non-browser clients.
type signInResponse struct {
	User      entity.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Register handles shopper sign-up.
func (h *AuthHandler) Register(c echo.Context) error {
	var req entity.Registration
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.authUC.Register(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.signedIn(c, http.StatusCreated, output)
}

// Login handles shopper sign-in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req entity.Credentials
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.signedIn(c, http.StatusOK, output)
}

// AdminLogin handles back-office sign-in.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req entity.Credentials
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.authUC.AdminLogin(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.signedIn(c, http.StatusOK, output)
}

func (h *AuthHandler) signedIn(c echo.Context, status int, output *usecase.SignInOutput) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    output.Token,
		Path:     "/",
		Expires:  output.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, status, signInResponse{
		User:      output.Session.User,
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// Logout ends the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.Logout(c.Request().Context(), session); err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session.User)
}

// UpdateProfile edits the signed-in user's profile.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req entity.ProfileFields
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), session, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ChangePassword rotates the signed-in user's password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req entity.PasswordChange
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), session, req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated"})
}
