package backend

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

type authAPI struct {
	client *Client
}

// NewAuthAPI exposes the account routes of the backend.
func NewAuthAPI(client *Client) service.AuthAPI {
	return &authAPI{client: client}
}

type authResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

func (a *authAPI) Register(ctx context.Context, reg entity.Registration) (*service.AuthResult, error) {
	return a.signIn(ctx, "/signup", reg)
}

func (a *authAPI) Login(ctx context.Context, creds entity.Credentials) (*service.AuthResult, error) {
	return a.signIn(ctx, "/user/login", creds)
}

func (a *authAPI) AdminLogin(ctx context.Context, creds entity.Credentials) (*service.AuthResult, error) {
	return a.signIn(ctx, "/admin/login", creds)
}

// signIn reads the credential from the token cookie and falls back to the body.
func (a *authAPI) signIn(ctx context.Context, path string, body any) (*service.AuthResult, error) {
	var resp authResponse
	cookies, err := a.client.exchange(ctx, http.MethodPost, path, "", body, &resp)
	if err != nil {
		return nil, err
	}

	token := resp.Token
	for _, cookie := range cookies {
		if cookie.Name == tokenCookie && cookie.Value != "" {
			token = cookie.Value
		}
	}
	if token == "" {
		return nil, domainerrors.NewBackendError(0, "sign-in returned no credential", nil)
	}

	return &service.AuthResult{User: resp.User.toEntity(), Token: token}, nil
}

func (a *authAPI) Logout(ctx context.Context, token string) error {
	return a.client.call(ctx, http.MethodPost, "/logout", token, nil, nil)
}

func (a *authAPI) UpdateProfile(ctx context.Context, token string, user entity.User, fields entity.ProfileFields) (*entity.User, error) {
	path := "/update-profile"
	if user.IsAdmin() {
		path = "/update-user/" + user.ID
	}

	var resp struct {
		User userDTO `json:"user"`
	}
	if err := a.client.call(ctx, http.MethodPut, path, token, fields, &resp); err != nil {
		return nil, err
	}
	updated := resp.User.toEntity()

	return &updated, nil
}

func (a *authAPI) ChangePassword(ctx context.Context, token string, user entity.User, change entity.PasswordChange) error {
	path := "/change-password"
	if user.IsAdmin() {
		path = "/change-password/" + user.ID
	}

	return a.client.call(ctx, http.MethodPut, path, token, change, nil)
}
