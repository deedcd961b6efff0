// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authAPI      service.AuthAPI
	sessions     repository.SessionRepository
	tokenService service.TokenService
	registry     *state.Registry
	cart         usecase.CartUsecase
	addresses    usecase.AddressUsecase
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AuthAPI      service.AuthAPI
	Sessions     repository.SessionRepository
	TokenService service.TokenService
	Registry     *state.Registry
	Cart         usecase.CartUsecase
	Addresses    usecase.AddressUsecase
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		authAPI:      params.AuthAPI,
		sessions:     params.Sessions,
		tokenService: params.TokenService,
		registry:     params.Registry,
		cart:         params.Cart,
		addresses:    params.Addresses,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *authService) Register(ctx context.Context, reg entity.Registration) (*usecase.SignInOutput, error) {
	result, err := srv.authAPI.Register(ctx, reg)
	if err != nil {
		return nil, errors.WithMessage(err, "register")
	}

	return srv.startSession(ctx, result)
}

func (srv *authService) Login(ctx context.Context, creds entity.Credentials) (*usecase.SignInOutput, error) {
	result, err := srv.authAPI.Login(ctx, creds)
	if err != nil {
		return nil, srv.signInError(err)
	}

	return srv.startSession(ctx, result)
}

func (srv *authService) AdminLogin(ctx context.Context, creds entity.Credentials) (*usecase.SignInOutput, error) {
	result, err := srv.authAPI.AdminLogin(ctx, creds)
	if err != nil {
		return nil, srv.signInError(err)
	}
	if !result.User.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("account is not an administrator")
	}

	return srv.startSession(ctx, result)
}

// signInError reports rejected credentials as unauthorized instead of as an
// expired session.
func (srv *authService) signInError(err error) error {
	if errors.Is(err, domainerrors.ErrSessionExpired) {
		return errors.Wrap(domainerrors.ErrUnauthorized.WithDetails("invalid email or password"), err.Error())
	}

	return errors.WithMessage(err, "sign in")
}

// startSession stores a session for result, signs its token and primes the
// cart and address book of the new workspace.
func (srv *authService) startSession(ctx context.Context, result *service.AuthResult) (*usecase.SignInOutput, error) {
	now := srv.now()
	ttl := srv.tokenService.TTL()
	session := &entity.Session{
		ID:           uuid.NewString(),
		User:         result.User,
		BackendToken: result.Token,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}

	if err := srv.sessions.Save(ctx, session, ttl); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	token, err := srv.tokenService.Issue(session.ID, session.User.Role.String())
	if err != nil {
		srv.dropSession(ctx, session.ID)

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.registry.Open(session.ID, session.ExpiresAt)
	srv.cart.Fetch(ctx, session)
	if _, err := srv.addresses.List(ctx, session); err != nil {
		log(ctx, srv.logger).Warn("Failed to prime address book", slog.Any("error", err))
	}

	log(ctx, srv.logger).Info("Session started",
		slog.String("session_id", session.ID),
		slog.String("user_id", session.User.ID),
		slog.String("role", session.User.Role.String()),
	)

	return &usecase.SignInOutput{Session: session, Token: token, ExpiresAt: session.ExpiresAt}, nil
}

func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	session, err := srv.Current(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.User.Role.String() != claims.Role {
		return nil, domainerrors.ErrUnauthorized.WithDetails("session role changed")
	}

	return session, nil
}

func (srv *authService) Current(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := srv.sessions.Find(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		srv.registry.Discard(sessionID)

		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.Expired(srv.now()) {
		srv.dropSession(ctx, sessionID)
		srv.registry.Discard(sessionID)

		return nil, domainerrors.ErrUnauthorized
	}
	srv.registry.Open(sessionID, session.ExpiresAt)

	return session, nil
}

// dropSession deletes a session record on a cleanup path where the caller
// already has an error to report.
func (srv *authService) dropSession(ctx context.Context, sessionID string) {
	if err := srv.sessions.Delete(ctx, sessionID); err != nil {
		log(ctx, srv.logger).Warn("Failed to delete session",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}
}

func (srv *authService) Logout(ctx context.Context, session *entity.Session) error {
	if err := srv.authAPI.Logout(ctx, session.BackendToken); err != nil {
		log(ctx, srv.logger).Warn("Backend logout failed", slog.Any("error", err))
	}

	srv.registry.Discard(session.ID)
	if err := srv.sessions.Delete(ctx, session.ID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	log(ctx, srv.logger).Info("Session ended", slog.String("session_id", session.ID))

	return nil
}

func (srv *authService) UpdateProfile(ctx context.Context, session *entity.Session, fields entity.ProfileFields) (*entity.User, error) {
	user, err := srv.authAPI.UpdateProfile(ctx, session.BackendToken, session.User, fields)
	if err != nil {
		return nil, errors.WithMessage(err, "update profile")
	}

	// The role is not editable through the profile.
	user.Role = session.User.Role

	updated := *session
	updated.User = *user
	if err := srv.sessions.Save(ctx, &updated, srv.remaining(&updated)); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	return user, nil
}

func (srv *authService) ChangePassword(ctx context.Context, session *entity.Session, change entity.PasswordChange) error {
	if err := srv.authAPI.ChangePassword(ctx, session.BackendToken, session.User, change); err != nil {
		return errors.WithMessage(err, "change password")
	}

	return nil
}

// remaining is the lifetime left to session, never less than a second so a
// save does not drop it.
func (srv *authService) remaining(session *entity.Session) time.Duration {
	left := session.ExpiresAt.Sub(srv.now())
	if left < time.Second {
		return time.Second
	}

	return left
}
