package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	authAPI   *mockService.MockAuthAPI
	sessions  *mockRepo.MockSessionRepository
	tokens    *mockService.MockTokenService
	cart      *mockUsecase.MockCartUsecase
	addresses *mockUsecase.MockAddressUsecase
	registry  *state.Registry
	service   usecase.AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		authAPI:   mockService.NewMockAuthAPI(t),
		sessions:  mockRepo.NewMockSessionRepository(t),
		tokens:    mockService.NewMockTokenService(t),
		cart:      mockUsecase.NewMockCartUsecase(t),
		addresses: mockUsecase.NewMockAddressUsecase(t),
		registry:  state.NewRegistry(),
	}
	f.service = NewAuthService(AuthServiceParams{
		AuthAPI:      f.authAPI,
		Sessions:     f.sessions,
		TokenService: f.tokens,
		Registry:     f.registry,
		Cart:         f.cart,
		Addresses:    f.addresses,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestAuthService_LoginStartsSession(t *testing.T) {
	f := newAuthFixture(t)
	creds := entity.Credentials{Email: "asha@example.com", Password: "secret123"}
	user := entity.User{ID: "u1", Name: "Asha", Role: entity.RoleUser}

	f.authAPI.EXPECT().Login(mock.Anything, creds).Return(&service.AuthResult{User: user, Token: "backend-token"}, nil)
	f.tokens.EXPECT().TTL().Return(48 * time.Hour)

	var saved *entity.Session
	f.sessions.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.Session"), 48*time.Hour).
		Run(func(_ context.Context, session *entity.Session, _ time.Duration) { saved = session }).
		Return(nil)
	f.tokens.EXPECT().Issue(mock.AnythingOfType("string"), "user").Return("signed", nil)
	f.cart.EXPECT().Fetch(mock.Anything, mock.Anything).Return(&usecase.CartView{})
	f.addresses.EXPECT().List(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrBackendUnavailable)

	out, err := f.service.Login(context.Background(), creds)
	require.NoError(t, err)

	assert.Equal(t, "signed", out.Token)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID, out.Session.ID)
	assert.Equal(t, "backend-token", out.Session.BackendToken)
	assert.Equal(t, user, out.Session.User)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), out.ExpiresAt, time.Minute)
}

func TestAuthService_LoginRejected(t *testing.T) {
	f := newAuthFixture(t)
	creds := entity.Credentials{Email: "asha@example.com", Password: "wrong"}

	f.authAPI.EXPECT().Login(mock.Anything, creds).Return(nil, domainerrors.NewBackendError(401, "Invalid credentials", nil))

	_, err := f.service.Login(context.Background(), creds)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.NotErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestAuthService_AdminLoginRequiresAdmin(t *testing.T) {
	f := newAuthFixture(t)
	creds := entity.Credentials{Email: "asha@example.com", Password: "secret123"}

	f.authAPI.EXPECT().AdminLogin(mock.Anything, creds).
		Return(&service.AuthResult{User: entity.User{ID: "u1", Role: entity.RoleUser}, Token: "t"}, nil)

	_, err := f.service.AdminLogin(context.Background(), creds)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_Authenticate(t *testing.T) {
	f := newAuthFixture(t)
	session := newTestSession()

	f.tokens.EXPECT().Validate("signed").Return(&service.Claims{SessionID: session.ID, Role: "user"}, nil)
	f.sessions.EXPECT().Find(mock.Anything, session.ID).Return(session, nil)

	got, err := f.service.Authenticate(context.Background(), "signed")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestAuthService_AuthenticateFailures(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service.Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Validate("bad").Return(nil, jwt.ErrTokenExpired)

		_, err := f.service.Authenticate(context.Background(), "bad")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("session gone", func(t *testing.T) {
		f := newAuthFixture(t)
		f.registry.Workspace("sess-1")
		f.tokens.EXPECT().Validate("signed").Return(&service.Claims{SessionID: "sess-1", Role: "user"}, nil)
		f.sessions.EXPECT().Find(mock.Anything, "sess-1").Return(nil, repository.ErrSessionNotFound)

		_, err := f.service.Authenticate(context.Background(), "signed")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.Equal(t, 0, f.registry.Len())
	})

	t.Run("role changed", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Validate("signed").Return(&service.Claims{SessionID: "sess-1", Role: "admin"}, nil)
		f.sessions.EXPECT().Find(mock.Anything, "sess-1").Return(newTestSession(), nil)

		_, err := f.service.Authenticate(context.Background(), "signed")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthService_LogoutDiscardsWorkspace(t *testing.T) {
	f := newAuthFixture(t)
	session := newTestSession()
	f.registry.Workspace(session.ID).Orders.SetConfirmed("ORD123")

	f.authAPI.EXPECT().Logout(mock.Anything, "backend-token").Return(domainerrors.ErrBackendUnavailable)
	f.sessions.EXPECT().Delete(mock.Anything, session.ID).Return(nil)

	require.NoError(t, f.service.Logout(context.Background(), session))
	assert.Equal(t, 0, f.registry.Len())
	assert.Empty(t, f.registry.Workspace(session.ID).Orders.Confirmed())
}

func TestAuthService_UpdateProfileKeepsRole(t *testing.T) {
	f := newAuthFixture(t)
	session := newTestSession()
	session.User.Role = entity.RoleAdmin
	fields := entity.ProfileFields{Name: "Asha K", Email: "asha@example.com"}

	f.authAPI.EXPECT().UpdateProfile(mock.Anything, "backend-token", session.User, fields).
		Return(&entity.User{ID: "u1", Name: "Asha K", Email: "asha@example.com", Role: entity.RoleUser}, nil)
	f.sessions.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
			return s.User.Name == "Asha K" && s.User.Role == entity.RoleAdmin
		}), mock.AnythingOfType("time.Duration")).
		Return(nil)

	user, err := f.service.UpdateProfile(context.Background(), session, fields)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "Asha", session.User.Name)
}

func TestAuthService_ExpiredSessionWorkspaceIsSwept(t *testing.T) {
	f := newAuthFixture(t)
	creds := entity.Credentials{Email: "asha@example.com", Password: "secret123"}

	f.authAPI.EXPECT().Login(mock.Anything, creds).
		Return(&service.AuthResult{User: entity.User{ID: "u1", Role: entity.RoleUser}, Token: "backend-token"}, nil).Times(3)
	f.tokens.EXPECT().TTL().Return(time.Millisecond)
	f.sessions.EXPECT().Save(mock.Anything, mock.Anything, time.Millisecond).Return(nil)
	f.tokens.EXPECT().Issue(mock.Anything, "user").Return("signed", nil)
	f.cart.EXPECT().Fetch(mock.Anything, mock.Anything).Return(&usecase.CartView{})
	f.addresses.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	for range 3 {
		_, err := f.service.Login(context.Background(), creds)
		require.NoError(t, err)
	}
	require.Equal(t, 3, f.registry.Len())

	assert.Equal(t, 3, f.registry.Sweep(time.Now().Add(time.Second)))
	assert.Equal(t, 0, f.registry.Len())
}

func TestAuthService_AuthenticateRecordsExpiry(t *testing.T) {
	f := newAuthFixture(t)
	session := newTestSession()

	f.tokens.EXPECT().Validate("signed").Return(&service.Claims{SessionID: session.ID, Role: "user"}, nil)
	f.sessions.EXPECT().Find(mock.Anything, session.ID).Return(session, nil)

	_, err := f.service.Authenticate(context.Background(), "signed")
	require.NoError(t, err)

	assert.Equal(t, 0, f.registry.Sweep(session.ExpiresAt.Add(-time.Minute)))
	assert.Equal(t, 1, f.registry.Sweep(session.ExpiresAt.Add(time.Minute)))
}

func TestAuthService_IssueFailureDropsSession(t *testing.T) {
	f := newAuthFixture(t)
	creds := entity.Credentials{Email: "asha@example.com", Password: "secret123"}

	f.authAPI.EXPECT().Login(mock.Anything, creds).
		Return(&service.AuthResult{User: entity.User{ID: "u1", Role: entity.RoleUser}, Token: "backend-token"}, nil)
	f.tokens.EXPECT().TTL().Return(time.Hour)
	f.sessions.EXPECT().Save(mock.Anything, mock.Anything, time.Hour).Return(nil)
	f.tokens.EXPECT().Issue(mock.Anything, "user").Return("", jwt.ErrInvalidKey)
	f.sessions.EXPECT().Delete(mock.Anything, mock.AnythingOfType("string")).Return(repository.ErrSessionNotFound)

	_, err := f.service.Login(context.Background(), creds)
	assert.ErrorIs(t, err, jwt.ErrInvalidKey)
	assert.Equal(t, 0, f.registry.Len())
}
