// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Output DTOs ---

// SignInOutput is a freshly created session and the signed token that names it.
type SignInOutput struct {
	Session   *entity.Session
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase manages the authenticated identity of a browser session.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, reg entity.Registration) (*SignInOutput, error)
	Login(ctx context.Context, creds entity.Credentials) (*SignInOutput, error)
	AdminLogin(ctx context.Context, creds entity.Credentials) (*SignInOutput, error)

	// Authenticate resolves a session token to its live session.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)

	// Current returns the stored session with sessionID.
	Current(ctx context.Context, sessionID string) (*entity.Session, error)

	// Logout ends the session and drops every state slice it owned.
	Logout(ctx context.Context, session *entity.Session) error

	UpdateProfile(ctx context.Context, session *entity.Session, fields entity.ProfileFields) (*entity.User, error)
	ChangePassword(ctx context.Context, session *entity.Session, change entity.PasswordChange) error
}
