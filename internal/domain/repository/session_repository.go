// Package repository defines persistence ports owned by the storefront itself.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSessionNotFound is returned when no live session exists for an id.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores authenticated sessions.
type SessionRepository interface {
	// Save stores session, replacing any previous record, for at most ttl.
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error

	// Find returns the session with id or ErrSessionNotFound.
	Find(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes the session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
