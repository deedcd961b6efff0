package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddressUsecase is the address book of a session. The server list is
// authoritative after every mutation.
type AddressUsecase interface {
	List(ctx context.Context, session *entity.Session) ([]entity.Address, error)
	Add(ctx context.Context, session *entity.Session, fields entity.AddressFields) ([]entity.Address, error)
	Update(ctx context.Context, session *entity.Session, addressID string, fields entity.AddressFields) ([]entity.Address, error)

	// Remove drops the address locally before the request and re-reads the
	// list when the request fails.
	Remove(ctx context.Context, session *entity.Session, addressID string) ([]entity.Address, error)
	SetDefault(ctx context.Context, session *entity.Session, addressID string) ([]entity.Address, error)
}
