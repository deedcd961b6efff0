package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	api      service.AddressAPI
	registry *state.Registry
	logger   *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	API      service.AddressAPI
	Registry *state.Registry
	Logger   *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		api:      params.API,
		registry: params.Registry,
		logger:   params.Logger,
	}
}

func (srv *addressService) List(ctx context.Context, session *entity.Session) ([]entity.Address, error) {
	list, err := srv.api.ListAddresses(ctx, session.BackendToken)
	if err != nil {
		if err := degradeRead(ctx, srv.logger, "addresses", err); err != nil {
			return nil, errors.WithMessage(err, "list addresses")
		}

		return srv.registry.Workspace(session.ID).Addresses.Snapshot(), nil
	}

	return srv.replace(session, list), nil
}

func (srv *addressService) Add(ctx context.Context, session *entity.Session, fields entity.AddressFields) ([]entity.Address, error) {
	list, err := srv.api.AddAddress(ctx, session.BackendToken, fields.Normalize())
	if err != nil {
		return nil, srv.mutationFailed(ctx, "add", "", err)
	}

	return srv.replace(session, list), nil
}

func (srv *addressService) Update(ctx context.Context, session *entity.Session, addressID string, fields entity.AddressFields) ([]entity.Address, error) {
	list, err := srv.api.UpdateAddress(ctx, session.BackendToken, addressID, fields.Normalize())
	if err != nil {
		return nil, srv.mutationFailed(ctx, "update", addressID, err)
	}

	return srv.replace(session, list), nil
}

func (srv *addressService) SetDefault(ctx context.Context, session *entity.Session, addressID string) ([]entity.Address, error) {
	list, err := srv.api.SetDefaultAddress(ctx, session.BackendToken, addressID)
	if err != nil {
		return nil, srv.mutationFailed(ctx, "set_default", addressID, err)
	}

	return srv.replace(session, list), nil
}

// Remove applies the removal locally, then asks the backend. A failed request
// is corrected by a fresh read rather than by undoing the local removal.
func (srv *addressService) Remove(ctx context.Context, session *entity.Session, addressID string) ([]entity.Address, error) {
	book := srv.registry.Workspace(session.ID).Addresses
	book.RemoveLocal(addressID)

	list, err := srv.api.DeleteAddress(ctx, session.BackendToken, addressID)
	if err == nil {
		return srv.replace(session, list), nil
	}

	mutationErr := srv.mutationFailed(ctx, "remove", addressID, err)

	fresh, readErr := srv.api.ListAddresses(ctx, session.BackendToken)
	if readErr != nil {
		log(ctx, srv.logger).Warn("Address reconcile read failed",
			slog.String("address_id", addressID),
			slog.Any("error", readErr),
		)

		return nil, mutationErr
	}
	srv.replace(session, fresh)

	return nil, mutationErr
}

// replace stores the server list and lets an open checkout re-derive its selection.
func (srv *addressService) replace(session *entity.Session, list []entity.Address) []entity.Address {
	ws := srv.registry.Workspace(session.ID)
	stored := ws.Addresses.Replace(list)
	if ws.Checkout.Phase() != entity.CheckoutPhaseIdle {
		ws.Checkout.RefreshAddresses(stored)
	}

	return stored
}

func (srv *addressService) mutationFailed(ctx context.Context, op, addressID string, err error) error {
	log(ctx, srv.logger).Error("Address mutation failed",
		slog.String("op", op),
		slog.String("address_id", addressID),
		slog.Any("error", err),
	)

	return domainerrors.NewOperationError(domainerrors.ErrAddressMutationFailed, err)
}
