package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	api      service.OrderAPI
	qrcode   service.QRCodeService
	registry *state.Registry
	logger   *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	API      service.OrderAPI
	QRCode   service.QRCodeService
	Registry *state.Registry
	Logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		api:      params.API,
		qrcode:   params.QRCode,
		registry: params.Registry,
		logger:   params.Logger,
	}
}

func (srv *orderService) MyOrders(ctx context.Context, session *entity.Session) ([]entity.Order, error) {
	cache := srv.registry.Workspace(session.ID).Orders

	list, err := srv.api.ListMyOrders(ctx, session.BackendToken)
	if err != nil {
		if err := degradeRead(ctx, srv.logger, "my_orders", err); err != nil {
			return nil, errors.WithMessage(err, "list orders")
		}

		return cache.Snapshot(), nil
	}

	return cache.Replace(list), nil
}

func (srv *orderService) OrderDetails(ctx context.Context, session *entity.Session, orderID string) (*entity.Order, error) {
	order, err := srv.api.GetOrder(ctx, session.BackendToken, orderID)
	if err != nil {
		return nil, errors.WithMessage(err, "get order")
	}
	srv.registry.Workspace(session.ID).Orders.SetDetail(order)

	return order, nil
}

func (srv *orderService) Confirmation(_ context.Context, session *entity.Session) string {
	return srv.registry.Workspace(session.ID).Orders.Confirmed()
}

func (srv *orderService) LeaveConfirmation(_ context.Context, session *entity.Session) {
	srv.registry.Workspace(session.ID).Orders.ClearConfirmed()
}

// TrackingQR encodes the tracking URL of an order the session can see.
func (srv *orderService) TrackingQR(ctx context.Context, session *entity.Session, orderID string) ([]byte, error) {
	if _, ok := srv.registry.Workspace(session.ID).Orders.Detail(orderID); !ok {
		if _, err := srv.OrderDetails(ctx, session, orderID); err != nil {
			return nil, err
		}
	}

	png, err := srv.qrcode.GenerateOrderTrackingQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR")
	}

	return png, nil
}
