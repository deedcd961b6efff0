package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

type orderAPI struct {
	client *Client
}

// NewOrderAPI exposes the payment and order routes of the backend.
func NewOrderAPI(client *Client) service.OrderAPI {
	return &orderAPI{client: client}
}

func (a *orderAPI) CreatePaymentIntent(ctx context.Context, token string, amount int64, addressID string) (*entity.PaymentIntent, error) {
	req := struct {
		Amount    int64  `json:"amount"`
		AddressID string `json:"addressId"`
	}{Amount: amount, AddressID: addressID}

	var resp struct {
		Intent *struct {
			ID       string `json:"id"`
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		} `json:"razorpayOrder"`
	}
	if err := a.client.call(ctx, http.MethodPost, "/create-order", token, req, &resp); err != nil {
		return nil, err
	}
	if resp.Intent == nil || resp.Intent.ID == "" {
		return nil, domainerrors.NewBackendError(0, "payment intent missing from response", nil)
	}

	return &entity.PaymentIntent{
		ID:       resp.Intent.ID,
		Amount:   resp.Intent.Amount,
		Currency: resp.Intent.Currency,
	}, nil
}

func (a *orderAPI) VerifyPayment(ctx context.Context, token string, proof entity.PaymentProof, addressID string) (string, error) {
	req := struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
		AddressID string `json:"addressId"`
	}{
		OrderID:   proof.IntentID,
		PaymentID: proof.PaymentID,
		Signature: proof.Signature,
		AddressID: addressID,
	}

	var resp struct {
		OrderID string `json:"orderId"`
	}
	if err := a.client.call(ctx, http.MethodPost, "/verify-payment", token, req, &resp); err != nil {
		return "", err
	}

	return resp.OrderID, nil
}

func (a *orderAPI) ListMyOrders(ctx context.Context, token string) ([]entity.Order, error) {
	var resp struct {
		Orders []orderDTO `json:"orders"`
	}
	if err := a.client.get(ctx, "/my-orders", token, nil, &resp); err != nil {
		return nil, err
	}

	return toOrders(resp.Orders), nil
}

func (a *orderAPI) GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error) {
	var resp struct {
		Order orderDTO `json:"order"`
	}
	if err := a.client.get(ctx, "/order/my-orders/"+url.PathEscape(orderID), token, nil, &resp); err != nil {
		return nil, err
	}
	order := resp.Order.toEntity()

	return &order, nil
}
