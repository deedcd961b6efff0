package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type cartAPI struct {
	client *Client
}

// NewCartAPI exposes the cart routes of the backend.
func NewCartAPI(client *Client) service.CartAPI {
	return &cartAPI{client: client}
}

type productLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

func (a *cartAPI) GetCart(ctx context.Context, token string) ([]entity.CartLine, error) {
	var resp struct {
		CartItems []cartItemDTO `json:"cartItems"`
	}
	if err := a.client.get(ctx, "/my-cart", token, nil, &resp); err != nil {
		return nil, err
	}

	return toCartLines(resp.CartItems), nil
}

func (a *cartAPI) AddToCart(ctx context.Context, token, productID string, quantity int) ([]entity.CartLine, error) {
	var resp struct {
		Cart struct {
			CartItems []cartItemDTO `json:"cartItems"`
		} `json:"cart"`
	}
	req := productLineRequest{ProductID: productID, Quantity: quantity}
	if err := a.client.call(ctx, http.MethodPost, "/add", token, req, &resp); err != nil {
		return nil, err
	}

	return toCartLines(resp.Cart.CartItems), nil
}

func (a *cartAPI) IncreaseQuantity(ctx context.Context, token, productID string) error {
	return a.client.call(ctx, http.MethodPut, "/increase-qty", token, productLineRequest{ProductID: productID}, nil)
}

func (a *cartAPI) DecreaseQuantity(ctx context.Context, token, productID string) error {
	return a.client.call(ctx, http.MethodPut, "/decrease-qty", token, productLineRequest{ProductID: productID}, nil)
}

func (a *cartAPI) RemoveItem(ctx context.Context, token, productID string) error {
	return a.client.call(ctx, http.MethodDelete, "/remove-item/"+url.PathEscape(productID), token, nil, nil)
}
