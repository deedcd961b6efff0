package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type wishlistAPI struct {
	client *Client
}

// NewWishlistAPI exposes the wishlist routes of the backend.
func NewWishlistAPI(client *Client) service.WishlistAPI {
	return &wishlistAPI{client: client}
}

func (a *wishlistAPI) GetWishlist(ctx context.Context, token string) ([]entity.Product, error) {
	var resp struct {
		Wishlist []productRef `json:"wishlist"`
	}
	if err := a.client.get(ctx, "/my-wishlist", token, nil, &resp); err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(resp.Wishlist))
	for _, ref := range resp.Wishlist {
		if ref.Product == nil {
			products = append(products, entity.Product{ID: ref.ID})

			continue
		}
		products = append(products, ref.Product.toEntity())
	}

	return products, nil
}

func (a *wishlistAPI) ToggleWishlist(ctx context.Context, token, productID string) (string, error) {
	var resp envelope
	if err := a.client.call(ctx, http.MethodPost, "/toggle/"+url.PathEscape(productID), token, nil, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}
