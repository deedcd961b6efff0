package backend

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type adminAPI struct {
	client *Client
}

// NewAdminAPI exposes the back-office routes of the backend.
func NewAdminAPI(client *Client) service.AdminAPI {
	return &adminAPI{client: client}
}

func (a *adminAPI) ListUsers(ctx context.Context, token string) ([]entity.User, error) {
	var resp struct {
		Users []userDTO `json:"users"`
	}
	if err := a.client.get(ctx, "/admin/users/get-all", token, nil, &resp); err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, u.toEntity())
	}

	return users, nil
}

func (a *adminAPI) DeleteUser(ctx context.Context, token, userID string) error {
	return a.client.call(ctx, http.MethodDelete, "/admin/users/delete/"+url.PathEscape(userID), token, nil, nil)
}

func (a *adminAPI) CreateProduct(ctx context.Context, token string, input entity.ProductInput) (*entity.Product, error) {
	return a.saveProduct(ctx, http.MethodPost, "/create-product", token, input)
}

func (a *adminAPI) UpdateProduct(ctx context.Context, token, productID string, input entity.ProductInput) (*entity.Product, error) {
	return a.saveProduct(ctx, http.MethodPut, "/update-product/"+url.PathEscape(productID), token, input)
}

func (a *adminAPI) saveProduct(ctx context.Context, method, path, token string, input entity.ProductInput) (*entity.Product, error) {
	var resp struct {
		Product productDTO `json:"product"`
	}
	if err := a.client.call(ctx, method, path, token, fromProductInput(input), &resp); err != nil {
		return nil, err
	}
	product := resp.Product.toEntity()

	return &product, nil
}

func (a *adminAPI) DeleteProduct(ctx context.Context, token, productID string) error {
	return a.client.call(ctx, http.MethodDelete, "/delete-product/"+url.PathEscape(productID), token, nil, nil)
}

func (a *adminAPI) ListAllOrders(ctx context.Context, token string) ([]entity.Order, error) {
	var resp struct {
		Orders []orderDTO `json:"orders"`
	}
	if err := a.client.get(ctx, "/get-all-orders", token, nil, &resp); err != nil {
		return nil, err
	}

	return toOrders(resp.Orders), nil
}

func (a *adminAPI) UpdateOrderStatus(ctx context.Context, token, orderID string, status entity.OrderStatus) error {
	req := struct {
		OrderStatus string `json:"orderStatus"`
	}{OrderStatus: status.String()}

	return a.client.call(ctx, http.MethodPut, "/order/update-status/"+url.PathEscape(orderID), token, req, nil)
}

func (a *adminAPI) ListAllReviews(ctx context.Context, token string) ([]entity.Review, error) {
	var resp struct {
		Reviews []reviewDTO `json:"reviews"`
	}
	if err := a.client.get(ctx, "/admin/all-reviews", token, nil, &resp); err != nil {
		return nil, err
	}

	return toReviews(resp.Reviews), nil
}

func (a *adminAPI) DeleteReview(ctx context.Context, token, reviewID string) error {
	return a.client.call(ctx, http.MethodDelete, "/delete-review/"+url.PathEscape(reviewID), token, nil, nil)
}

func (a *adminAPI) DashboardSummary(ctx context.Context, token string) (*entity.DashboardStats, error) {
	var resp struct {
		Dashboard dashboardDTO `json:"dashboard"`
	}
	if err := a.client.get(ctx, "/admin/dashboard-summary", token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Dashboard.toEntity(), nil
}
