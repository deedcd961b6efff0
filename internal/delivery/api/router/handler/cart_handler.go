package handler

import (
	"context"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler exposes the session's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.Fetch(c.Request().Context(), session))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.cartUC.Add(c.Request().Context(), session, req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Increase handles POST /cart/items/:productId/increase
func (h *CartHandler) Increase(c echo.Context) error {
	return h.mutate(c, h.cartUC.Increase)
}

// Decrease handles POST /cart/items/:productId/decrease
func (h *CartHandler) Decrease(c echo.Context) error {
	return h.mutate(c, h.cartUC.Decrease)
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c echo.Context) error {
	return h.mutate(c, h.cartUC.Remove)
}

type cartMutation func(ctx context.Context, session *entity.Session, productID string) (*usecase.CartView, error)

func (h *CartHandler) mutate(c echo.Context, fn cartMutation) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := fn(c.Request().Context(), session, c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
