package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
}

// WishlistHandler exposes the shopper's wishlist.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{wishlistUC: params.WishlistUC}
}

type toggleResponse struct {
	Message  string           `json:"message"`
	Wishlist []entity.Product `json:"wishlist"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.wishlistUC.Fetch(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// Toggle handles POST /wishlist/:productId/toggle
func (h *WishlistHandler) Toggle(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message, list, err := h.wishlistUC.Toggle(c.Request().Context(), session, c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toggleResponse{Message: message, Wishlist: list})
}
