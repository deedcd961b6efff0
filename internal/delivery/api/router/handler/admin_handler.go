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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves the back office. Every route sits behind RequireRole(admin).
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// UpdateOrderStatusRequest represents the request body for changing an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=processing shipped delivered cancelled"`
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.adminUC.FetchUsers(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.adminUC.DeleteUser(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// ListProducts handles GET /admin/products
func (h *AdminHandler) ListProducts(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.adminUC.FetchProducts(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /admin/products/:id
func (h *AdminHandler) GetProduct(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.adminUC.ProductForEdit(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req entity.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	products, err := h.adminUC.CreateProduct(c.Request().Context(), session, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, products)
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req entity.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	products, err := h.adminUC.UpdateProduct(c.Request().Context(), session, c.Param("id"), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.adminUC.DeleteProduct(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// ListOrders handles GET /admin/orders
func (h *AdminHandler) ListOrders(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.adminUC.FetchOrders(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	orders, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), session, c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListReviews handles GET /admin/reviews
func (h *AdminHandler) ListReviews(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.adminUC.FetchReviews(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// DeleteReview handles DELETE /admin/reviews/:id
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.adminUC.DeleteReview(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.adminUC.DashboardStats(c.Request().Context(), session))
}
