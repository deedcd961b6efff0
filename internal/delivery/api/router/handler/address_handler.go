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

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

// AddressHandler exposes the session's address book.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{addressUC: params.AddressUC}
}

// ListAddresses handles GET /addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.addressUC.List(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// AddAddress handles POST /addresses
func (h *AddressHandler) AddAddress(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var fields entity.AddressFields
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&fields); err != nil {
		return response.ValidationError(c, err)
	}

	list, err := h.addressUC.Add(c.Request().Context(), session, fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, list)
}

// UpdateAddress handles PUT /addresses/:id
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var fields entity.AddressFields
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&fields); err != nil {
		return response.ValidationError(c, err)
	}

	list, err := h.addressUC.Update(c.Request().Context(), session, c.Param("id"), fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// RemoveAddress handles DELETE /addresses/:id
func (h *AddressHandler) RemoveAddress(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.addressUC.Remove(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// SetDefault handles PUT /addresses/:id/default
func (h *AddressHandler) SetDefault(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.addressUC.SetDefault(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}
