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

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
}

// CheckoutHandler drives the payment handshake. The browser opens the hosted
// widget with the options returned by Pay and reports its outcome back.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: params.CheckoutUC}
}

// SelectAddressRequest represents the request body for choosing the delivery address
type SelectAddressRequest struct {
	AddressID string `json:"addressId" validate:"required"`
}

// PaymentSuccessRequest is the widget's success callback payload.
type PaymentSuccessRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// PaymentFailureRequest is the widget's failure callback payload.
type PaymentFailureRequest struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason" validate:"max=500"`
}

// Begin handles POST /checkout
func (h *CheckoutHandler) Begin(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.checkoutUC.Begin(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// View handles GET /checkout
func (h *CheckoutHandler) View(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.checkoutUC.View(c.Request().Context(), session))
}

// SelectAddress handles PUT /checkout/address
func (h *CheckoutHandler) SelectAddress(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SelectAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address selection")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	view, err := h.checkoutUC.SelectAddress(c.Request().Context(), session, req.AddressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Pay handles POST /checkout/pay
func (h *CheckoutHandler) Pay(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.checkoutUC.Pay(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// PaymentSuccess handles POST /checkout/payment/success
func (h *CheckoutHandler) PaymentSuccess(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PaymentSuccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment response")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	view, err := h.checkoutUC.Complete(c.Request().Context(), session, entity.PaymentProof{
		IntentID:  req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// PaymentFailure handles POST /checkout/payment/failure
func (h *CheckoutHandler) PaymentFailure(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PaymentFailureRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment response")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	view, err := h.checkoutUC.Fail(c.Request().Context(), session, req.OrderID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
