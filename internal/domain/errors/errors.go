package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business code so that a copy made by WithDetails still
// compares equal to the predefined value it came from.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Please sign in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Request-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// Backend-related errors
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"The store is temporarily unavailable",
		"",
	)

	ErrBackendRejected = NewBaseError(
		http.StatusUnprocessableEntity,
		"BACKEND_REJECTED",
		"The request was rejected",
		"",
	)

	// Cart and address errors
	ErrCartMutationFailed = NewBaseError(
		http.StatusBadGateway,
		"CART_MUTATION_FAILED",
		"Could not update the cart",
		"",
	)

	ErrAddressMutationFailed = NewBaseError(
		http.StatusBadGateway,
		"ADDRESS_MUTATION_FAILED",
		"Could not update the address book",
		"",
	)

	// Checkout errors
	ErrNoAddressSelected = NewBaseError(
		http.StatusBadRequest,
		"NO_ADDRESS_SELECTED",
		"Please select a delivery address",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	ErrCheckoutInProgress = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_PROGRESS",
		"A payment is already being processed",
		"",
	)

	ErrInvalidCheckoutPhase = NewBaseError(
		http.StatusConflict,
		"INVALID_CHECKOUT_PHASE",
		"This step is not available right now",
		"",
	)

	ErrIntentCreationFailed = NewBaseError(
		http.StatusBadGateway,
		"INTENT_CREATION_FAILED",
		"Failed to initiate payment",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_FAILED",
		"Payment failed",
		"",
	)

	ErrPaymentVerificationFailed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_VERIFICATION_FAILED",
		"Payment verification failed",
		"",
	)

	ErrIntentMismatch = NewBaseError(
		http.StatusConflict,
		"INTENT_MISMATCH",
		"The payment does not belong to the current checkout",
		"",
	)

	ErrWidgetAlreadySettled = NewBaseError(
		http.StatusConflict,
		"WIDGET_ALREADY_SETTLED",
		"This payment has already been handled",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// BackendError carries the failure of a backend call together with the HTTP
// status the backend answered with. Status is zero for transport failures.
type BackendError struct {
	kind    *BaseError
	status  int
	message string
	err     error
}

// NewBackendError classifies a failed backend call. message is the backend's
// own explanation when it sent one.
func NewBackendError(status int, message string, err error) *BackendError {
	var kind *BaseError
	switch {
	case status == http.StatusUnauthorized:
		kind = ErrSessionExpired
	case status == http.StatusForbidden:
		kind = ErrForbidden
	case status == http.StatusNotFound:
		kind = ErrNotFound
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		kind = ErrBackendRejected
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		// success:false inside a 2xx envelope
		kind = ErrBackendRejected
	default:
		kind = ErrBackendUnavailable
	}

	return &BackendError{kind: kind, status: status, message: message, err: err}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	if e.err != nil {
		return errors.Wrapf(e.err, "backend status %d", e.status).Error()
	}

	return e.kind.Message() + ": " + e.message
}

// Unwrap exposes the predefined kind so errors.Is(err, ErrSessionExpired) works.
func (e *BackendError) Unwrap() []error {
	if e.err != nil {
		return []error{e.kind, e.err}
	}

	return []error{e.kind}
}

// Status returns the backend HTTP status, or zero for transport failures.
func (e *BackendError) Status() int {
	return e.status
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return e.kind.ErrorCode()
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return e.kind.Message()
}

// Details returns the backend's explanation
func (e *BackendError) Details() string {
	return e.message
}

// OperationError reports a failed storefront operation (for example a cart
// mutation) while keeping the backend failure that caused it reachable.
type OperationError struct {
	kind  *BaseError
	cause error
}

// NewOperationError wraps cause under kind.
func NewOperationError(kind *BaseError, cause error) *OperationError {
	return &OperationError{kind: kind, cause: cause}
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e.cause == nil {
		return e.kind.Error()
	}

	return e.kind.Message() + ": " + e.cause.Error()
}

// Unwrap returns both the operation kind and its cause.
func (e *OperationError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}

	return []error{e.kind, e.cause}
}

// HTTPCode returns the HTTP status code. A lapsed session stays a 401 so the
// client is sent to sign in.
func (e *OperationError) HTTPCode() int {
	if errors.Is(e.cause, ErrSessionExpired) {
		return ErrSessionExpired.HTTPCode()
	}

	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *OperationError) ErrorCode() string {
	if errors.Is(e.cause, ErrSessionExpired) {
		return ErrSessionExpired.ErrorCode()
	}

	return e.kind.ErrorCode()
}

// Message returns the user-friendly error message
func (e *OperationError) Message() string {
	return e.kind.Message()
}

// Details returns the most specific explanation available
func (e *OperationError) Details() string {
	if e.kind.Details() != "" {
		return e.kind.Details()
	}
	if appErr, ok := errors.AsType[AppError](e.cause); ok {
		if details := appErr.Details(); details != "" {
			return details
		}

		return appErr.Message()
	}

	return ""
}
