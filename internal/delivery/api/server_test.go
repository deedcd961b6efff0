package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookie = "shop_session-id"

type apiFixture struct {
	auth     *mockUsecase.MockAuthUsecase
	catalog  *mockUsecase.MockCatalogUsecase
	cart     *mockUsecase.MockCartUsecase
	address  *mockUsecase.MockAddressUsecase
	checkout *mockUsecase.MockCheckoutUsecase
	order    *mockUsecase.MockOrderUsecase
	wishlist *mockUsecase.MockWishlistUsecase
	admin    *mockUsecase.MockAdminUsecase
	echo     *echo.Echo
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{
		Session:    &config.SessionConfig{CookieName: testCookie, TTL: time.Hour},
		TestRoutes: &config.TestRoutesConfig{Enabled: true},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	f := &apiFixture{
		auth:     mockUsecase.NewMockAuthUsecase(t),
		catalog:  mockUsecase.NewMockCatalogUsecase(t),
		cart:     mockUsecase.NewMockCartUsecase(t),
		address:  mockUsecase.NewMockAddressUsecase(t),
		checkout: mockUsecase.NewMockCheckoutUsecase(t),
		order:    mockUsecase.NewMockOrderUsecase(t),
		wishlist: mockUsecase.NewMockWishlistUsecase(t),
		admin:    mockUsecase.NewMockAdminUsecase(t),
	}

	routes := router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth, Config: cfg}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: f.catalog}),
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: f.cart}),
		AddressHandler:  handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: f.address}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: f.checkout}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: f.order}),
		WishlistHandler: handler.NewWishlistHandler(handler.WishlistHandlerParams{WishlistUC: f.wishlist}),
		AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: f.admin}),
		TestHandler:     handler.NewTestHandler(),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: f.auth, Config: cfg}),
		Config:          cfg,
	})
	f.echo = NewEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), routes)

	return f
}

func (f *apiFixture) signedIn(role entity.Role) *entity.Session {
	session := &entity.Session{
		ID:           "sess-1",
		User:         entity.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: role},
		BackendToken: "backend-token",
	}
	f.auth.EXPECT().Authenticate(mock.Anything, "signed").Return(session, nil)

	return session
}

func (f *apiFixture) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "signed"})
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  *domainerrors.MetaInfo  `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_Health(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", decode(t, rec).Meta.RequestID)
}

func TestAPI_ProtectedRouteWithoutSession(t *testing.T) {
	f := newAPIFixture(t)
	f.auth.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthorized)

	rec := f.do(http.MethodGet, "/api/v1/cart", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
}

func TestAPI_BearerTokenAccepted(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleUser)
	f.cart.EXPECT().Fetch(mock.Anything, session).Return(&usecase.CartView{ItemCount: 2})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer signed")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cart":{"lines":null},"totals":{"subtotal":"0","tax":"0","total":0},"itemCount":2}`, string(decode(t, rec).Data))
}

func TestAPI_LoginSetsSessionCookie(t *testing.T) {
	f := newAPIFixture(t)
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	creds := entity.Credentials{Email: "asha@example.com", Password: "secret123"}

	f.auth.EXPECT().Login(mock.Anything, creds).Return(&usecase.SignInOutput{
		Session:   &entity.Session{ID: "sess-1", User: entity.User{ID: "u1", Role: entity.RoleUser}},
		Token:     "signed",
		ExpiresAt: expires,
	}, nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/login", `{"email":"asha@example.com","password":"secret123"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAPI_LoginValidation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email"}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email: email")
	assert.Contains(t, env.Error.Details, "password: required")
}

func TestAPI_SessionExpiredRedirectsToLogin(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleUser)

	cause := domainerrors.NewBackendError(http.StatusUnauthorized, "jwt expired", nil)
	f.cart.EXPECT().Increase(mock.Anything, session, "p1").
		Return(nil, domainerrors.NewOperationError(domainerrors.ErrCartMutationFailed, cause))

	rec := f.do(http.MethodPost, "/api/v1/cart/items/p1/increase", "", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "SESSION_EXPIRED", env.Error.Code)
	assert.Equal(t, "/login", env.Error.Redirect)
}

func TestAPI_CartMutationFailureKeepsBackendMessage(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleUser)

	cause := domainerrors.NewBackendError(http.StatusBadRequest, "Out of stock", nil)
	f.cart.EXPECT().Add(mock.Anything, session, "p1", 1).
		Return(nil, domainerrors.NewOperationError(domainerrors.ErrCartMutationFailed, cause))

	rec := f.do(http.MethodPost, "/api/v1/cart/items", `{"productId":"p1"}`, true)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "CART_MUTATION_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAPI_AddressValidation(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn(entity.RoleUser)

	body := `{"name":"Asha","phone":"9876543210","street":"12 MG Road","city":"Pune","state":"MH","pincode":"41A"}`
	rec := f.do(http.MethodPost, "/api/v1/addresses", body, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "pincode")
}

func TestAPI_PaymentFailureCarriesReason(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleUser)

	f.checkout.EXPECT().Fail(mock.Anything, session, "order_1", "User cancelled").
		Return(nil, domainerrors.ErrPaymentFailed.WithDetails("User cancelled"))

	rec := f.do(http.MethodPost, "/api/v1/checkout/payment/failure", `{"orderId":"order_1","reason":"User cancelled"}`, true)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "PAYMENT_FAILED", env.Error.Code)
	assert.Equal(t, "User cancelled", env.Error.Details)
}

func TestAPI_PaymentSuccessMapsProof(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleUser)
	proof := entity.PaymentProof{IntentID: "order_1", PaymentID: "pay_1", Signature: "sig"}

	f.checkout.EXPECT().Complete(mock.Anything, session, proof).
		Return(&entity.CheckoutView{Phase: entity.CheckoutPhaseComplete, OrderID: "ORD123"}, nil)

	body := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`
	rec := f.do(http.MethodPost, "/api/v1/checkout/payment/success", body, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"orderId":"ORD123"`)
}

func TestAPI_AdminRoutesRequireAdmin(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn(entity.RoleUser)

	rec := f.do(http.MethodGet, "/api/v1/admin/users", "", true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
}

func TestAPI_AdminOrderStatus(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleAdmin)

	f.admin.EXPECT().UpdateOrderStatus(mock.Anything, session, "ORD1", entity.OrderStatusShipped).
		Return([]entity.Order{{ID: "ORD1", Status: entity.OrderStatusShipped}}, nil)

	rec := f.do(http.MethodPut, "/api/v1/admin/orders/ORD1/status", `{"status":"shipped"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPut, "/api/v1/admin/orders/ORD1/status", `{"status":"lost"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_ProductQueryBinding(t *testing.T) {
	f := newAPIFixture(t)
	minPrice := 100.0

	f.catalog.EXPECT().ListProducts(mock.Anything, entity.ProductQuery{
		Keyword:  "shoe",
		Category: "men",
		MinPrice: &minPrice,
		Page:     2,
	}).Return([]entity.Product{{ID: "p1"}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/products?search=shoe&category=men&minPrice=100&page=2", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/products?page=two", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_TrackingQR(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleUser)
	f.order.EXPECT().TrackingQR(mock.Anything, session, "ORD1").Return([]byte("png"), nil)

	rec := f.do(http.MethodGet, "/api/v1/orders/ORD1/qr", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png", rec.Body.String())
}

func TestAPI_ConfirmationIsNotAnOrderID(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleUser)
	f.order.EXPECT().Confirmation(mock.Anything, session).Return("ORD123")

	rec := f.do(http.MethodGet, "/api/v1/orders/confirmation", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orderId":"ORD123"}`, string(decode(t, rec).Data))
}

func TestAPI_UnknownErrorsHideInternals(t *testing.T) {
	f := newAPIFixture(t)
	session := f.signedIn(entity.RoleUser)
	f.address.EXPECT().List(mock.Anything, session).Return(nil, errors.New("redis: connection refused"))

	rec := f.do(http.MethodGet, "/api/v1/addresses", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "redis")
}

func TestAPI_TestRoutes(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn(entity.RoleAdmin)

	rec := f.do(http.MethodGet, "/test/auth", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sessionId":"sess-1"`)
}
