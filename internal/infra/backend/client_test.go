package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.BackendConfig{
		BaseURL: server.URL + "/",
		Breaker: config.BreakerConfig{
			MaxRequests:         1,
			Timeout:             time.Minute,
			ConsecutiveFailures: 2,
		},
	}

	return newClient(cfg, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_ForwardsTokenAndRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/my-cart", r.URL.Path)
		cookie, err := r.Cookie("token")
		if assert.NoError(t, err) {
			assert.Equal(t, "tok-1", cookie.Value)
		}
		assert.Equal(t, "req-9", r.Header.Get("X-Request-Id"))

		writeJSON(w, http.StatusOK, `{"success":true,"cartItems":[
			{"productId":{"_id":"p1","title":"Mug","price":250,"productImages":["m.png"]},"quantity":2,"priceAtAddTime":200},
			{"productId":"p2","quantity":1,"priceAtAddTime":100}
		]}`)
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-9")
	lines, err := NewCartAPI(client).GetCart(ctx, "tok-1")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "p1", lines[0].ProductID)
	require.NotNil(t, lines[0].Product)
	assert.Equal(t, "Mug", lines[0].Product.Title)
	assert.InDelta(t, 200.0, lines[0].PriceAtAdd, 0.001)
	assert.Equal(t, "p2", lines[1].ProductID)
	assert.Nil(t, lines[1].Product)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *domainerrors.BaseError
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"success":false,"message":"jwt expired"}`, want: domainerrors.ErrSessionExpired},
		{name: "forbidden", status: http.StatusForbidden, body: `{"message":"admins only"}`, want: domainerrors.ErrForbidden},
		{name: "not found", status: http.StatusNotFound, body: `not json`, want: domainerrors.ErrNotFound},
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"out of stock"}`, want: domainerrors.ErrBackendRejected},
		{name: "success false", status: http.StatusOK, body: `{"success":false,"message":"nope"}`, want: domainerrors.ErrBackendRejected},
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"boom"}`, want: domainerrors.ErrBackendUnavailable},
		{name: "malformed", status: http.StatusOK, body: `{"cartItems":`, want: domainerrors.ErrBackendUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := NewCartAPI(client).GetCart(context.Background(), "tok")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_RejectionCarriesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"success":false,"message":"Only 2 left in stock"}`)
	})

	err := NewCartAPI(client).IncreaseQuantity(context.Background(), "tok", "p1")

	backendErr, ok := err.(*domainerrors.BackendError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, backendErr.Status())
	assert.Equal(t, "Only 2 left in stock", backendErr.Details())
}

func TestClient_BreakerOpensOnServerFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, `{"message":"down"}`)
	})
	api := NewCatalogAPI(client)

	for range 2 {
		_, err := api.HomeData(context.Background())
		assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
	}

	_, err := api.HomeData(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_ClientErrorsDoNotOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusNotFound, `{"message":"no such product"}`)
	})
	api := NewCatalogAPI(client)

	for range 4 {
		_, err := api.GetProduct(context.Background(), "", "missing")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	}
	assert.Equal(t, int32(4), calls.Load())
}

func TestAuthAPI_LoginReadsTokenCookie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/login", r.URL.Path)

		var creds entity.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "asha@example.com", creds.Email)

		http.SetCookie(w, &http.Cookie{Name: "token", Value: "cookie-token"})
		writeJSON(w, http.StatusOK, `{"success":true,"user":{"_id":"u1","name":"Asha","email":"asha@example.com","role":"user"}}`)
	})

	result, err := NewAuthAPI(client).Login(context.Background(), entity.Credentials{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", result.Token)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, entity.RoleUser, result.User.Role)
}

func TestAuthAPI_LoginWithoutCredential(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"user":{"_id":"u1"}}`)
	})

	_, err := NewAuthAPI(client).AdminLogin(context.Background(), entity.Credentials{Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrBackendRejected)
}

func TestOrderAPI_CreateIntentAndVerify(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case "/create-order":
			assert.InDelta(t, 1180.0, body["amount"], 0.001)
			assert.Equal(t, "addr-b", body["addressId"])
			writeJSON(w, http.StatusOK, `{"success":true,"razorpayOrder":{"id":"order_X","amount":118000,"currency":"INR"}}`)
		case "/verify-payment":
			assert.Equal(t, "order_X", body["razorpay_order_id"])
			assert.Equal(t, "pay_1", body["razorpay_payment_id"])
			assert.Equal(t, "sig", body["razorpay_signature"])
			writeJSON(w, http.StatusOK, `{"success":true,"orderId":"ORD123"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	api := NewOrderAPI(client)

	intent, err := api.CreatePaymentIntent(context.Background(), "tok", 1180, "addr-b")
	require.NoError(t, err)
	assert.Equal(t, "order_X", intent.ID)
	assert.Equal(t, "INR", intent.Currency)

	orderID, err := api.VerifyPayment(context.Background(), "tok",
		entity.PaymentProof{IntentID: "order_X", PaymentID: "pay_1", Signature: "sig"}, "addr-b")
	require.NoError(t, err)
	assert.Equal(t, "ORD123", orderID)
}

func TestOrderAPI_GetOrderMapsFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order/my-orders/ORD123", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"order":{
			"_id":"ORD123",
			"items":[{"productId":{"_id":"p1","title":"Mug","productImages":["m.png"]},"quantity":2,"priceAtOrder":500}],
			"shippingAddress":{"name":"Asha","city":"Pune"},
			"totalAmount":1180,
			"paymentInfo":{"razorpay_payment_id":"pay_1","status":"paid"},
			"userId":{"_id":"u1","name":"Asha"}
		}}`)
	})

	order, err := NewOrderAPI(client).GetOrder(context.Background(), "tok", "ORD123")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Mug", order.Items[0].Title)
	assert.Equal(t, "m.png", order.Items[0].Image)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Asha", order.Customer.Name)
}

func TestCatalogAPI_ListProductsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shoe", r.URL.Query().Get("search"))
		assert.Equal(t, "footwear", r.URL.Query().Get("category"))
		writeJSON(w, http.StatusOK, `{"success":true,"products":[{"_id":"p1","title":"Runner","price":999}]}`)
	})

	products, err := NewCatalogAPI(client).ListProducts(context.Background(), "",
		entity.ProductQuery{Keyword: "shoe", Category: "footwear"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Runner", products[0].Title)
}
