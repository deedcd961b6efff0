package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// The interfaces below are the remote storefront backend as the BFF sees it.
// Every call that acts on behalf of a shopper takes the backend credential of
// the session explicitly; nothing is read from ambient state.

// AuthResult is a successful sign-in: who signed in and the backend credential
// to forward on their behalf.
type AuthResult struct {
	User  entity.User
	Token string
}

// AuthAPI authenticates against the backend and edits the account.
type AuthAPI interface {
	Register(ctx context.Context, reg entity.Registration) (*AuthResult, error)
	Login(ctx context.Context, creds entity.Credentials) (*AuthResult, error)
	AdminLogin(ctx context.Context, creds entity.Credentials) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	// UpdateProfile uses the id-scoped route for admins and the self route otherwise.
	UpdateProfile(ctx context.Context, token string, user entity.User, fields entity.ProfileFields) (*entity.User, error)
	ChangePassword(ctx context.Context, token string, user entity.User, change entity.PasswordChange) error
}

// CatalogAPI reads products and reviews.
type CatalogAPI interface {
	ListProducts(ctx context.Context, token string, query entity.ProductQuery) ([]entity.Product, error)
	GetProduct(ctx context.Context, token, productID string) (*entity.Product, error)
	GetReviews(ctx context.Context, productID string) ([]entity.Review, error)
	AddReview(ctx context.Context, token string, input entity.ReviewInput) error
	HomeData(ctx context.Context) (*entity.HomeData, error)
	SearchSuggestions(ctx context.Context, keyword string) ([]string, error)
}

// CartAPI manipulates the server-held cart.
type CartAPI interface {
	GetCart(ctx context.Context, token string) ([]entity.CartLine, error)
	// AddToCart returns the cart as it stands after the add.
	AddToCart(ctx context.Context, token, productID string, quantity int) ([]entity.CartLine, error)
	IncreaseQuantity(ctx context.Context, token, productID string) error
	DecreaseQuantity(ctx context.Context, token, productID string) error
	RemoveItem(ctx context.Context, token, productID string) error
}

// AddressAPI manages saved addresses. Mutations return the full list afterwards.
type AddressAPI interface {
	ListAddresses(ctx context.Context, token string) ([]entity.Address, error)
	AddAddress(ctx context.Context, token string, fields entity.AddressFields) ([]entity.Address, error)
	UpdateAddress(ctx context.Context, token, addressID string, fields entity.AddressFields) ([]entity.Address, error)
	DeleteAddress(ctx context.Context, token, addressID string) ([]entity.Address, error)
	SetDefaultAddress(ctx context.Context, token, addressID string) ([]entity.Address, error)
}

// OrderAPI creates payment intents, verifies payments and reads orders.
type OrderAPI interface {
	CreatePaymentIntent(ctx context.Context, token string, amount int64, addressID string) (*entity.PaymentIntent, error)
	// VerifyPayment returns the id of the order the backend created.
	VerifyPayment(ctx context.Context, token string, proof entity.PaymentProof, addressID string) (string, error)
	ListMyOrders(ctx context.Context, token string) ([]entity.Order, error)
	GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error)
}

// WishlistAPI reads and toggles wishlist entries.
type WishlistAPI interface {
	GetWishlist(ctx context.Context, token string) ([]entity.Product, error)
	// ToggleWishlist returns the backend's human-readable outcome.
	ToggleWishlist(ctx context.Context, token, productID string) (string, error)
}

// AdminAPI is the back-office surface.
type AdminAPI interface {
	ListUsers(ctx context.Context, token string) ([]entity.User, error)
	DeleteUser(ctx context.Context, token, userID string) error
	CreateProduct(ctx context.Context, token string, input entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, token, productID string, input entity.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, token, productID string) error
	ListAllOrders(ctx context.Context, token string) ([]entity.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status entity.OrderStatus) error
	ListAllReviews(ctx context.Context, token string) ([]entity.Review, error)
	DeleteReview(ctx context.Context, token, reviewID string) error
	DashboardSummary(ctx context.Context, token string) (*entity.DashboardStats, error)
}
