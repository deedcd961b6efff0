// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	AddressHandler  *handler.AddressHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	WishlistHandler *handler.WishlistHandler
	AdminHandler    *handler.AdminHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	catalog        *handler.CatalogHandler
	cart           *handler.CartHandler
	address        *handler.AddressHandler
	checkout       *handler.CheckoutHandler
	order          *handler.OrderHandler
	wishlist       *handler.WishlistHandler
	admin          *handler.AdminHandler
	test           *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		catalog:        params.CatalogHandler,
		cart:           params.CartHandler,
		address:        params.AddressHandler,
		checkout:       params.CheckoutHandler,
		order:          params.OrderHandler,
		wishlist:       params.WishlistHandler,
		admin:          params.AdminHandler,
		test:           params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", handler.HealthCheck)

	// Public routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/admin/login", r.auth.AdminLogin)
	}
	apiV1.GET("/products", r.catalog.ListProducts)
	apiV1.GET("/products/:id", r.catalog.GetProduct)
	apiV1.GET("/products/:id/reviews", r.catalog.GetReviews)
	apiV1.GET("/home", r.catalog.Home)
	apiV1.GET("/search/suggestions", r.catalog.Suggestions)

	// Everything below needs a signed-in session
	private := apiV1.Group("", r.authMiddleware.Authenticate)

	accountGroup := private.Group("/auth")
	{
		accountGroup.POST("/logout", r.auth.Logout)
		accountGroup.GET("/me", r.auth.Me)
		accountGroup.PUT("/profile", r.auth.UpdateProfile)
		accountGroup.PUT("/password", r.auth.ChangePassword)
	}

	private.POST("/products/:id/reviews", r.catalog.AddReview)

	cartGroup := private.Group("/cart")
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.POST("/items", r.cart.AddItem)
		cartGroup.POST("/items/:productId/increase", r.cart.Increase)
		cartGroup.POST("/items/:productId/decrease", r.cart.Decrease)
		cartGroup.DELETE("/items/:productId", r.cart.RemoveItem)
	}

	addressGroup := private.Group("/addresses")
	{
		addressGroup.GET("", r.address.ListAddresses)
		addressGroup.POST("", r.address.AddAddress)
		addressGroup.PUT("/:id", r.address.UpdateAddress)
		addressGroup.DELETE("/:id", r.address.RemoveAddress)
		addressGroup.PUT("/:id/default", r.address.SetDefault)
	}

	checkoutGroup := private.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkout.Begin)
		checkoutGroup.GET("", r.checkout.View)
		checkoutGroup.PUT("/address", r.checkout.SelectAddress)
		checkoutGroup.POST("/pay", r.checkout.Pay)
		checkoutGroup.POST("/payment/success", r.checkout.PaymentSuccess)
		checkoutGroup.POST("/payment/failure", r.checkout.PaymentFailure)
	}

	orderGroup := private.Group("/orders")
	{
		orderGroup.GET("", r.order.ListOrders)
		orderGroup.GET("/confirmation", r.order.Confirmation)
		orderGroup.DELETE("/confirmation", r.order.LeaveConfirmation)
		orderGroup.GET("/:id", r.order.GetOrder)
		orderGroup.GET("/:id/qr", r.order.TrackingQR)
	}

	wishlistGroup := private.Group("/wishlist")
	{
		wishlistGroup.GET("", r.wishlist.GetWishlist)
		wishlistGroup.POST("/:productId/toggle", r.wishlist.Toggle)
	}

	adminGroup := private.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.admin.Dashboard)

		adminGroup.GET("/users", r.admin.ListUsers)
		adminGroup.DELETE("/users/:id", r.admin.DeleteUser)

		adminGroup.GET("/products", r.admin.ListProducts)
		adminGroup.POST("/products", r.admin.CreateProduct)
		adminGroup.GET("/products/:id", r.admin.GetProduct)
		adminGroup.PUT("/products/:id", r.admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.admin.DeleteProduct)

		adminGroup.GET("/orders", r.admin.ListOrders)
		adminGroup.PUT("/orders/:id/status", r.admin.UpdateOrderStatus)

		adminGroup.GET("/reviews", r.admin.ListReviews)
		adminGroup.DELETE("/reviews/:id", r.admin.DeleteReview)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.test.TestPublicEndpoint)
	testGroup.GET("/auth", r.test.TestAuthMiddleware, r.authMiddleware.Authenticate)
}
