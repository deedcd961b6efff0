package handler

import (
	"net/http"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves products, reviews and the landing page.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ListProducts handles GET /products?search=&category=&minPrice=&maxPrice=&sort=&page=
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	query, err := bindProductQuery(c)
	if err != nil {
		return response.BindingError(c, "Invalid product query")
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func bindProductQuery(c echo.Context) (entity.ProductQuery, error) {
	var (
		query    entity.ProductQuery
		minPrice float64
		maxPrice float64
	)

	err := echo.QueryParamsBinder(c).
		String("search", &query.Keyword).
		String("category", &query.Category).
		Float64("minPrice", &minPrice).
		Float64("maxPrice", &maxPrice).
		String("sort", &query.Sort).
		Int("page", &query.Page).
		BindError()
	if err != nil {
		return entity.ProductQuery{}, err
	}

	if c.QueryParam("minPrice") != "" {
		query.MinPrice = &minPrice
	}
	if c.QueryParam("maxPrice") != "" {
		query.MaxPrice = &maxPrice
	}

	return query, nil
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetReviews handles GET /products/:id/reviews
func (h *CatalogHandler) GetReviews(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.GetReviews(c.Request().Context(), c.Param("id")))
}

// AddReview handles POST /products/:id/reviews
func (h *CatalogHandler) AddReview(c echo.Context) error {
	session, err := middleware.MustSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req entity.ReviewInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	req.ProductID = c.Param("id")
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	reviews, err := h.catalogUC.AddReview(c.Request().Context(), session, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reviews)
}

// Home handles GET /home
func (h *CatalogHandler) Home(c echo.Context) error {
	home, err := h.catalogUC.HomeData(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, home)
}

// Suggestions handles GET /search/suggestions?keyword=
func (h *CatalogHandler) Suggestions(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("keyword"))

	return response.Success(c, http.StatusOK, h.catalogUC.SearchSuggestions(c.Request().Context(), keyword))
}
