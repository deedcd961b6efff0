package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// minSuggestionLength is the shortest keyword the backend is asked to complete.
const minSuggestionLength = 2

type catalogAPI struct {
	client *Client
}

// NewCatalogAPI exposes the product and review routes of the backend.
func NewCatalogAPI(client *Client) service.CatalogAPI {
	return &catalogAPI{client: client}
}

func (a *catalogAPI) ListProducts(ctx context.Context, token string, query entity.ProductQuery) ([]entity.Product, error) {
	var resp struct {
		Products []productDTO `json:"products"`
	}
	if err := a.client.get(ctx, "/get-all-products", token, query.Values(), &resp); err != nil {
		return nil, err
	}

	return toProducts(resp.Products), nil
}

func (a *catalogAPI) GetProduct(ctx context.Context, token, productID string) (*entity.Product, error) {
	var resp struct {
		Product productDTO `json:"product"`
	}
	if err := a.client.get(ctx, "/single-product/"+url.PathEscape(productID), token, nil, &resp); err != nil {
		return nil, err
	}
	product := resp.Product.toEntity()

	return &product, nil
}

func (a *catalogAPI) GetReviews(ctx context.Context, productID string) ([]entity.Review, error) {
	var resp struct {
		Reviews []reviewDTO `json:"reviews"`
	}
	if err := a.client.get(ctx, "/product/review/"+url.PathEscape(productID), "", nil, &resp); err != nil {
		return nil, err
	}

	return toReviews(resp.Reviews), nil
}

func (a *catalogAPI) AddReview(ctx context.Context, token string, input entity.ReviewInput) error {
	return a.client.call(ctx, http.MethodPut, "/add/review", token, input, nil)
}

func (a *catalogAPI) HomeData(ctx context.Context) (*entity.HomeData, error) {
	var resp struct {
		Data homeDTO `json:"data"`
	}
	if err := a.client.get(ctx, "/home-config/product", "", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data.toEntity(), nil
}

func (a *catalogAPI) SearchSuggestions(ctx context.Context, keyword string) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	if len([]rune(keyword)) < minSuggestionLength {
		return []string{}, nil
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := a.client.get(ctx, "/search-suggestions", "", url.Values{"keyword": {keyword}}, &resp); err != nil {
		return nil, err
	}
	if resp.Suggestions == nil {
		return []string{}, nil
	}

	return resp.Suggestions, nil
}
