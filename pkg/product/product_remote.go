package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"techsell-web/entities"
	"techsell-web/pkg/gateway"
)

type (
	// ProductRemote issues catalog requests against the backend. It plays the
	// repository role; the service layers view state on top of it.
	ProductRemote interface {
		FetchProducts(ctx context.Context, creds *gateway.Credentials, limit, page int) ([]entities.Product, error)
		SearchProducts(ctx context.Context, creds *gateway.Credentials, keyword string) ([]entities.Product, error)
		FetchByCategory(ctx context.Context, creds *gateway.Credentials, category string) ([]entities.Product, error)
		FetchFeatured(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error)
		ListProduct(ctx context.Context, creds *gateway.Credentials, payload ListProductPayload) (*entities.Product, error)
	}

	productRemote struct {
		client *gateway.Client
	}

	// ListProductPayload is the JSON body for a seller upload; Image is the
	// normalized data URI or the hosted URL.
	ListProductPayload struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Image       string  `json:"image"`
	}
)

func NewProductRemote(client *gateway.Client) ProductRemote {
	return &productRemote{client: client}
}

func (r *productRemote) FetchProducts(ctx context.Context, creds *gateway.Credentials, limit, page int) ([]entities.Product, error) {
	var products []entities.Product
	path := fmt.Sprintf("/products?limit=%d&page=%d", limit, page)
	if err := r.client.Get(ctx, path, creds, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRemote) SearchProducts(ctx context.Context, creds *gateway.Credentials, keyword string) ([]entities.Product, error) {
	var raw json.RawMessage
	path := "/products/search?keyword=" + url.QueryEscape(keyword)
	if err := r.client.Get(ctx, path, creds, &raw); err != nil {
		return nil, err
	}
	return decodeProducts(raw)
}

func (r *productRemote) FetchByCategory(ctx context.Context, creds *gateway.Credentials, category string) ([]entities.Product, error) {
	var raw json.RawMessage
	path := "/products/search?category=" + url.QueryEscape(category)
	if err := r.client.Get(ctx, path, creds, &raw); err != nil {
		return nil, err
	}
	return decodeProducts(raw)
}

func (r *productRemote) FetchFeatured(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error) {
	var products []entities.Product
	if err := r.client.Get(ctx, "/products/featured", creds, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRemote) ListProduct(ctx context.Context, creds *gateway.Credentials, payload ListProductPayload) (*entities.Product, error) {
	var product entities.Product
	if err := r.client.Post(ctx, "/products/list-product", creds, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// decodeProducts tolerates both search response shapes the backend uses: a
// bare array and an object wrapping a products array.
func decodeProducts(raw json.RawMessage) ([]entities.Product, error) {
	if len(raw) == 0 {
		return []entities.Product{}, nil
	}

	var wrapped struct {
		Products []entities.Product `json:"products"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Products != nil {
		return wrapped.Products, nil
	}

	var products []entities.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}
