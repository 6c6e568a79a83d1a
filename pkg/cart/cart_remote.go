package cart

import (
	"context"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/pkg/gateway"
)

type (
	CartRemote interface {
		AddToCart(ctx context.Context, creds *gateway.Credentials, productID string) (*entities.CartItem, error)
		FetchCart(ctx context.Context, creds *gateway.Credentials) ([]entities.CartItem, error)
		UpdateQuantity(ctx context.Context, creds *gateway.Credentials, cartItemID string, quantity int) error
		DeleteItem(ctx context.Context, creds *gateway.Credentials, cartItemID string) error
		DeleteCart(ctx context.Context, creds *gateway.Credentials) error
	}

	cartRemote struct {
		client *gateway.Client
	}
)

func NewCartRemote(client *gateway.Client) CartRemote {
	return &cartRemote{client: client}
}

func (r *cartRemote) AddToCart(ctx context.Context, creds *gateway.Credentials, productID string) (*entities.CartItem, error) {
	var item entities.CartItem
	body := domain.AddToCartRequest{ProductID: productID}
	if err := r.client.Post(ctx, "/cart/add", creds, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRemote) FetchCart(ctx context.Context, creds *gateway.Credentials) ([]entities.CartItem, error) {
	var items []entities.CartItem
	if err := r.client.Get(ctx, "/cart", creds, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRemote) UpdateQuantity(ctx context.Context, creds *gateway.Credentials, cartItemID string, quantity int) error {
	body := domain.UpdateQuantityRequest{Quantity: quantity}
	return r.client.Patch(ctx, "/cart/update/"+cartItemID, creds, body, nil)
}

func (r *cartRemote) DeleteItem(ctx context.Context, creds *gateway.Credentials, cartItemID string) error {
	return r.client.Delete(ctx, "/cart/delete/"+cartItemID, creds, nil)
}

func (r *cartRemote) DeleteCart(ctx context.Context, creds *gateway.Credentials) error {
	return r.client.Delete(ctx, "/cart/delete", creds, nil)
}
