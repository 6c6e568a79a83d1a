package barter

import (
	"context"

	"techsell-web/entities"
	"techsell-web/pkg/gateway"
)

type (
	BarterRemote interface {
		FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error)
		ListItem(ctx context.Context, creds *gateway.Credentials, payload ListItemPayload) (*entities.BarterItem, error)
		DelistItem(ctx context.Context, creds *gateway.Credentials, itemID string) error
	}

	barterRemote struct {
		client *gateway.Client
	}

	ListItemPayload struct {
		ItemName              string `json:"itemName"`
		Description           string `json:"description"`
		WantedItemDescription string `json:"wantedItemDescription"`
		Phone                 string `json:"phone"`
		Image                 string `json:"image"`
	}
)

func NewBarterRemote(client *gateway.Client) BarterRemote {
	return &barterRemote{client: client}
}

func (r *barterRemote) FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error) {
	var items []entities.BarterItem
	if err := r.client.Get(ctx, "/barter", creds, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *barterRemote) ListItem(ctx context.Context, creds *gateway.Credentials, payload ListItemPayload) (*entities.BarterItem, error) {
	var item entities.BarterItem
	if err := r.client.Post(ctx, "/barter/list-item", creds, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *barterRemote) DelistItem(ctx context.Context, creds *gateway.Credentials, itemID string) error {
	return r.client.Patch(ctx, "/barter/delist/"+itemID, creds, nil, nil)
}
