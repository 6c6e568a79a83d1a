package admin

import (
	"context"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/pkg/gateway"
)

type (
	AdminRemote interface {
		FetchPendingProducts(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error)
		ApproveProduct(ctx context.Context, creds *gateway.Credentials, productID string) error
		FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error)
		DelistBarterItem(ctx context.Context, creds *gateway.Credentials, itemID string) error
		FetchPendingSellers(ctx context.Context, creds *gateway.Credentials) ([]entities.PendingSeller, error)
		ApproveSeller(ctx context.Context, creds *gateway.Credentials, sellerID string) error
		FetchPendingPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error)
		FetchApprovedPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error)
		ApproveDeliveryPersonnel(ctx context.Context, creds *gateway.Credentials, personnelID string) error
	}

	adminRemote struct {
		client *gateway.Client
	}

	pendingProductsResponse struct {
		Products []entities.Product `json:"products"`
	}

	pendingSellersResponse struct {
		Sellers []entities.PendingSeller `json:"sellers"`
	}

	personnelResponse struct {
		DeliveryPersonnel []entities.DeliveryPersonnel `json:"deliveryPersonnel"`
	}
)

func NewAdminRemote(client *gateway.Client) AdminRemote {
	return &adminRemote{client: client}
}

func (r *adminRemote) FetchPendingProducts(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error) {
	var res pendingProductsResponse
	if err := r.client.Get(ctx, "/admin/products/pending", creds, &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (r *adminRemote) ApproveProduct(ctx context.Context, creds *gateway.Credentials, productID string) error {
	body := domain.ApprovalRequest{Status: domain.StatusApproved}
	return r.client.Patch(ctx, "/admin/product/"+productID, creds, body, nil)
}

func (r *adminRemote) FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error) {
	var items []entities.BarterItem
	if err := r.client.Get(ctx, "/barter", creds, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *adminRemote) DelistBarterItem(ctx context.Context, creds *gateway.Credentials, itemID string) error {
	return r.client.Delete(ctx, "/admin/admin-delist-barter/"+itemID, creds, nil)
}

func (r *adminRemote) FetchPendingSellers(ctx context.Context, creds *gateway.Credentials) ([]entities.PendingSeller, error) {
	var res pendingSellersResponse
	if err := r.client.Get(ctx, "/admin/pending-seller", creds, &res); err != nil {
		return nil, err
	}
	return res.Sellers, nil
}

func (r *adminRemote) ApproveSeller(ctx context.Context, creds *gateway.Credentials, sellerID string) error {
	body := domain.ApprovalRequest{Status: domain.StatusApproved}
	return r.client.Patch(ctx, "/admin/approve-seller/"+sellerID, creds, body, nil)
}

func (r *adminRemote) FetchPendingPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error) {
	var res personnelResponse
	if err := r.client.Get(ctx, "/admin/pending-delivery-personnel", creds, &res); err != nil {
		return nil, err
	}
	return res.DeliveryPersonnel, nil
}

func (r *adminRemote) FetchApprovedPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error) {
	var res personnelResponse
	if err := r.client.Get(ctx, "/admin/approved-delivery-personnel", creds, &res); err != nil {
		return nil, err
	}
	return res.DeliveryPersonnel, nil
}

func (r *adminRemote) ApproveDeliveryPersonnel(ctx context.Context, creds *gateway.Credentials, personnelID string) error {
	body := domain.ApprovalRequest{Status: domain.StatusApproved}
	return r.client.Patch(ctx, "/admin/approve/delivery-personnel/"+personnelID, creds, body, nil)
}
