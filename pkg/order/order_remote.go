package order

import (
	"context"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/pkg/gateway"
)

type (
	OrderRemote interface {
		PlaceOrder(ctx context.Context, creds *gateway.Credentials) (*domain.PlaceOrderResponse, error)
		FetchOrders(ctx context.Context, creds *gateway.Credentials) ([]entities.Order, error)
		ConfirmDelivery(ctx context.Context, creds *gateway.Credentials, req domain.ConfirmDeliveryRequest) (string, error)
	}

	orderRemote struct {
		client *gateway.Client
	}

	ordersResponse struct {
		Orders []entities.Order `json:"orders"`
	}

	confirmDeliveryResponse struct {
		Message string `json:"message"`
	}
)

func NewOrderRemote(client *gateway.Client) OrderRemote {
	return &orderRemote{client: client}
}

func (r *orderRemote) PlaceOrder(ctx context.Context, creds *gateway.Credentials) (*domain.PlaceOrderResponse, error) {
	var res domain.PlaceOrderResponse
	if err := r.client.Post(ctx, "/order/place-order", creds, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *orderRemote) FetchOrders(ctx context.Context, creds *gateway.Credentials) ([]entities.Order, error) {
	var res ordersResponse
	if err := r.client.Get(ctx, "/order/my-orders", creds, &res); err != nil {
		return nil, err
	}
	if res.Orders == nil {
		return []entities.Order{}, nil
	}
	return res.Orders, nil
}

func (r *orderRemote) ConfirmDelivery(ctx context.Context, creds *gateway.Credentials, req domain.ConfirmDeliveryRequest) (string, error) {
	var res confirmDeliveryResponse
	if err := r.client.Patch(ctx, "/order/confirm-delivery", creds, req, &res); err != nil {
		return "", err
	}
	if res.Message == "" {
		res.Message = domain.MessageSuccessConfirmDelivery
	}
	return res.Message, nil
}
