package order

import (
	"context"
	"errors"
	"testing"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/pkg/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRemote struct {
	placeRes *domain.PlaceOrderResponse
	orders   []entities.Order
	message  string
	err      error
}

func (f *fakeOrderRemote) PlaceOrder(ctx context.Context, creds *gateway.Credentials) (*domain.PlaceOrderResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.placeRes, nil
}

func (f *fakeOrderRemote) FetchOrders(ctx context.Context, creds *gateway.Credentials) ([]entities.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f *fakeOrderRemote) ConfirmDelivery(ctx context.Context, creds *gateway.Credentials, req domain.ConfirmDeliveryRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.message, nil
}

func TestPlaceOrderReturnsPaymentURL(t *testing.T) {
	remote := &fakeOrderRemote{placeRes: &domain.PlaceOrderResponse{PaystackURL: "https://pay.example/tx123"}}
	svc := NewOrderService(remote)

	url, err := svc.PlaceOrder(context.Background(), nil, "u1")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/tx123", url)
}

func TestPlaceOrderWithoutPaymentURLIsAnError(t *testing.T) {
	remote := &fakeOrderRemote{placeRes: &domain.PlaceOrderResponse{Message: "ok"}}
	svc := NewOrderService(remote)

	_, err := svc.PlaceOrder(context.Background(), nil, "u1")
	assert.ErrorIs(t, err, domain.ErrMissingPaymentURL)
}

func TestFetchOrdersFallsBackToEmptyList(t *testing.T) {
	remote := &fakeOrderRemote{err: errors.New("backend down")}
	svc := NewOrderService(remote)

	orders, err := svc.FetchOrders(context.Background(), nil, "u1")
	assert.Error(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
	assert.Empty(t, svc.Orders("u1"))
}

func TestConfirmDeliveryPatchesLocalOrder(t *testing.T) {
	remote := &fakeOrderRemote{
		orders: []entities.Order{
			{ID: "o1", Status: domain.OrderStatusPending},
			{ID: "o2", Status: domain.OrderStatusPending},
		},
		message: domain.MessageSuccessConfirmDelivery,
	}
	svc := NewOrderService(remote)

	_, err := svc.FetchOrders(context.Background(), nil, "u1")
	require.NoError(t, err)

	message, err := svc.ConfirmDelivery(context.Background(), nil, "u1", domain.ConfirmDeliveryRequest{OrderID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, domain.MessageSuccessConfirmDelivery, message)

	orders := svc.Orders("u1")
	assert.Equal(t, domain.OrderStatusDelivered, orders[0].Status)
	assert.Equal(t, domain.OrderStatusPending, orders[1].Status)
}

func TestConfirmDeliveryFailureLeavesOrdersUntouched(t *testing.T) {
	remote := &fakeOrderRemote{orders: []entities.Order{{ID: "o1", Status: domain.OrderStatusPending}}}
	svc := NewOrderService(remote)
	_, err := svc.FetchOrders(context.Background(), nil, "u1")
	require.NoError(t, err)

	remote.err = errors.New("backend down")
	_, err = svc.ConfirmDelivery(context.Background(), nil, "u1", domain.ConfirmDeliveryRequest{OrderID: "o1"})
	assert.Error(t, err)
	assert.Equal(t, domain.OrderStatusPending, svc.Orders("u1")[0].Status)
}
