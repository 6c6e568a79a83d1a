package order

import (
	"context"
	"log"
	"sync"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/pkg/gateway"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, creds *gateway.Credentials, userID string) (string, error)
		FetchOrders(ctx context.Context, creds *gateway.Credentials, userID string) ([]entities.Order, error)
		ConfirmDelivery(ctx context.Context, creds *gateway.Credentials, userID string, req domain.ConfirmDeliveryRequest) (string, error)
		Orders(userID string) []entities.Order
	}

	orderService struct {
		remote OrderRemote

		mu     sync.RWMutex
		orders map[string][]entities.Order
	}
)

func NewOrderService(remote OrderRemote) OrderService {
	return &orderService{
		remote: remote,
		orders: make(map[string][]entities.Order),
	}
}

// PlaceOrder submits the cart as an order and returns the payment redirect
// URL. A response without one is an error to surface, not a success.
func (s *orderService) PlaceOrder(ctx context.Context, creds *gateway.Credentials, userID string) (string, error) {
	res, err := s.remote.PlaceOrder(ctx, creds)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		return "", err
	}
	if res.PaystackURL == "" {
		return "", domain.ErrMissingPaymentURL
	}
	return res.PaystackURL, nil
}

// FetchOrders falls back to an empty list on failure so the orders view stays
// usable.
func (s *orderService) FetchOrders(ctx context.Context, creds *gateway.Credentials, userID string) ([]entities.Order, error) {
	orders, err := s.remote.FetchOrders(ctx, creds)
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		s.mu.Lock()
		s.orders[userID] = []entities.Order{}
		s.mu.Unlock()
		return []entities.Order{}, err
	}
	s.mu.Lock()
	s.orders[userID] = orders
	s.mu.Unlock()
	return orders, nil
}

// ConfirmDelivery reports the delivery to the backend; the local copy flips
// to delivered only after the call succeeds.
func (s *orderService) ConfirmDelivery(ctx context.Context, creds *gateway.Credentials, userID string, req domain.ConfirmDeliveryRequest) (string, error) {
	message, err := s.remote.ConfirmDelivery(ctx, creds, req)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	for i, o := range s.orders[userID] {
		if o.ID == req.OrderID {
			s.orders[userID][i].Status = domain.OrderStatusDelivered
		}
	}
	s.mu.Unlock()
	return message, nil
}

func (s *orderService) Orders(userID string) []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Order, len(s.orders[userID]))
	copy(out, s.orders[userID])
	return out
}
