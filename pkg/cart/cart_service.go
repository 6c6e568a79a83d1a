package cart

import (
	"context"
	"log"
	"math"
	"sync"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/pkg/gateway"
)

type (
	// CartService is the cart state container, keyed by user. Lines are
	// patched locally only after the backend call resolves; failures are
	// logged and surfaced, never reconciled.
	CartService interface {
		AddToCart(ctx context.Context, creds *gateway.Credentials, userID, productID string) (*entities.CartItem, error)
		FetchCart(ctx context.Context, creds *gateway.Credentials, userID string) ([]entities.CartItem, error)
		UpdateQuantity(ctx context.Context, creds *gateway.Credentials, userID, cartItemID string, quantity int) error
		ClearItem(ctx context.Context, creds *gateway.Credentials, userID, cartItemID string) error
		DeleteCart(ctx context.Context, creds *gateway.Credentials, userID string) error
		Items(userID string) []entities.CartItem
		Totals(userID string) domain.CartTotals
	}

	cartService struct {
		remote CartRemote

		mu    sync.RWMutex
		carts map[string][]entities.CartItem
	}
)

func NewCartService(remote CartRemote) CartService {
	return &cartService{
		remote: remote,
		carts:  make(map[string][]entities.CartItem),
	}
}

func (s *cartService) AddToCart(ctx context.Context, creds *gateway.Credentials, userID, productID string) (*entities.CartItem, error) {
	item, err := s.remote.AddToCart(ctx, creds, productID)
	if err != nil {
		log.Printf("Error adding to cart: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.carts[userID] = append(s.carts[userID], *item)
	s.mu.Unlock()
	return item, nil
}

func (s *cartService) FetchCart(ctx context.Context, creds *gateway.Credentials, userID string) ([]entities.CartItem, error) {
	items, err := s.remote.FetchCart(ctx, creds)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.carts[userID] = items
	s.mu.Unlock()
	return items, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, creds *gateway.Credentials, userID, cartItemID string, quantity int) error {
	if err := s.remote.UpdateQuantity(ctx, creds, cartItemID, quantity); err != nil {
		log.Printf("Error updating quantity: %v", err)
		return err
	}
	s.mu.Lock()
	for i, item := range s.carts[userID] {
		if item.ID == cartItemID {
			s.carts[userID][i].Quantity = quantity
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *cartService) ClearItem(ctx context.Context, creds *gateway.Credentials, userID, cartItemID string) error {
	if err := s.remote.DeleteItem(ctx, creds, cartItemID); err != nil {
		log.Printf("Error deleting item: %v", err)
		return err
	}
	s.mu.Lock()
	kept := s.carts[userID][:0]
	for _, item := range s.carts[userID] {
		if item.ID != cartItemID {
			kept = append(kept, item)
		}
	}
	s.carts[userID] = kept
	s.mu.Unlock()
	return nil
}

func (s *cartService) DeleteCart(ctx context.Context, creds *gateway.Credentials, userID string) error {
	if err := s.remote.DeleteCart(ctx, creds); err != nil {
		log.Printf("Error deleting cart: %v", err)
		return err
	}
	s.mu.Lock()
	s.carts[userID] = nil
	s.mu.Unlock()
	return nil
}

func (s *cartService) Items(userID string) []entities.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.CartItem, len(s.carts[userID]))
	copy(out, s.carts[userID])
	return out
}

// Totals derives the amounts from the current lines on every call; nothing is
// cached across mutations. Arithmetic runs in integer cents so sums cannot
// drift.
func (s *cartService) Totals(userID string) domain.CartTotals {
	items := s.Items(userID)

	var subtotalCents int64
	for _, item := range items {
		subtotalCents += priceCents(item.Product.Price) * int64(item.Quantity)
	}

	var feeCents int64
	if len(items) > 0 {
		feeCents = domain.DeliveryFeeCents
	}

	return domain.CartTotals{
		Subtotal:    centsToAmount(subtotalCents),
		DeliveryFee: centsToAmount(feeCents),
		Total:       centsToAmount(subtotalCents + feeCents),
	}
}

func priceCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
