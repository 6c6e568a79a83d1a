package admin

import (
	"context"
	"log"
	"sync"

	"techsell-web/entities"
	"techsell-web/pkg/gateway"
)

type (
	// AdminService is the approval console state container. Approving an
	// entry removes it from the local pending list once the backend call
	// resolves.
	AdminService interface {
		FetchPendingProducts(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error)
		ApproveProduct(ctx context.Context, creds *gateway.Credentials, productID string) error
		FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error)
		DelistBarterItem(ctx context.Context, creds *gateway.Credentials, itemID string) error
		FetchPendingSellers(ctx context.Context, creds *gateway.Credentials) ([]entities.PendingSeller, error)
		ApproveSeller(ctx context.Context, creds *gateway.Credentials, sellerID string) error
		FetchPendingPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error)
		FetchApprovedPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error)
		ApproveDeliveryPersonnel(ctx context.Context, creds *gateway.Credentials, personnelID string) ([]entities.DeliveryPersonnel, error)
		PendingProducts() []entities.Product
		PendingSellers() []entities.PendingSeller
		PendingPersonnel() []entities.DeliveryPersonnel
		ApprovedPersonnel() []entities.DeliveryPersonnel
	}

	adminService struct {
		remote AdminRemote

		mu                sync.RWMutex
		pendingProducts   []entities.Product
		barterItems       []entities.BarterItem
		pendingSellers    []entities.PendingSeller
		pendingPersonnel  []entities.DeliveryPersonnel
		approvedPersonnel []entities.DeliveryPersonnel
	}
)

func NewAdminService(remote AdminRemote) AdminService {
	return &adminService{remote: remote}
}

func (s *adminService) FetchPendingProducts(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error) {
	products, err := s.remote.FetchPendingProducts(ctx, creds)
	if err != nil {
		log.Printf("Error fetching data: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.pendingProducts = products
	s.mu.Unlock()
	return products, nil
}

func (s *adminService) ApproveProduct(ctx context.Context, creds *gateway.Credentials, productID string) error {
	if err := s.remote.ApproveProduct(ctx, creds, productID); err != nil {
		log.Printf("Error approving product: %v", err)
		return err
	}
	s.mu.Lock()
	kept := s.pendingProducts[:0]
	for _, p := range s.pendingProducts {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	s.pendingProducts = kept
	s.mu.Unlock()
	return nil
}

func (s *adminService) FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error) {
	items, err := s.remote.FetchBarterItems(ctx, creds)
	if err != nil {
		log.Printf("Error fetching data: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.barterItems = items
	s.mu.Unlock()
	return items, nil
}

func (s *adminService) DelistBarterItem(ctx context.Context, creds *gateway.Credentials, itemID string) error {
	if err := s.remote.DelistBarterItem(ctx, creds, itemID); err != nil {
		log.Printf("Error deleting barter item: %v", err)
		return err
	}
	s.mu.Lock()
	kept := s.barterItems[:0]
	for _, it := range s.barterItems {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	s.barterItems = kept
	s.mu.Unlock()
	return nil
}

func (s *adminService) FetchPendingSellers(ctx context.Context, creds *gateway.Credentials) ([]entities.PendingSeller, error) {
	sellers, err := s.remote.FetchPendingSellers(ctx, creds)
	if err != nil {
		log.Printf("Error fetching data: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.pendingSellers = sellers
	s.mu.Unlock()
	return sellers, nil
}

func (s *adminService) ApproveSeller(ctx context.Context, creds *gateway.Credentials, sellerID string) error {
	if err := s.remote.ApproveSeller(ctx, creds, sellerID); err != nil {
		log.Printf("Error approving seller: %v", err)
		return err
	}
	s.mu.Lock()
	kept := s.pendingSellers[:0]
	for _, sl := range s.pendingSellers {
		if sl.ID != sellerID {
			kept = append(kept, sl)
		}
	}
	s.pendingSellers = kept
	s.mu.Unlock()
	return nil
}

func (s *adminService) FetchPendingPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error) {
	personnel, err := s.remote.FetchPendingPersonnel(ctx, creds)
	if err != nil {
		log.Printf("Error fetching data: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.pendingPersonnel = personnel
	s.mu.Unlock()
	return personnel, nil
}

func (s *adminService) FetchApprovedPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error) {
	personnel, err := s.remote.FetchApprovedPersonnel(ctx, creds)
	if err != nil {
		log.Printf("Error fetching data: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.approvedPersonnel = personnel
	s.mu.Unlock()
	return personnel, nil
}

// ApproveDeliveryPersonnel removes the entry from the pending list and then
// re-fetches the approved roster so the console shows the promotion.
func (s *adminService) ApproveDeliveryPersonnel(ctx context.Context, creds *gateway.Credentials, personnelID string) ([]entities.DeliveryPersonnel, error) {
	if err := s.remote.ApproveDeliveryPersonnel(ctx, creds, personnelID); err != nil {
		log.Printf("Error approving delivery personnel: %v", err)
		return nil, err
	}

	s.mu.Lock()
	kept := s.pendingPersonnel[:0]
	for _, p := range s.pendingPersonnel {
		if p.ID != personnelID {
			kept = append(kept, p)
		}
	}
	s.pendingPersonnel = kept
	s.mu.Unlock()

	return s.FetchApprovedPersonnel(ctx, creds)
}

func (s *adminService) PendingProducts() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Product, len(s.pendingProducts))
	copy(out, s.pendingProducts)
	return out
}

func (s *adminService) PendingSellers() []entities.PendingSeller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.PendingSeller, len(s.pendingSellers))
	copy(out, s.pendingSellers)
	return out
}

func (s *adminService) PendingPersonnel() []entities.DeliveryPersonnel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.DeliveryPersonnel, len(s.pendingPersonnel))
	copy(out, s.pendingPersonnel)
	return out
}

func (s *adminService) ApprovedPersonnel() []entities.DeliveryPersonnel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.DeliveryPersonnel, len(s.approvedPersonnel))
	copy(out, s.approvedPersonnel)
	return out
}
