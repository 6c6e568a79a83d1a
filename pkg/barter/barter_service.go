package barter

import (
	"context"
	"log"
	"sync"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/internal/utils/imaging"
	"techsell-web/internal/utils/storage"
	"techsell-web/pkg/gateway"
)

type (
	BarterService interface {
		FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error)
		Items() []entities.BarterItem
		ListItem(ctx context.Context, creds *gateway.Credentials, req domain.BarterListRequest) (*entities.BarterItem, error)
		DelistItem(ctx context.Context, creds *gateway.Credentials, itemID, actingUserID string) error
	}

	barterService struct {
		remote BarterRemote
		s3     storage.AwsS3

		mu    sync.RWMutex
		items []entities.BarterItem
	}
)

func NewBarterService(remote BarterRemote, s3 storage.AwsS3) BarterService {
	return &barterService{
		remote: remote,
		s3:     s3,
	}
}

func (s *barterService) FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error) {
	items, err := s.remote.FetchBarterItems(ctx, creds)
	if err != nil {
		log.Printf("Error fetching barter items: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return items, nil
}

func (s *barterService) Items() []entities.BarterItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.BarterItem, len(s.items))
	copy(out, s.items)
	return out
}

// ListItem normalizes the uploaded image, submits the listing, and appends
// the created item to the local list once the backend confirms.
func (s *barterService) ListItem(ctx context.Context, creds *gateway.Credentials, req domain.BarterListRequest) (*entities.BarterItem, error) {
	file, err := req.Image.Open()
	if err != nil {
		return nil, imaging.ErrImageDecode
	}
	defer file.Close()

	normalized, err := imaging.Normalize(file)
	if err != nil {
		return nil, err
	}

	image := normalized.DataURI()
	if s.s3.Enabled() {
		objectKey, err := s.s3.UploadBytes("barters", normalized.JPEG, "image/jpeg")
		if err != nil {
			log.Printf("Error uploading barter image: %v", err)
			return nil, err
		}
		image = s.s3.GetPublicLinkKey(objectKey)
	}

	item, err := s.remote.ListItem(ctx, creds, ListItemPayload{
		ItemName:              req.ItemName,
		Description:           req.Description,
		WantedItemDescription: req.WantedItemDescription,
		Phone:                 req.Phone,
		Image:                 image,
	})
	if err != nil {
		log.Printf("Error listing barter item: %v", err)
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *item)
	s.mu.Unlock()
	return item, nil
}

// DelistItem refuses before issuing any request unless the acting user owns
// the listing. The backend repeats the authoritative check.
func (s *barterService) DelistItem(ctx context.Context, creds *gateway.Credentials, itemID, actingUserID string) error {
	item, ok := s.findItem(itemID)
	if !ok {
		return domain.ErrBarterItemNotFound
	}
	if item.Owner != actingUserID {
		return domain.ErrNotItemOwner
	}

	if err := s.remote.DelistItem(ctx, creds, itemID); err != nil {
		log.Printf("Error delisting item: %v", err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

func (s *barterService) findItem(itemID string) (entities.BarterItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == itemID {
			return it, true
		}
	}
	return entities.BarterItem{}, false
}
