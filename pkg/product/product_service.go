package product

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
	ProductService interface {
		FetchProducts(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error)
		Products() []entities.Product
		SearchProducts(ctx context.Context, creds *gateway.Credentials, keyword string) ([]entities.Product, error)
		SearchResults() []entities.Product
		FetchByCategory(ctx context.Context, creds *gateway.Credentials, category string) ([]entities.Product, error)
		FetchFeatured(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error)
		ListProduct(ctx context.Context, creds *gateway.Credentials, req domain.ListProductRequest) (*entities.Product, error)
	}

	productService struct {
		remote ProductRemote
		s3     storage.AwsS3

		mu            sync.RWMutex
		products      []entities.Product
		searchResults []entities.Product
	}
)

func NewProductService(remote ProductRemote, s3 storage.AwsS3) ProductService {
	return &productService{
		remote: remote,
		s3:     s3,
	}
}

func (s *productService) FetchProducts(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error) {
	products, err := s.remote.FetchProducts(ctx, creds, domain.DefaultProductLimit, domain.DefaultProductPage)
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return products, nil
}

func (s *productService) Products() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Product, len(s.products))
	copy(out, s.products)
	return out
}

// SearchProducts runs a keyword search; an empty keyword just clears the
// cached results.
func (s *productService) SearchProducts(ctx context.Context, creds *gateway.Credentials, keyword string) ([]entities.Product, error) {
	if keyword == "" {
		s.mu.Lock()
		s.searchResults = nil
		s.mu.Unlock()
		return []entities.Product{}, nil
	}

	results, err := s.remote.SearchProducts(ctx, creds, keyword)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return nil, err
	}
	s.mu.Lock()
	s.searchResults = results
	s.mu.Unlock()
	return results, nil
}

func (s *productService) SearchResults() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Product, len(s.searchResults))
	copy(out, s.searchResults)
	return out
}

func (s *productService) FetchByCategory(ctx context.Context, creds *gateway.Credentials, category string) ([]entities.Product, error) {
	products, err := s.remote.FetchByCategory(ctx, creds, category)
	if err != nil {
		log.Printf("Error fetching products by category: %v", err)
		return nil, err
	}
	return products, nil
}

func (s *productService) FetchFeatured(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error) {
	products, err := s.remote.FetchFeatured(ctx, creds)
	if err != nil {
		log.Printf("Error fetching featured products: %v", err)
		return nil, err
	}
	return products, nil
}

// ListProduct normalizes the uploaded image and submits the listing. When S3
// hosting is configured the normalized JPEG is uploaded and its public URL is
// submitted; otherwise the data URI is embedded in the request body.
func (s *productService) ListProduct(ctx context.Context, creds *gateway.Credentials, req domain.ListProductRequest) (*entities.Product, error) {
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
		objectKey, err := s.s3.UploadBytes("products", normalized.JPEG, "image/jpeg")
		if err != nil {
			log.Printf("Error uploading product image: %v", err)
			return nil, err
		}
		image = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.remote.ListProduct(ctx, creds, ListProductPayload{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Image:       image,
	})
}
