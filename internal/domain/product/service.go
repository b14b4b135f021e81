// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/infrastructure/remote"
	"golang.org/x/sync/errgroup"
)

// Service handles catalog reads against the remote products collection
type Service struct {
	client *remote.Client
	log    *logrus.Logger
}

// NewService creates a new catalog service
func NewService(client *remote.Client, log *logrus.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// List fetches the full, unpaginated product collection
func (s *Service) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.client.Get(ctx, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// Get fetches a single product by id
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := s.client.Get(ctx, "/products/"+id, nil, &p); err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &p, nil
}

// GetMany fetches product details for the given ids concurrently and
// returns them keyed by id. The lookups are issued together and awaited
// jointly; the first failure cancels the remaining fetches and fails the
// whole call.
func (s *Service) GetMany(ctx context.Context, ids []string) (map[string]Product, error) {
	results := make([]*Product, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			p, err := s.Get(ctx, id)
			if err != nil {
				return err
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	details := make(map[string]Product, len(ids))
	for _, p := range results {
		details[p.ID] = *p
	}
	return details, nil
}
