// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/infrastructure/remote"
	"github.com/your-org/storefront/internal/pkg/errs"
)

// Service reconciles add/remove requests into the remote cart record.
// Every mutation is two-phase: the merged state is computed on a copy
// and only adopted once the remote write has succeeded, so a failed
// write leaves the caller's cart untouched.
type Service struct {
	client *remote.Client
	log    *logrus.Logger
}

// NewService creates a new cart service
func NewService(client *remote.Client, log *logrus.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// GetByUser returns the user's active cart, or nil when none exists.
// The collection is listed with a user_id filter and the first match is
// taken; uniqueness is a client-side convention.
func (s *Service) GetByUser(ctx context.Context, userID string) (*Cart, error) {
	if userID == "" {
		return nil, fmt.Errorf("cart lookup requires a user: %w", errs.ErrNotAuthenticated)
	}

	query := url.Values{}
	query.Set("user_id", userID)

	var carts []Cart
	if err := s.client.Get(ctx, "/cart", query, &carts); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if len(carts) == 0 {
		return nil, nil
	}
	return &carts[0], nil
}

// AddToCart merges one unit of the product into the current cart and
// persists the result. With no current cart a new record is created and
// the server-assigned id adopted; otherwise the merged cart is written
// back as a full replace.
func (s *Service) AddToCart(ctx context.Context, p *product.Product, current *Cart, userID string) (*Cart, error) {
	if userID == "" {
		return nil, fmt.Errorf("sign in to add products to the cart: %w", errs.ErrNotAuthenticated)
	}

	now := time.Now().UTC()

	if current == nil {
		newCart := Cart{
			UserID:      userID,
			Status:      StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
			Items:       []Item{},
			TotalAmount: decimal.Zero,
		}
		newCart.AddProduct(p)

		var created Cart
		if err := s.client.Post(ctx, "/cart", &newCart, &created); err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}

		s.log.WithFields(logrus.Fields{
			"cart_id":    created.ID,
			"product_id": p.ID,
		}).Info("Cart created")
		return &created, nil
	}

	next := current.Clone()
	next.AddProduct(p)
	next.UpdatedAt = now

	var saved Cart
	if err := s.client.Put(ctx, "/cart/"+next.ID, next, &saved); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"cart_id":    saved.ID,
		"product_id": p.ID,
		"quantity":   saved.TotalQuantity(),
	}).Info("Cart updated")
	return &saved, nil
}

// RemoveFromCart strips the product's line from the cart and persists
// the result as a full replace
func (s *Service) RemoveFromCart(ctx context.Context, current *Cart, productID string) (*Cart, error) {
	if current == nil || current.ID == "" {
		return nil, fmt.Errorf("no cart to remove from: %w", errs.ErrNotFound)
	}

	next := current.Clone()
	if !next.RemoveProduct(productID) {
		return nil, fmt.Errorf("item not found in cart: %w", errs.ErrNotFound)
	}
	next.UpdatedAt = time.Now().UTC()

	var saved Cart
	if err := s.client.Put(ctx, "/cart/"+next.ID, next, &saved); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"cart_id":    saved.ID,
		"product_id": productID,
	}).Info("Item removed from cart")
	return &saved, nil
}

// Delete removes the cart record entirely
func (s *Service) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Delete(ctx, "/cart/"+cartID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
