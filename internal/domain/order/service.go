// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/infrastructure/remote"
	"github.com/your-org/storefront/internal/pkg/errs"
)

// ErrCartNotCleared reports the known partial-failure case: the order
// was created but deleting the source cart failed. There is no
// compensating transaction; the caller gets the order back together with
// this error and decides how to present the leftover cart.
var ErrCartNotCleared = errors.New("order placed but cart was not cleared")

// Service converts cart snapshots into order records
type Service struct {
	client      *remote.Client
	cartService *cart.Service
	log         *logrus.Logger
}

// NewService creates a new order service
func NewService(client *remote.Client, cartService *cart.Service, log *logrus.Logger) *Service {
	return &Service{
		client:      client,
		cartService: cartService,
		log:         log,
	}
}

// Place submits an order built from the cart snapshot and, on success,
// deletes the originating cart record. Preconditions are checked before
// any network call is made. When cart deletion fails the created order
// is returned together with ErrCartNotCleared.
func (s *Service) Place(ctx context.Context, c *cart.Cart, userID string) (*Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("sign in to place an order: %w", errs.ErrNotAuthenticated)
	}
	if c.IsEmpty() {
		return nil, fmt.Errorf("cart is empty: %w", errs.ErrValidation)
	}

	snapshot := Order{
		UserID:      userID,
		Items:       append([]cart.Item(nil), c.Items...),
		TotalAmount: c.TotalAmount,
		CreatedAt:   time.Now().UTC(),
		Status:      OrderStatusPending,
	}

	var created Order
	if err := s.client.Post(ctx, "/order", &snapshot, &created); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id":     created.ID,
		"user_id":      userID,
		"total_amount": created.TotalAmount,
	}).Info("Order placed")

	// Delete the source cart. The order already exists at this point, so
	// a failure here is surfaced rather than rolled back.
	if c.ID != "" {
		if err := s.cartService.Delete(ctx, c.ID); err != nil {
			s.log.WithFields(logrus.Fields{
				"order_id": created.ID,
				"cart_id":  c.ID,
			}).WithError(err).Warn("Cart deletion failed after order creation")
			return &created, fmt.Errorf("%w: %w", ErrCartNotCleared, err)
		}
	}

	return &created, nil
}
