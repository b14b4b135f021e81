// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/cart"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the immutable record created from a cart at checkout time.
// Items are a snapshot of the cart lines; nothing in the order is
// recomputed after placement.
type Order struct {
	ID          string          `json:"id,omitempty"`
	UserID      string          `json:"user_id"`
	Items       []cart.Item     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      OrderStatus     `json:"status"`
}
