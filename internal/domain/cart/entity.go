// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/product"
)

// Cart status values. The remote store does not interpret these; the
// client sets them by convention.
const (
	StatusActive = "active"
)

// Item represents one product line in a cart. TotalPrice is quantity
// times the unit price captured when the line was added or incremented;
// it is deliberately not recomputed from later catalog prices.
type Item struct {
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Cart represents the mutable pending collection of line items for one
// user. One active cart per user is a client-side convention, not a
// store constraint.
type Cart struct {
	ID          string          `json:"id,omitempty"`
	UserID      string          `json:"user_id"`
	Items       []Item          `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Clone returns a deep copy so merges can be computed without touching
// the caller's state until the remote write succeeds
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = append([]Item(nil), c.Items...)
	return &clone
}

// AddProduct merges one unit of the product into the items list: an
// existing line is incremented by one unit price, a missing one is
// appended at quantity 1. The total is recomputed afterwards.
func (c *Cart) AddProduct(p *product.Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			c.Items[i].TotalPrice = c.Items[i].TotalPrice.Add(p.Price)
			c.RecalculateTotal()
			return
		}
	}

	c.Items = append(c.Items, Item{
		ProductID:  p.ID,
		Quantity:   1,
		TotalPrice: p.Price,
	})
	c.RecalculateTotal()
}

// RemoveProduct strips the line for the given product id and recomputes
// the total. It reports whether a line was actually removed.
func (c *Cart) RemoveProduct(productID string) bool {
	items := c.Items[:0]
	removed := false
	for _, item := range c.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	c.Items = items
	c.RecalculateTotal()
	return removed
}

// RecalculateTotal restores the invariant that the cart total equals the
// sum of line totals
func (c *Cart) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice)
	}
	c.TotalAmount = total
}

// TotalQuantity sums the quantities over all lines
func (c *Cart) TotalQuantity() int {
	quantity := 0
	for _, item := range c.Items {
		quantity += item.Quantity
	}
	return quantity
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// ProductIDs returns the ids of all lines in order
func (c *Cart) ProductIDs() []string {
	ids := make([]string, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.ProductID
	}
	return ids
}
