// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product. The collection is read-only from
// the client's perspective; ids are opaque strings assigned by the
// remote store.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
