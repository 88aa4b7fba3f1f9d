// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/glowcart-backend/internal/domain/catalog"
)

// Line represents one cart line. A cart holds at most one line per product
// id; lines keep their insertion order for display.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// DetailedLine is a cart line joined with its catalog product. It is derived
// state and never persisted.
type DetailedLine struct {
	Line
	Product catalog.Product `json:"product"`
}

// Amount returns the line total.
func (d DetailedLine) Amount() float64 {
	return d.Product.Price * float64(d.Quantity)
}

// Totals represents calculated cart totals. Total currently equals Subtotal;
// tax and discount logic would hang off this type.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
}
