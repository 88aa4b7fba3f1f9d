// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog product. The catalog is read-only reference
// data: engines join against it but never mutate it.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`  // Price in dollars
	Rating   float64 `json:"rating"` // 0..5
	Image    string  `json:"image"`
}
