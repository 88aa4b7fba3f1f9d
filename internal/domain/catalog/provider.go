// internal/domain/catalog/provider.go
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var catalogData []byte

// Provider serves the immutable product catalog. Products keep their data
// order, which is the canonical order before any sort is applied.
type Provider struct {
	products   []Product
	byID       map[string]Product
	categories []string
}

// NewProvider parses the embedded catalog data.
func NewProvider() (*Provider, error) {
	var products []Product
	if err := json.Unmarshal(catalogData, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}
	return NewProviderFromProducts(products), nil
}

// NewProviderFromProducts builds a provider from an explicit product list.
// Used by tests to run against small fixture catalogs.
func NewProviderFromProducts(products []Product) *Provider {
	byID := make(map[string]Product, len(products))
	var categories []string
	seen := make(map[string]bool)

	for _, p := range products {
		byID[p.ID] = p
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return &Provider{
		products:   products,
		byID:       byID,
		categories: categories,
	}
}

// All returns every product in catalog order.
func (p *Provider) All() []Product {
	out := make([]Product, len(p.products))
	copy(out, p.products)
	return out
}

// Get looks up a product by id.
func (p *Provider) Get(id string) (Product, bool) {
	product, ok := p.byID[id]
	return product, ok
}

// Categories returns the distinct categories in first-seen catalog order.
func (p *Provider) Categories() []string {
	out := make([]string, len(p.categories))
	copy(out, p.categories)
	return out
}

// Len returns the catalog size.
func (p *Provider) Len() int {
	return len(p.products)
}
