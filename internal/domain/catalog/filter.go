// internal/domain/catalog/filter.go
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort key values accepted by ListRequest. Anything else falls back to
// SortPopularity.
const (
	SortPopularity = "popularity"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
)

// ListRequest represents catalog projection query parameters
type ListRequest struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Sort     string `form:"sort,default=popularity"`
}

// Projection represents a filtered and sorted catalog view
type Projection struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// Project computes the filtered, sorted catalog projection. It is a pure
// function of the catalog and the request: both filters are conjunctive, the
// text filter matches name or brand case-insensitively, and ties keep
// catalog order.
func (p *Provider) Project(req ListRequest) Projection {
	query := strings.ToLower(req.Query)

	var items []Product
	for _, product := range p.products {
		if query != "" &&
			!strings.Contains(strings.ToLower(product.Name), query) &&
			!strings.Contains(strings.ToLower(product.Brand), query) {
			continue
		}
		if req.Category != "" && product.Category != req.Category {
			continue
		}
		items = append(items, product)
	}

	sortProducts(items, req.Sort)

	return Projection{
		Products: items,
		Count:    len(items),
	}
}

// Featured returns the top-n products by rating, used on the landing page.
func (p *Provider) Featured(n int) []Product {
	items := p.All()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rating > items[j].Rating
	})
	if n < len(items) {
		items = items[:n]
	}
	return items
}

func sortProducts(items []Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case SortNameAsc:
		c := nameCollator()
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Name, items[j].Name) < 0
		})
	case SortNameDesc:
		c := nameCollator()
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Name, items[j].Name) > 0
		})
	default:
		// popularity
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	}
}

// nameCollator builds a locale-aware comparer. Collators are not safe for
// concurrent use, so each sort gets its own.
func nameCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}
