// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/glowcart-backend/internal/config"
	"github.com/your-org/glowcart-backend/internal/domain/catalog"
	"github.com/your-org/glowcart-backend/internal/view"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalog *catalog.Provider
	config  *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(provider *catalog.Provider, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		catalog: provider,
		config:  cfg,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var req catalog.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		// Unparseable filter input falls back to the unfiltered view.
		req = catalog.ListRequest{Sort: catalog.SortPopularity}
	}

	grid := view.BuildGrid(h.catalog.Project(req))

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    grid,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetFeaturedProducts handles GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	featured := h.catalog.Featured(h.config.Catalog.FeaturedCount)

	c.JSON(http.StatusOK, gin.H{
		"message": "Featured products retrieved successfully",
		"data": gin.H{
			"products": featured,
			"count":    len(featured),
		},
	})
}

// GetCategories handles GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(),
	})
}
