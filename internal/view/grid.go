// internal/view/grid.go
package view

import (
	"sync"
	"time"

	"github.com/your-org/glowcart-backend/internal/domain/catalog"
	"github.com/your-org/glowcart-backend/internal/pkg/debounce"
)

// GridController owns the product grid's query inputs and re-renders the
// grid when they change. Text input arrives keystroke by keystroke, so query
// changes are debounced behind a quiescence window; category and sort
// changes recompute immediately. The render callback is the external view
// collaborator.
type GridController struct {
	provider  *catalog.Provider
	render    func(GridView)
	debouncer *debounce.Debouncer

	mu  sync.Mutex
	req catalog.ListRequest
}

// NewGridController creates a controller rendering through render. The
// initial request uses the default popularity sort; call Refresh for the
// first paint.
func NewGridController(provider *catalog.Provider, window time.Duration, render func(GridView)) *GridController {
	return &GridController{
		provider:  provider,
		render:    render,
		debouncer: debounce.New(window),
		req:       catalog.ListRequest{Sort: catalog.SortPopularity},
	}
}

// SetQuery updates the text filter. The recompute is deferred until input
// has been quiet for the full window; each call resets the window.
func (c *GridController) SetQuery(query string) {
	c.mu.Lock()
	c.req.Query = query
	c.mu.Unlock()

	c.debouncer.Trigger(c.Refresh)
}

// SetCategory updates the category filter and recomputes immediately.
func (c *GridController) SetCategory(category string) {
	c.mu.Lock()
	c.req.Category = category
	c.mu.Unlock()

	c.Refresh()
}

// SetSort updates the sort key and recomputes immediately.
func (c *GridController) SetSort(sort string) {
	c.mu.Lock()
	c.req.Sort = sort
	c.mu.Unlock()

	c.Refresh()
}

// ClearFilters resets query, category and sort to their defaults and
// recomputes immediately.
func (c *GridController) ClearFilters() {
	c.mu.Lock()
	c.req = catalog.ListRequest{Sort: catalog.SortPopularity}
	c.mu.Unlock()

	c.Refresh()
}

// Refresh recomputes the projection from current inputs and renders it.
func (c *GridController) Refresh() {
	c.mu.Lock()
	req := c.req
	c.mu.Unlock()

	c.render(BuildGrid(c.provider.Project(req)))
}

// Close cancels any pending debounced recompute.
func (c *GridController) Close() {
	c.debouncer.Stop()
}
