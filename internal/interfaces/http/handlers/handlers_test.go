// internal/interfaces/http/handlers/handlers_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/glowcart-backend/internal/config"
	"github.com/your-org/glowcart-backend/internal/domain/cart"
	"github.com/your-org/glowcart-backend/internal/domain/catalog"
	"github.com/your-org/glowcart-backend/internal/domain/todo"
	"github.com/your-org/glowcart-backend/internal/interfaces/http/routes"
	"github.com/your-org/glowcart-backend/internal/pkg/kvstore"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := catalog.NewProvider()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	kv := kvstore.NewMemory()
	cartService := cart.NewService(kv, provider, "gc_cart_v1", cart.NotifierFunc(func(string) {}), logger)
	todoService := todo.NewService(kv, "todo-items-v1", "todo-filter-v1", todo.NotifierFunc(func(string) {}), logger)

	router := gin.New()
	routes.SetupRoutes(router.Group("/api/v1"), &routes.Deps{
		Config:      testConfig(),
		Catalog:     provider,
		CartService: cartService,
		TodoService: todoService,
		Editor:      todo.NewEditor(todoService),
	})

	return router
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{FeaturedCount: 8},
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))

	return w, parsed
}

func TestGetProducts(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	assert.EqualValues(t, 10, data["count"])
	assert.Equal(t, "10 items", data["count_label"])
}

func TestGetProductsFiltered(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/products?category=Makeup&sort=price-asc", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	products := data["products"].([]any)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Makeup", p.(map[string]any)["category"])
	}
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/products/p-nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", resp["error"])
}

func TestCartAddUpdateRemove(t *testing.T) {
	router := newTestRouter(t)

	// Add without an explicit quantity defaults to one.
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"p-rose-serum"}`)
	require.Equal(t, http.StatusOK, w.Code)
	page := resp["data"].(map[string]any)
	rows := page["rows"].([]any)
	require.Len(t, rows, 1)

	// Fractional quantities truncate toward zero.
	w, resp = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/p-rose-serum", `{"quantity":3.9}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/cart/count", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, resp["data"].(map[string]any)["count"])

	// Zero heals to one rather than deleting the line.
	doJSON(t, router, http.MethodPut, "/api/v1/cart/items/p-rose-serum", `{"quantity":0}`)
	_, resp = doJSON(t, router, http.MethodGet, "/api/v1/cart/count", "")
	assert.EqualValues(t, 1, resp["data"].(map[string]any)["count"])

	w, resp = doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/p-rose-serum", "")
	require.Equal(t, http.StatusOK, w.Code)
	page = resp["data"].(map[string]any)
	assert.Equal(t, true, page["empty"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Your cart is empty", resp["message"])
}

func TestTodoLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/todos", `{"text":"  buy retinol  "}`)
	require.Equal(t, http.StatusOK, w.Code)

	page := resp["data"].(map[string]any)
	items := page["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "buy retinol", item["text"])
	id := item["id"].(string)

	// Toggle marks it complete.
	_, resp = doJSON(t, router, http.MethodPost, "/api/v1/todos/"+id+"/toggle", "")
	page = resp["data"].(map[string]any)
	assert.Equal(t, "0 items left", page["items_left_label"])

	// Clear completed removes it.
	_, resp = doJSON(t, router, http.MethodDelete, "/api/v1/todos/completed", "")
	page = resp["data"].(map[string]any)
	assert.Empty(t, page["items"])
}

func TestTodoAddBlankIsNoOp(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/todos", `{"text":"   "}`)
	require.Equal(t, http.StatusOK, w.Code)

	page := resp["data"].(map[string]any)
	assert.Empty(t, page["items"])
}

func TestTodoEditSession(t *testing.T) {
	router := newTestRouter(t)

	_, resp := doJSON(t, router, http.MethodPost, "/api/v1/todos", `{"text":"original"}`)
	page := resp["data"].(map[string]any)
	id := page["items"].([]any)[0].(map[string]any)["id"].(string)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/todos/"+id+"/edit", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "original", data["draft"])

	_, resp = doJSON(t, router, http.MethodPost, "/api/v1/todos/edit/commit", `{"text":"revised"}`)
	page = resp["data"].(map[string]any)
	item := page["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "revised", item["text"])
	assert.Equal(t, false, item["editing"])
}

func TestTodoEditMissingTask(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/todos/no-such-id/edit", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Task not found", resp["error"])
}

func TestSetFilterUnknownFallsBackToAll(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPut, "/api/v1/todos/filter", `{"filter":"bogus"}`)
	require.Equal(t, http.StatusOK, w.Code)

	page := resp["data"].(map[string]any)
	assert.Equal(t, "all", page["filter"])
}
