// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/glowcart-backend/internal/config"
	"github.com/your-org/glowcart-backend/internal/domain/cart"
	"github.com/your-org/glowcart-backend/internal/domain/catalog"
	"github.com/your-org/glowcart-backend/internal/domain/todo"
	"github.com/your-org/glowcart-backend/internal/interfaces/http/handlers"
)

// Deps bundles everything the route handlers need.
type Deps struct {
	Config      *config.Config
	Catalog     *catalog.Provider
	CartService *cart.Service
	TodoService *todo.Service
	Editor      *todo.Editor
}

// SetupRoutes wires all API routes onto the given group.
func SetupRoutes(rg *gin.RouterGroup, deps *Deps) {
	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupTodoRoutes(rg, deps)
}

// SetupProductRoutes sets up catalog related routes
func SetupProductRoutes(rg *gin.RouterGroup, deps *Deps) {
	productHandler := handlers.NewProductHandler(deps.Catalog, deps.Config)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/featured", productHandler.GetFeaturedProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps *Deps) {
	cartHandler := handlers.NewCartHandler(deps.CartService, deps.Config)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}

	rg.POST("/checkout", cartHandler.Checkout)
}

// SetupTodoRoutes sets up todo related routes
func SetupTodoRoutes(rg *gin.RouterGroup, deps *Deps) {
	todoHandler := handlers.NewTodoHandler(deps.TodoService, deps.Editor)

	todos := rg.Group("/todos")
	{
		todos.GET("", todoHandler.GetTodos)
		todos.POST("", todoHandler.AddTodo)
		todos.PUT("/filter", todoHandler.SetFilter)
		todos.DELETE("/completed", todoHandler.ClearCompleted)
		todos.POST("/edit/commit", todoHandler.CommitEdit)
		todos.POST("/edit/cancel", todoHandler.CancelEdit)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
		todos.POST("/:id/toggle", todoHandler.ToggleTodo)
		todos.POST("/:id/edit", todoHandler.BeginEdit)
	}
}
