// internal/interfaces/http/handlers/todo.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/glowcart-backend/internal/domain/todo"
	"github.com/your-org/glowcart-backend/internal/view"
)

// TodoHandler handles todo endpoints
type TodoHandler struct {
	todoService *todo.Service
	editor      *todo.Editor
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService *todo.Service, editor *todo.Editor) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		editor:      editor,
	}
}

// TodoTextRequest carries the text for add, edit and commit payloads.
// Text is not marked required: blank input is a valid no-op, not an error.
type TodoTextRequest struct {
	Text string `json:"text"`
}

// SetFilterRequest is the payload for PUT /todos/filter.
type SetFilterRequest struct {
	Filter string `json:"filter"`
}

func (h *TodoHandler) page() view.TodoPageView {
	return view.BuildTodoPage(h.todoService, h.editor, h.todoService.Filter())
}

// GetTodos handles GET /todos
func (h *TodoHandler) GetTodos(c *gin.Context) {
	filter := h.todoService.Filter()
	if q := c.Query("filter"); q != "" {
		filter = todo.ParseFilterMode(q)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tasks retrieved successfully",
		"data":    view.BuildTodoPage(h.todoService, h.editor, filter),
	})
}

// AddTodo handles POST /todos
func (h *TodoHandler) AddTodo(c *gin.Context) {
	var req TodoTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.todoService.Add(c.Request.Context(), req.Text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add task",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task added successfully",
		"data":    h.page(),
	})
}

// ToggleTodo handles POST /todos/:id/toggle
func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	if err := h.todoService.Toggle(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to toggle task",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task toggled successfully",
		"data":    h.page(),
	})
}

// UpdateTodo handles PUT /todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	var req TodoTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.todoService.Edit(c.Request.Context(), c.Param("id"), req.Text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update task",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"data":    h.page(),
	})
}

// DeleteTodo handles DELETE /todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	if err := h.todoService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete task",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"data":    h.page(),
	})
}

// ClearCompleted handles DELETE /todos/completed
func (h *TodoHandler) ClearCompleted(c *gin.Context) {
	if err := h.todoService.ClearCompleted(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear completed tasks",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Completed tasks cleared successfully",
		"data":    h.page(),
	})
}

// SetFilter handles PUT /todos/filter
func (h *TodoHandler) SetFilter(c *gin.Context) {
	var req SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.todoService.SetFilter(c.Request.Context(), todo.ParseFilterMode(req.Filter)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to set filter",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Filter updated successfully",
		"data":    h.page(),
	})
}

// BeginEdit handles POST /todos/:id/edit
func (h *TodoHandler) BeginEdit(c *gin.Context) {
	draft, ok := h.editor.Begin(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Task not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Edit session started",
		"data": gin.H{
			"draft": draft,
			"page":  h.page(),
		},
	})
}

// CommitEdit handles POST /todos/edit/commit
func (h *TodoHandler) CommitEdit(c *gin.Context) {
	var req TodoTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.editor.Commit(c.Request.Context(), req.Text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to commit edit",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Edit committed successfully",
		"data":    h.page(),
	})
}

// CancelEdit handles POST /todos/edit/cancel
func (h *TodoHandler) CancelEdit(c *gin.Context) {
	h.editor.Cancel()

	c.JSON(http.StatusOK, gin.H{
		"message": "Edit cancelled",
		"data":    h.page(),
	})
}
