// internal/view/view.go
package view

import (
	"fmt"

	"github.com/your-org/glowcart-backend/internal/domain/cart"
	"github.com/your-org/glowcart-backend/internal/domain/catalog"
	"github.com/your-org/glowcart-backend/internal/domain/todo"
)

// The view layer computes the data side of every rendered surface. Builders
// are pure functions of engine state: they only read derived projections and
// never mutate engine state.

// NavbarView feeds the cart badge shown on every page.
type NavbarView struct {
	CartCount int `json:"cart_count"`
}

// CartRowView is one rendered cart line.
type CartRowView struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Amount   float64         `json:"amount"`
}

// CartPageView is the rendered cart page.
type CartPageView struct {
	Rows   []CartRowView `json:"rows"`
	Empty  bool          `json:"empty"`
	Totals cart.Totals   `json:"totals"`
}

// GridView is the rendered product grid with its result-count label.
type GridView struct {
	Products   []catalog.Product `json:"products"`
	Count      int               `json:"count"`
	CountLabel string            `json:"count_label"`
}

// TodoItemView is one rendered task row. Editing marks the single row whose
// presentation diverges into the inline editor.
type TodoItemView struct {
	todo.Item
	Editing bool `json:"editing"`
}

// TodoPageView is the rendered task page.
type TodoPageView struct {
	Items                  []TodoItemView  `json:"items"`
	Filter                 todo.FilterMode `json:"filter"`
	ItemsLeftLabel         string          `json:"items_left_label"`
	ClearCompletedDisabled bool            `json:"clear_completed_disabled"`
}

// BuildNavbar renders the cart badge state.
func BuildNavbar(cartSvc *cart.Service) NavbarView {
	return NavbarView{CartCount: cartSvc.Count()}
}

// BuildCartPage renders the cart page from detailed lines and totals.
func BuildCartPage(cartSvc *cart.Service) CartPageView {
	detailed := cartSvc.DetailedLines()

	rows := make([]CartRowView, len(detailed))
	for i, row := range detailed {
		rows[i] = CartRowView{
			Product:  row.Product,
			Quantity: row.Quantity,
			Amount:   row.Amount(),
		}
	}

	return CartPageView{
		Rows:   rows,
		Empty:  len(rows) == 0,
		Totals: cartSvc.Totals(),
	}
}

// BuildGrid renders a catalog projection with its count label.
func BuildGrid(projection catalog.Projection) GridView {
	return GridView{
		Products:   projection.Products,
		Count:      projection.Count,
		CountLabel: fmt.Sprintf("%d %s", projection.Count, pluralize(projection.Count, "item", "items")),
	}
}

// BuildTodoPage renders the task page for the given filter, marking the row
// held by an active edit session.
func BuildTodoPage(todoSvc *todo.Service, editor *todo.Editor, filter todo.FilterMode) TodoPageView {
	editingID, editing := editor.EditingID()

	visible := todoSvc.Visible(filter)
	items := make([]TodoItemView, len(visible))
	completedExists := false
	for i, item := range visible {
		items[i] = TodoItemView{
			Item:    item,
			Editing: editing && item.ID == editingID,
		}
	}
	for _, item := range todoSvc.Items() {
		if item.Completed {
			completedExists = true
			break
		}
	}

	remaining := todoSvc.RemainingCount()
	return TodoPageView{
		Items:                  items,
		Filter:                 filter,
		ItemsLeftLabel:         fmt.Sprintf("%d %s left", remaining, pluralize(remaining, "item", "items")),
		ClearCompletedDisabled: !completedExists,
	}
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
