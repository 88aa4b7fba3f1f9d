// internal/domain/todo/entity.go
package todo

// Item represents a task list entry
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"` // Unix milliseconds
}

// FilterMode selects which items are visible.
type FilterMode string

// The three visibility filters. Anything else parses as FilterAll.
const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

// ParseFilterMode maps a persisted or user-supplied string onto a valid
// filter mode, falling back to FilterAll for unknown values.
func ParseFilterMode(value string) FilterMode {
	switch FilterMode(value) {
	case FilterActive:
		return FilterActive
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Matches reports whether the item is visible under the filter.
func (m FilterMode) Matches(item Item) bool {
	switch m {
	case FilterActive:
		return !item.Completed
	case FilterCompleted:
		return item.Completed
	default:
		return true
	}
}
