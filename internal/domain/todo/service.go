// internal/domain/todo/service.go
package todo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/glowcart-backend/internal/pkg/kvstore"
)

// Notifier is invoked after every persisted mutation so the view layer can
// re-render.
type Notifier interface {
	Changed(scope string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(scope string)

// Changed implements Notifier.
func (f NotifierFunc) Changed(scope string) { f(scope) }

// Scope reported to the notifier on todo mutations.
const Scope = "todo"

// Service owns the task list and the active visibility filter. Newly added
// items go to the head of the list; that head-insertion order is canonical
// and filtering never reorders it. Mutations that change nothing skip both
// persistence and notification.
type Service struct {
	kv        kvstore.KV
	itemsKey  string
	filterKey string
	notifier  Notifier
	logger    *logrus.Logger

	mu     sync.Mutex
	items  []Item
	filter FilterMode

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// NewService creates a todo service, restoring persisted items and filter.
// Missing or corrupt payloads yield an empty list and the "all" filter.
func NewService(kv kvstore.KV, itemsKey, filterKey string, notifier Notifier, logger *logrus.Logger) *Service {
	s := &Service{
		kv:        kv,
		itemsKey:  itemsKey,
		filterKey: filterKey,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}

	ctx := context.Background()
	s.items = kvstore.Load(ctx, kv, itemsKey, []Item{})
	s.filter = ParseFilterMode(kvstore.Load(ctx, kv, filterKey, string(FilterAll)))
	return s
}

// Add creates a new item from text and inserts it at the head of the list.
// Text is trimmed first; empty input is a silent no-op.
func (s *Service) Add(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:        uuid.New().String(),
		Text:      trimmed,
		Completed: false,
		CreatedAt: s.now().UnixMilli(),
	}
	s.items = append([]Item{item}, s.items...)

	return s.persist(ctx)
}

// Toggle flips the completed flag of the item. Unknown ids are a silent
// no-op.
func (s *Service) Toggle(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Completed = !s.items[i].Completed
			return s.persist(ctx)
		}
	}
	return nil
}

// Delete removes the item. Unknown ids are a silent no-op with no write.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(ctx, id)
}

// Edit replaces the item's text with the trimmed newText. An empty trimmed
// result deletes the item; that is the defined commit-to-empty policy, not
// an error path. Unchanged text is a full no-op so redundant writes and
// renders are skipped.
func (s *Service) Edit(ctx context.Context, id, newText string) error {
	trimmed := strings.TrimSpace(newText)

	s.mu.Lock()
	defer s.mu.Unlock()

	if trimmed == "" {
		return s.deleteLocked(ctx, id)
	}

	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Text == trimmed {
				return nil
			}
			s.items[i].Text = trimmed
			return s.persist(ctx)
		}
	}
	return nil
}

// ClearCompleted removes all completed items. When nothing is completed the
// call is a no-op.
func (s *Service) ClearCompleted(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.items[:0:0]
	for _, item := range s.items {
		if !item.Completed {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(s.items) {
		return nil
	}

	s.items = remaining
	return s.persist(ctx)
}

// SetFilter switches the active visibility filter and persists it alongside
// the items. Selecting the already-active filter is a no-op.
func (s *Service) SetFilter(ctx context.Context, mode FilterMode) error {
	mode = ParseFilterMode(string(mode))

	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == s.filter {
		return nil
	}
	s.filter = mode
	return s.persist(ctx)
}

// Filter returns the active visibility filter.
func (s *Service) Filter() FilterMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Items returns all items in canonical order.
func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Visible projects the list through the given filter, preserving canonical
// order.
func (s *Service) Visible(mode FilterMode) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if mode.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// RemainingCount returns the number of items not yet completed.
func (s *Service) RemainingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		if !item.Completed {
			count++
		}
	}
	return count
}

// textOf looks up an item's current text, used by the edit session to
// capture the original at entry.
func (s *Service) textOf(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item.Text, true
		}
	}
	return "", false
}

// deleteLocked removes id if present. Callers must hold s.mu.
func (s *Service) deleteLocked(ctx context.Context, id string) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// persist writes both payloads, the item list and the active filter, then
// notifies. Callers must hold s.mu.
func (s *Service) persist(ctx context.Context) error {
	if err := kvstore.Save(ctx, s.kv, s.itemsKey, s.items); err != nil {
		s.logger.WithError(err).Error("Failed to persist todo items")
		return fmt.Errorf("failed to persist todo items: %w", err)
	}
	if err := kvstore.Save(ctx, s.kv, s.filterKey, string(s.filter)); err != nil {
		s.logger.WithError(err).Error("Failed to persist todo filter")
		return fmt.Errorf("failed to persist todo filter: %w", err)
	}
	s.notifier.Changed(Scope)
	return nil
}
