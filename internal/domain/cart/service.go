// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/glowcart-backend/internal/domain/catalog"
	"github.com/your-org/glowcart-backend/internal/pkg/kvstore"
)

// Notifier is invoked after every persisted mutation so the view layer can
// re-render. The engine calls it but does not implement it.
type Notifier interface {
	Changed(scope string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(scope string)

// Changed implements Notifier.
func (f NotifierFunc) Changed(scope string) { f(scope) }

// Scope reported to the notifier on cart mutations.
const Scope = "cart"

// Service owns the cart's line items. All mutation flows through its
// methods; each real mutation persists the full line list and then notifies.
type Service struct {
	kv       kvstore.KV
	catalog  *catalog.Provider
	storeKey string
	notifier Notifier
	logger   *logrus.Logger

	mu    sync.Mutex
	lines []Line
}

// NewService creates a cart service, restoring persisted lines. A missing or
// corrupt payload silently yields an empty cart.
func NewService(kv kvstore.KV, provider *catalog.Provider, storeKey string, notifier Notifier, logger *logrus.Logger) *Service {
	s := &Service{
		kv:       kv,
		catalog:  provider,
		storeKey: storeKey,
		notifier: notifier,
		logger:   logger,
	}
	s.lines = kvstore.Load(context.Background(), kv, storeKey, []Line{})
	return s
}

// Add adds quantity of a product to the cart. An existing line for the
// product accumulates; otherwise a new line is appended. The product is not
// validated against the catalog; lines for unknown products are simply
// dropped from derived views.
func (s *Service) Add(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, Line{ProductID: productID, Quantity: quantity})
	}

	return s.persist(ctx)
}

// Remove deletes the line for productID. A missing line is a silent no-op
// and performs no write and no notification.
func (s *Service) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// SetQuantity sets the quantity of an existing line. Fractional input is
// truncated toward zero, then floored at 1; out-of-range values are
// coerced, never rejected. Unknown product ids are a silent no-op.
func (s *Service) SetQuantity(ctx context.Context, productID string, quantity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			q := int(quantity)
			if q < 1 {
				q = 1
			}
			s.lines[i].Quantity = q
			return s.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []Line{}
	return s.persist(ctx)
}

// Lines returns the cart lines in insertion order.
func (s *Service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count returns the sum of quantities across all lines.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// DetailedLines joins each line against the catalog. Lines whose product no
// longer exists are excluded from the result, never surfaced as an error.
func (s *Service) DetailedLines() []DetailedLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]DetailedLine, 0, len(s.lines))
	for _, line := range s.lines {
		product, ok := s.catalog.Get(line.ProductID)
		if !ok {
			continue
		}
		rows = append(rows, DetailedLine{Line: line, Product: product})
	}
	return rows
}

// Totals computes the cart totals over lines whose product exists.
func (s *Service) Totals() Totals {
	var subtotal float64
	for _, row := range s.DetailedLines() {
		subtotal += row.Amount()
	}
	return Totals{Subtotal: subtotal, Total: subtotal}
}

// persist writes the line list and notifies. Callers must hold s.mu.
func (s *Service) persist(ctx context.Context) error {
	if err := kvstore.Save(ctx, s.kv, s.storeKey, s.lines); err != nil {
		s.logger.WithError(err).Error("Failed to persist cart")
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	s.notifier.Changed(Scope)
	return nil
}
