// internal/domain/todo/editor.go
package todo

import (
	"context"
	"sync"
)

// Editor is the inline-edit state machine. Each item is either Viewing
// (default) or Editing; at most one item is Editing at a time. The session
// captures the item's original text at entry so a cancel can restore the
// display without touching the engine.
type Editor struct {
	svc *Service

	mu       sync.Mutex
	active   bool
	itemID   string
	original string
}

// NewEditor creates an editor bound to a todo service.
func NewEditor(svc *Service) *Editor {
	return &Editor{svc: svc}
}

// Begin moves the item into Editing and returns its current text as the
// draft seed. Unknown ids leave the machine in Viewing and return false.
// The UI only exposes one editable control at a time, so an already-active
// session is committed with its original text before the new one starts.
func (e *Editor) Begin(ctx context.Context, id string) (string, bool) {
	text, ok := e.svc.textOf(id)
	if !ok {
		return "", false
	}

	e.mu.Lock()
	prevActive, prevID, prevText := e.active, e.itemID, e.original
	e.active = true
	e.itemID = id
	e.original = text
	e.mu.Unlock()

	if prevActive && prevID != id {
		_ = e.svc.Edit(ctx, prevID, prevText) // unchanged text, engine no-op
	}

	return text, true
}

// Commit applies the draft through the engine and returns to Viewing. A
// draft that trims to empty deletes the item, per the engine's edit policy.
// Without an active session this is a no-op.
func (e *Editor) Commit(ctx context.Context, draft string) error {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return nil
	}
	id := e.itemID
	e.active = false
	e.itemID = ""
	e.original = ""
	e.mu.Unlock()

	return e.svc.Edit(ctx, id, draft)
}

// Cancel discards the draft and returns to Viewing. No engine call and no
// persistence happen; the caller re-renders from canonical state, which
// still holds the original text.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.active = false
	e.itemID = ""
	e.original = ""
}

// EditingID reports the item currently in Editing, if any. The view layer
// uses it to swap a single row into its edit presentation.
func (e *Editor) EditingID() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.itemID, e.active
}
