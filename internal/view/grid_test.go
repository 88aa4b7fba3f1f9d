package view

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/glowcart-backend/internal/domain/catalog"
)

type gridRecorder struct {
	mu    sync.Mutex
	views []GridView
}

func (r *gridRecorder) render(v GridView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
}

func (r *gridRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func (r *gridRecorder) last() GridView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views[len(r.views)-1]
}

func newGridFixture(t *testing.T, window time.Duration) (*GridController, *gridRecorder) {
	t.Helper()
	provider, err := catalog.NewProvider()
	require.NoError(t, err)

	rec := &gridRecorder{}
	ctrl := NewGridController(provider, window, rec.render)
	t.Cleanup(ctrl.Close)
	return ctrl, rec
}

func TestRapidQueryInputCoalescesIntoOneRender(t *testing.T) {
	ctrl, rec := newGridFixture(t, 30*time.Millisecond)

	// Simulate typing "rose" keystroke by keystroke.
	for _, q := range []string{"r", "ro", "ros", "rose"} {
		ctrl.SetQuery(q)
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return rec.count() == 1 },
		time.Second, 5*time.Millisecond)

	last := rec.last()
	require.Equal(t, 1, last.Count)
	assert.Equal(t, "p-rose-serum", last.Products[0].ID)
}

func TestCategoryAndSortRenderImmediately(t *testing.T) {
	ctrl, rec := newGridFixture(t, time.Hour) // debounce must not be involved

	ctrl.SetCategory("Makeup")
	require.Equal(t, 1, rec.count())
	assert.Equal(t, 3, rec.last().Count)

	ctrl.SetSort(catalog.SortPriceAsc)
	require.Equal(t, 2, rec.count())
	assert.Equal(t, "p-matte-lip", rec.last().Products[0].ID)
}

func TestClearFiltersRestoresDefaults(t *testing.T) {
	ctrl, rec := newGridFixture(t, time.Hour)

	ctrl.SetCategory("Hair")
	require.Equal(t, 1, rec.last().Count)

	ctrl.ClearFilters()
	last := rec.last()
	assert.Equal(t, 10, last.Count)
	// Default sort is popularity.
	assert.Equal(t, "p-amber-parfum", last.Products[0].ID)
}

func TestCloseCancelsPendingRender(t *testing.T) {
	ctrl, rec := newGridFixture(t, 20*time.Millisecond)

	ctrl.SetQuery("rose")
	ctrl.Close()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, rec.count())
}
