package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider()
	require.NoError(t, err)
	return p
}

func productIDs(products []Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestProviderLoadsEmbeddedCatalog(t *testing.T) {
	p := testProvider(t)

	assert.Equal(t, 10, p.Len())

	rose, ok := p.Get("p-rose-serum")
	require.True(t, ok)
	assert.Equal(t, "Hydrating Rose Serum", rose.Name)
	assert.Equal(t, 28.0, rose.Price)

	_, ok = p.Get("p-discontinued")
	assert.False(t, ok)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	p := testProvider(t)

	assert.Equal(t,
		[]string{"Skincare", "Makeup", "Hair", "Fragrance", "Tools"},
		p.Categories())
}

func TestProjectTextFilterMatchesNameOrBrand(t *testing.T) {
	p := testProvider(t)

	t.Run("name match is case-insensitive", func(t *testing.T) {
		got := p.Project(ListRequest{Query: "ROSE"})
		assert.Equal(t, []string{"p-rose-serum"}, productIDs(got.Products))
	})

	t.Run("brand match", func(t *testing.T) {
		got := p.Project(ListRequest{Query: "lumiglow"})
		assert.Equal(t, []string{"p-vitc-bright"}, productIDs(got.Products))
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		got := p.Project(ListRequest{})
		assert.Equal(t, 10, got.Count)
	})
}

func TestProjectFiltersAreConjunctive(t *testing.T) {
	p := testProvider(t)

	t.Run("text and category must both match", func(t *testing.T) {
		got := p.Project(ListRequest{Query: "rose", Category: "Skincare"})
		assert.Equal(t, []string{"p-rose-serum"}, productIDs(got.Products))

		none := p.Project(ListRequest{Query: "rose", Category: "Makeup"})
		assert.Zero(t, none.Count)
		assert.Empty(t, none.Products)
	})

	t.Run("category alone returns the full category", func(t *testing.T) {
		got := p.Project(ListRequest{Category: "Skincare"})
		assert.Equal(t,
			[]string{"p-rose-serum", "p-vitc-bright", "p-facial-mist", "p-lavender-cream"},
			productIDs(got.Products))
		assert.Equal(t, 4, got.Count)
	})
}

func TestProjectSortKeys(t *testing.T) {
	p := testProvider(t)

	t.Run("default popularity sorts by rating descending", func(t *testing.T) {
		got := p.Project(ListRequest{Sort: "popularity"})
		require.Equal(t, 10, got.Count)
		assert.Equal(t, "p-amber-parfum", got.Products[0].ID)
		assert.Equal(t, "p-nude-palette", got.Products[1].ID)
		assert.Equal(t, "p-sheer-foundation", got.Products[9].ID)
	})

	t.Run("unknown sort falls back to popularity", func(t *testing.T) {
		got := p.Project(ListRequest{Sort: "definitely-not-a-sort"})
		assert.Equal(t, "p-amber-parfum", got.Products[0].ID)
	})

	t.Run("price ascending", func(t *testing.T) {
		got := p.Project(ListRequest{Sort: SortPriceAsc})
		assert.Equal(t, "p-facial-mist", got.Products[0].ID)
		assert.Equal(t, "p-amber-parfum", got.Products[9].ID)
	})

	t.Run("price descending", func(t *testing.T) {
		got := p.Project(ListRequest{Sort: SortPriceDesc})
		assert.Equal(t, "p-amber-parfum", got.Products[0].ID)
	})

	t.Run("name ascending", func(t *testing.T) {
		got := p.Project(ListRequest{Sort: SortNameAsc})
		assert.Equal(t, "p-facial-mist", got.Products[0].ID) // Aloe Facial Mist
		assert.Equal(t, "p-vitc-bright", got.Products[9].ID) // Vitamin C Brightening Gel
	})

	t.Run("name descending", func(t *testing.T) {
		got := p.Project(ListRequest{Sort: SortNameDesc})
		assert.Equal(t, "p-vitc-bright", got.Products[0].ID)
	})
}

func TestProjectSortIsStableOnTies(t *testing.T) {
	// Equal ratings keep catalog order.
	p := NewProviderFromProducts([]Product{
		{ID: "first", Name: "First", Rating: 4.5},
		{ID: "second", Name: "Second", Rating: 4.5},
		{ID: "third", Name: "Third", Rating: 4.5},
	})

	got := p.Project(ListRequest{})
	assert.Equal(t, []string{"first", "second", "third"}, productIDs(got.Products))
}

func TestFeaturedReturnsTopRated(t *testing.T) {
	p := testProvider(t)

	got := p.Featured(3)
	require.Len(t, got, 3)
	assert.Equal(t, "p-amber-parfum", got[0].ID)
	assert.Equal(t, "p-nude-palette", got[1].ID)
	assert.Equal(t, "p-rose-serum", got[2].ID)

	all := p.Featured(100)
	assert.Len(t, all, 10)
}
