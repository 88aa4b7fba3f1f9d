package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageBackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "gc_cart_v1", cfg.Storage.CartKey)
	assert.Equal(t, "todo-items-v1", cfg.Storage.TodoKey)
	assert.Equal(t, "todo-filter-v1", cfg.Storage.TodoFilterKey)
	assert.Equal(t, 8, cfg.Catalog.FeaturedCount)
	assert.Equal(t, 200*time.Millisecond, cfg.Catalog.SearchDebounce)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", StorageBackendMemory)
	t.Setenv("CATALOG_SEARCH_DEBOUNCE", "50ms")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageBackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 50*time.Millisecond, cfg.Catalog.SearchDebounce)
	assert.True(t, cfg.IsProduction())
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "localstorage")

	_, err := Load()
	assert.Error(t, err)
}
