// internal/pkg/kvstore/kvstore.go
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by KV.Get when no value exists under the key.
var ErrNotFound = errors.New("kvstore: key not found")

// KV is a byte-string key-value storage backend. Writes are atomic per key;
// no cross-key transactions are provided or expected.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, keys ...string) error
}

// Load reads and deserializes the value stored under key. A missing key, a
// read failure, or a payload that does not parse as T all yield fallback;
// corrupt state is healed by reverting to the default, never surfaced as an
// error to the caller.
func Load[T any](ctx context.Context, kv KV, key string, fallback T) T {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fallback
	}

	return value
}

// Save serializes value as JSON and writes it under key.
func Save[T any](ctx context.Context, kv KV, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, data)
}
