package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBackend(t *testing.T) {
	assert.IsType(t, &MemoryBackend{}, NewBackend("", "", 0))
	assert.IsType(t, &RedisBackend{}, NewBackend("localhost:6379", "", 0))
}

func TestNewBackend_MemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewBackend("", "", 0)

	assert.NoError(t, b.Set(ctx, "sf_orders", []byte(`[{"id":"SF-1"}]`)))

	got, err := b.Get(ctx, "sf_orders")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"SF-1"}]`), got)
}
