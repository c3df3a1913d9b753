package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/mortgage-engine/cache"
)

func TestMemory_SetThenGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(0)

	require.NoError(t, c.Set(ctx, "k", []byte("v")))

	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}

func TestMemory_MissReturnsFalse(t *testing.T) {
	c := cache.NewMemory(0)

	got, ok := c.Get(context.Background(), "absent")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemory_EntriesExpire(t *testing.T) {
	// GIVEN: A cache with a very short TTL
	// WHEN: Reading after the TTL has elapsed
	// THEN: The entry is gone

	ctx := context.Background()
	c := cache.NewMemory(10 * time.Millisecond)

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemory_ZeroTTL_NeverExpires(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(0)

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)
}

func TestKey_StableAndPayloadSensitive(t *testing.T) {
	// Identical payloads share a key; any byte difference changes it.
	a := cache.Key([]byte(`{"price":300000}`))
	b := cache.Key([]byte(`{"price":300000}`))
	c := cache.Key([]byte(`{"price":300001}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "analysis:")
}
