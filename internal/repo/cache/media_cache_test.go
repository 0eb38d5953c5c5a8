package cache

import (
	"context"
	"testing"
	"time"

	"immo-media/internal/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return mr, client
}

func sampleMedia() []*entity.Media {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return []*entity.Media{
		{ID: "m1", BienID: "bien-1", URL: "https://cdn/a.jpg", Kind: entity.MediaKindImage, CreatedAt: created},
		{ID: "m2", BienID: "bien-1", URL: "https://cdn/b.mp4", Kind: entity.MediaKindVideo, CreatedAt: created},
	}
}

func TestMediaListCache_SetGetInvalidate(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	c := NewMediaListCache(client, time.Minute)
	ctx := context.Background()

	lookup, err := c.Get(ctx, "bien-1")
	require.NoError(t, err)
	assert.False(t, lookup.Hit)
	assert.Equal(t, int64(0), lookup.Generation)

	media := sampleMedia()
	require.NoError(t, c.Set(ctx, "bien-1", lookup.Generation, media))
	assert.True(t, mr.Exists("media:bien:bien-1:v0"))
	assert.Equal(t, time.Minute, mr.TTL("media:bien:bien-1:v0"))

	lookup, err = c.Get(ctx, "bien-1")
	require.NoError(t, err)
	require.True(t, lookup.Hit)
	assert.Equal(t, media, lookup.Media)

	require.NoError(t, c.Invalidate(ctx, "bien-1"))
	lookup, err = c.Get(ctx, "bien-1")
	require.NoError(t, err)
	assert.False(t, lookup.Hit)
	assert.Equal(t, int64(1), lookup.Generation)
}

func TestMediaListCache_SetAfterInvalidateIsNotServed(t *testing.T) {
	_, client := newMiniRedisClient(t)
	c := NewMediaListCache(client, time.Minute)
	ctx := context.Background()

	// a reader misses and loads the list from the database
	before, err := c.Get(ctx, "bien-1")
	require.NoError(t, err)
	require.False(t, before.Hit)

	// an upload lands and invalidates before the reader writes back
	require.NoError(t, c.Invalidate(ctx, "bien-1"))
	require.NoError(t, c.Set(ctx, "bien-1", before.Generation, sampleMedia()[:1]))

	after, err := c.Get(ctx, "bien-1")
	require.NoError(t, err)
	assert.False(t, after.Hit)
	assert.Greater(t, after.Generation, before.Generation)
}

func TestMediaListCache_CorruptEntryIsMiss(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	c := NewMediaListCache(client, time.Minute)

	require.NoError(t, mr.Set("media:bien:b:v0", "{not json"))

	lookup, err := c.Get(context.Background(), "b")
	require.NoError(t, err)
	assert.False(t, lookup.Hit)
	assert.False(t, mr.Exists("media:bien:b:v0"))
}

func TestMediaListCache_ConnectionError(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	c := NewMediaListCache(client, time.Minute)
	mr.Close()

	_, err := c.Get(context.Background(), "b")
	assert.Error(t, err)
	assert.Error(t, c.Invalidate(context.Background(), "b"))
}
