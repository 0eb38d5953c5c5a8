package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"immo-media/internal/entity"

	"github.com/redis/go-redis/v9"
)

const mediaKeyPrefix = "media:bien:"

// Lookup is the result of a cache read. Generation must be handed back to Set
// so that a list loaded before an invalidation is never served after it.
type Lookup struct {
	Media      []*entity.Media
	Hit        bool
	Generation int64
}

// MediaListCache keeps the per-listing media list warm between uploads.
type MediaListCache interface {
	Get(ctx context.Context, bienID string) (Lookup, error)
	Set(ctx context.Context, bienID string, generation int64, media []*entity.Media) error
	Invalidate(ctx context.Context, bienID string) error
}

type mediaListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMediaListCache(client *redis.Client, ttl time.Duration) MediaListCache {
	return &mediaListCache{client: client, ttl: ttl}
}

func generationKey(bienID string) string {
	return mediaKeyPrefix + bienID + ":gen"
}

func mediaKey(bienID string, generation int64) string {
	return fmt.Sprintf("%s%s:v%d", mediaKeyPrefix, bienID, generation)
}

func (c *mediaListCache) generation(ctx context.Context, bienID string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(bienID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read media cache generation: %w", err)
	}
	return gen, nil
}

func (c *mediaListCache) Get(ctx context.Context, bienID string) (Lookup, error) {
	gen, err := c.generation(ctx, bienID)
	if err != nil {
		return Lookup{}, err
	}

	raw, err := c.client.Get(ctx, mediaKey(bienID, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Lookup{Generation: gen}, nil
	}
	if err != nil {
		return Lookup{}, fmt.Errorf("failed to read media cache: %w", err)
	}

	var media []*entity.Media
	if err := json.Unmarshal(raw, &media); err != nil {
		// treat a corrupt entry as a miss
		_ = c.client.Del(ctx, mediaKey(bienID, gen)).Err()
		return Lookup{Generation: gen}, nil
	}
	return Lookup{Media: media, Hit: true, Generation: gen}, nil
}

// Set stores media under generation. If the list was invalidated since that
// generation was read, the entry lands on a key no reader looks at and expires.
func (c *mediaListCache) Set(ctx context.Context, bienID string, generation int64, media []*entity.Media) error {
	raw, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("failed to encode media cache: %w", err)
	}
	if err := c.client.Set(ctx, mediaKey(bienID, generation), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write media cache: %w", err)
	}
	return nil
}

func (c *mediaListCache) Invalidate(ctx context.Context, bienID string) error {
	if err := c.client.Incr(ctx, generationKey(bienID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate media cache: %w", err)
	}
	return nil
}
