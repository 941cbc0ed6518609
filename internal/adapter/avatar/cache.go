package avatar

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/avatargrid/internal/app"
)

// CachedFetcher wraps avatar fetcher with in-memory caching layer.
// Only successfully fetched images are cached.
type CachedFetcher struct {
	fetcher app.AvatarFetcher
	cache   *lru.Cache
	ttl     time.Duration
}

// NewCachedFetcher creates new CachedFetcher instance.
func NewCachedFetcher(fetcher app.AvatarFetcher, size int, ttl time.Duration) (*CachedFetcher, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for avatars: %w", err)
	}

	return &CachedFetcher{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
	}, nil
}

// FetchAvatar returns cached image, or fetches it when not cached or expired.
func (c *CachedFetcher) FetchAvatar(ctx context.Context, url string) (app.Image, error) {
	if val, ok := c.cache.Get(url); ok {
		entry := val.(cacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.image, nil
		}
	}

	img, err := c.fetcher.FetchAvatar(ctx, url)
	if err != nil {
		return img, err
	}

	c.cache.Add(url, cacheEntry{
		created: time.Now(),
		image:   img,
	})

	return img, nil
}

type cacheEntry struct {
	created time.Time
	image   app.Image
}
