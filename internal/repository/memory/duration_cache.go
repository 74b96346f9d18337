package memory

import (
	"time"

	"gps-tracking-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const durationCatalogKey = "duration_catalog"

// DurationCache holds the subscription duration catalog between mutations.
type DurationCache struct {
	cache *cache.Cache
}

func NewDurationCache(ttl time.Duration) *DurationCache {
	return &DurationCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *DurationCache) Get() ([]*entity.SubscriptionDuration, bool) {
	x, found := c.cache.Get(durationCatalogKey)
	if !found {
		return nil, false
	}
	return copyDurations(x.([]*entity.SubscriptionDuration)), true
}

func (c *DurationCache) Set(durations []*entity.SubscriptionDuration) {
	c.cache.Set(durationCatalogKey, copyDurations(durations), cache.DefaultExpiration)
}

func (c *DurationCache) Invalidate() {
	c.cache.Delete(durationCatalogKey)
}

func copyDurations(in []*entity.SubscriptionDuration) []*entity.SubscriptionDuration {
	out := make([]*entity.SubscriptionDuration, len(in))
	for i, d := range in {
		cp := *d
		out[i] = &cp
	}
	return out
}
