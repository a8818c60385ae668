package last_message

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const key = "last_message"

type repo struct {
	cache *ttlcache.Cache[string, string]
}

// NewRepository keeps the last sent message in memory, ttl of zero means it never expires.
func NewRepository(ttl time.Duration) *repo {
	return &repo{
		cache: ttlcache.New[string, string](
			ttlcache.WithTTL[string, string](ttl),
			ttlcache.WithDisableTouchOnHit[string, string](),
		),
	}
}

func (r *repo) LastMessage() string {
	item := r.cache.Get(key)
	if item == nil || item.IsExpired() {
		return ""
	}

	return item.Value()
}

func (r *repo) Save(message string) {
	r.cache.Set(key, message, ttlcache.DefaultTTL)
}
