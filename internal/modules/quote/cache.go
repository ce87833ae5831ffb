// README: Redis-backed quote result cache.
package quote

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) (Result, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// Miss and backend failure look the same; the engine recomputes.
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return Result{}, false
	}
	return res, true
}

func (c *Cache) Set(ctx context.Context, key string, res Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// requestKey derives a deterministic cache key from every field that affects
// the computed result.
func requestKey(req Request) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%d|%s|%t",
		req.City, req.Zip, req.Passengers, req.Hours, req.EventDate, req.IsPromOrDance)))
	return "quote:" + hex.EncodeToString(sum[:])
}
