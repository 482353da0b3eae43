// Package cache provides caching implementations for factcheck interfaces.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"content_backend/internal/feature/factcheck/usecase"
)

// CachingCompleter decorates a Completer with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying completion client. Identical prompts within the
// TTL are served from cache instead of re-billing the completion service.
type CachingCompleter struct {
	inner     usecase.Completer
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingCompleter satisfies the same interface it decorates.
var _ usecase.Completer = (*CachingCompleter)(nil)

// NewCachingCompleter decorates a Completer with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "completions".
func NewCachingCompleter(rdb *redis.Client, ttl time.Duration, inner usecase.Completer, namespace string) *CachingCompleter {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "completions"
	}
	return &CachingCompleter{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Complete returns a completion, checking cache first then falling back to
// the underlying client.
func (c *CachingCompleter) Complete(ctx context.Context, instruction, input string) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Complete(ctx, instruction, input)
	}

	key := c.cacheKey(instruction, input)

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil && s != "" {
		return s, nil
	}

	// 2) Fallback to the completion client
	out, err := c.inner.Complete(ctx, instruction, input)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	_ = c.rdb.Set(ctx, key, out, c.ttl).Err()

	return out, nil
}

// cacheKey generates a cache key from the full prompt. Prompt bodies are
// arbitrary user text, so the key is a digest rather than the text itself.
func (c *CachingCompleter) cacheKey(instruction, input string) string {
	sum := sha256.Sum256([]byte(instruction + "\x00" + input))
	return fmt.Sprintf("%s:%s", c.namespace, hex.EncodeToString(sum[:]))
}
