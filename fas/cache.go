package fas

import (
	"context"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a pluggable key-value backend for memoized lookups.
//
// Implementations provide their own locking and may impose TTL or eviction;
// callers must tolerate misses recurring for previously stored keys. A Get
// failure in a remote backend should degrade to a miss, and a Set failure
// should be dropped, so cache trouble costs a redundant search rather than a
// failed lookup.
type Cache interface {
	Get(ctx context.Context, key string) (value string, ok bool)
	Set(ctx context.Context, key string, value string)
}

// MemCache is the default Cache backend: an unbounded in-process store
// holding entries for the process lifetime.
type MemCache struct {
	entries *expirable.LRU[string, string]
}

var _ Cache = (*MemCache)(nil)

func NewMemCache() *MemCache {
	// zero capacity and TTL mean unlimited size and duration
	return &MemCache{entries: expirable.NewLRU[string, string](0, nil, 0)}
}

func (c *MemCache) Get(ctx context.Context, key string) (string, bool) {
	return c.entries.Get(key)
}

func (c *MemCache) Set(ctx context.Context, key string, value string) {
	c.entries.Add(key, value)
}

// NicknameKey derives the cache key for a nickname lookup. Keys are scoped by
// the credential bundle (instance URL and account username), so lookups
// against different account-system instances or users never share entries.
// The derivation is exposed so one search response can populate both lookup
// directions' entries without invoking the sibling resolver.
func NicknameKey(nickname string, creds Credentials) string {
	return cacheKey("nickname", nickname, creds)
}

// EmailKey derives the cache key for an email lookup. See NicknameKey.
func EmailKey(email string, creds Credentials) string {
	return cacheKey("email", email, creds)
}

func cacheKey(fn, arg string, creds Credentials) string {
	return fmt.Sprintf("%s|%s|%s|%s", fn, creds.baseURL(), creds.Username, arg)
}
