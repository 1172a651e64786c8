package backend

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/pkg/catalogquery"
)

// snapshotCache holds normalized catalog snapshots per source and caller.
// Tokens are hashed so raw credentials never sit in memory as map keys.
type snapshotCache struct {
	lru *expirable.LRU[string, []catalogquery.Record]
}

func newSnapshotCache(size int, ttl time.Duration) *snapshotCache {
	if size <= 0 {
		return nil
	}
	return &snapshotCache{lru: expirable.NewLRU[string, []catalogquery.Record](size, nil, ttl)}
}

func cacheKey(src catalog.Source, token string) string {
	if token == "" {
		return string(src) + ":anonymous"
	}
	sum := sha256.Sum256([]byte(token))
	return string(src) + ":" + hex.EncodeToString(sum[:])
}

// get returns a copy so callers cannot mutate the cached snapshot.
func (c *snapshotCache) get(src catalog.Source, token string) ([]catalogquery.Record, bool) {
	if c == nil {
		return nil, false
	}
	recs, ok := c.lru.Get(cacheKey(src, token))
	if !ok {
		return nil, false
	}
	return slices.Clone(recs), true
}

func (c *snapshotCache) add(src catalog.Source, token string, recs []catalogquery.Record) {
	if c == nil {
		return
	}
	c.lru.Add(cacheKey(src, token), slices.Clone(recs))
}

func (c *snapshotCache) remove(token string) {
	if c == nil {
		return
	}
	c.lru.Remove(cacheKey(catalog.SourceWardrobe, token))
	c.lru.Remove(cacheKey(catalog.SourceMarketplace, token))
}
