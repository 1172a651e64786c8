package backend

import (
	"wardrobe-catalog/internal/catalog/repository"
	pkgLog "wardrobe-catalog/pkg/log"
)

type implRepository struct {
	client *Client
	cache  *snapshotCache
	l      pkgLog.Logger
}

// New creates a catalog repository backed by the marketplace REST API.
func New(client *Client, cfg Config, l pkgLog.Logger) repository.Repository {
	r := &implRepository{client: client, l: l}
	if cfg.CacheEnabled {
		r.cache = newSnapshotCache(cfg.CacheSize, cfg.CacheTTL)
	}
	return r
}
