package backend

import (
	"context"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/internal/catalog/repository"
	"wardrobe-catalog/pkg/catalogquery"
)

func (r *implRepository) ListWardrobeItems(ctx context.Context, opt repository.ListOptions) ([]catalogquery.Record, error) {
	return r.list(ctx, catalog.SourceWardrobe, opt, r.client.GetWardrobe)
}

func (r *implRepository) ListListings(ctx context.Context, opt repository.ListOptions) ([]catalogquery.Record, error) {
	return r.list(ctx, catalog.SourceMarketplace, opt, r.client.GetListings)
}

func (r *implRepository) Invalidate(ctx context.Context, opt repository.ListOptions) {
	r.cache.remove(opt.Token)
	r.l.Debugf(ctx, "backend repository: invalidated snapshots")
}

type fetchFunc func(ctx context.Context, token string) ([]rawRecord, error)

func (r *implRepository) list(ctx context.Context, src catalog.Source, opt repository.ListOptions, fetch fetchFunc) ([]catalogquery.Record, error) {
	if !opt.NoCache {
		if recs, ok := r.cache.get(src, opt.Token); ok {
			r.l.Debugf(ctx, "backend repository: %s cache hit (%d records)", src, len(recs))
			return recs, nil
		}
	}

	raw, err := fetch(ctx, opt.Token)
	if err != nil {
		r.l.Errorf(ctx, "backend repository: failed to fetch %s: %v", src, err)
		return nil, err
	}

	recs := normalize(src, raw)
	r.cache.add(src, opt.Token, recs)
	r.l.Debugf(ctx, "backend repository: fetched %s (%d raw, %d records)", src, len(raw), len(recs))
	return recs, nil
}
