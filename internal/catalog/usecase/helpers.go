package usecase

import (
	"errors"
	"fmt"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/internal/catalog/repository"
	"wardrobe-catalog/pkg/catalogquery"
)

// validateFilters rejects price ranges no record could ever satisfy.
func (uc *implUseCase) validateFilters(f catalogquery.Filters) error {
	if f.PriceRange == nil {
		return nil
	}
	if (f.PriceRange.Min != nil && *f.PriceRange.Min < 0) || (f.PriceRange.Max != nil && *f.PriceRange.Max < 0) {
		return catalog.ErrNegativePrice
	}
	lo, hi := f.PriceRange.Bounds()
	if lo > hi {
		return catalog.ErrInvalidPriceRange
	}
	return nil
}

// pageBounds applies the configured default and maximum page size.
func (uc *implUseCase) pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = uc.cfg.DefaultLimit
	}
	if uc.cfg.MaxLimit > 0 && (limit <= 0 || limit > uc.cfg.MaxLimit) {
		limit = uc.cfg.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// run filters, orders and pages a snapshot.
func (uc *implUseCase) run(records []catalogquery.Record, f catalogquery.Filters, s catalogquery.Sort, limit, offset int) catalog.ListOutput {
	limit, offset = uc.pageBounds(limit, offset)
	matched := catalogquery.Query(records, f, s)
	return catalog.ListOutput{
		Items:   catalogquery.Page(matched, limit, offset),
		Total:   len(records),
		Matched: len(matched),
		Limit:   limit,
		Offset:  offset,
	}
}

// fetchError translates repository failures into domain errors.
func (uc *implUseCase) fetchError(err error) error {
	if errors.Is(err, repository.ErrUnauthorized) {
		return catalog.ErrUnauthorized
	}
	return fmt.Errorf("%w: %v", catalog.ErrBackendUnavailable, err)
}
