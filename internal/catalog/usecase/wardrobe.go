package usecase

import (
	"context"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/internal/catalog/repository"
	"wardrobe-catalog/internal/model"
	"wardrobe-catalog/pkg/catalogquery"
)

// ListWardrobe returns one page of the caller's wardrobe after filtering and sorting.
func (uc *implUseCase) ListWardrobe(ctx context.Context, sc model.Scope, input catalog.ListInput) (catalog.ListOutput, error) {
	if !sc.Authenticated() {
		return catalog.ListOutput{}, catalog.ErrUnauthorized
	}
	if err := uc.validateFilters(input.Filters); err != nil {
		return catalog.ListOutput{}, err
	}

	records, err := uc.repo.ListWardrobeItems(ctx, repository.ListOptions{Token: sc.Token})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListWardrobe ListWardrobeItems: %v", err)
		return catalog.ListOutput{}, uc.fetchError(err)
	}

	out := uc.run(records, input.Filters, input.Sort, input.Limit, input.Offset)
	uc.l.Debugf(ctx, "uc.ListWardrobe: %d of %d items matched, sort=%q", out.Matched, out.Total, input.Sort.String())
	return out, nil
}

// WardrobeFacets returns filter options and stat counts over the whole wardrobe.
func (uc *implUseCase) WardrobeFacets(ctx context.Context, sc model.Scope) (catalog.FacetsOutput, error) {
	if !sc.Authenticated() {
		return catalog.FacetsOutput{}, catalog.ErrUnauthorized
	}

	records, err := uc.repo.ListWardrobeItems(ctx, repository.ListOptions{Token: sc.Token})
	if err != nil {
		uc.l.Errorf(ctx, "uc.WardrobeFacets ListWardrobeItems: %v", err)
		return catalog.FacetsOutput{}, uc.fetchError(err)
	}

	return catalog.FacetsOutput{
		Facets:  catalogquery.BuildFacets(records),
		Summary: catalogquery.Summarize(records),
	}, nil
}

// Invalidate drops the caller's cached snapshots so the next read refetches.
func (uc *implUseCase) Invalidate(ctx context.Context, sc model.Scope) error {
	if !sc.Authenticated() {
		return catalog.ErrUnauthorized
	}
	uc.repo.Invalidate(ctx, repository.ListOptions{Token: sc.Token})
	return nil
}
