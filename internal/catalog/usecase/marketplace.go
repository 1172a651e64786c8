package usecase

import (
	"context"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/internal/catalog/repository"
	"wardrobe-catalog/internal/model"
)

// ListMarketplace returns one page of active listings after filtering and sorting.
// Anonymous callers browse with the service's own backend identity.
func (uc *implUseCase) ListMarketplace(ctx context.Context, sc model.Scope, input catalog.ListInput) (catalog.ListOutput, error) {
	if err := uc.validateFilters(input.Filters); err != nil {
		return catalog.ListOutput{}, err
	}

	records, err := uc.repo.ListListings(ctx, repository.ListOptions{Token: sc.Token})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMarketplace ListListings: %v", err)
		return catalog.ListOutput{}, uc.fetchError(err)
	}

	out := uc.run(records, input.Filters, input.Sort, input.Limit, input.Offset)
	uc.l.Debugf(ctx, "uc.ListMarketplace: %d of %d listings matched, sort=%q", out.Matched, out.Total, input.Sort.String())
	return out, nil
}
