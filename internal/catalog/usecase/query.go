package usecase

import (
	"context"

	"wardrobe-catalog/internal/catalog"
)

// Query runs the engine over records supplied by the caller. Nothing is fetched.
func (uc *implUseCase) Query(ctx context.Context, input catalog.QueryInput) (catalog.ListOutput, error) {
	if uc.cfg.MaxRecords > 0 && len(input.Records) > uc.cfg.MaxRecords {
		uc.l.Warnf(ctx, "uc.Query: %d records exceeds cap %d", len(input.Records), uc.cfg.MaxRecords)
		return catalog.ListOutput{}, catalog.ErrTooManyRecords
	}
	if err := uc.validateFilters(input.Filters); err != nil {
		return catalog.ListOutput{}, err
	}

	return uc.run(input.Records, input.Filters, input.Sort, input.Limit, input.Offset), nil
}
