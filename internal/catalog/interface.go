package catalog

import (
	"context"

	"wardrobe-catalog/internal/model"
)

// UseCase defines the business logic interface for the catalog domain.
// Every catalog view goes through it so filter and sort rules stay in one place.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// ListWardrobe filters and orders the caller's own wardrobe items.
	ListWardrobe(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// ListMarketplace filters and orders the active resale listings.
	ListMarketplace(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// WardrobeFacets returns dropdown options and stat counts for the wardrobe.
	WardrobeFacets(ctx context.Context, sc model.Scope) (FacetsOutput, error)

	// Query runs the engine over caller-supplied records.
	Query(ctx context.Context, input QueryInput) (ListOutput, error)

	// Invalidate drops cached catalog snapshots for the caller.
	Invalidate(ctx context.Context, sc model.Scope) error
}
