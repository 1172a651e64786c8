package repository

import (
	"context"

	"wardrobe-catalog/pkg/catalogquery"
)

// Repository is the composed interface for catalog data access.
type Repository interface {
	WardrobeRepository
	ListingRepository

	// Invalidate drops any cached snapshot held for opt.Token.
	Invalidate(ctx context.Context, opt ListOptions)
}

// WardrobeRepository reads the caller's own items.
type WardrobeRepository interface {
	ListWardrobeItems(ctx context.Context, opt ListOptions) ([]catalogquery.Record, error)
}

// ListingRepository reads resale listings.
type ListingRepository interface {
	ListListings(ctx context.Context, opt ListOptions) ([]catalogquery.Record, error)
}
