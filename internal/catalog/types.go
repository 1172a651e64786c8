package catalog

import "wardrobe-catalog/pkg/catalogquery"

// Source names a catalog the service can list.
type Source string

const (
	SourceWardrobe    Source = "wardrobe"
	SourceMarketplace Source = "marketplace"
)

// --- UseCase Inputs ---

// ListInput is what a catalog view sends on every filter or sort change.
type ListInput struct {
	Filters catalogquery.Filters
	Sort    catalogquery.Sort
	Limit   int
	Offset  int
}

// QueryInput runs the engine over records supplied by the caller.
type QueryInput struct {
	Records []catalogquery.Record
	Filters catalogquery.Filters
	Sort    catalogquery.Sort
	Limit   int
	Offset  int
}

// --- UseCase Outputs ---

// ListOutput is one page of a filtered, ordered catalog.
// Total counts the unfiltered catalog, Matched the filtered one.
type ListOutput struct {
	Items   []catalogquery.Record
	Total   int
	Matched int
	Limit   int
	Offset  int
}

// FacetsOutput feeds the filter widgets and the wardrobe stat bar.
type FacetsOutput struct {
	Facets  catalogquery.Facets
	Summary catalogquery.Summary
}
