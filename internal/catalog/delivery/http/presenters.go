package http

import (
	"errors"
	"time"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/pkg/catalogquery"
	"wardrobe-catalog/pkg/response"
)

var errSortConflict = errors.New("use either sort or sort_by/sort_dir, not both")

// --- Request DTOs ---

// listReq is the query string shared by the wardrobe and marketplace views.
type listReq struct {
	Category  string `form:"category"   binding:"max=128"`
	Brand     string `form:"brand"      binding:"max=128"`
	Color     string `form:"color"      binding:"max=64"`
	Condition string `form:"condition"  binding:"max=32"`
	Lifecycle string `form:"lifecycle"  binding:"max=32"`
	Search    string `form:"search"     binding:"max=256"`
	MinPrice  *int64 `form:"min_price"  binding:"omitempty,min=0"`
	MaxPrice  *int64 `form:"max_price"  binding:"omitempty,min=0"`
	SortBy    string `form:"sort_by"    binding:"omitempty,catalog_sort"`
	SortDir   string `form:"sort_dir"   binding:"omitempty,catalog_dir"`
	Sort      string `form:"sort"       binding:"max=64"`
	Limit     int    `form:"limit"      binding:"min=0"`
	Offset    int    `form:"offset"     binding:"min=0"`
}

func (r listReq) validate() error {
	if r.Sort != "" && (r.SortBy != "" || r.SortDir != "") {
		return errSortConflict
	}
	_, err := r.sort()
	return err
}

// sort accepts either the combined "field-direction" form or sort_by/sort_dir.
func (r listReq) sort() (catalogquery.Sort, error) {
	if r.Sort != "" {
		return catalogquery.ParseSortSpec(r.Sort)
	}
	return catalogquery.ParseSort(r.SortBy, r.SortDir)
}

func (r listReq) filters() catalogquery.Filters {
	f := catalogquery.Filters{
		Category:   r.Category,
		Brand:      r.Brand,
		Color:      r.Color,
		Condition:  catalogquery.Condition(r.Condition),
		Lifecycle:  catalogquery.Lifecycle(r.Lifecycle),
		SearchText: r.Search,
	}
	if r.MinPrice != nil || r.MaxPrice != nil {
		f.PriceRange = &catalogquery.PriceRange{Min: r.MinPrice, Max: r.MaxPrice}
	}
	return f
}

func (r listReq) toInput() catalog.ListInput {
	s, _ := r.sort()
	return catalog.ListInput{
		Filters: r.filters(),
		Sort:    s,
		Limit:   r.Limit,
		Offset:  r.Offset,
	}
}

// ---

type recordReq struct {
	ID          string         `json:"id"          binding:"required,max=128"`
	Title       string         `json:"title"       binding:"required,max=512"`
	Description string         `json:"description" binding:"max=4096"`
	Category    string         `json:"category"`
	Brand       string         `json:"brand"`
	Color       string         `json:"color"`
	Condition   string         `json:"condition"`
	Lifecycle   string         `json:"lifecycle_state"`
	PriceCents  *int64         `json:"price_cents" binding:"omitempty,min=0"`
	ListedOn    *response.Date `json:"listed_on"`
	ImageURL    string         `json:"image_url"`
}

func (r recordReq) toRecord() catalogquery.Record {
	rec := catalogquery.Record{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Brand:       r.Brand,
		Color:       r.Color,
		Condition:   catalogquery.Condition(r.Condition),
		Lifecycle:   catalogquery.Lifecycle(r.Lifecycle),
		PriceCents:  r.PriceCents,
		ImageURL:    r.ImageURL,
	}
	if r.ListedOn != nil {
		t := time.Time(*r.ListedOn)
		rec.ListedOn = &t
	}
	return rec
}

type priceRangeReq struct {
	Min *int64 `json:"min_cents" binding:"omitempty,min=0"`
	Max *int64 `json:"max_cents" binding:"omitempty,min=0"`
}

type filtersReq struct {
	Category   string         `json:"category"`
	Brand      string         `json:"brand"`
	Color      string         `json:"color"`
	Condition  string         `json:"condition"`
	Lifecycle  string         `json:"lifecycle_state"`
	SearchText string         `json:"search_text"`
	PriceRange *priceRangeReq `json:"price_range"`
}

type sortReq struct {
	Field     string `json:"field"     binding:"omitempty,catalog_sort"`
	Direction string `json:"direction" binding:"omitempty,catalog_dir"`
}

// queryReq is the body of an ad-hoc query over caller-supplied records.
type queryReq struct {
	Records []recordReq `json:"records" binding:"dive"`
	Filters filtersReq  `json:"filters"`
	Sort    sortReq     `json:"sort"`
	Limit   int         `json:"limit"   binding:"min=0"`
	Offset  int         `json:"offset"  binding:"min=0"`
}

func (r queryReq) validate() error {
	_, err := catalogquery.ParseSort(r.Sort.Field, r.Sort.Direction)
	return err
}

func (r queryReq) toInput() catalog.QueryInput {
	records := make([]catalogquery.Record, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, rec.toRecord())
	}

	f := catalogquery.Filters{
		Category:   r.Filters.Category,
		Brand:      r.Filters.Brand,
		Color:      r.Filters.Color,
		Condition:  catalogquery.Condition(r.Filters.Condition),
		Lifecycle:  catalogquery.Lifecycle(r.Filters.Lifecycle),
		SearchText: r.Filters.SearchText,
	}
	if r.Filters.PriceRange != nil {
		f.PriceRange = &catalogquery.PriceRange{Min: r.Filters.PriceRange.Min, Max: r.Filters.PriceRange.Max}
	}

	s, _ := catalogquery.ParseSort(r.Sort.Field, r.Sort.Direction)
	return catalog.QueryInput{
		Records: records,
		Filters: f,
		Sort:    s,
		Limit:   r.Limit,
		Offset:  r.Offset,
	}
}

// --- Response DTOs ---

type recordResp struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	Category      string             `json:"category,omitempty"`
	Brand         string             `json:"brand,omitempty"`
	Color         string             `json:"color,omitempty"`
	Condition     string             `json:"condition,omitempty"`
	ConditionRank int                `json:"condition_rank"`
	Lifecycle     string             `json:"lifecycle_state,omitempty"`
	PriceCents    *int64             `json:"price_cents,omitempty"`
	ListedOn      *response.DateTime `json:"listed_on,omitempty"`
	ImageURL      string             `json:"image_url,omitempty"`
}

func newRecordResp(r catalogquery.Record) recordResp {
	resp := recordResp{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Brand:         r.Brand,
		Color:         r.Color,
		Condition:     string(r.Condition),
		ConditionRank: r.Condition.Rank(),
		Lifecycle:     string(r.Lifecycle),
		PriceCents:    r.PriceCents,
		ImageURL:      r.ImageURL,
	}
	if r.ListedOn != nil {
		d := response.DateTime(*r.ListedOn)
		resp.ListedOn = &d
	}
	return resp
}

type listResp struct {
	Items   []recordResp `json:"items"`
	Total   int          `json:"total"`
	Matched int          `json:"matched"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func (h *handler) newListResp(out catalog.ListOutput) listResp {
	items := make([]recordResp, len(out.Items))
	for i, r := range out.Items {
		items[i] = newRecordResp(r)
	}
	return listResp{
		Items:   items,
		Total:   out.Total,
		Matched: out.Matched,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}

type facetsResp struct {
	Facets  catalogquery.Facets  `json:"facets"`
	Summary catalogquery.Summary `json:"summary"`
}

func (h *handler) newFacetsResp(out catalog.FacetsOutput) facetsResp {
	return facetsResp{Facets: out.Facets, Summary: out.Summary}
}
