package catalogquery

import (
	"math"
	"time"
)

// Record is one wardrobe item or marketplace listing in canonical shape.
// Optional numeric fields are pointers so "absent" differs from zero.
type Record struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Brand       string     `json:"brand,omitempty"`
	Color       string     `json:"color,omitempty"`
	Condition   Condition  `json:"condition,omitempty"`
	Lifecycle   Lifecycle  `json:"lifecycle_state,omitempty"`
	PriceCents  *int64     `json:"price_cents,omitempty"`
	ListedOn    *time.Time `json:"listed_on,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
}

// Filters holds the active predicates. Zero value matches everything.
type Filters struct {
	Category   string      `json:"category,omitempty"`
	Brand      string      `json:"brand,omitempty"`
	Color      string      `json:"color,omitempty"`
	Condition  Condition   `json:"condition,omitempty"`
	Lifecycle  Lifecycle   `json:"lifecycle_state,omitempty"`
	SearchText string      `json:"search_text,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
}

// PriceRange is an inclusive bound in minor units. Nil bounds mean [0, +inf).
type PriceRange struct {
	Min *int64 `json:"min_cents,omitempty"`
	Max *int64 `json:"max_cents,omitempty"`
}

// Bounds resolves the range to concrete inclusive limits.
func (p PriceRange) Bounds() (int64, int64) {
	lo, hi := int64(0), int64(math.MaxInt64)
	if p.Min != nil {
		lo = *p.Min
	}
	if p.Max != nil {
		hi = *p.Max
	}
	return lo, hi
}

// SortField names a sortable dimension.
type SortField string

const (
	SortByPrice         SortField = "priceCents"
	SortByListedOn      SortField = "listedOn"
	SortByConditionRank SortField = "conditionRank"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort selects the ordering. An empty Field preserves input order.
type Sort struct {
	Field     SortField     `json:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

// String renders the sort the way the sort widget encodes it, e.g. "priceCents-asc".
func (s Sort) String() string {
	if s.Field == "" {
		return ""
	}
	dir := s.Direction
	if dir == "" {
		dir = SortAsc
	}
	return string(s.Field) + "-" + string(dir)
}

// Int64 returns a pointer to v. Handy for building Records and PriceRanges.
func Int64(v int64) *int64 { return &v }
