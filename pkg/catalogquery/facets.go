package catalogquery

import (
	"slices"
)

// Facets are the option lists for filter dropdowns, derived from the data.
type Facets struct {
	Brands     []string    `json:"brands"`
	Categories []string    `json:"categories"`
	Colors     []string    `json:"colors"`
	Conditions []Condition `json:"conditions"`
	Lifecycles []Lifecycle `json:"lifecycles"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
}

// BuildFacets collects sorted distinct values. Conditions are limited to
// recognized grades in rank order, since an exact filter never matches the rest.
func BuildFacets(records []Record) Facets {
	brands := map[string]struct{}{}
	categories := map[string]struct{}{}
	colors := map[string]struct{}{}
	conditions := map[Condition]struct{}{}
	var lo, hi *int64

	for _, r := range records {
		if r.Brand != "" {
			brands[r.Brand] = struct{}{}
		}
		if r.Category != "" {
			categories[r.Category] = struct{}{}
		}
		if r.Color != "" {
			colors[r.Color] = struct{}{}
		}
		if r.Condition.Valid() {
			conditions[r.Condition] = struct{}{}
		}
		if r.PriceCents != nil {
			p := *r.PriceCents
			if lo == nil || p < *lo {
				lo = Int64(p)
			}
			if hi == nil || p > *hi {
				hi = Int64(p)
			}
		}
	}

	f := Facets{
		Brands:     sortedKeys(brands),
		Categories: sortedKeys(categories),
		Colors:     sortedKeys(colors),
		Conditions: make([]Condition, 0, len(conditions)),
		Lifecycles: slices.Clone(Lifecycles),
	}
	for _, c := range Conditions {
		if _, ok := conditions[c]; ok {
			f.Conditions = append(f.Conditions, c)
		}
	}
	if lo != nil {
		f.PriceRange = &PriceRange{Min: lo, Max: hi}
	}
	return f
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Summary is the wardrobe stat bar.
type Summary struct {
	Total       int               `json:"total"`
	Resold      int               `json:"resold"`
	Brands      int               `json:"brands"`
	ByLifecycle map[Lifecycle]int `json:"by_lifecycle"`
}

// Summarize counts pieces, resold pieces and distinct brands.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records), ByLifecycle: map[Lifecycle]int{}}
	brands := map[string]struct{}{}
	for _, r := range records {
		if r.Lifecycle == LifecycleSold {
			s.Resold++
		}
		if r.Lifecycle.Valid() {
			s.ByLifecycle[r.Lifecycle]++
		}
		if r.Brand != "" {
			brands[r.Brand] = struct{}{}
		}
	}
	s.Brands = len(brands)
	return s
}
