package catalogquery_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	cq "wardrobe-catalog/pkg/catalogquery"
)

func TestBuildFacets(t *testing.T) {
	f := cq.BuildFacets(fixture())

	if diff := cmp.Diff([]string{"Levi's", "Patagonia", "The North Face", "Uniqlo", "Veja"}, f.Brands); diff != "" {
		t.Errorf("brands (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Accessories", "Bottoms", "Footwear", "Outerwear", "Tops"}, f.Categories); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}
	want := []cq.Condition{cq.ConditionLikeNew, cq.ConditionGood, cq.ConditionFair, cq.ConditionWorn}
	if diff := cmp.Diff(want, f.Conditions); diff != "" {
		t.Errorf("conditions (-want +got):\n%s", diff)
	}
	if len(f.Lifecycles) != len(cq.Lifecycles) {
		t.Errorf("expected every lifecycle, got %v", f.Lifecycles)
	}
	if f.PriceRange == nil || *f.PriceRange.Min != 2200 || *f.PriceRange.Max != 12000 {
		t.Errorf("unexpected price range: %+v", f.PriceRange)
	}

	empty := cq.BuildFacets(nil)
	if empty.PriceRange != nil {
		t.Errorf("expected nil price range for empty input")
	}
	if empty.Brands == nil || len(empty.Brands) != 0 {
		t.Errorf("expected empty brand list, got %v", empty.Brands)
	}
}

func TestSummarize(t *testing.T) {
	s := cq.Summarize(fixture())
	if s.Total != 6 {
		t.Errorf("expected total 6, got %d", s.Total)
	}
	if s.Resold != 1 {
		t.Errorf("expected 1 resold, got %d", s.Resold)
	}
	if s.Brands != 5 {
		t.Errorf("expected 5 brands, got %d", s.Brands)
	}
	if s.ByLifecycle[cq.LifecycleActive] != 3 {
		t.Errorf("expected 3 active, got %d", s.ByLifecycle[cq.LifecycleActive])
	}
	if _, ok := s.ByLifecycle["Archived"]; ok {
		t.Errorf("unrecognized lifecycle should not be counted")
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		field, dir string
		want       cq.Sort
		wantErr    error
	}{
		{"", "", cq.Sort{}, nil},
		{"", "desc", cq.Sort{}, nil},
		{"priceCents", "", cq.Sort{Field: cq.SortByPrice, Direction: cq.SortAsc}, nil},
		{"list_price_cents", "DESC", cq.Sort{Field: cq.SortByPrice, Direction: cq.SortDesc}, nil},
		{"listed_on", "asc", cq.Sort{Field: cq.SortByListedOn, Direction: cq.SortAsc}, nil},
		{"condition_rank", "asc", cq.Sort{Field: cq.SortByConditionRank, Direction: cq.SortAsc}, nil},
		{"view_count", "asc", cq.Sort{}, cq.ErrUnknownSortField},
		{"price", "sideways", cq.Sort{}, cq.ErrUnknownSortDirection},
	}
	for _, tc := range tests {
		t.Run(tc.field+"/"+tc.dir, func(t *testing.T) {
			got, err := cq.ParseSort(tc.field, tc.dir)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestParseSortSpec(t *testing.T) {
	tests := map[string]cq.Sort{
		"":                      {},
		"list_price_cents-desc": {Field: cq.SortByPrice, Direction: cq.SortDesc},
		"listed_on-asc":         {Field: cq.SortByListedOn, Direction: cq.SortAsc},
		"conditionRank":         {Field: cq.SortByConditionRank, Direction: cq.SortAsc},
	}
	for spec, want := range tests {
		got, err := cq.ParseSortSpec(spec)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", spec, err)
		}
		if got != want {
			t.Errorf("%q: expected %+v, got %+v", spec, want, got)
		}
		if spec != "" && got.String() == "" {
			t.Errorf("%q: expected non-empty String()", spec)
		}
	}

	if _, err := cq.ParseSortSpec("popularity-desc"); !errors.Is(err, cq.ErrUnknownSortField) {
		t.Errorf("expected ErrUnknownSortField, got %v", err)
	}
}
