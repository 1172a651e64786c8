package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/internal/catalog/repository"
	"wardrobe-catalog/internal/model"
	cq "wardrobe-catalog/pkg/catalogquery"
)

func wardrobeFixture() []cq.Record {
	return []cq.Record{
		{ID: "1", Title: "Fleece", Category: "Tops", Brand: "Patagonia", Condition: cq.ConditionLikeNew, Lifecycle: cq.LifecycleActive, PriceCents: cq.Int64(6000)},
		{ID: "2", Title: "Jeans", Category: "Bottoms", Brand: "Levi's", Condition: cq.ConditionGood, Lifecycle: cq.LifecycleActive, PriceCents: cq.Int64(4500)},
		{ID: "3", Title: "Parka", Category: "Outerwear", Brand: "The North Face", Condition: "Excellent", Lifecycle: cq.LifecycleSold, PriceCents: cq.Int64(8000)},
		{ID: "4", Title: "Sneakers", Category: "Footwear", Brand: "Veja", Condition: cq.ConditionWorn, Lifecycle: cq.LifecycleListed, PriceCents: cq.Int64(12000)},
	}
}

func listingFixture() []cq.Record {
	d := func(day int) *time.Time {
		t := time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	return []cq.Record{
		{ID: "11", Title: "Wool Coat", Description: "Warm winter coat", Category: "Outerwear", PriceCents: cq.Int64(9000), ListedOn: d(3)},
		{ID: "12", Title: "Silk Scarf", Category: "Accessories", PriceCents: cq.Int64(2500), ListedOn: d(1)},
		{ID: "13", Title: "Tee", Description: "Organic cotton", Category: "Tops", ListedOn: d(2)},
	}
}

func ids(recs []cq.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func newTestUseCase(repo *mockRepo, cfg Config) *implUseCase {
	return New(repo, cfg, &mockLogger{})
}

func TestListWardrobe(t *testing.T) {
	ctx := context.Background()
	user := model.Scope{Token: "user-token"}

	t.Run("filters sorts and counts", func(t *testing.T) {
		repo := &mockRepo{wardrobe: wardrobeFixture()}
		uc := newTestUseCase(repo, Config{})

		out, err := uc.ListWardrobe(ctx, user, catalog.ListInput{
			Filters: cq.Filters{Lifecycle: cq.LifecycleActive},
			Sort:    cq.Sort{Field: cq.SortByPrice, Direction: cq.SortDesc},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"1", "2"}, ids(out.Items)); diff != "" {
			t.Errorf("items (-want +got):\n%s", diff)
		}
		if out.Total != 4 || out.Matched != 2 {
			t.Errorf("expected total 4 matched 2, got %d and %d", out.Total, out.Matched)
		}
		if repo.lastOpt.Token != "user-token" {
			t.Errorf("expected token to be forwarded, got %q", repo.lastOpt.Token)
		}
	})

	t.Run("condition sort keeps unranked last", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{wardrobe: wardrobeFixture()}, Config{})
		out, err := uc.ListWardrobe(ctx, user, catalog.ListInput{
			Sort: cq.Sort{Field: cq.SortByConditionRank, Direction: cq.SortDesc},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"4", "2", "1", "3"}, ids(out.Items)); diff != "" {
			t.Errorf("items (-want +got):\n%s", diff)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		repo := &mockRepo{wardrobe: wardrobeFixture()}
		_, err := newTestUseCase(repo, Config{}).ListWardrobe(ctx, model.Scope{}, catalog.ListInput{})
		if !errors.Is(err, catalog.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("backend rejects token", func(t *testing.T) {
		repo := &mockRepo{err: fmt.Errorf("%w: status 401", repository.ErrUnauthorized)}
		_, err := newTestUseCase(repo, Config{}).ListWardrobe(ctx, user, catalog.ListInput{})
		if !errors.Is(err, catalog.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("backend down", func(t *testing.T) {
		repo := &mockRepo{err: repository.ErrFailedToFetch}
		_, err := newTestUseCase(repo, Config{}).ListWardrobe(ctx, user, catalog.ListInput{})
		if !errors.Is(err, catalog.ErrBackendUnavailable) {
			t.Errorf("expected ErrBackendUnavailable, got %v", err)
		}
	})

	t.Run("invalid price range is rejected before fetching", func(t *testing.T) {
		repo := &mockRepo{wardrobe: wardrobeFixture()}
		_, err := newTestUseCase(repo, Config{}).ListWardrobe(ctx, user, catalog.ListInput{
			Filters: cq.Filters{PriceRange: &cq.PriceRange{Min: cq.Int64(5000), Max: cq.Int64(100)}},
		})
		if !errors.Is(err, catalog.ErrInvalidPriceRange) {
			t.Errorf("expected ErrInvalidPriceRange, got %v", err)
		}
		if repo.lastOpt.Token != "" {
			t.Errorf("repository should not be called")
		}
	})
}

func TestListMarketplace(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous search", func(t *testing.T) {
		repo := &mockRepo{listings: listingFixture()}
		out, err := newTestUseCase(repo, Config{}).ListMarketplace(ctx, model.Scope{}, catalog.ListInput{
			Filters: cq.Filters{SearchText: "COAT"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"11"}, ids(out.Items)); diff != "" {
			t.Errorf("items (-want +got):\n%s", diff)
		}
		if repo.lastOpt.Token != "" {
			t.Errorf("anonymous scope should not forward a token")
		}
	})

	t.Run("price range excludes unpriced", func(t *testing.T) {
		repo := &mockRepo{listings: listingFixture()}
		out, err := newTestUseCase(repo, Config{}).ListMarketplace(ctx, model.Scope{}, catalog.ListInput{
			Filters: cq.Filters{PriceRange: &cq.PriceRange{Min: cq.Int64(0), Max: cq.Int64(50000)}},
			Sort:    cq.Sort{Field: cq.SortByListedOn, Direction: cq.SortAsc},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"12", "11"}, ids(out.Items)); diff != "" {
			t.Errorf("items (-want +got):\n%s", diff)
		}
	})

	t.Run("paging", func(t *testing.T) {
		repo := &mockRepo{listings: listingFixture()}
		uc := newTestUseCase(repo, Config{DefaultLimit: 2, MaxLimit: 2})
		out, err := uc.ListMarketplace(ctx, model.Scope{}, catalog.ListInput{Limit: 50, Offset: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Limit != 2 || out.Offset != 2 || out.Matched != 3 {
			t.Errorf("unexpected page bounds: %+v", out)
		}
		if diff := cmp.Diff([]string{"13"}, ids(out.Items)); diff != "" {
			t.Errorf("items (-want +got):\n%s", diff)
		}
	})
}

func TestWardrobeFacets(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(&mockRepo{wardrobe: wardrobeFixture()}, Config{})

	out, err := uc.WardrobeFacets(ctx, model.Scope{Token: "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary.Total != 4 || out.Summary.Resold != 1 || out.Summary.Brands != 4 {
		t.Errorf("unexpected summary: %+v", out.Summary)
	}
	if diff := cmp.Diff([]cq.Condition{cq.ConditionLikeNew, cq.ConditionGood, cq.ConditionWorn}, out.Facets.Conditions); diff != "" {
		t.Errorf("conditions (-want +got):\n%s", diff)
	}

	if _, err := uc.WardrobeFacets(ctx, model.Scope{}); !errors.Is(err, catalog.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("runs over supplied records", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, Config{})
		out, err := uc.Query(ctx, catalog.QueryInput{
			Records: wardrobeFixture(),
			Filters: cq.Filters{Brand: "the north"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"3"}, ids(out.Items)); diff != "" {
			t.Errorf("items (-want +got):\n%s", diff)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		out, err := newTestUseCase(&mockRepo{}, Config{}).Query(ctx, catalog.QueryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Items == nil || len(out.Items) != 0 {
			t.Errorf("expected empty non-nil items, got %v", out.Items)
		}
	})

	t.Run("too many records", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, Config{MaxRecords: 2})
		_, err := uc.Query(ctx, catalog.QueryInput{Records: wardrobeFixture()})
		if !errors.Is(err, catalog.ErrTooManyRecords) {
			t.Errorf("expected ErrTooManyRecords, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, Config{})
		_, err := uc.Query(ctx, catalog.QueryInput{
			Filters: cq.Filters{PriceRange: &cq.PriceRange{Min: cq.Int64(-1)}},
		})
		if !errors.Is(err, catalog.ErrNegativePrice) {
			t.Errorf("expected ErrNegativePrice, got %v", err)
		}
	})
}

func TestInvalidate(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo, Config{})

	if err := uc.Invalidate(context.Background(), model.Scope{Token: "t"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"t"}, repo.invalidated); diff != "" {
		t.Errorf("invalidated (-want +got):\n%s", diff)
	}
	if err := uc.Invalidate(context.Background(), model.Scope{}); !errors.Is(err, catalog.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPageBounds(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, Config{DefaultLimit: 20, MaxLimit: 100})
	tests := []struct {
		limit, offset int
		wantL, wantO  int
	}{
		{0, 0, 20, 0},
		{50, 10, 50, 10},
		{500, -3, 100, 0},
	}
	for _, tc := range tests {
		l, o := uc.pageBounds(tc.limit, tc.offset)
		if l != tc.wantL || o != tc.wantO {
			t.Errorf("pageBounds(%d, %d) = %d, %d; want %d, %d", tc.limit, tc.offset, l, o, tc.wantL, tc.wantO)
		}
	}

	unbounded := newTestUseCase(&mockRepo{}, Config{})
	if l, _ := unbounded.pageBounds(0, 0); l != 0 {
		t.Errorf("expected 0 (all) without defaults, got %d", l)
	}
}
