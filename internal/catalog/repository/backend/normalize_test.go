package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/internal/catalog/repository"
	cq "wardrobe-catalog/pkg/catalogquery"
)

func TestDecodeRecordsWardrobe(t *testing.T) {
	body := []byte(`[
		{"item_id": 7, "item_name": "Fleece Pullover", "category": {"id": 2, "name": "Tops"},
		 "brand": {"name": "Patagonia"}, "color": "Navy", "condition": "Like New",
		 "lifecycle": "active", "price_cents": "6000", "image_url": "/media/7.jpg"},
		{"id": "8", "name": "Raw Denim", "brand": null, "condition": "Excellent",
		 "lifecycle_state": "SOLD", "price_cents": null},
		{"item_id": 9, "title": "Boots", "condition": "worn", "lifecycle": "Archived", "price_cents": 45.6}
	]`)

	got, err := DecodeRecords(catalog.SourceWardrobe, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []cq.Record{
		{
			ID: "7", Title: "Fleece Pullover", Category: "Tops", Brand: "Patagonia", Color: "Navy",
			Condition: cq.ConditionLikeNew, Lifecycle: cq.LifecycleActive, PriceCents: cq.Int64(6000),
			ImageURL: "/media/7.jpg",
		},
		{ID: "8", Title: "Raw Denim", Condition: "Excellent", Lifecycle: cq.LifecycleSold},
		{ID: "9", Title: "Boots", Condition: cq.ConditionWorn, Lifecycle: "Archived", PriceCents: cq.Int64(46)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}

func TestDecodeRecordsListings(t *testing.T) {
	body := []byte(`{"count": 4, "results": [
		{"listing_id": 11, "item_name": "Fleece Pullover", "list_price_cents": 6000, "status": "Active",
		 "listed_on": "2024-03-01"},
		{"listing_id": 12, "item_name": "Down Jacket", "list_price_cents": 9000, "status": "Sold"},
		{"listing_id": 13, "title": "Linen Shirt", "status": "",
		 "listed_on": "2024-03-05T10:30:00+02:00",
		 "item": {"item_id": 3, "item_name": "ignored", "category": "Tops", "brand": "Uniqlo",
		          "condition": "good", "price_cents": 1500}},
		{"listing_id": 14, "item_name": "Scarf", "item": 3, "listed_on": "not a date"}
	]}`)

	got, err := DecodeRecords(catalog.SourceMarketplace, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mar1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mar5 := time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)
	want := []cq.Record{
		{ID: "11", Title: "Fleece Pullover", PriceCents: cq.Int64(6000), ListedOn: &mar1},
		{
			ID: "13", Title: "Linen Shirt", Category: "Tops", Brand: "Uniqlo",
			Condition: cq.ConditionGood, PriceCents: cq.Int64(1500), ListedOn: &mar5,
		},
		{ID: "14", Title: "Scarf"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}

func TestDecodeRecordsEnvelopes(t *testing.T) {
	tests := map[string]struct {
		body    string
		want    int
		wantErr error
	}{
		"array":          {`[{"id": 1}, {"id": 2}]`, 2, nil},
		"items":          {`{"items": [{"id": 1}]}`, 1, nil},
		"listings":       {`{"listings": []}`, 0, nil},
		"data":           {`{"data": [{"id": 1}]}`, 1, nil},
		"null":           {`null`, 0, nil},
		"unknown object": {`{"detail": "nope"}`, 0, repository.ErrFailedToDecode},
		"garbage":        {`<html>`, 0, repository.ErrFailedToDecode},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := DecodeRecords(catalog.SourceWardrobe, []byte(tc.body))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err == nil && (got == nil || len(got) != tc.want) {
				t.Errorf("expected %d records, got %v", tc.want, got)
			}
		})
	}
}

func TestCanonicalSpellings(t *testing.T) {
	conditions := map[string]cq.Condition{
		"New":       cq.ConditionNew,
		"like_new":  cq.ConditionLikeNew,
		"LIKE-NEW":  cq.ConditionLikeNew,
		" Fair ":    cq.ConditionFair,
		"Excellent": "Excellent",
		"":          "",
	}
	for in, want := range conditions {
		if got := canonicalCondition(in); got != want {
			t.Errorf("canonicalCondition(%q) = %q, want %q", in, got, want)
		}
	}

	if got := canonicalLifecycle("donated"); got != cq.LifecycleDonated {
		t.Errorf("expected Donated, got %q", got)
	}
	if got := canonicalLifecycle("Archived"); got != "Archived" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := map[string]string{
		"2024-03-01":                  "2024-03-01T00:00:00Z",
		"2024-03-01 12:00:00":         "2024-03-01T12:00:00Z",
		"2024-03-01T12:00:00.123456":  "2024-03-01T12:00:00.123456Z",
		"2024-03-01T12:00:00-05:00":   "2024-03-01T17:00:00Z",
		"2024-03-01T12:00:00.5+01:00": "2024-03-01T11:00:00.5Z",
	}
	for in, want := range tests {
		got := parseDate(in)
		if got == nil {
			t.Errorf("parseDate(%q) = nil", in)
			continue
		}
		if s := got.Format(time.RFC3339Nano); s != want {
			t.Errorf("parseDate(%q) = %s, want %s", in, s, want)
		}
	}
	for _, in := range []string{"", "  ", "yesterday", "03/01/2024"} {
		if got := parseDate(in); got != nil {
			t.Errorf("parseDate(%q) = %v, want nil", in, got)
		}
	}
}

func TestDecodeRecordsNegativePrice(t *testing.T) {
	body := []byte(`[
		{"listing_id": 1, "title": "Tee", "list_price_cents": -500, "price_cents": 1200},
		{"listing_id": 2, "title": "Cap", "list_price_cents": "-1"},
		{"listing_id": 3, "title": "Bag", "list_price_cents": 0}
	]`)

	got, err := DecodeRecords(catalog.SourceMarketplace, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []cq.Record{
		{ID: "1", Title: "Tee", PriceCents: cq.Int64(1200)},
		{ID: "2", Title: "Cap"},
		{ID: "3", Title: "Bag", PriceCents: cq.Int64(0)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}
