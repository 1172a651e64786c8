package backend

import (
	"strings"
	"time"

	"wardrobe-catalog/internal/catalog"
	"wardrobe-catalog/pkg/catalogquery"
)

// DecodeRecords decodes a backend payload (a bare array or an envelope) and
// maps every entry onto a catalog record for the given source.
func DecodeRecords(src catalog.Source, body []byte) ([]catalogquery.Record, error) {
	raw, err := decodeList(body)
	if err != nil {
		return nil, err
	}
	return normalize(src, raw), nil
}

func normalize(src catalog.Source, raw []rawRecord) []catalogquery.Record {
	out := make([]catalogquery.Record, 0, len(raw))
	for _, r := range raw {
		switch src {
		case catalog.SourceMarketplace:
			if !listingVisible(r) {
				continue
			}
			out = append(out, listingToRecord(r))
		default:
			out = append(out, itemToRecord(r))
		}
	}
	return out
}

// listingVisible drops listings that are no longer for sale.
func listingVisible(r rawRecord) bool {
	status := foldKey(string(r.Status))
	return status == "" || status == "active"
}

func itemToRecord(r rawRecord) catalogquery.Record {
	return catalogquery.Record{
		ID:          firstNonEmpty(r.ItemID, r.ID),
		Title:       firstNonEmpty(r.Title, r.ItemName, r.Name),
		Description: string(r.Description),
		Category:    string(r.Category),
		Brand:       string(r.Brand),
		Color:       string(r.Color),
		Condition:   canonicalCondition(string(r.Condition)),
		Lifecycle:   canonicalLifecycle(firstNonEmpty(r.LifecycleState, r.Lifecycle)),
		PriceCents:  price(r),
		ListedOn:    parseDate(string(r.ListedOn)),
		ImageURL:    string(r.ImageURL),
	}
}

func listingToRecord(r rawRecord) catalogquery.Record {
	rec := itemToRecord(r)
	rec.ID = firstNonEmpty(r.ListingID, r.ID, r.ItemID)

	// Fill gaps from an embedded item; listing fields win.
	if r.Item.rec != nil {
		item := itemToRecord(*r.Item.rec)
		fill(&rec.Title, item.Title)
		fill(&rec.Description, item.Description)
		fill(&rec.Category, item.Category)
		fill(&rec.Brand, item.Brand)
		fill(&rec.Color, item.Color)
		fill(&rec.ImageURL, item.ImageURL)
		if rec.Condition == "" {
			rec.Condition = item.Condition
		}
		if rec.Lifecycle == "" {
			rec.Lifecycle = item.Lifecycle
		}
		if rec.PriceCents == nil {
			rec.PriceCents = item.PriceCents
		}
	}
	return rec
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// price prefers the listing price. Negative amounts count as missing.
func price(r rawRecord) *int64 {
	for _, p := range []*int64{r.ListPriceCents.ptr(), r.PriceCents.ptr()} {
		if p != nil && *p >= 0 {
			return p
		}
	}
	return nil
}

var conditionAliases = map[string]catalogquery.Condition{
	"new":     catalogquery.ConditionNew,
	"likenew": catalogquery.ConditionLikeNew,
	"good":    catalogquery.ConditionGood,
	"fair":    catalogquery.ConditionFair,
	"worn":    catalogquery.ConditionWorn,
}

var lifecycleAliases = map[string]catalogquery.Lifecycle{
	"active":    catalogquery.LifecycleActive,
	"listed":    catalogquery.LifecycleListed,
	"sold":      catalogquery.LifecycleSold,
	"donated":   catalogquery.LifecycleDonated,
	"discarded": catalogquery.LifecycleDiscarded,
}

// canonicalCondition maps spellings like "Like New" or "like_new" onto the
// canonical grade. Unknown grades pass through unchanged and stay unranked.
func canonicalCondition(s string) catalogquery.Condition {
	if c, ok := conditionAliases[foldKey(s)]; ok {
		return c
	}
	return catalogquery.Condition(s)
}

func canonicalLifecycle(s string) catalogquery.Lifecycle {
	if l, ok := lifecycleAliases[foldKey(s)]; ok {
		return l
	}
	return catalogquery.Lifecycle(s)
}

// foldKey lowercases s and drops spaces, underscores and hyphens.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate returns nil for empty or unparseable dates so they sort last.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
