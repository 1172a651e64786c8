package catalogquery

import (
	"strings"

	"golang.org/x/text/cases"
)

// matcher is a compiled Filters. Needles are folded once per Query.
type matcher struct {
	f      Filters
	fold   cases.Caser
	brand  string
	color  string
	search string
	lo, hi int64
}

func newMatcher(f Filters) *matcher {
	m := &matcher{f: f, fold: cases.Fold()}
	m.brand = m.fold.String(f.Brand)
	m.color = m.fold.String(f.Color)
	m.search = m.fold.String(f.SearchText)
	if f.PriceRange != nil {
		m.lo, m.hi = f.PriceRange.Bounds()
	}
	return m
}

// match reports whether r satisfies every non-empty predicate.
func (m *matcher) match(r Record) bool {
	f := m.f
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Condition != "" && (!r.Condition.Valid() || r.Condition != f.Condition) {
		return false
	}
	if f.Lifecycle != "" && (!r.Lifecycle.Valid() || r.Lifecycle != f.Lifecycle) {
		return false
	}
	if m.brand != "" && !m.contains(r.Brand, m.brand) {
		return false
	}
	if m.color != "" && !m.contains(r.Color, m.color) {
		return false
	}
	if m.search != "" && !m.contains(r.Title, m.search) && !m.contains(r.Description, m.search) {
		return false
	}
	if f.PriceRange != nil {
		if r.PriceCents == nil {
			return false
		}
		p := *r.PriceCents
		if p < m.lo || p > m.hi {
			return false
		}
	}
	return true
}

// contains is a case-folded substring test; needle is already folded.
func (m *matcher) contains(haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(m.fold.String(haystack), needle)
}

// Match reports whether a single record passes f.
func Match(r Record, f Filters) bool {
	return newMatcher(f).match(r)
}
