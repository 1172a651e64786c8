// Package catalogquery filters and orders wardrobe items and marketplace
// listings. It is the only place catalog filter/sort rules live: every view
// that displays a catalog calls Query instead of filtering on its own.
//
// Query is pure. It never mutates its arguments, keeps no state between calls
// and never fails on a malformed record; missing optional fields simply fail
// the matching predicate or sort last.
package catalogquery

// Query returns the records that satisfy f, ordered by s. Records comparing
// equal keep their input order. The result is never nil.
func Query(records []Record, f Filters, s Sort) []Record {
	m := newMatcher(f)

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}

	if s.Field != "" {
		sortRecords(out, s)
	}
	return out
}

// Page slices an already queried result. limit <= 0 returns everything from offset.
func Page(records []Record, limit, offset int) []Record {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return []Record{}
	}
	end := len(records)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return records[offset:end]
}
