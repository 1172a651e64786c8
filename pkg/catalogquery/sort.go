package catalogquery

import (
	"cmp"
	"errors"
	"slices"
	"strings"
)

var (
	ErrUnknownSortField     = errors.New("unknown sort field")
	ErrUnknownSortDirection = errors.New("unknown sort direction")
)

// sortFieldAliases maps the names older views used onto canonical fields.
var sortFieldAliases = map[string]SortField{
	"pricecents":       SortByPrice,
	"price_cents":      SortByPrice,
	"list_price_cents": SortByPrice,
	"price":            SortByPrice,
	"listedon":         SortByListedOn,
	"listed_on":        SortByListedOn,
	"date":             SortByListedOn,
	"conditionrank":    SortByConditionRank,
	"condition_rank":   SortByConditionRank,
	"condition":        SortByConditionRank,
}

// ParseSort builds a Sort from loose field/direction strings.
// Empty field yields the zero Sort; empty direction means asc.
func ParseSort(field, direction string) (Sort, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return Sort{}, nil
	}
	f, ok := sortFieldAliases[strings.ToLower(field)]
	if !ok {
		return Sort{}, ErrUnknownSortField
	}

	var d SortDirection
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "asc":
		d = SortAsc
	case "desc":
		d = SortDesc
	default:
		return Sort{}, ErrUnknownSortDirection
	}
	return Sort{Field: f, Direction: d}, nil
}

// ParseSortSpec parses the "field-direction" form used by the sort select,
// e.g. "list_price_cents-desc". An empty spec is the zero Sort.
func ParseSortSpec(spec string) (Sort, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Sort{}, nil
	}
	i := strings.LastIndex(spec, "-")
	if i < 0 {
		return ParseSort(spec, "")
	}
	return ParseSort(spec[:i], spec[i+1:])
}

// sortKey extracts a comparable key; ok=false means the value is missing
// or unranked and the record sinks to the end.
type sortKey func(Record) (int64, bool)

var sortKeys = map[SortField]sortKey{
	SortByPrice: func(r Record) (int64, bool) {
		if r.PriceCents == nil {
			return 0, false
		}
		return *r.PriceCents, true
	},
	SortByListedOn: func(r Record) (int64, bool) {
		if r.ListedOn == nil || r.ListedOn.IsZero() {
			return 0, false
		}
		return r.ListedOn.UnixMicro(), true
	},
	SortByConditionRank: func(r Record) (int64, bool) {
		rank := r.Condition.Rank()
		if rank == UnrankedCondition {
			return 0, false
		}
		return int64(rank), true
	},
}

// sortRecords stable-sorts rs in place. Unknown fields leave order untouched.
func sortRecords(rs []Record, s Sort) {
	key, ok := sortKeys[s.Field]
	if !ok {
		return
	}
	desc := s.Direction == SortDesc

	slices.SortStableFunc(rs, func(a, b Record) int {
		ka, okA := key(a)
		kb, okB := key(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		c := cmp.Compare(ka, kb)
		if desc {
			return -c
		}
		return c
	})
}
