package backend

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// flexString decodes strings, numbers, null, or an object carrying a
// display name, as the backend serializes foreign keys either way.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(strings.TrimSpace(v))
	case '{':
		var obj struct {
			Name  *flexString `json:"name"`
			Label *flexString `json:"label"`
			Title *flexString `json:"title"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		*s = ""
		for _, v := range []*flexString{obj.Name, obj.Label, obj.Title} {
			if v != nil && *v != "" {
				*s = *v
				break
			}
		}
	case 't', 'f', '[':
		*s = ""
	default:
		*s = flexString(b)
	}
	return nil
}

// flexInt decodes a whole number sent as a JSON number or numeric string.
// Anything else leaves it unset.
type flexInt struct {
	v  int64
	ok bool
}

func (n *flexInt) UnmarshalJSON(b []byte) error {
	*n = flexInt{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = flexInt{v: v, ok: true}
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64 && f < math.MaxInt64 {
		*n = flexInt{v: int64(math.Round(f)), ok: true}
	}
	return nil
}

func (n flexInt) ptr() *int64 {
	if !n.ok {
		return nil
	}
	v := n.v
	return &v
}

// rawRecord is the union of the wardrobe item and listing payloads.
type rawRecord struct {
	ListingID flexString `json:"listing_id"`
	ItemID    flexString `json:"item_id"`
	ID        flexString `json:"id"`

	Title    flexString `json:"title"`
	ItemName flexString `json:"item_name"`
	Name     flexString `json:"name"`

	Description flexString `json:"description"`
	Category    flexString `json:"category"`
	Brand       flexString `json:"brand"`
	Color       flexString `json:"color"`
	Condition   flexString `json:"condition"`

	Lifecycle      flexString `json:"lifecycle"`
	LifecycleState flexString `json:"lifecycle_state"`
	Status         flexString `json:"status"`

	ListPriceCents flexInt    `json:"list_price_cents"`
	PriceCents     flexInt    `json:"price_cents"`
	ListedOn       flexString `json:"listed_on"`
	ImageURL       flexString `json:"image_url"`

	// Item is set when a listing embeds its wardrobe item.
	Item nestedItem `json:"item"`
}

// nestedItem ignores anything but an object, so a bare foreign key id is
// not a decode error.
type nestedItem struct {
	rec *rawRecord
}

func (n *nestedItem) UnmarshalJSON(b []byte) error {
	n.rec = nil
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	var r rawRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	n.rec = &r
	return nil
}

func firstNonEmpty(vals ...flexString) string {
	for _, v := range vals {
		if v != "" {
			return string(v)
		}
	}
	return ""
}
