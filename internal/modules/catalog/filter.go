package catalog

import "strings"

// Criteria describes an optional-field predicate over listings. An absent
// field imposes no constraint. MinPrice and MaxPrice are pointers so a
// supplied zero stays a real bound instead of collapsing into "unset" —
// a bare float64 could not tell the two apart.
type Criteria struct {
	SearchTerm string        `json:"search_term,omitempty"`
	MinPrice   *float64      `json:"min_price,omitempty"`
	MaxPrice   *float64      `json:"max_price,omitempty"`
	Status     ListingStatus `json:"status,omitempty"`
}

// Filter evaluates the criteria against a snapshot of listings. All
// supplied fields must match (logical AND). The result preserves the input
// order; a contradictory range such as min > max yields an empty result,
// never an error.
func Filter(listings []*Listing, c Criteria) []*Listing {
	matched := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, c) {
			matched = append(matched, l)
		}
	}
	return matched
}

func matches(l *Listing, c Criteria) bool {
	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		name := strings.ToLower(l.Name)
		desc := strings.ToLower(l.Description)
		if !strings.Contains(name, term) && !strings.Contains(desc, term) {
			return false
		}
	}
	if c.MinPrice != nil && l.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && l.Price > *c.MaxPrice {
		return false
	}
	if c.Status != "" && l.Status != c.Status {
		return false
	}
	return true
}
