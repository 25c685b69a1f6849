// Package filter narrows an in-memory property collection by a set of
// optional constraints. Filtering is pure: it never touches the store and
// the input slice is left untouched.
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/bledarhoxha/prona/internal/model"
)

// Wildcard matches every type or status.
const Wildcard = "all"

// Spec is a filter specification. All constraints are optional and
// conjunctive; the bounds are kept as strings because they arrive from
// form fields and query parameters.
type Spec struct {
	Type     string
	Status   string
	Location string
	MinPrice string
	MaxPrice string
}

// FromQuery builds a spec from URL query parameters. Missing parameters
// impose no constraint.
func FromQuery(q url.Values) Spec {
	return Spec{
		Type:     q.Get("type"),
		Status:   q.Get("status"),
		Location: q.Get("location"),
		MinPrice: q.Get("min_price"),
		MaxPrice: q.Get("max_price"),
	}
}

// IsNeutral reports whether the spec imposes no constraint at all.
func (s Spec) IsNeutral() bool {
	return (s.Type == "" || s.Type == Wildcard) &&
		(s.Status == "" || s.Status == Wildcard) &&
		s.Location == "" && s.MinPrice == "" && s.MaxPrice == ""
}

// Apply returns the properties matching every constraint of the spec.
// With a neutral spec the result equals the input.
func Apply(properties []model.Property, s Spec) []model.Property {
	minPrice, hasMin := parseBound(s.MinPrice)
	maxPrice, hasMax := parseBound(s.MaxPrice)
	location := strings.ToLower(strings.TrimSpace(s.Location))

	result := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if s.Type != "" && s.Type != Wildcard && p.Type != s.Type {
			continue
		}
		if s.Status != "" && s.Status != Wildcard && p.Status != s.Status {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		if hasMin && p.Price < minPrice {
			continue
		}
		if hasMax && p.Price > maxPrice {
			continue
		}
		result = append(result, p)
	}
	return result
}

// parseBound parses a price bound. An empty or non-numeric value imposes
// no constraint; this is deliberate so a garbled form field degrades to
// "unfiltered" instead of crashing or filtering everything out.
func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
