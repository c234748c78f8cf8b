package player

import "strings"

// Criteria is one page view's worth of directory filters. Zero values mean
// "no constraint": empty strings for text and enum fields, false for the
// availability flags, and a nil range for the numeric bounds.
type Criteria struct {
	Search               string
	Position             string
	Nationality          string
	PreferredFoot        string
	AvailableForTransfer bool
	OpenToTrials         bool
	AgeRange             *Range
	ValueRange           *Range
}

// Range is an inclusive [Min, Max] bound.
type Range struct {
	Min int64
	Max int64
}

// Contains reports whether v lies within the inclusive bounds. An inverted
// range (Min > Max) contains nothing; callers that build criteria from user
// input get an empty result rather than a silently ignored filter.
func (r *Range) Contains(v int64) bool {
	if r == nil {
		return true
	}
	return v >= r.Min && v <= r.Max
}

// Matches reports whether a single player satisfies every active predicate.
// Predicates are AND-combined; text searches are case-insensitive substring
// matches, enum fields match exactly, and the availability flags only
// constrain when set.
func (c Criteria) Matches(a Attributes) bool {
	if c.Search != "" && !containsFold(a.FullName, c.Search) {
		return false
	}
	if c.Position != "" && a.Position != c.Position {
		return false
	}
	if c.Nationality != "" && !containsFold(a.Nationality, c.Nationality) {
		return false
	}
	if c.PreferredFoot != "" && string(a.PreferredFoot) != c.PreferredFoot {
		return false
	}
	if c.AvailableForTransfer && !a.AvailableForTransfer {
		return false
	}
	if c.OpenToTrials && !a.OpenToTrials {
		return false
	}
	if !c.AgeRange.Contains(int64(a.Age)) {
		return false
	}
	if !c.ValueRange.Contains(a.ValueInEuros) {
		return false
	}
	return true
}

// Filter returns the players satisfying the criteria, preserving the order
// of the input. It never reorders and has no side effects on the input
// slice.
func Filter(players []Attributes, c Criteria) []Attributes {
	result := make([]Attributes, 0, len(players))
	for _, p := range players {
		if c.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
