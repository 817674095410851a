// Package query implements the filter engine and cross-reference resolver
// over an in-memory entity collection. All passes are stable linear scans;
// no index or acceleration structure is kept, which keeps duplicate
// targetnames and repeated passes deterministic at the collection sizes the
// tool works with.
package query

import (
	"strings"

	"github.com/rpattn/entlens/internal/domain"
)

// Filter evaluates the criteria against every entity in order and returns
// the matches, preserving their relative input order. The returned slice
// holds the same entity values, not copies, so repeated passes with
// identical criteria yield identical sequences.
func Filter(entities []domain.Entity, criteria domain.FilterCriteria) []domain.Entity {
	matched := make([]domain.Entity, 0, len(entities))
	for _, entity := range entities {
		if Matches(entity, criteria) {
			matched = append(matched, entity)
		}
	}
	return matched
}

// Matches evaluates the composite predicate for one entity. Conditions are
// ANDed and each short-circuits: the first failing condition skips the
// entity without running the rest.
func Matches(entity domain.Entity, criteria domain.FilterCriteria) bool {
	if criteria.ClassFilter != "" && !containsFold(entity.Classname(), criteria.ClassFilter) {
		return false
	}
	if !matchesObjectKind(entity, criteria.ObjectKind) {
		return false
	}
	return matchesKeyValue(entity, criteria)
}

func matchesObjectKind(entity domain.Entity, kind domain.ObjectKind) bool {
	switch kind {
	case domain.ObjectKindMeshEntities:
		return entity.IsMeshEntity()
	case domain.ObjectKindPointEntities:
		return entity.IsPointEntity()
	default:
		return true
	}
}

// matchesKeyValue applies the three mutually exclusive key/value modes.
// When both filters are set, one single property must satisfy both: a key
// hit on one property and a value hit on another is not a match.
func matchesKeyValue(entity domain.Entity, criteria domain.FilterCriteria) bool {
	keyFilter := criteria.KeyFilter
	valueFilter := criteria.ValueFilter
	switch {
	case keyFilter != "" && valueFilter != "":
		for _, property := range entity.Properties() {
			if containsFold(property.Key, keyFilter) &&
				valueMatches(property.Value.Display(), valueFilter, criteria.MatchWholeValue) {
				return true
			}
		}
		return false
	case keyFilter != "":
		for _, property := range entity.Properties() {
			if containsFold(property.Key, keyFilter) {
				return true
			}
		}
		return false
	case valueFilter != "":
		for _, property := range entity.Properties() {
			if valueMatches(property.Value.Display(), valueFilter, criteria.MatchWholeValue) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// valueMatches compares a stringified property value against the filter:
// exact equality in whole-value mode, case-insensitive containment
// otherwise.
func valueMatches(value, filter string, wholeValue bool) bool {
	if wholeValue {
		return value == filter
	}
	return containsFold(value, filter)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
