package query

import "github.com/rpattn/entlens/internal/domain"

// ResolveByTargetName scans the full collection, independent of any active
// filter, and returns the first entity whose targetname equals name exactly
// (case-sensitive). Duplicate targetnames are legal; the first entity in
// original order wins. An empty name skips the scan entirely. A miss is a
// normal outcome, reported through ok.
func ResolveByTargetName(entities []domain.Entity, name string) (entity domain.Entity, ok bool) {
	if name == "" {
		return domain.Entity{}, false
	}
	for _, candidate := range entities {
		if candidate.Targetname() == name {
			return candidate, true
		}
	}
	return domain.Entity{}, false
}
