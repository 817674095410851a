package query

import (
	"testing"

	"github.com/rpattn/entlens/internal/domain"
)

func TestResolveByTargetNameReturnsFirstMatch(t *testing.T) {
	entities := []domain.Entity{
		entityWith(scalar("classname", "func_door"), scalar("targetname", "x"), scalar("speed", "100")),
		entityWith(scalar("classname", "func_button"), scalar("targetname", "x")),
		entityWith(scalar("classname", "logic_relay"), scalar("targetname", "y")),
	}

	entity, ok := ResolveByTargetName(entities, "x")
	if !ok {
		t.Fatalf("expected a match for x")
	}
	if entity.Classname() != "func_door" {
		t.Fatalf("expected the first entity in original order, got %q", entity.Classname())
	}
}

func TestResolveByTargetNameEmptyNameSkipsScan(t *testing.T) {
	entities := []domain.Entity{
		entityWith(scalar("classname", "info_null")),
	}

	if _, ok := ResolveByTargetName(entities, ""); ok {
		t.Fatalf("empty name must resolve to not-found")
	}
}

func TestResolveByTargetNameMissIsNotFound(t *testing.T) {
	entities := []domain.Entity{
		entityWith(scalar("targetname", "x")),
		entityWith(scalar("targetname", "y")),
	}

	if _, ok := ResolveByTargetName(entities, "z"); ok {
		t.Fatalf("expected not-found for unknown targetname")
	}
}

func TestResolveByTargetNameIsCaseSensitive(t *testing.T) {
	entities := []domain.Entity{
		entityWith(scalar("targetname", "Door01")),
	}

	if _, ok := ResolveByTargetName(entities, "door01"); ok {
		t.Fatalf("resolution must compare targetnames case-sensitively")
	}
}

func TestResolveIgnoresActiveFilterScope(t *testing.T) {
	entities := []domain.Entity{
		entityWith(scalar("classname", "func_door"), scalar("targetname", "hidden"), scalar("model", "*3")),
	}
	// A point-only filter would exclude the entity, but resolution scans the
	// full collection regardless.
	filtered := Filter(entities, domain.FilterCriteria{ObjectKind: domain.ObjectKindPointEntities})
	if len(filtered) != 0 {
		t.Fatalf("expected the filter to exclude the mesh entity")
	}
	if _, ok := ResolveByTargetName(entities, "hidden"); !ok {
		t.Fatalf("resolver must scan the full collection, not the filtered subset")
	}
}
