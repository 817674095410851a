package domain

// ObjectKind narrows filtering to one of the derived entity classes.
type ObjectKind string

const (
	ObjectKindEverything    ObjectKind = "EVERYTHING"
	ObjectKindMeshEntities  ObjectKind = "MESH_ENTITIES"
	ObjectKindPointEntities ObjectKind = "POINT_ENTITIES"
)

// FilterCriteria is the externally owned filter state read at the start of
// each filter pass. Empty string fields mean "no constraint"; the zero
// ObjectKind behaves like ObjectKindEverything. The engine only reads
// criteria, it never mutates them.
type FilterCriteria struct {
	ObjectKind      ObjectKind
	ClassFilter     string
	KeyFilter       string
	ValueFilter     string
	MatchWholeValue bool
}

// IsZero reports whether no criterion is set, in which case a filter pass
// returns the input unchanged.
func (c FilterCriteria) IsZero() bool {
	return (c.ObjectKind == "" || c.ObjectKind == ObjectKindEverything) &&
		c.ClassFilter == "" && c.KeyFilter == "" && c.ValueFilter == ""
}
