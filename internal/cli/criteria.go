package cli

import (
	"fmt"

	"github.com/rpattn/entlens/internal/domain"
	"github.com/spf13/cobra"
)

var (
	filterClass string
	filterKey   string
	filterValue string
	filterExact bool
	filterKind  string
)

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterClass, "class", "c", "", "classname substring filter")
	cmd.Flags().StringVarP(&filterKey, "key", "k", "", "property key substring filter")
	cmd.Flags().StringVarP(&filterValue, "value", "v", "", "property value filter")
	cmd.Flags().BoolVar(&filterExact, "exact", false, "match the whole property value instead of a substring")
	cmd.Flags().StringVar(&filterKind, "kind", "all", "object kind: all, mesh, or point")
}

func buildCriteria() (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{
		ClassFilter:     filterClass,
		KeyFilter:       filterKey,
		ValueFilter:     filterValue,
		MatchWholeValue: filterExact,
	}
	switch filterKind {
	case "", "all":
		criteria.ObjectKind = domain.ObjectKindEverything
	case "mesh":
		criteria.ObjectKind = domain.ObjectKindMeshEntities
	case "point":
		criteria.ObjectKind = domain.ObjectKindPointEntities
	default:
		return domain.FilterCriteria{}, fmt.Errorf("unknown object kind %q (want all, mesh, or point)", filterKind)
	}
	return criteria, nil
}
