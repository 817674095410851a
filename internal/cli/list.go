package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rpattn/entlens/internal/entjson"
	"github.com/rpattn/entlens/internal/query"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <dump.json>",
	Short: "List entities matching the current filter",
	Long: `List the entities of a dump that match the given filter, preserving their
original order.

Examples:
  entlens list map.json
  entlens list map.json --class trigger
  entlens list map.json --kind point --key target
  entlens list map.json --key health --value 100 --exact`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	addFilterFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	entities, err := entjson.LoadFile(args[0])
	if err != nil {
		return err
	}
	criteria, err := buildCriteria()
	if err != nil {
		return err
	}
	filtered := query.Filter(entities, criteria)
	logger.Debug("filter pass complete", "total", len(entities), "matched", len(filtered))

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CLASSNAME\tTARGETNAME\tLUMP")
	for _, entity := range filtered {
		lump, _ := entity.SourceLump()
		fmt.Fprintf(writer, "%s\t%s\t%s\n", entity.Classname(), entity.Targetname(), lump)
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d of %d entities\n", len(filtered), len(entities))
	return nil
}
