package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rpattn/entlens/internal/entjson"
	"github.com/rpattn/entlens/internal/query"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <dump.json> <targetname>",
	Short: "Resolve a targetname to its entity",
	Long: `Scan the full entity collection and show the first entity whose targetname
matches exactly. A miss is not an error; duplicates resolve to the first
entity in original order.

Examples:
  entlens find map.json door01`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	entities, err := entjson.LoadFile(args[0])
	if err != nil {
		return err
	}
	name := args[1]
	entity, ok := query.ResolveByTargetName(entities, name)
	if !ok {
		fmt.Printf("no entity with targetname %q\n", name)
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tVALUE")
	for _, row := range query.PropertyRows(entity) {
		fmt.Fprintf(writer, "%s\t%s\n", row.Key, row.Value)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	connections := query.ConnectionRows(entity)
	if len(connections) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Fprintln(writer, "OUTPUT\tTARGET\tINPUT\tPARAMETER\tDELAY\tTIMES")
	for _, row := range connections {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Output, row.TargetName, row.Input, row.Parameter, row.Delay, row.TimesToFire)
	}
	return writer.Flush()
}
