package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpattn/entlens/internal/entjson"
	"github.com/rpattn/entlens/internal/export"
	"github.com/rpattn/entlens/internal/query"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <dump.json> [out]",
	Short: "Export matching entities to JSON or XLSX",
	Long: `Export the entities matching the current filter as a self-contained
document. Without an output path the file is written to the configured
export directory.

Examples:
  entlens export map.json entities.json
  entlens export map.json --class door
  entlens export map.json sheet.xlsx --format xlsx`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "export format: json or xlsx (default from config or output extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	entities, err := entjson.LoadFile(args[0])
	if err != nil {
		return err
	}
	criteria, err := buildCriteria()
	if err != nil {
		return err
	}
	filtered := query.Filter(entities, criteria)
	if len(filtered) == 0 {
		return fmt.Errorf("nothing selected: no entities match the current filter")
	}

	outPath := ""
	if len(args) > 1 {
		outPath = args[1]
	}
	format, err := resolveFormat(outPath)
	if err != nil {
		return err
	}
	if outPath == "" {
		name := fmt.Sprintf("entities-%s.%s", time.Now().UTC().Format("20060102-150405"), format)
		outPath = filepath.Join(cfg.ExportDir, name)
	}

	doc, err := export.NewTransformer().Build(filtered)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		err = export.SaveJSON(outPath, doc)
	case "xlsx":
		err = export.WriteXLSX(outPath, doc)
	}
	if err != nil {
		return err
	}
	logger.Info("export written", "path", outPath, "entities", doc.EntityCount, "format", format)
	fmt.Printf("exported %d entities to %s\n", doc.EntityCount, outPath)
	return nil
}

func resolveFormat(outPath string) (string, error) {
	format := strings.ToLower(exportFormat)
	if format == "" && outPath != "" {
		switch strings.ToLower(filepath.Ext(outPath)) {
		case ".xlsx":
			format = "xlsx"
		case ".json":
			format = "json"
		}
	}
	if format == "" {
		format = cfg.ExportFormat
	}
	switch format {
	case "json", "xlsx":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json or xlsx)", format)
	}
}
