package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Entities"

// WriteXLSX writes the document as a workbook with one row per entity. The
// header is the union of property keys in first-seen order, plus a source
// lump column when any entity carries one. Array-valued properties render
// space-joined, matching the inline display projection.
func WriteXLSX(path string, doc Document) error {
	headers, hasLump := collectHeaders(doc)

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()
	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name export sheet: %w", err)
	}

	columns := append([]string(nil), headers...)
	if hasLump {
		columns = append(columns, "sourceLump")
	}
	for i, header := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("locate header cell: %w", err)
		}
		if err := file.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("write header %s: %w", header, err)
		}
	}

	for row, record := range doc.Entities {
		values := make(map[string]string, len(record.Properties))
		for _, entry := range record.Properties {
			values[entry.Key] = cellValue(entry.Value)
		}
		for col, header := range headers {
			text, ok := values[header]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("locate cell: %w", err)
			}
			if err := file.SetCellValue(sheetName, cell, text); err != nil {
				return fmt.Errorf("write entity row: %w", err)
			}
		}
		if hasLump && record.SourceLump != "" {
			cell, err := excelize.CoordinatesToCellName(len(headers)+1, row+2)
			if err != nil {
				return fmt.Errorf("locate lump cell: %w", err)
			}
			if err := file.SetCellValue(sheetName, cell, record.SourceLump); err != nil {
				return fmt.Errorf("write lump cell: %w", err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func collectHeaders(doc Document) ([]string, bool) {
	headers := make([]string, 0)
	seen := make(map[string]struct{})
	hasLump := false
	for _, record := range doc.Entities {
		for _, entry := range record.Properties {
			if _, ok := seen[entry.Key]; ok {
				continue
			}
			seen[entry.Key] = struct{}{}
			headers = append(headers, entry.Key)
		}
		if record.SourceLump != "" {
			hasLump = true
		}
	}
	return headers, hasLump
}

func cellValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
