package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpattn/entlens/internal/domain"
	"github.com/xuri/excelize/v2"
)

func sampleDocument(t *testing.T) Document {
	t.Helper()
	entities := []domain.Entity{
		domain.NewEntity([]domain.Property{
			scalar("classname", "prop_crate"),
			scalar("targetname", "crate01"),
			{Key: "origin", Value: domain.ArrayValue("0", "64", "128")},
		}).WithSourceLump("lump_0"),
		domain.NewEntity([]domain.Property{
			scalar("classname", "logic_relay"),
			scalar("health", "100"),
		}),
	}
	doc, err := NewTransformer(WithClock(fixedClock())).Build(entities)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return doc
}

func TestWriteJSONIsIndented(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleDocument(t)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	text := buf.String()
	if !strings.HasPrefix(text, "{\n  \"entityCount\"") {
		t.Fatalf("expected two-space indented output, got %q", text[:40])
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestSaveJSONPromotesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entities.json")

	if err := SaveJSON(path, sampleDocument(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if decoded.EntityCount != 2 {
		t.Fatalf("unexpected entity count %d", decoded.EntityCount)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the final file, found %d entries", len(entries))
	}
}

func TestSaveJSONCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "entities.json")
	if err := SaveJSON(path, sampleDocument(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
}

func TestWriteXLSXLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entities.xlsx")
	if err := WriteXLSX(path, sampleDocument(t)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two entity rows, got %d", len(rows))
	}
	header := rows[0]
	want := []string{"classname", "targetname", "origin", "health", "sourceLump"}
	if len(header) != len(want) {
		t.Fatalf("unexpected header %v", header)
	}
	for i, column := range want {
		if header[i] != column {
			t.Fatalf("expected header %q at column %d, got %q", column, i, header[i])
		}
	}
	if rows[1][0] != "prop_crate" || rows[1][2] != "0 64 128" {
		t.Fatalf("unexpected first entity row %v", rows[1])
	}
	if rows[2][0] != "logic_relay" {
		t.Fatalf("unexpected second entity row %v", rows[2])
	}
}
