package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteJSON serializes the document as indented, human-readable JSON.
func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode export document: %w", err)
	}
	return nil
}

// SaveJSON writes the document to path through a uniquely named temp file
// in the same directory, renaming into place once fully written so a failed
// export never leaves a truncated file behind.
func SaveJSON(path string, doc Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure export directory: %w", err)
	}
	tempFile, err := os.CreateTemp(dir, fmt.Sprintf("%s-*.json", uuid.New()))
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}
	tempPath := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if err := WriteJSON(tempFile, doc); err != nil {
		return err
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync export file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("promote export file: %w", err)
	}
	cleanup = false
	return nil
}
