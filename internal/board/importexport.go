package board

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rodizioboard/rodizio/internal/models"
)

// Export writes the current serialized state to a backup file named with
// today's date inside dir, returning the path written.
func (b *Board) Export(dir string) (string, error) {
	data, err := json.Marshal(b.state)
	if err != nil {
		return "", fmt.Errorf("encoding state: %w", err)
	}
	name := fmt.Sprintf("backup-rodizio-%s.json", b.now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return path, nil
}

// Import replaces the whole state with the contents of a backup file. On
// any failure the current state is left untouched.
func (b *Board) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}
	return b.ImportBytes(data)
}

// ImportBytes validates and applies a serialized SystemState. The three
// top-level sections must all be present; anything else is rejected as a
// malformed import before the current state is touched.
func (b *Board) ImportBytes(data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedImport, err)
	}
	for _, section := range []string{"catalog", "active_night", "history"} {
		if _, ok := sections[section]; !ok {
			return fmt.Errorf("%w: missing %q section", models.ErrMalformedImport, section)
		}
	}

	var state models.SystemState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedImport, err)
	}

	b.state = &state
	return b.persist()
}
