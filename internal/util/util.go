// internal/util/util.go
package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// WriteFile writes data to path with 0o644 permissions, creating any
// missing parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON encodes v with two-space indentation and writes it to path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode %s: %w", path, err)
	}
	if err := WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	return nil
}

// TruncateRunes shortens text to maxRunes runes, appending an ellipsis
// when anything was cut.
func TruncateRunes(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes-1]) + "…"
}
