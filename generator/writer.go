package generator

import (
	"os"
	"path/filepath"

	"github.com/typesmith/typesmith/tserrors"
)

// WriteFile writes the generated source to the given path, creating parent
// directories as needed.
func (r *GenerateResult) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &tserrors.ConfigError{Option: "output", Message: err.Error()}
		}
	}
	return os.WriteFile(path, []byte(r.Source), 0o644)
}
