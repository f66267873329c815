package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gogate/internal/gate"
)

// WriteJSON writes the complete design, including the sampled frame analysis
// arrays, as indented JSON.
func WriteJSON(design *gate.Design, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}
	data, err := json.MarshalIndent(design, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
