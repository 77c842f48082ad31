package introspection

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// LoadSnapshot reads a Package previously written by WriteSnapshot.
func LoadSnapshot(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read snapshot: %w", err)
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg, json.RejectUnknownMembers(true)); err != nil {
		return nil, fmt.Errorf("unable to parse snapshot: %w", err)
	}

	if pkg.Name == "" {
		return nil, fmt.Errorf("snapshot %s: package name is empty", path)
	}

	return &pkg, nil
}

// WriteSnapshot writes pkg as indented JSON, creating the parent directory.
func WriteSnapshot(path string, pkg *Package) error {
	data, err := json.Marshal(pkg, json.Deterministic(true), jsontext.WithIndent("\t"))
	if err != nil {
		return fmt.Errorf("unable to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("unable to create snapshot directory: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("unable to write snapshot: %w", err)
	}

	return nil
}
