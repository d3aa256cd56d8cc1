package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/citekit/cff"
)

// schemaDirectory resolves the schema directory from the flag, falling
// back to the CFF_SCHEMA_DIR environment variable.
func schemaDirectory(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CFF_SCHEMA_DIR")
}

// loadSchemaSet compiles every "<version>.json" schema file in dir.
func loadSchemaSet(dir string) (*cff.SchemaSet, error) {
	if dir == "" {
		return nil, fmt.Errorf("no schema directory configured; pass --schema-dir or set CFF_SCHEMA_DIR")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema directory: %w", err)
	}

	resources := map[string][]byte{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", name, err)
		}
		resources[strings.TrimSuffix(name, ".json")] = data
	}
	if len(resources) == 0 {
		return nil, fmt.Errorf("no schema files found in %s", dir)
	}

	return cff.NewSchemaSet(resources)
}
