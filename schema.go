package cff

import (
	"bytes"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaSet is a registry of compiled JSON Schemas keyed by cff-version.
// The schema documents themselves are externally supplied resources; the
// set is populated once at initialization and read-only afterwards.
type SchemaSet struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaSet compiles the supplied schema resources, keyed by the
// cff-version they validate.
func NewSchemaSet(resources map[string][]byte) (*SchemaSet, error) {
	set := &SchemaSet{schemas: make(map[string]*jsonschema.Schema, len(resources))}
	for version, data := range resources {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing schema for version %s: %w", version, err)
		}
		compiler := jsonschema.NewCompiler()
		name := "cff-" + version + ".schema.json"
		if err := compiler.AddResource(name, doc); err != nil {
			return nil, fmt.Errorf("adding schema for version %s: %w", version, err)
		}
		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compiling schema for version %s: %w", version, err)
		}
		set.schemas[version] = schema
	}
	return set, nil
}

// Has reports whether a schema is registered for the given version.
func (s *SchemaSet) Has(version string) bool {
	if s == nil {
		return false
	}
	_, ok := s.schemas[version]
	return ok
}

// Versions returns the registered schema versions in sorted order.
func (s *SchemaSet) Versions() []string {
	if s == nil {
		return nil
	}
	return sortedKeys(s.schemas)
}

func (s *SchemaSet) schema(version string) *jsonschema.Schema {
	if s == nil {
		return nil
	}
	return s.schemas[version]
}
