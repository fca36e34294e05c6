package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema describing config.toml.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/paysurface/config.schema.json"
	schema.Title = "paysurface configuration"
	schema.Description = "Configuration schema for the paysurface checkout overlay"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes Schema to path.
func WriteSchemaFile(path string) error {
	data, err := Schema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
