package manifest

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}

// Schema returns a JSON Schema for tools.json.
// Shape: top-level array of Homebrew formula names.
func Schema() *jsonschema.Schema {
	item := &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^\S+$`,
		Description: "Homebrew formula name.",
	}
	return &jsonschema.Schema{
		Title:       "devctl tools manifest",
		Description: "Extra tools provisioned on top of the built-in set.",
		Type:        "array",
		Items:       item,
		UniqueItems: true,
	}
}
