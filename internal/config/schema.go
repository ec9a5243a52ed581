package config

import "github.com/invopop/jsonschema"

// Schema describes the theme document format as JSON Schema, for editor
// completion on theme files. Field names follow the YAML keys and unknown
// keys are rejected, as in ParseDocument.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		FieldNameTag:   "yaml",
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Document{})
	schema.Title = "spark theme"
	return schema
}

// JSONSchema lets a color be written either way it decodes.
func (Color) JSONSchema() *jsonschema.Schema {
	hex := &jsonschema.Schema{
		Type:    "string",
		Pattern: colorHexPattern.String(),
	}

	pair := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		Required:             []string{"light", "dark"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
	pair.Properties.Set("light", hex)
	pair.Properties.Set("dark", hex)

	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{hex, pair}}
}
