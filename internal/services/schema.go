package services

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/livingtree/prpcheck/internal/domain"
)

// VerdictSchemaID identifies the verdict schema
const VerdictSchemaID = "https://github.com/livingtree/prpcheck/verdict.schema.json"

// VerdictSchema returns the JSON Schema describing the hook verdict line
func VerdictSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&domain.Verdict{})
	schema.ID = VerdictSchemaID
	schema.Title = "PRP validation verdict"
	schema.Description = "Single JSON object printed by prpcheck for each validated prompt"
	schema.Required = []string{"valid"}

	if prop, ok := schema.Properties.Get("error"); ok {
		prop.Enum = []any{
			domain.MessageFileNotFound,
			domain.MessageInvalidInput,
			domain.MessageUnreadable,
		}
	}
	if prop, ok := schema.Properties.Get("note"); ok {
		prop.Enum = []any{domain.MessageNoPath}
	}
	if prop, ok := schema.Properties.Get("score"); ok {
		prop.Minimum = json.Number("5")
		prop.Maximum = json.Number("10")
	}
	if prop, ok := schema.Properties.Get("missing_sections"); ok && prop.Items != nil {
		sections := make([]any, len(domain.RequiredSections))
		for i, s := range domain.RequiredSections {
			sections[i] = s
		}
		prop.Items.Enum = sections
	}

	return schema
}
