package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tdnguyen/sales-ledger/constants"
)

// BuildSalesJSONSchema returns the JSON-Schema (draft 2020-12 subset) the save
// endpoint validates its payload against: an array of records carrying all
// seventeen logical fields as strings, with the cashier constrained to the
// roster or empty.
func BuildSalesJSONSchema() map[string]any {
	props := make(map[string]any, len(constants.Fields))
	required := make([]any, 0, len(constants.Fields))
	for _, f := range constants.Fields {
		props[string(f.Key)] = map[string]any{"type": "string"}
		required = append(required, string(f.Key))
	}

	cashiers := []any{""}
	for _, c := range constants.Cashiers {
		cashiers = append(cashiers, c)
	}
	props[string(constants.FieldCashier)] = map[string]any{
		"type": "string",
		"enum": cashiers,
	}

	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
			"required":             required,
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
