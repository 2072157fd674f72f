package helpers

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

var jsonSchemaReflector = jsonschema.Reflector{
	Anonymous:                 true,
	AllowAdditionalProperties: false,
	DoNotReference:            true,
	ExpandedStruct:            true,
}

// ConvertToInputSchema reflects a Go struct into the generic
// map[string]any shape the chat completions tool API expects.
func ConvertToInputSchema(args any) (map[string]any, error) {
	schema := jsonSchemaReflector.ReflectFromType(reflect.TypeOf(args))

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	var inputSchema map[string]any
	if err := json.Unmarshal(schemaBytes, &inputSchema); err != nil {
		return nil, err
	}

	return inputSchema, nil
}
