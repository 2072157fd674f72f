package extractor

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"

	"github.com/reflectivai/persona-engine/pkg/helpers"
	"github.com/reflectivai/persona-engine/pkg/memory"
)

const ExtractMemoryToolName = "EXTRACT_MEMORY"

// extractMemoryTool builds the forced tool that constrains the model output
// to the memory record schema. The parameters are reflected from the Go type
// so the wire contract cannot drift from the struct definition.
func extractMemoryTool() (openai.ChatCompletionToolParam, error) {
	schema, err := helpers.ConvertToInputSchema(memory.Record{})
	if err != nil {
		return openai.ChatCompletionToolParam{}, err
	}

	return openai.ChatCompletionToolParam{
		Type: "function",
		Function: openai.FunctionDefinitionParam{
			Name: ExtractMemoryToolName,
			Description: param.NewOpt(
				"Record the structured memory profile extracted from the conversation: user preferences with confidence scores, emotional patterns with frequency, memorable facts with importance, and a short summary.",
			),
			Parameters: openai.FunctionParameters(schema),
		},
	}, nil
}
