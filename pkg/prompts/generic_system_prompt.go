package prompts

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed templates/generic_system_prompt.tmpl
var genericSystemPromptTemplate string

// BuildGenericSystemPrompt renders the persona-free, memory-free baseline
// instruction used for before/after comparison.
func BuildGenericSystemPrompt() (string, error) {
	tmpl := template.Must(template.New("generic_system_prompt").Parse(genericSystemPromptTemplate))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}
