package prompts

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed templates/memory_context.tmpl
var memoryContextTemplate string

// MemoryContext carries the condensed memory lines injected into a persona
// system prompt. Slices are already truncated to the caller's limits.
type MemoryContext struct {
	Preferences []string
	Patterns    []string
	Facts       []string
}

// IsEmpty reports whether there is nothing to inject.
func (m MemoryContext) IsEmpty() bool {
	return len(m.Preferences) == 0 && len(m.Patterns) == 0 && len(m.Facts) == 0
}

func BuildMemoryContext(data MemoryContext) (string, error) {
	tmpl := template.Must(template.New("memory_context").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(memoryContextTemplate))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
