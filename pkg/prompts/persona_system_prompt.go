package prompts

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed templates/mentor_system_prompt.tmpl
var mentorSystemPromptTemplate string

//go:embed templates/friend_system_prompt.tmpl
var friendSystemPromptTemplate string

//go:embed templates/therapist_system_prompt.tmpl
var therapistSystemPromptTemplate string

var personaSystemPromptTemplates = map[string]string{
	"mentor":    mentorSystemPromptTemplate,
	"friend":    friendSystemPromptTemplate,
	"therapist": therapistSystemPromptTemplate,
}

type PersonaSystemPrompt struct {
	MemoryContext string
}

// BuildPersonaSystemPrompt renders the system prompt for the named persona,
// appending the memory context block when one is supplied. Unknown persona
// names fall back to the mentor template; callers that need strict
// validation reject unknown names before reaching this point.
func BuildPersonaSystemPrompt(persona string, data PersonaSystemPrompt) (string, error) {
	text, ok := personaSystemPromptTemplates[persona]
	if !ok {
		text = mentorSystemPromptTemplate
	}
	tmpl := template.Must(template.New("persona_system_prompt").Parse(text))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
