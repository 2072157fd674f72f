package prompts

import (
	"strings"
	"testing"
)

func TestBuildPersonaSystemPrompt(t *testing.T) {
	for persona, marker := range map[string]string{
		"mentor":    "wise, patient mentor",
		"friend":    "witty, supportive friend",
		"therapist": "empathetic therapist",
	} {
		prompt, err := BuildPersonaSystemPrompt(persona, PersonaSystemPrompt{})
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", persona, err)
		}
		if !strings.Contains(prompt, marker) {
			t.Errorf("expected %s prompt to contain %q", persona, marker)
		}
		if strings.Contains(prompt, "User Context") {
			t.Errorf("expected %s prompt without memory to omit the context block", persona)
		}
	}
}

func TestBuildPersonaSystemPromptWithMemoryContext(t *testing.T) {
	context, err := BuildMemoryContext(MemoryContext{
		Preferences: []string{"short answers", "dark humor"},
		Patterns:    []string{"stress before deadlines"},
		Facts:       []string{"plays violin"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt, err := BuildPersonaSystemPrompt("friend", PersonaSystemPrompt{MemoryContext: context})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "IMPORTANT - User Context") {
		t.Errorf("expected prompt to contain the context header")
	}
	if !strings.Contains(prompt, "Preferences: short answers, dark humor") {
		t.Errorf("expected comma-joined preferences, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Emotional patterns: stress before deadlines") {
		t.Errorf("expected pattern line, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Key facts: plays violin") {
		t.Errorf("expected fact line, got:\n%s", prompt)
	}
}

func TestBuildPersonaSystemPromptUnknownFallsBackToMentor(t *testing.T) {
	prompt, err := BuildPersonaSystemPrompt("pirate", PersonaSystemPrompt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "wise, patient mentor") {
		t.Errorf("expected unknown persona to fall back to the mentor template")
	}
}

func TestBuildMemoryContextOmitsEmptySections(t *testing.T) {
	context, err := BuildMemoryContext(MemoryContext{
		Facts: []string{"recently moved to Lisbon"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(context, "Preferences:") || strings.Contains(context, "Emotional patterns:") {
		t.Errorf("expected empty sections to be omitted, got:\n%s", context)
	}
	if !strings.Contains(context, "Key facts: recently moved to Lisbon") {
		t.Errorf("expected fact line, got:\n%s", context)
	}
}

func TestBuildGenericSystemPrompt(t *testing.T) {
	prompt, err := BuildGenericSystemPrompt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "2-3 concise sentences") {
		t.Errorf("expected length instruction in generic prompt")
	}
	for _, tone := range []string{"mentor", "friend", "therapist", "witty", "empathetic"} {
		if strings.Contains(prompt, tone) {
			t.Errorf("generic prompt must not carry persona wording %q", tone)
		}
	}
}
